package kernel

import (
	"fmt"
	baseHttp "net/http"
	"time"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/metal/env"
	"github.com/Samuel-Loga/Personal-Website/pkg/agenda"
	"github.com/Samuel-Loga/Personal-Website/pkg/auth"
	"github.com/Samuel-Loga/Personal-Website/pkg/cache"
	"github.com/Samuel-Loga/Personal-Website/pkg/edge"
	"github.com/Samuel-Loga/Personal-Website/pkg/llogs"
	"github.com/Samuel-Loga/Personal-Website/pkg/middleware"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
	"github.com/Samuel-Loga/Personal-Website/pkg/storage"
)

const jwtTTL = 12 * time.Hour

type App struct {
	router     *Router
	sentry     *portal.Sentry
	logs       llogs.Driver
	validator  *portal.Validator
	env        *env.Environment
	db         *database.Connection
	schedulers []*agenda.Engine
}

func MakeApp(env *env.Environment, validator *portal.Validator) (*App, error) {
	jwtHandler, err := auth.MakeJWTHandler([]byte(env.App.MasterKey), jwtTTL)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create jwt handler: %w", err)
	}

	db := MakeDbConnection(env)
	revoked := cache.NewTTLCache()

	app := App{
		env:       env,
		validator: validator,
		logs:      MakeLogs(env),
		sentry:    MakeSentry(env),
		db:        db,
	}

	router := Router{
		Env:     env,
		Db:      db,
		Mux:     baseHttp.NewServeMux(),
		JWT:     jwtHandler,
		Revoked: revoked,
		Bucket:  storage.MakeBucket(env.Storage),
		Edge:    edge.MakeClient(env.Edge),
		Pipeline: middleware.Pipeline{
			Env:             env,
			AdminMiddleware: middleware.MakeAdminMiddleware(jwtHandler, revoked),
			Throttle:        middleware.MakeThrottleMiddleware(time.Minute, 10),
		},
	}

	app.SetRouter(router)

	schedulers, err := MakeSchedulers(env, db)
	if err != nil {
		return nil, fmt.Errorf("bootstrapping error > could not create schedulers: %w", err)
	}

	app.schedulers = schedulers

	return &app, nil
}

func (a *App) Boot() {
	if a == nil || a.router == nil {
		panic("bootstrapping error > Invalid setup")
	}

	router := *a.router

	router.Posts()
	router.Comments()
	router.Reactions()
	router.Subscribers()
	router.Categories()
	router.Auth()
	router.Admin()
	router.KeepAlive()
	router.KeepAliveDB()
}
