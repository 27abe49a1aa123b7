package kernel

import (
	"context"
	baseHttp "net/http"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/metal/env"
	"github.com/Samuel-Loga/Personal-Website/pkg/portal"
)

func (a *App) SetRouter(router Router) {
	a.router = &router
}

func (a *App) CloseLogs() {
	if a.logs == nil {
		return
	}

	a.logs.Close()
}

func (a *App) CloseDB() {
	if a.db == nil {
		return
	}

	a.db.Close()
}

// StartSchedulers launches the background jobs; they stop when ctx ends.
func (a *App) StartSchedulers(ctx context.Context) error {
	for _, scheduler := range a.schedulers {
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) StopSchedulers() {
	for _, scheduler := range a.schedulers {
		scheduler.Stop()
	}
}

func (a *App) IsLocal() bool {
	return a.env.App.IsLocal()
}

func (a *App) IsProduction() bool {
	return a.env.App.IsProduction()
}

func (a *App) GetEnv() *env.Environment {
	return a.env
}

func (a *App) GetDB() *database.Connection {
	return a.db
}

func (a *App) GetSentry() *portal.Sentry {
	return a.sentry
}

func (a *App) GetMux() *baseHttp.ServeMux {
	if a.router == nil {
		return nil
	}

	return a.router.Mux
}
