package kernel

import (
	baseHttp "net/http"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/handler"
	"github.com/Samuel-Loga/Personal-Website/metal/env"
	"github.com/Samuel-Loga/Personal-Website/pkg/auth"
	"github.com/Samuel-Loga/Personal-Website/pkg/cache"
	"github.com/Samuel-Loga/Personal-Website/pkg/edge"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
	"github.com/Samuel-Loga/Personal-Website/pkg/middleware"
	"github.com/Samuel-Loga/Personal-Website/pkg/storage"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Db       *database.Connection
	JWT      auth.JWTHandler
	Revoked  *cache.TTLCache
	Bucket   storage.ObjectStore
	Edge     edge.Invoker
}

// PublicPipelineFor serves read endpoints with no guard.
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(apiHandler),
	)
}

// ThrottledPipelineFor wraps anonymous write endpoints with the per-IP
// limiter.
func (r *Router) ThrottledPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Throttle.Handle,
		),
	)
}

// AdminPipelineFor requires a valid, non-revoked bearer token.
func (r *Router) AdminPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.AdminMiddleware.Handle,
		),
	)
}

func (r *Router) Posts() {
	posts := repository.Posts{DB: r.Db}
	categories := repository.Categories{DB: r.Db}
	abstract := handler.MakePostsHandler(&posts, &categories)

	index := r.PublicPipelineFor(abstract.Index)
	show := r.PublicPipelineFor(abstract.Show)

	r.Mux.HandleFunc("GET /posts", index)
	r.Mux.HandleFunc("GET /posts/{slug}", show)
}

func (r *Router) Comments() {
	posts := repository.Posts{DB: r.Db}
	comments := repository.Comments{DB: r.Db}
	replies := repository.Replies{DB: r.Db}
	reactions := repository.Reactions{DB: r.Db}

	abstract := handler.MakeCommentsHandler(&posts, &comments, &reactions)
	nested := handler.MakeRepliesHandler(&comments, &replies)

	index := r.PublicPipelineFor(abstract.Index)
	store := r.ThrottledPipelineFor(abstract.Store)
	reply := r.ThrottledPipelineFor(nested.Store)

	r.Mux.HandleFunc("GET /posts/{slug}/comments", index)
	r.Mux.HandleFunc("POST /posts/{slug}/comments", store)
	r.Mux.HandleFunc("POST /comments/{id}/replies", reply)
}

func (r *Router) Reactions() {
	comments := repository.Comments{DB: r.Db}
	reactions := repository.Reactions{DB: r.Db}
	abstract := handler.MakeReactionsHandler(&comments, &reactions)

	store := r.ThrottledPipelineFor(abstract.Store)

	r.Mux.HandleFunc("POST /comments/{id}/reactions", store)
}

func (r *Router) Subscribers() {
	subscribers := repository.Subscribers{DB: r.Db}
	abstract := handler.MakeSubscribersHandler(&subscribers)

	store := r.ThrottledPipelineFor(abstract.Store)

	r.Mux.HandleFunc("POST /subscribers", store)
}

func (r *Router) Categories() {
	categories := repository.Categories{DB: r.Db}
	abstract := handler.MakeCategoriesHandler(&categories)

	index := r.PublicPipelineFor(abstract.Index)

	r.Mux.HandleFunc("GET /categories", index)
}

func (r *Router) Auth() {
	users := repository.Users{DB: r.Db}
	abstract := handler.MakeAuthHandler(&users, r.JWT, r.Revoked)

	login := r.PublicPipelineFor(abstract.Login)
	session := r.AdminPipelineFor(abstract.Session)
	logout := r.AdminPipelineFor(abstract.Logout)

	r.Mux.HandleFunc("POST /auth/login", login)
	r.Mux.HandleFunc("GET /auth/session", session)
	r.Mux.HandleFunc("POST /auth/logout", logout)
}

func (r *Router) Admin() {
	posts := repository.Posts{DB: r.Db}
	categories := repository.Categories{DB: r.Db}
	comments := repository.Comments{DB: r.Db}
	subscribers := repository.Subscribers{DB: r.Db}
	users := repository.Users{DB: r.Db}

	dashboard := handler.MakeDashboardHandler(&posts, &comments, &subscribers)
	adminPosts := handler.MakeAdminPostsHandler(&posts, &categories, &users, r.Env.App.AdminUser)
	adminComments := handler.MakeAdminCommentsHandler(&comments)
	adminSubscribers := handler.MakeSubscribersHandler(&subscribers)
	adminCategories := handler.MakeCategoriesHandler(&categories)
	newsletter := handler.MakeNewsletterHandler(&subscribers, r.Edge)
	media := handler.MakeMediaHandler(r.Bucket)

	r.Mux.HandleFunc("GET /admin/dashboard", r.AdminPipelineFor(dashboard.Handle))

	r.Mux.HandleFunc("GET /admin/posts", r.AdminPipelineFor(adminPosts.Index))
	r.Mux.HandleFunc("POST /admin/posts", r.AdminPipelineFor(adminPosts.Store))
	r.Mux.HandleFunc("PUT /admin/posts/{slug}", r.AdminPipelineFor(adminPosts.Update))
	r.Mux.HandleFunc("DELETE /admin/posts/{slug}", r.AdminPipelineFor(adminPosts.Destroy))

	r.Mux.HandleFunc("PATCH /admin/comments/{id}", r.AdminPipelineFor(adminComments.UpdateStatus))
	r.Mux.HandleFunc("DELETE /admin/comments/{id}", r.AdminPipelineFor(adminComments.Destroy))

	r.Mux.HandleFunc("GET /admin/subscribers", r.AdminPipelineFor(adminSubscribers.Index))
	r.Mux.HandleFunc("DELETE /admin/subscribers/{id}", r.AdminPipelineFor(adminSubscribers.Destroy))

	r.Mux.HandleFunc("POST /admin/categories", r.AdminPipelineFor(adminCategories.Store))
	r.Mux.HandleFunc("PUT /admin/categories/{slug}", r.AdminPipelineFor(adminCategories.Update))
	r.Mux.HandleFunc("DELETE /admin/categories/{slug}", r.AdminPipelineFor(adminCategories.Destroy))

	r.Mux.HandleFunc("POST /admin/newsletter", r.AdminPipelineFor(newsletter.Send))
	r.Mux.HandleFunc("POST /admin/images", r.AdminPipelineFor(media.Upload))
}

func (r *Router) KeepAlive() {
	abstract := handler.MakeKeepAliveHandler(&r.Env.Ping)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle),
	)

	r.Mux.HandleFunc("GET /ping", apiHandler)
}

func (r *Router) KeepAliveDB() {
	abstract := handler.MakeKeepAliveDBHandler(&r.Env.Ping, r.Db)

	apiHandler := endpoint.NewApiHandler(
		r.Pipeline.Chain(abstract.Handle),
	)

	r.Mux.HandleFunc("GET /ping-db", apiHandler)
}
