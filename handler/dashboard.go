package handler

import (
	baseHttp "net/http"

	"golang.org/x/sync/errgroup"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/database/repository"
	"github.com/Samuel-Loga/Personal-Website/database/repository/pagination"
	"github.com/Samuel-Loga/Personal-Website/handler/paginate"
	"github.com/Samuel-Loga/Personal-Website/handler/payload"
	"github.com/Samuel-Loga/Personal-Website/pkg/endpoint"
)

const recentCommentsLimit = 10

// DashboardHandler assembles the admin landing page in one response: the
// stat counters, the posts table, the latest comments and the subscriber
// list. The reads are independent, so they run concurrently.
type DashboardHandler struct {
	Posts       *repository.Posts
	Comments    *repository.Comments
	Subscribers *repository.Subscribers
}

func MakeDashboardHandler(posts *repository.Posts, comments *repository.Comments, subscribers *repository.Subscribers) DashboardHandler {
	return DashboardHandler{
		Posts:       posts,
		Comments:    comments,
		Subscribers: subscribers,
	}
}

func (h *DashboardHandler) Handle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	var stats payload.DashboardStats
	var posts *pagination.Pagination[database.Post]
	var comments []database.Comment
	var subscribers []database.Subscriber

	group, _ := errgroup.WithContext(r.Context())

	group.Go(func() error {
		var err error

		if stats.PublishedPosts, err = h.Posts.CountPublished(); err != nil {
			return err
		}

		if stats.DraftPosts, err = h.Posts.CountDrafts(); err != nil {
			return err
		}

		if stats.Comments, err = h.Comments.Count(); err != nil {
			return err
		}

		stats.Subscribers, err = h.Subscribers.Count()

		return err
	})

	group.Go(func() error {
		var err error
		posts, err = h.Posts.GetAll(paginate.NewFrom(r.URL, repository.PostsPerPage))

		return err
	})

	group.Go(func() error {
		var err error
		comments, err = h.Comments.GetRecent(recentCommentsLimit)

		return err
	})

	group.Go(func() error {
		var err error
		subscribers, err = h.Subscribers.GetAll()

		return err
	})

	if err := group.Wait(); err != nil {
		return endpoint.LogInternalError("Error loading the dashboard", err)
	}

	data := payload.DashboardResponse{Stats: stats}

	for _, post := range posts.Data {
		data.Posts = append(data.Posts, payload.GetPostResponse(post))
	}

	for _, comment := range comments {
		data.RecentComments = append(data.RecentComments, payload.GetAdminCommentResponse(comment))
	}

	for _, subscriber := range subscribers {
		data.Subscribers = append(data.Subscribers, payload.GetSubscriberResponse(subscriber))
	}

	resp := endpoint.MakeNoCacheResponse(w, r)

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("failed to encode response", err)
	}

	return nil
}
