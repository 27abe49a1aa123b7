package payload

type DashboardStats struct {
	PublishedPosts int64 `json:"published_posts"`
	DraftPosts     int64 `json:"draft_posts"`
	Comments       int64 `json:"comments"`
	Subscribers    int64 `json:"subscribers"`
}

type DashboardResponse struct {
	Stats          DashboardStats         `json:"stats"`
	Posts          []PostResponse         `json:"posts"`
	RecentComments []AdminCommentResponse `json:"recent_comments"`
	Subscribers    []SubscriberResponse   `json:"subscribers"`
}
