package payload

type MediaResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
