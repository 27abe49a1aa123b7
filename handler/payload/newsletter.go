package payload

type NewsletterRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type NewsletterResponse struct {
	Message    string `json:"message"`
	Recipients int    `json:"recipients"`
}
