package payload

import (
	"time"

	"github.com/Samuel-Loga/Personal-Website/database"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type SubscriberResponse struct {
	ID        uint64    `json:"id"`
	UUID      string    `json:"uuid"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func GetSubscriberResponse(s database.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:        s.ID,
		UUID:      s.UUID,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
