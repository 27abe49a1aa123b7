package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
)

var ErrDuplicateSubscriber = errors.New("email is already subscribed")

type Subscribers struct {
	DB *database.Connection
}

func (s Subscribers) GetAll() ([]database.Subscriber, error) {
	var subscribers []database.Subscriber

	err := s.DB.Sql().
		Order("created_at desc").
		Find(&subscribers).Error

	if err != nil {
		return nil, err
	}

	return subscribers, nil
}

func (s Subscribers) FindBy(id uint64) *database.Subscriber {
	subscriber := database.Subscriber{}

	result := s.DB.Sql().First(&subscriber, id)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if result.RowsAffected > 0 {
		return &subscriber
	}

	return nil
}

func (s Subscribers) Create(attrs database.SubscribersAttrs) (*database.Subscriber, error) {
	subscriber := database.Subscriber{
		UUID:  uuid.NewString(),
		Email: strings.ToLower(strings.TrimSpace(attrs.Email)),
	}

	if result := s.DB.Sql().Create(&subscriber); gorm.HasDbIssues(result.Error) {
		if gorm.IsUniqueViolation(result.Error) {
			return nil, ErrDuplicateSubscriber
		}

		return nil, fmt.Errorf("issue creating subscribers: %w", result.Error)
	}

	return &subscriber, nil
}

func (s Subscribers) Delete(subscriber *database.Subscriber) error {
	if result := s.DB.Sql().Delete(subscriber); gorm.HasDbIssues(result.Error) {
		return fmt.Errorf("issue deleting the subscriber [%s]: %s", subscriber.Email, result.Error)
	}

	return nil
}

func (s Subscribers) Count() (int64, error) {
	var count int64

	err := s.DB.Sql().Model(&database.Subscriber{}).Count(&count).Error

	return count, err
}
