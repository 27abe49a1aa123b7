package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Samuel-Loga/Personal-Website/database"
	"github.com/Samuel-Loga/Personal-Website/pkg/gorm"
)

type Users struct {
	DB *database.Connection
}

func (r Users) FindBy(email string) *database.User {
	user := &database.User{}

	result := r.DB.Sql().
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if strings.Trim(user.UUID, " ") != "" {
		return user
	}

	return nil
}

func (r Users) FindByUsername(username string) *database.User {
	user := &database.User{}

	result := r.DB.Sql().
		Where("username = ?", username).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if strings.Trim(user.UUID, " ") != "" {
		return user
	}

	return nil
}

func (r Users) Create(attrs database.UsersAttrs) (*database.User, error) {
	user := database.User{
		UUID:         uuid.NewString(),
		Username:     attrs.Username,
		DisplayName:  attrs.DisplayName,
		Email:        strings.ToLower(strings.TrimSpace(attrs.Email)),
		PasswordHash: attrs.PasswordHash,
		IsAdmin:      attrs.IsAdmin,
	}

	if result := r.DB.Sql().Create(&user); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating users: %s", result.Error)
	}

	return &user, nil
}
