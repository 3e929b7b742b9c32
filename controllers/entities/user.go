package entities

import (
	"fmt"
	"time"

	"github.com/volatiletech/null"

	"github.com/coinfolio/coinfolio/models"
)

// UserLoginEntity is the authentication view of a user. It deliberately
// omits created_at, last_login and is_active, and like every entity here
// it carries no credential material.
type UserLoginEntity struct {
	ID       int64  `json:"id"`
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// UserProfileEntity is the settings view: the login fields plus the
// administrative ones.
type UserProfileEntity struct {
	ID        int64     `json:"id"`
	UID       string    `json:"uid"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin null.Time `json:"last_login"`
	IsActive  bool      `json:"is_active"`
}

func UserToLoginEntity(user *models.User) (*UserLoginEntity, error) {
	if user == nil || user.ID == 0 || len(user.Email) == 0 || len(user.Username) == 0 {
		return nil, fmt.Errorf("%w: user is missing required fields", models.ErrSerialization)
	}

	return &UserLoginEntity{
		ID:       user.ID,
		UID:      user.UID,
		Email:    user.Email,
		Username: user.Username,
	}, nil
}

func UserToProfileEntity(user *models.User) (*UserProfileEntity, error) {
	if user == nil || user.ID == 0 || len(user.Email) == 0 || len(user.Username) == 0 {
		return nil, fmt.Errorf("%w: user is missing required fields", models.ErrSerialization)
	}

	return &UserProfileEntity{
		ID:        user.ID,
		UID:       user.UID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
		IsActive:  user.IsActive,
	}, nil
}
