package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio/config"
)

// User owns portfolios and orders; both are cascade-deleted with it.
// PasswordHash holds a bcrypt digest and must never reach a response body.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	UID          string    `json:"uid" gorm:"uniqueIndex;size:36"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255" validate:"required|email"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100" validate:"required"`
	PasswordHash string    `json:"-" validate:"required"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    null.Time `json:"last_login"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if len(u.UID) == 0 {
		u.UID = uuid.NewString()
	}

	return nil
}

func CreateUser(user *User) error {
	if len(user.Email) == 0 || len(user.Username) == 0 || len(user.PasswordHash) == 0 {
		return fmt.Errorf("%w: email, username and password are required", ErrConstraintViolation)
	}

	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&User{}).Where("email = ?", user.Email).Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: duplicate email %s", ErrConstraintViolation, user.Email)
		}

		tx.Model(&User{}).Where("username = ?", user.Username).Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: duplicate username %s", ErrConstraintViolation, user.Username)
		}

		return tx.Create(user).Error
	})
}

func FindUserByID(id int64) (*User, error) {
	var user *User

	result := config.DataBase.First(&user, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}

	return user, result.Error
}

func FindUserByUID(uid string) (*User, error) {
	var user *User

	result := config.DataBase.First(&user, "uid = ?", uid)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, uid)
	}

	return user, result.Error
}

func FindUserByEmail(email string) (*User, error) {
	var user *User

	result := config.DataBase.First(&user, "email = ?", email)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, email)
	}

	return user, result.Error
}

func FindUserByUsername(username string) (*User, error) {
	var user *User

	result := config.DataBase.First(&user, "username = ?", username)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, username)
	}

	return user, result.Error
}

// UpdateUser persists profile changes, re-checking uniqueness for the
// fields that carry it.
func UpdateUser(user *User) error {
	return config.DataBase.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&User{}).Where("email = ? AND id <> ?", user.Email, user.ID).Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: duplicate email %s", ErrConstraintViolation, user.Email)
		}

		tx.Model(&User{}).Where("username = ? AND id <> ?", user.Username, user.ID).Count(&count)
		if count > 0 {
			return fmt.Errorf("%w: duplicate username %s", ErrConstraintViolation, user.Username)
		}

		return tx.Save(user).Error
	})
}

func (u *User) TouchLastLogin() error {
	u.LastLogin = null.TimeFrom(time.Now().UTC())

	return config.DataBase.Model(u).Update("last_login", u.LastLogin).Error
}

func (u *User) Portfolios() ([]*Portfolio, error) {
	var portfolios []*Portfolio

	result := config.DataBase.Where("user_id = ?", u.ID).Find(&portfolios)

	return portfolios, result.Error
}

// DeleteUser removes the user, every portfolio it owns (with their assets)
// and every order it placed, atomically.
func DeleteUser(id int64) error {
	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var user *User

		result := tx.First(&user, id)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		if result.Error != nil {
			return result.Error
		}

		var portfolioIDs []int64
		if err := tx.Model(&Portfolio{}).Where("user_id = ?", id).Pluck("id", &portfolioIDs).Error; err != nil {
			return err
		}

		if len(portfolioIDs) > 0 {
			if err := tx.Where("portfolio_id IN ?", portfolioIDs).Delete(&PortfolioAsset{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&Portfolio{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&Order{}).Error; err != nil {
			return err
		}

		return tx.Delete(&User{}, id).Error
	})

	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: user %d: %v", ErrCascadeFailed, id, err)
	}

	return err
}
