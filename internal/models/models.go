package models

import (
	"time"

	"github.com/gofrs/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:hash;not null"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Bookmarks []Bookmark `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

type Bookmark struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Link        string    `json:"link" gorm:"not null"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UserUpdate carries the profile fields a caller may change. Nil fields are
// left untouched.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (u UserUpdate) Empty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil
}

type BookmarkUpdate struct {
	Title       *string
	Link        *string
	Description *string
}

func (b BookmarkUpdate) Empty() bool {
	return b.Title == nil && b.Link == nil && b.Description == nil
}
