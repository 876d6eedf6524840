package handler

import "bookmarks_api/internal/models"

type authRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,password"`
}

type editUserRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty"`
	LastName  *string `json:"lastName" binding:"omitempty"`
	Email     *string `json:"email" binding:"omitempty,email"`
}

func (r editUserRequest) toUpdate() models.UserUpdate {
	return models.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}

type createBookmarkRequest struct {
	Title       string  `json:"title" binding:"required"`
	Link        string  `json:"link" binding:"required"`
	Description *string `json:"description" binding:"omitempty"`
}

type editBookmarkRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Link        *string `json:"link" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty"`
}

func (r editBookmarkRequest) toUpdate() models.BookmarkUpdate {
	return models.BookmarkUpdate{
		Title:       r.Title,
		Link:        r.Link,
		Description: r.Description,
	}
}

type signupResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}
