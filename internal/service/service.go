package service

import (
	"bookmarks_api/internal/auth"
	"bookmarks_api/internal/models"
	"bookmarks_api/internal/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid"
)

var (
	// ErrInvalidCredentials covers every signup and signin failure that
	// depends on account existence, so callers cannot enumerate users.
	ErrInvalidCredentials = errors.New("credentials are invalid")
	ErrAccessDenied       = errors.New("access to resource denied")
	ErrUnknownUser        = errors.New("user no longer exists")
)

var compareDummy = auth.CompareDummy

type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, error)
}

type Service interface {
	Signup(ctx context.Context, email, password string) (models.User, string, error)
	Signin(ctx context.Context, email, password string) (string, error)

	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)
	EditUser(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (models.User, error)

	CreateBookmark(ctx context.Context, userID uuid.UUID, title, link string, description *string) (models.Bookmark, error)
	GetBookmarks(ctx context.Context, userID uuid.UUID) ([]models.Bookmark, error)
	GetBookmarkByID(ctx context.Context, userID, bookmarkID uuid.UUID) (models.Bookmark, error)
	EditBookmarkByID(ctx context.Context, userID, bookmarkID uuid.UUID, upd models.BookmarkUpdate) (models.Bookmark, error)
	DeleteBookmarkByID(ctx context.Context, userID, bookmarkID uuid.UUID) error

	Ping(ctx context.Context) error
}

type service struct {
	storage storage.Storage
	tokens  TokenIssuer
	log     *slog.Logger
}

func NewService(st storage.Storage, tokens TokenIssuer, lgr *slog.Logger) *service {
	return &service{
		storage: st,
		tokens:  tokens,
		log:     lgr,
	}
}

func (s *service) Signup(ctx context.Context, email, password string) (models.User, string, error) {
	const op = "service.Signup"

	log := s.log.With(slog.String("op", op))

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.storage.CreateUser(ctx, email, passwordHash)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("signup rejected", slog.Any("error", err))

			return models.User{}, "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	user.PasswordHash = ""

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return models.User{}, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user signed up", slog.String("user_id", user.ID.String()))

	return user, token, nil
}

func (s *service) Signin(ctx context.Context, email, password string) (string, error) {
	const op = "service.Signin"

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// keep the response time in line with a wrong password
			compareDummy(password)

			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if ok := auth.CheckPasswordHash(user.PasswordHash, password); !ok {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

func (s *service) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "service.GetUser"

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUnknownUser)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user.PasswordHash = ""

	return user, nil
}

// EditUser changes the profile of userID, which must come from the verified
// token and never from the request body.
func (s *service) EditUser(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (models.User, error) {
	const op = "service.EditUser"

	user, err := s.storage.UpdateUser(ctx, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUserExists):
			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		case errors.Is(err, storage.ErrUserNotFound):
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUnknownUser)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user.PasswordHash = ""

	return user, nil
}

func (s *service) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}
