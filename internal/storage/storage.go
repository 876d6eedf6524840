package storage

import (
	"bookmarks_api/internal/models"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

type Storage interface {
	// Users
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (models.User, error)

	// Bookmarks
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]models.Bookmark, error)
	GetBookmarkByID(ctx context.Context, bookmarkID uuid.UUID) (models.Bookmark, error)
	UpdateBookmark(ctx context.Context, bookmarkID, userID uuid.UUID, upd models.BookmarkUpdate) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, bookmarkID, userID uuid.UUID) error

	CleanDB(ctx context.Context) error
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close()
}

type GormStorage struct {
	db   *gorm.DB
	sql  *sql.DB
	pool *pgxpool.Pool
}

func NewPostgresStorage(ctx context.Context, dbURL string, log *slog.Logger) (*GormStorage, error) {
	const op = "storage.NewPostgresStorage"

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	st, err := open(postgres.New(postgres.Config{Conn: sqlDB}), log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	st.pool = pool

	return st, nil
}

// NewSQLiteStorage opens a SQLite backed store. An in-memory dsn is pinned to
// a single connection so every query sees the same database.
func NewSQLiteStorage(dsn string, log *slog.Logger) (*GormStorage, error) {
	const op = "storage.NewSQLiteStorage"

	st, err := open(sqlite.Open(dsn), log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	st.sql.SetMaxOpenConns(1)

	return st, nil
}

func open(dialector gorm.Dialector, log *slog.Logger) (*GormStorage, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(slogWriter{log: log}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	return &GormStorage{db: db, sql: sqlDB}, nil
}

func (g *GormStorage) Migrate(ctx context.Context) error {
	const op = "storage.Migrate"

	if err := g.db.WithContext(ctx).AutoMigrate(&models.User{}, &models.Bookmark{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (g *GormStorage) Ping(ctx context.Context) error {
	const op = "storage.Ping"

	if err := g.sql.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CleanDB removes every bookmark and then every user in one transaction.
func (g *GormStorage) CleanDB(ctx context.Context) error {
	const op = "storage.CleanDB"

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		if err := tx.Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}).Error
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (g *GormStorage) Close() {
	if g.sql != nil {
		g.sql.Close()
	}
	if g.pool != nil {
		g.pool.Close()
	}
}

type slogWriter struct {
	log *slog.Logger
}

func (w slogWriter) Printf(format string, args ...interface{}) {
	if w.log == nil {
		return
	}
	w.log.Warn(fmt.Sprintf(format, args...), slog.String("component", "gorm"))
}
