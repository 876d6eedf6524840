package storage

import (
	"bookmarks_api/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

func (g *GormStorage) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	const op = "storage.CreateUser"

	userID, err := uuid.NewV4()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.User{
		ID:           userID,
		Email:        email,
		PasswordHash: passwordHash,
	}

	if err := g.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (g *GormStorage) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "storage.GetUserByID"

	var user models.User

	err := g.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return user, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (g *GormStorage) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "storage.GetUserByEmail"

	var user models.User

	err := g.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return user, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (g *GormStorage) UpdateUser(ctx context.Context, userID uuid.UUID, upd models.UserUpdate) (models.User, error) {
	const op = "storage.UpdateUser"

	if upd.Empty() {
		user, err := g.GetUserByID(ctx, userID)
		if err != nil {
			return user, fmt.Errorf("%s: %w", op, err)
		}
		return user, nil
	}

	values := map[string]interface{}{}
	if upd.FirstName != nil {
		values["first_name"] = *upd.FirstName
	}
	if upd.LastName != nil {
		values["last_name"] = *upd.LastName
	}
	if upd.Email != nil {
		values["email"] = *upd.Email
	}

	res := g.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Updates(values)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserExists)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}

	user, err := g.GetUserByID(ctx, userID)
	if err != nil {
		return user, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
