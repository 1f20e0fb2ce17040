package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *models.User) error {
	err := r.DB.Create(user).Error
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return utils.NewConflictError("an account with this email already exists")
		}
		return utils.NewInternalError("failed to create user: %v", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(email string) (models.User, error) {
	var user models.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, utils.NewUnauthorizedError("invalid email or password")
	}
	if err != nil {
		return user, utils.NewInternalError("failed to get user: %v", err)
	}
	return user, nil
}

func (r *UserRepository) GetByID(userID string) (models.User, error) {
	var user models.User
	err := r.DB.Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, utils.NewNotFoundError("user with ID %s not found", userID)
	}
	if err != nil {
		return user, utils.NewInternalError("failed to get user: %v", err)
	}
	return user, nil
}

// IsBanned reports whether the user has a ban row with no unbanned_at.
func (r *UserRepository) IsBanned(userID string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Ban{}).
		Where("user_id = ? AND unbanned_at IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return false, utils.NewInternalError("failed to check ban status: %v", err)
	}
	return count > 0, nil
}

// ensureUser upserts a minimal user row so foreign keys from votes and
// reviews always resolve, even for accounts created before this table.
func ensureUser(tx *gorm.DB, userID, email string) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return utils.NewInternalError("failed to check user: %v", err)
	}
	if count > 0 {
		return nil
	}
	user := models.User{UserID: userID, Email: email, AccountType: models.AccountUser}
	if err := tx.Create(&user).Error; err != nil {
		return utils.NewInternalError("failed to create user: %v", err)
	}
	return nil
}
