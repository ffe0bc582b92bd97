package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type BlacklistRepository struct {
	db *gorm.DB
}

func NewBlacklistRepo(db *gorm.DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

// Count returns the total number of blacklist entries
func (r *BlacklistRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Blacklist{}).Count(&count).Error
	return count, err
}

// List retrieves all blacklist entries with their users preloaded
func (r *BlacklistRepository) List() ([]models.Blacklist, error) {
	var entries []models.Blacklist
	err := r.db.Preload("User").Order("blacklisted_at DESC").Find(&entries).Error
	return entries, err
}

// ListByUser retrieves blacklist entries referencing the given user
func (r *BlacklistRepository) ListByUser(userID uint) ([]models.Blacklist, error) {
	var entries []models.Blacklist
	err := r.db.Where("user_id = ?", userID).Find(&entries).Error
	return entries, err
}

// BlacklistUser deactivates the user and records the blacklist entry as one
// unit: either both the flag update and the insert land, or neither does.
func (r *BlacklistRepository) BlacklistUser(userID uint, reason string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"is_active":      false,
				"is_blacklisted": true,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&models.Blacklist{UserID: userID, Reason: reason}).Error
	})
}
