package repository

import (
	"errors"
	"fmt"

	"harmonic/core/fault"
	"harmonic/model"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// FavoriteRepository defines the interface for favorite data operations.
type FavoriteRepository interface {
	Create(userID, musicID int64) error
	Delete(userID, musicID int64) (bool, error)
	Exists(userID, musicID int64) (bool, error)
	MusicIDsForUser(userID int64) ([]int64, error)
	CountByMusic(musicID int64) (int64, error)
	Count() (int64, error)
}

// gormFavoriteRepository implements FavoriteRepository on the gorm connection.
type gormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new gormFavoriteRepository.
func NewGormFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &gormFavoriteRepository{db: db}
}

// Create inserts a favorite row. A violation of the (user_id, music_id)
// unique index is reported as fault.ErrConflict; the toggle operation relies
// on that to resolve concurrent double-submission.
func (r *gormFavoriteRepository) Create(userID, musicID int64) error {
	fav := &model.Favorite{UserID: userID, MusicID: musicID}
	if err := r.db.Create(fav).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.Is(err, gorm.ErrDuplicatedKey) || (errors.As(err, &mysqlErr) && mysqlErr.Number == 1062) {
			return fault.Conflictf("already favorited")
		}
		return fmt.Errorf("failed to create favorite (user %d, music %d): %w", userID, musicID, err)
	}
	return nil
}

// Delete removes a favorite row, reporting whether one existed.
func (r *gormFavoriteRepository) Delete(userID, musicID int64) (bool, error) {
	res := r.db.Where("user_id = ? AND music_id = ?", userID, musicID).Delete(&model.Favorite{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete favorite (user %d, music %d): %w", userID, musicID, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Exists reports whether the user has favorited the track.
func (r *gormFavoriteRepository) Exists(userID, musicID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).Where("user_id = ? AND music_id = ?", userID, musicID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check favorite (user %d, music %d): %w", userID, musicID, err)
	}
	return count > 0, nil
}

// MusicIDsForUser returns the ids of all tracks the user has favorited.
func (r *gormFavoriteRepository) MusicIDsForUser(userID int64) ([]int64, error) {
	ids := make([]int64, 0)
	err := r.db.Model(&model.Favorite{}).Where("user_id = ?", userID).Pluck("music_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorite music ids for user %d: %w", userID, err)
	}
	return ids, nil
}

// CountByMusic returns how many users favorited a track.
func (r *gormFavoriteRepository) CountByMusic(musicID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Favorite{}).Where("music_id = ?", musicID).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites for music %d: %w", musicID, err)
	}
	return count, nil
}

// Count returns the total number of favorite rows.
func (r *gormFavoriteRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Favorite{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}
