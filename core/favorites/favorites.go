// Package favorites owns the user↔track favorite relation.
package favorites

import (
	"errors"

	"harmonic/core/fault"
	"harmonic/logger"
	"harmonic/model"
	"harmonic/repository"
)

// State is the outcome of a toggle.
type State string

const (
	StateAdded   State = "added"
	StateRemoved State = "removed"
)

// MusicLookup is the slice of the catalog the favorites index needs to reject
// toggles on nonexistent tracks.
type MusicLookup interface {
	GetByID(id int64) (*model.Music, error)
}

// Service implements the favorites index operations.
type Service struct {
	favorites repository.FavoriteRepository
	musics    MusicLookup
}

// NewService creates a favorites service.
func NewService(favorites repository.FavoriteRepository, musics MusicLookup) *Service {
	return &Service{favorites: favorites, musics: musics}
}

// Toggle flips the favorite state for (userID, musicID). The existence check
// and the write are separate statements; the unique index on the pair is the
// backstop, and a duplicate-key insert means a concurrent request already
// added it, which resolves to StateAdded rather than an error.
func (s *Service) Toggle(userID, musicID int64) (State, error) {
	music, err := s.musics.GetByID(musicID)
	if err != nil {
		return "", err
	}
	if music == nil {
		return "", fault.NotFoundf("track not found")
	}

	exists, err := s.favorites.Exists(userID, musicID)
	if err != nil {
		return "", err
	}

	if exists {
		if _, err := s.favorites.Delete(userID, musicID); err != nil {
			return "", err
		}
		logger.Debug("favorite removed", logger.Int64("userId", userID), logger.Int64("musicId", musicID))
		return StateRemoved, nil
	}

	if err := s.favorites.Create(userID, musicID); err != nil {
		if errors.Is(err, fault.ErrConflict) {
			// Lost the race against another request adding the same pair.
			return StateAdded, nil
		}
		return "", err
	}
	logger.Debug("favorite added", logger.Int64("userId", userID), logger.Int64("musicId", musicID))
	return StateAdded, nil
}

// MusicIDs returns the set of track ids the user has favorited.
func (s *Service) MusicIDs(userID int64) (map[int64]bool, error) {
	ids, err := s.favorites.MusicIDsForUser(userID)
	if err != nil {
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// CountForMusic returns how many users favorited a track.
func (s *Service) CountForMusic(musicID int64) (int64, error) {
	return s.favorites.CountByMusic(musicID)
}

// Count returns the total number of favorites, for admin statistics.
func (s *Service) Count() (int64, error) {
	return s.favorites.Count()
}
