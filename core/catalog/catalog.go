// Package catalog owns the shared track catalog. Authorization (artist/admin
// only) is the gate's responsibility; the store assumes the caller already
// verified the role.
package catalog

import (
	"strings"

	"harmonic/core/fault"
	"harmonic/logger"
	"harmonic/model"
	"harmonic/repository"
)

// UserLookup is the slice of the identity store the catalog needs to resolve
// the default display artist name.
type UserLookup interface {
	GetByID(id int64) (*model.User, error)
}

// Service implements the catalog store operations.
type Service struct {
	musics repository.MusicRepository
	users  UserLookup
}

// NewService creates a catalog service.
func NewService(musics repository.MusicRepository, users UserLookup) *Service {
	return &Service{musics: musics, users: users}
}

// CreateInput carries the track creation form fields.
type CreateInput struct {
	OwnerID    int64
	Title      string
	ArtistName string
	Genre      string
	CoverURL   string
}

// Create adds a track to the catalog. When no display artist name is given it
// falls back to the owner's nickname at creation time; the snapshot is not
// re-derived later.
func (s *Service) Create(in CreateInput) (*model.Music, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fault.Validationf("track title is required")
	}

	artistName := strings.TrimSpace(in.ArtistName)
	if artistName == "" {
		owner, err := s.users.GetByID(in.OwnerID)
		if err != nil {
			return nil, err
		}
		if owner == nil {
			return nil, fault.NotFoundf("owner not found")
		}
		artistName = owner.Nickname
	}

	music := &model.Music{
		Title:      title,
		Genre:      strings.TrimSpace(in.Genre),
		CoverURL:   strings.TrimSpace(in.CoverURL),
		ArtistName: artistName,
		ArtistID:   in.OwnerID,
	}

	id, err := s.musics.Create(music)
	if err != nil {
		return nil, err
	}
	music.ID = id

	logger.Info("track created",
		logger.Int64("musicId", id),
		logger.Int64("ownerId", in.OwnerID),
		logger.String("title", title))
	return music, nil
}

// Discover returns up to n tracks in fresh random order per call.
func (s *Service) Discover(n int) ([]*model.Music, error) {
	return s.musics.ListRandom(n)
}

// Get returns a track by id.
func (s *Service) Get(id int64) (*model.Music, error) {
	music, err := s.musics.GetByID(id)
	if err != nil {
		return nil, err
	}
	if music == nil {
		return nil, fault.NotFoundf("track not found")
	}
	return music, nil
}

// ListByOwner returns the tracks owned by a user.
func (s *Service) ListByOwner(ownerID int64) ([]*model.Music, error) {
	return s.musics.ListByArtist(ownerID)
}

// ListFavoritedBy returns the tracks a user has favorited.
func (s *Service) ListFavoritedBy(userID int64) ([]*model.Music, error) {
	return s.musics.ListFavoritedBy(userID)
}

// ListAll returns the whole catalog.
func (s *Service) ListAll() ([]*model.Music, error) {
	return s.musics.ListAll()
}

// Count returns the catalog size.
func (s *Service) Count() (int64, error) {
	return s.musics.Count()
}
