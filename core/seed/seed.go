// Package seed populates the catalog with the default reference tracks,
// attributed to a reserved system account. It runs at every startup and is
// idempotent: existing accounts and tracks are left untouched.
package seed

import (
	"fmt"

	"harmonic/core/auth"
	"harmonic/logger"
	"harmonic/model"
	"harmonic/repository"
)

// Run ensures the seed artist, the default admin account and the reference
// catalog exist.
func Run(users repository.UserRepository, musics repository.MusicRepository) error {
	artist, err := ensureSeedArtist(users)
	if err != nil {
		return err
	}
	if err := ensureAdminUser(users); err != nil {
		return err
	}
	return seedDefaultTracks(musics, artist.ID)
}

// ensureSeedArtist returns the reserved account that owns the default
// catalog, creating it on first run.
func ensureSeedArtist(users repository.UserRepository) (*model.User, error) {
	artist, err := users.GetByEmail(model.SeedEmail)
	if err != nil {
		return nil, err
	}
	if artist != nil {
		return artist, nil
	}

	// The credential is never used interactively; the account only exists to
	// own the reference catalog.
	hash, err := auth.HashPassword("seed1234")
	if err != nil {
		return nil, err
	}

	artist = &model.User{
		FirstName:    "Harmonic",
		LastName:     "Seeds",
		CPF:          "00000000000",
		Email:        model.SeedEmail,
		Nickname:     model.SeedNickname,
		Role:         model.RoleArtist,
		PasswordHash: hash,
	}

	id, err := users.Create(artist)
	if err != nil {
		return nil, fmt.Errorf("failed to create seed artist: %w", err)
	}
	artist.ID = id
	logger.Info("seed artist created", logger.Int64("userId", id))
	return artist, nil
}

// ensureAdminUser creates the default admin account if it does not exist.
func ensureAdminUser(users repository.UserRepository) error {
	admin, err := users.GetByEmail(model.AdminEmail)
	if err != nil {
		return err
	}
	if admin != nil {
		return nil
	}

	hash, err := auth.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin = &model.User{
		FirstName:    "Administrador",
		LastName:     "Harmonic",
		CPF:          "00000000001",
		Email:        model.AdminEmail,
		Nickname:     "admin",
		Role:         model.RoleAdmin,
		PasswordHash: hash,
	}

	id, err := users.Create(admin)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logger.Info("admin user created", logger.Int64("userId", id))
	return nil
}

// seedDefaultTracks inserts every reference track that is not already in the
// catalog, checking existence by (title, artist_name).
func seedDefaultTracks(musics repository.MusicRepository, artistID int64) error {
	created := 0
	for _, t := range defaultTracks {
		existing, err := musics.GetByTitleAndArtistName(t.Title, t.ArtistName)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		_, err = musics.Create(&model.Music{
			Title:      t.Title,
			Genre:      t.Genre,
			CoverURL:   t.CoverURL,
			ArtistName: t.ArtistName,
			ArtistID:   artistID,
		})
		if err != nil {
			return fmt.Errorf("failed to seed track %q: %w", t.Title, err)
		}
		created++
	}

	if created > 0 {
		logger.Info("reference catalog seeded", logger.Int("tracks", created))
	}
	return nil
}
