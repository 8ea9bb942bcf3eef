package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"harmonic/model"
)

const musicColumns = "id, title, genre, cover_url, artist_name, artist_id, created_at, updated_at"

// MusicRepository defines the interface for catalog data operations.
type MusicRepository interface {
	Create(music *model.Music) (int64, error)
	GetByID(id int64) (*model.Music, error)
	GetByTitleAndArtistName(title, artistName string) (*model.Music, error)
	ListRandom(n int) ([]*model.Music, error)
	ListByArtist(artistID int64) ([]*model.Music, error)
	ListFavoritedBy(userID int64) ([]*model.Music, error)
	ListAll() ([]*model.Music, error)
	CountByArtist(artistID int64) (int64, error)
	Count() (int64, error)
}

// mysqlMusicRepository implements MusicRepository for MySQL.
type mysqlMusicRepository struct {
	db *sql.DB
}

// NewMySQLMusicRepository creates a new mysqlMusicRepository.
func NewMySQLMusicRepository(db *sql.DB) MusicRepository {
	return &mysqlMusicRepository{db: db}
}

// Create adds a new track to the catalog.
func (r *mysqlMusicRepository) Create(music *model.Music) (int64, error) {
	query := "INSERT INTO musics (title, genre, cover_url, artist_name, artist_id) VALUES (?, ?, ?, ?, ?)"
	stmt, err := r.db.Prepare(query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare create music statement: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(music.Title, nullable(music.Genre), nullable(music.CoverURL), nullable(music.ArtistName), music.ArtistID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute create music statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for music: %w", err)
	}
	return id, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func (r *mysqlMusicRepository) scanMusic(scan func(dest ...interface{}) error, context string) (*model.Music, error) {
	music := &model.Music{}
	var genre, coverURL, artistName sql.NullString
	err := scan(&music.ID, &music.Title, &genre, &coverURL, &artistName, &music.ArtistID, &music.CreatedAt, &music.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan music row for %s: %w", context, err)
	}
	music.Genre = genre.String
	music.CoverURL = coverURL.String
	music.ArtistName = artistName.String
	return music, nil
}

// GetByID retrieves a track by its ID.
func (r *mysqlMusicRepository) GetByID(id int64) (*model.Music, error) {
	row := r.db.QueryRow("SELECT "+musicColumns+" FROM musics WHERE id = ?", id)
	music, err := r.scanMusic(row.Scan, fmt.Sprintf("ID %d", id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil // Track not found
		}
		return nil, err
	}
	return music, nil
}

// GetByTitleAndArtistName retrieves a track by its title and display artist
// name. The seed loader uses this for its idempotency check.
func (r *mysqlMusicRepository) GetByTitleAndArtistName(title, artistName string) (*model.Music, error) {
	row := r.db.QueryRow("SELECT "+musicColumns+" FROM musics WHERE title = ? AND artist_name = ?", title, artistName)
	music, err := r.scanMusic(row.Scan, fmt.Sprintf("title %q", title))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return music, nil
}

// scanMusic wraps scan errors with %w, so sql.ErrNoRows stays matchable here.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// ListRandom returns up to n tracks in fresh random order per call. The
// ordering happens in the database so the full catalog is never materialized
// beyond the requested limit.
func (r *mysqlMusicRepository) ListRandom(n int) ([]*model.Music, error) {
	rows, err := r.db.Query("SELECT "+musicColumns+" FROM musics ORDER BY RAND() LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query random musics: %w", err)
	}
	return r.collect(rows, "ListRandom")
}

// ListByArtist retrieves all tracks owned by a user.
func (r *mysqlMusicRepository) ListByArtist(artistID int64) ([]*model.Music, error) {
	rows, err := r.db.Query("SELECT "+musicColumns+" FROM musics WHERE artist_id = ? ORDER BY created_at DESC", artistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query musics for artist %d: %w", artistID, err)
	}
	return r.collect(rows, "ListByArtist")
}

// ListFavoritedBy retrieves the tracks a user has favorited, as a query-time
// join against the favorites table.
func (r *mysqlMusicRepository) ListFavoritedBy(userID int64) ([]*model.Music, error) {
	query := `SELECT m.id, m.title, m.genre, m.cover_url, m.artist_name, m.artist_id, m.created_at, m.updated_at
	           FROM musics m
	           JOIN favorites f ON f.music_id = m.id
	           WHERE f.user_id = ?
	           ORDER BY f.created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorited musics for user %d: %w", userID, err)
	}
	return r.collect(rows, "ListFavoritedBy")
}

// ListAll retrieves every track in the catalog.
func (r *mysqlMusicRepository) ListAll() ([]*model.Music, error) {
	rows, err := r.db.Query("SELECT " + musicColumns + " FROM musics ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query all musics: %w", err)
	}
	return r.collect(rows, "ListAll")
}

func (r *mysqlMusicRepository) collect(rows *sql.Rows, context string) ([]*model.Music, error) {
	defer rows.Close()

	musics := make([]*model.Music, 0)
	for rows.Next() {
		music, err := r.scanMusic(rows.Scan, context)
		if err != nil {
			return nil, err
		}
		musics = append(musics, music)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration in %s: %w", context, err)
	}
	return musics, nil
}

// CountByArtist returns the number of tracks owned by a user.
func (r *mysqlMusicRepository) CountByArtist(artistID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM musics WHERE artist_id = ?", artistID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count musics for artist %d: %w", artistID, err)
	}
	return count, nil
}

// Count returns the total number of tracks.
func (r *mysqlMusicRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM musics").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count musics: %w", err)
	}
	return count, nil
}
