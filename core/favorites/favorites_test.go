package favorites

import (
	"testing"

	"harmonic/core/fault"
	"harmonic/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	userID, musicID int64
}

// fakeFavoriteRepo is an in-memory stand-in for the gorm repository.
type fakeFavoriteRepo struct {
	rows map[pair]bool
	// forceConflict makes the next Create fail as a duplicate key, simulating
	// a concurrent insert between the existence check and the write.
	forceConflict bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{rows: make(map[pair]bool)}
}

func (f *fakeFavoriteRepo) Create(userID, musicID int64) error {
	p := pair{userID, musicID}
	if f.forceConflict || f.rows[p] {
		return fault.Conflictf("already favorited")
	}
	f.rows[p] = true
	return nil
}

func (f *fakeFavoriteRepo) Delete(userID, musicID int64) (bool, error) {
	p := pair{userID, musicID}
	existed := f.rows[p]
	delete(f.rows, p)
	return existed, nil
}

func (f *fakeFavoriteRepo) Exists(userID, musicID int64) (bool, error) {
	return f.rows[pair{userID, musicID}], nil
}

func (f *fakeFavoriteRepo) MusicIDsForUser(userID int64) ([]int64, error) {
	ids := make([]int64, 0)
	for p := range f.rows {
		if p.userID == userID {
			ids = append(ids, p.musicID)
		}
	}
	return ids, nil
}

func (f *fakeFavoriteRepo) CountByMusic(musicID int64) (int64, error) {
	var count int64
	for p := range f.rows {
		if p.musicID == musicID {
			count++
		}
	}
	return count, nil
}

func (f *fakeFavoriteRepo) Count() (int64, error) {
	return int64(len(f.rows)), nil
}

type fakeMusicLookup struct {
	musics map[int64]*model.Music
}

func (f *fakeMusicLookup) GetByID(id int64) (*model.Music, error) {
	if m, ok := f.musics[id]; ok {
		return m, nil
	}
	return nil, nil
}

func newTestService() (*Service, *fakeFavoriteRepo) {
	repo := newFakeFavoriteRepo()
	musics := &fakeMusicLookup{musics: map[int64]*model.Music{
		10: {ID: 10, Title: "Carinhoso"},
	}}
	return NewService(repo, musics), repo
}

func TestToggle(t *testing.T) {
	svc, _ := newTestService()

	state, err := svc.Toggle(1, 10)
	require.NoError(t, err)
	assert.Equal(t, StateAdded, state)

	state, err = svc.Toggle(1, 10)
	require.NoError(t, err)
	assert.Equal(t, StateRemoved, state)

	set, err := svc.MusicIDs(1)
	require.NoError(t, err)
	assert.Empty(t, set, "a full toggle pair should leave no favorite behind")
}

func TestToggle_UnknownTrack(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Toggle(1, 9999)
	assert.ErrorIs(t, err, fault.ErrNotFound)
}

func TestToggle_ConcurrentInsertResolvesToAdded(t *testing.T) {
	svc, repo := newTestService()

	repo.forceConflict = true

	state, err := svc.Toggle(1, 10)
	require.NoError(t, err)
	assert.Equal(t, StateAdded, state)
}

func TestToggle_IsPerUser(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Toggle(1, 10)
	require.NoError(t, err)

	state, err := svc.Toggle(2, 10)
	require.NoError(t, err)
	assert.Equal(t, StateAdded, state, "another user's toggle must not be affected")

	count, err := svc.CountForMusic(10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMusicIDs(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, repo.Create(1, 10))

	set, err := svc.MusicIDs(1)
	require.NoError(t, err)
	assert.True(t, set[10])
	assert.False(t, set[11])
}
