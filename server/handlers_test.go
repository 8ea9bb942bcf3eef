package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"harmonic/config"
	"harmonic/core/catalog"
	"harmonic/core/fault"
	"harmonic/core/favorites"
	"harmonic/core/identity"
	"harmonic/core/session"
	"harmonic/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*model.User)}
}

func (f *fakeUserRepo) Create(user *model.User) (int64, error) {
	u := *user
	u.ID = f.nextID
	f.users[u.ID] = &u
	f.nextID++
	return u.ID, nil
}

func (f *fakeUserRepo) GetByID(id int64) (*model.User, error) {
	if u, ok := f.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) findBy(match func(*model.User) bool) (*model.User, error) {
	for _, u := range f.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	return f.findBy(func(u *model.User) bool { return u.Email == email })
}

func (f *fakeUserRepo) GetByNickname(nickname string) (*model.User, error) {
	return f.findBy(func(u *model.User) bool { return u.Nickname == nickname })
}

func (f *fakeUserRepo) GetByCPF(cpf string) (*model.User, error) {
	return f.findBy(func(u *model.User) bool { return u.CPF == cpf })
}

func (f *fakeUserRepo) UpdateProfile(id int64, firstName, lastName, email, nickname string) error {
	u := f.users[id]
	u.FirstName, u.LastName, u.Email, u.Nickname = firstName, lastName, email, nickname
	return nil
}

func (f *fakeUserRepo) UpdatePassword(id int64, passwordHash string) error {
	f.users[id].PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) AdminUpdate(id int64, firstName, lastName, nickname string, role model.Role) error {
	u := f.users[id]
	u.FirstName, u.LastName, u.Nickname, u.Role = firstName, lastName, nickname, role
	return nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List() ([]*model.User, error) {
	users := make([]*model.User, 0, len(f.users))
	for _, u := range f.users {
		c := *u
		users = append(users, &c)
	}
	return users, nil
}

func (f *fakeUserRepo) Count() (int64, error) { return int64(len(f.users)), nil }

type fakeMusicRepo struct {
	nextID int64
	musics map[int64]*model.Music
}

func newFakeMusicRepo() *fakeMusicRepo {
	return &fakeMusicRepo{nextID: 1, musics: make(map[int64]*model.Music)}
}

func (f *fakeMusicRepo) Create(music *model.Music) (int64, error) {
	m := *music
	m.ID = f.nextID
	f.musics[m.ID] = &m
	f.nextID++
	return m.ID, nil
}

func (f *fakeMusicRepo) GetByID(id int64) (*model.Music, error) {
	if m, ok := f.musics[id]; ok {
		c := *m
		return &c, nil
	}
	return nil, nil
}

func (f *fakeMusicRepo) GetByTitleAndArtistName(title, artistName string) (*model.Music, error) {
	for _, m := range f.musics {
		if m.Title == title && m.ArtistName == artistName {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeMusicRepo) list(match func(*model.Music) bool) []*model.Music {
	musics := make([]*model.Music, 0)
	for _, m := range f.musics {
		if match(m) {
			c := *m
			musics = append(musics, &c)
		}
	}
	return musics
}

func (f *fakeMusicRepo) ListRandom(n int) ([]*model.Music, error) {
	all := f.list(func(*model.Music) bool { return true })
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

func (f *fakeMusicRepo) ListByArtist(artistID int64) ([]*model.Music, error) {
	return f.list(func(m *model.Music) bool { return m.ArtistID == artistID }), nil
}

func (f *fakeMusicRepo) ListFavoritedBy(userID int64) ([]*model.Music, error) {
	return []*model.Music{}, nil
}

func (f *fakeMusicRepo) ListAll() ([]*model.Music, error) {
	return f.list(func(*model.Music) bool { return true }), nil
}

func (f *fakeMusicRepo) CountByArtist(artistID int64) (int64, error) {
	return int64(len(f.list(func(m *model.Music) bool { return m.ArtistID == artistID }))), nil
}

func (f *fakeMusicRepo) Count() (int64, error) { return int64(len(f.musics)), nil }

type favPair struct{ userID, musicID int64 }

type fakeFavoriteRepo struct {
	rows map[favPair]bool
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{rows: make(map[favPair]bool)}
}

func (f *fakeFavoriteRepo) Create(userID, musicID int64) error {
	p := favPair{userID, musicID}
	if f.rows[p] {
		return fault.Conflictf("already favorited")
	}
	f.rows[p] = true
	return nil
}

func (f *fakeFavoriteRepo) Delete(userID, musicID int64) (bool, error) {
	p := favPair{userID, musicID}
	existed := f.rows[p]
	delete(f.rows, p)
	return existed, nil
}

func (f *fakeFavoriteRepo) Exists(userID, musicID int64) (bool, error) {
	return f.rows[favPair{userID, musicID}], nil
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

func (f *fakeFavoriteRepo) Count() (int64, error) { return int64(len(f.rows)), nil }

// testHarness holds a fully wired router over in-memory stores.
type testHarness struct {
	router    http.Handler
	sessions  *session.Manager
	users     *fakeUserRepo
	musics    *fakeMusicRepo
	favorites *fakeFavoriteRepo
	identity  *identity.Service
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	users := newFakeUserRepo()
	musics := newFakeMusicRepo()
	favs := newFakeFavoriteRepo()

	identitySvc := identity.NewService(users, musics)
	catalogSvc := catalog.NewService(musics, users)
	favoritesSvc := favorites.NewService(favs, musics)
	sessions := session.NewManager("test-secret", time.Hour)

	h := NewHandler(identitySvc, catalogSvc, favoritesSvc, sessions, &config.Config{})

	return &testHarness{
		router:    newRouter(h),
		sessions:  sessions,
		users:     users,
		musics:    musics,
		favorites: favs,
		identity:  identitySvc,
	}
}

// addUser inserts a user directly and returns its session cookie.
func (h *testHarness) addUser(t *testing.T, nickname string, role model.Role) (*model.User, *http.Cookie) {
	t.Helper()

	id, err := h.users.Create(&model.User{
		FirstName: "Test", LastName: "User",
		CPF:      nickname + "-cpf",
		Email:    nickname + "@example.com",
		Nickname: nickname,
		Role:     role, PasswordHash: "unused",
	})
	require.NoError(t, err)

	user, err := h.users.GetByID(id)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	_, err = h.sessions.Issue(rec, user)
	require.NoError(t, err)
	return user, rec.Result().Cookies()[0]
}

func (h *testHarness) do(method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, target string) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, target, rec.Header().Get("Location"))
}

func TestRootRedirectsHome(t *testing.T) {
	h := newTestHarness(t)

	rec := h.do(http.MethodGet, "/", nil, nil)
	assertRedirect(t, rec, "/home")
}

func TestHome_Anonymous(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.musics.Create(&model.Music{Title: "Carinhoso", ArtistName: "Pixinguinha", ArtistID: 1})
	require.NoError(t, err)

	rec := h.do(http.MethodGet, "/home", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		View string `json:"view"`
		User struct {
			Nickname string `json:"nickname"`
			LoggedIn bool   `json:"loggedIn"`
		} `json:"user"`
		Data struct {
			DiscoverTracks []json.RawMessage `json:"discoverTracks"`
			Admin          json.RawMessage   `json:"admin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "home", payload.View)
	assert.Equal(t, "Guest", payload.User.Nickname)
	assert.False(t, payload.User.LoggedIn)
	assert.Len(t, payload.Data.DiscoverTracks, 1)
	assert.Nil(t, payload.Data.Admin, "anonymous visitors must not see the admin panel")
}

func TestHome_AdminSeesPanel(t *testing.T) {
	h := newTestHarness(t)
	_, cookie := h.addUser(t, "root", model.RoleAdmin)

	rec := h.do(http.MethodGet, "/home", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Data struct {
			Admin *struct {
				Stats struct {
					TotalUsers int64 `json:"totalUsers"`
				} `json:"stats"`
			} `json:"admin"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.NotNil(t, payload.Data.Admin)
	assert.Equal(t, int64(1), payload.Data.Admin.Stats.TotalUsers)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.identity.Register(identity.RegisterInput{
		FirstName: "Ana", LastName: "Souza", CPF: "123",
		Email: "ana@example.com", Nickname: "ana",
		Password: "secret123", ConfirmPassword: "secret123",
		RequestedRole: "listener",
	})
	require.NoError(t, err)

	rec := h.do(http.MethodPost, "/login", url.Values{
		"username": {"ana"},
		"password": {"secret123"},
	}, nil)
	assertRedirect(t, rec, "/home")

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "login must set the session cookie")

	sess, err := h.sessions.Verify(sessionCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "ana", sess.Nickname)
}

func TestLogin_BadCredentialsRedirectToLogin(t *testing.T) {
	h := newTestHarness(t)

	rec := h.do(http.MethodPost, "/login", url.Values{
		"username": {"nobody"},
		"password": {"wrong"},
	}, nil)
	assertRedirect(t, rec, "/login")
	for _, c := range rec.Result().Cookies() {
		assert.NotEqual(t, session.CookieName, c.Name, "failed login must not open a session")
	}
}

func TestRegister_RedirectsToLogin(t *testing.T) {
	h := newTestHarness(t)

	rec := h.do(http.MethodPost, "/register", url.Values{
		"firstName":       {"Ana"},
		"lastName":        {"Souza"},
		"cpf":             {"123"},
		"email":           {"ana@example.com"},
		"nickname":        {"ana"},
		"password":        {"secret123"},
		"confirmPassword": {"secret123"},
		"userType":        {"artist"},
	}, nil)
	assertRedirect(t, rec, "/login")

	user, err := h.users.GetByNickname("ana")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleArtist, user.Role)
}

func TestTrackForm_Guards(t *testing.T) {
	h := newTestHarness(t)
	_, listenerCookie := h.addUser(t, "listener1", model.RoleListener)
	_, artistCookie := h.addUser(t, "artist1", model.RoleArtist)

	t.Run("anonymous goes to login", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/crud_msc", nil, nil)
		assertRedirect(t, rec, "/login")
	})

	t.Run("listener goes home", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/crud_msc", nil, listenerCookie)
		assertRedirect(t, rec, "/home")
	})

	t.Run("artist gets the form", func(t *testing.T) {
		rec := h.do(http.MethodGet, "/crud_msc", nil, artistCookie)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTrackCreate(t *testing.T) {
	h := newTestHarness(t)
	artist, cookie := h.addUser(t, "artist1", model.RoleArtist)

	rec := h.do(http.MethodPost, "/crud_msc", url.Values{
		"title": {"Aquarela"},
		"genre": {"MPB"},
	}, cookie)
	assertRedirect(t, rec, "/home")

	music, err := h.musics.GetByTitleAndArtistName("Aquarela", "artist1")
	require.NoError(t, err)
	require.NotNil(t, music, "artist name should default to the owner nickname")
	assert.Equal(t, artist.ID, music.ArtistID)
}

func TestTrackCreate_BlankTitleRedirectsBack(t *testing.T) {
	h := newTestHarness(t)
	_, cookie := h.addUser(t, "artist1", model.RoleArtist)

	rec := h.do(http.MethodPost, "/crud_msc", url.Values{"title": {"  "}}, cookie)
	assertRedirect(t, rec, "/crud_msc")

	count, err := h.musics.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFavoriteToggle(t *testing.T) {
	h := newTestHarness(t)
	user, cookie := h.addUser(t, "fan", model.RoleListener)

	musicID, err := h.musics.Create(&model.Music{Title: "Travessia", ArtistName: "Milton Nascimento", ArtistID: 99})
	require.NoError(t, err)

	t.Run("anonymous goes to login", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/favorite/1", nil, nil)
		assertRedirect(t, rec, "/login")
	})

	t.Run("first toggle adds", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/favorite/1", nil, cookie)
		assertRedirect(t, rec, "/home")

		exists, err := h.favorites.Exists(user.ID, musicID)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("second toggle removes", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/favorite/1", nil, cookie)
		assertRedirect(t, rec, "/home")

		exists, err := h.favorites.Exists(user.ID, musicID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("unknown track redirects home", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/favorite/9999", nil, cookie)
		assertRedirect(t, rec, "/home")
	})
}

func TestAdminRoutes_RequireAdmin(t *testing.T) {
	h := newTestHarness(t)
	_, artistCookie := h.addUser(t, "artist1", model.RoleArtist)

	rec := h.do(http.MethodPost, "/admin/delete_user", url.Values{"id": {"1"}}, artistCookie)
	assertRedirect(t, rec, "/home")

	count, err := h.users.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "non-admin must not delete anyone")
}

func TestAdminDeleteUser(t *testing.T) {
	h := newTestHarness(t)
	admin, adminCookie := h.addUser(t, "root", model.RoleAdmin)
	target, _ := h.addUser(t, "victim", model.RoleListener)

	seedID, err := h.users.Create(&model.User{
		FirstName: "Harmonic", LastName: "Seeds", CPF: "0",
		Email: model.SeedEmail, Nickname: model.SeedNickname,
		Role: model.RoleArtist, PasswordHash: "h",
	})
	require.NoError(t, err)

	t.Run("seed account survives", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/admin/delete_user", url.Values{"id": {"3"}}, adminCookie)
		assertRedirect(t, rec, "/home")

		seed, err := h.users.GetByID(seedID)
		require.NoError(t, err)
		assert.NotNil(t, seed)
	})

	t.Run("self delete blocked", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/admin/delete_user", url.Values{"id": {"1"}}, adminCookie)
		assertRedirect(t, rec, "/home")

		self, err := h.users.GetByID(admin.ID)
		require.NoError(t, err)
		assert.NotNil(t, self)
	})

	t.Run("regular user deleted", func(t *testing.T) {
		rec := h.do(http.MethodPost, "/admin/delete_user", url.Values{"id": {"2"}}, adminCookie)
		assertRedirect(t, rec, "/home")

		gone, err := h.users.GetByID(target.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}

func TestAdminUpdateUser_PromotesRole(t *testing.T) {
	h := newTestHarness(t)
	_, adminCookie := h.addUser(t, "root", model.RoleAdmin)
	target, _ := h.addUser(t, "listener1", model.RoleListener)

	rec := h.do(http.MethodPost, "/admin/update_user", url.Values{
		"id":         {"2"},
		"first_name": {"Test"},
		"last_name":  {"User"},
		"nickname":   {"listener1"},
		"role":       {"artist"},
	}, adminCookie)
	assertRedirect(t, rec, "/home")

	updated, err := h.users.GetByID(target.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleArtist, updated.Role)
}

func TestLogout_ClearsSession(t *testing.T) {
	h := newTestHarness(t)
	_, cookie := h.addUser(t, "ana", model.RoleListener)

	rec := h.do(http.MethodGet, "/logout", nil, cookie)
	assertRedirect(t, rec, "/login")

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestProfile_RequiresUser(t *testing.T) {
	h := newTestHarness(t)

	rec := h.do(http.MethodGet, "/profile", nil, nil)
	assertRedirect(t, rec, "/login")
}

func TestProfileUpdate_ReissuesSessionWithNewNickname(t *testing.T) {
	h := newTestHarness(t)
	_, cookie := h.addUser(t, "ana", model.RoleArtist)

	rec := h.do(http.MethodPost, "/profile", url.Values{
		"first_name": {"Ana"},
		"last_name":  {"Souza"},
		"email":      {"ana@example.com"},
		"nickname":   {"ana_nova"},
	}, cookie)
	assertRedirect(t, rec, "/profile")

	var reissued *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			reissued = c
		}
	}
	require.NotNil(t, reissued)

	sess, err := h.sessions.Verify(reissued.Value)
	require.NoError(t, err)
	assert.Equal(t, "ana_nova", sess.Nickname)
	assert.Equal(t, model.RoleArtist, sess.Role, "role snapshot must survive the profile update")
}
