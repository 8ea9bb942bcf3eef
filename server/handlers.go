package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"harmonic/cache"
	"harmonic/config"
	"harmonic/core/catalog"
	"harmonic/core/fault"
	"harmonic/core/favorites"
	"harmonic/core/identity"
	"harmonic/core/session"
	"harmonic/logger"
	"harmonic/model"

	"github.com/google/uuid"
)

// Handler carries the stores and the session gate for all routes.
type Handler struct {
	identity  *identity.Service
	catalog   *catalog.Service
	favorites *favorites.Service
	sessions  *session.Manager
	cfg       *config.Config
}

// NewHandler creates the route handler set.
func NewHandler(
	identitySvc *identity.Service,
	catalogSvc *catalog.Service,
	favoritesSvc *favorites.Service,
	sessions *session.Manager,
	cfg *config.Config,
) *Handler {
	return &Handler{
		identity:  identitySvc,
		catalog:   catalogSvc,
		favorites: favoritesSvc,
		sessions:  sessions,
		cfg:       cfg,
	}
}

type contextKey string

const sessionContextKey contextKey = "session"

// SessionMiddleware resolves the session cookie once per request and stashes
// the result (possibly nil, meaning anonymous) in the context.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := h.sessions.Read(r)
		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromContext returns the request's session, or nil for anonymous.
func sessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionContextKey).(*session.Session)
	return sess
}

// RequireUser guards routes that need any authenticated user.
func (h *Handler) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sessionFromContext(r.Context()) == nil {
			h.redirectWithFlash(w, r, "/login", cache.FlashError, "Please log in to access this page.")
			return
		}
		next.ServeHTTP(w, r)
	}
}

// RequireRole guards routes restricted to the given roles. Anonymous users
// are sent to the login page, authenticated users with the wrong role back
// home. The role checked here is the login-time snapshot from the cookie.
func (h *Handler) RequireRole(next http.HandlerFunc, roles ...model.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFromContext(r.Context())
		if sess == nil {
			h.redirectWithFlash(w, r, "/login", cache.FlashError, "Please log in to access this page.")
			return
		}
		for _, role := range roles {
			if sess.Role == role {
				next.ServeHTTP(w, r)
				return
			}
		}
		h.redirectWithFlash(w, r, "/home", cache.FlashError, "Access restricted.")
	}
}

// flashCookieName identifies a browser for flash delivery independently of
// the auth state, so messages survive login/logout transitions.
const flashCookieName = "harmonic_flash"

func (h *Handler) browserID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(flashCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int((30 * 24 * 3600)),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// flash queues a one-shot message; a flash store failure is logged and
// swallowed, it never fails the request.
func (h *Handler) flash(w http.ResponseWriter, r *http.Request, level cache.FlashLevel, message string) {
	id := h.browserID(w, r)
	if err := cache.PushFlash(r.Context(), id, level, message); err != nil {
		logger.Error("failed to push flash", logger.ErrorField(err))
	}
}

func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []cache.Flash {
	id := h.browserID(w, r)
	flashes, err := cache.PopFlashes(r.Context(), id)
	if err != nil {
		logger.Error("failed to pop flashes", logger.ErrorField(err))
		return nil
	}
	return flashes
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target string, level cache.FlashLevel, message string) {
	h.flash(w, r, level, message)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// fail converts a store error into a redirect plus flash message. fallback is
// where validation/conflict/not-found errors land; auth failures go to the
// login page and authorization failures home. Unclassified errors are logged
// and reported generically, never surfaced raw.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, fault.ErrAuth):
		h.redirectWithFlash(w, r, "/login", cache.FlashError, fault.Message(err))
	case errors.Is(err, fault.ErrForbidden):
		h.redirectWithFlash(w, r, "/home", cache.FlashError, fault.Message(err))
	case errors.Is(err, fault.ErrValidation), errors.Is(err, fault.ErrConflict), errors.Is(err, fault.ErrNotFound):
		h.redirectWithFlash(w, r, fallback, cache.FlashError, fault.Message(err))
	default:
		logger.Error("request failed", logger.String("path", r.URL.Path), logger.ErrorField(err))
		h.redirectWithFlash(w, r, fallback, cache.FlashError, "Something went wrong. Please try again.")
	}
}

// sessionUser mirrors the template context of the rendered UI: nickname and
// role of the current user, with guest defaults.
type sessionUser struct {
	Nickname string     `json:"nickname"`
	Role     model.Role `json:"role"`
	LoggedIn bool       `json:"loggedIn"`
}

// viewPayload is the JSON stand-in for a rendered page: the view name, any
// pending flash messages and the page data. Template rendering itself is the
// front-end's job.
type viewPayload struct {
	View    string        `json:"view"`
	User    sessionUser   `json:"user"`
	Flashes []cache.Flash `json:"flashes"`
	Data    interface{}   `json:"data,omitempty"`
}

// renderView writes a page payload including consumed flash messages.
func (h *Handler) renderView(w http.ResponseWriter, r *http.Request, view string, data interface{}) {
	user := sessionUser{Nickname: "Guest", Role: model.RoleListener}
	if sess := sessionFromContext(r.Context()); sess != nil {
		user = sessionUser{Nickname: sess.Nickname, Role: sess.Role, LoggedIn: true}
	}

	payload := viewPayload{
		View:    view,
		User:    user,
		Flashes: h.popFlashes(w, r),
		Data:    data,
	}
	if payload.Flashes == nil {
		payload.Flashes = []cache.Flash{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode view payload", logger.ErrorField(err))
	}
}
