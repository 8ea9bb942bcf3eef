package server

import (
	"net/http"
	"strconv"

	"harmonic/cache"
	"harmonic/core/favorites"

	"github.com/gorilla/mux"
)

// FavoriteToggleHandler flips the favorite state of a track for the current
// user and redirects home.
func (h *Handler) FavoriteToggleHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	musicID, err := strconv.ParseInt(mux.Vars(r)["music_id"], 10, 64)
	if err != nil {
		h.redirectWithFlash(w, r, "/home", cache.FlashError, "Invalid track.")
		return
	}

	state, err := h.favorites.Toggle(sess.UserID, musicID)
	if err != nil {
		h.fail(w, r, err, "/home")
		return
	}

	if state == favorites.StateAdded {
		h.redirectWithFlash(w, r, "/home", cache.FlashSuccess, "Track added to favorites.")
	} else {
		h.redirectWithFlash(w, r, "/home", cache.FlashInfo, "Track removed from favorites.")
	}
}
