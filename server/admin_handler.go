package server

import (
	"net/http"
	"strconv"

	"harmonic/cache"
)

// AdminUpdateUserHandler edits a target user's name, nickname and role.
// A role change takes effect at the target's next login; their current
// session keeps the old snapshot until then.
func (h *Handler) AdminUpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		h.redirectWithFlash(w, r, "/home", cache.FlashError, "Invalid user.")
		return
	}

	err = h.identity.AdminUpdateUser(
		targetID,
		r.FormValue("first_name"),
		r.FormValue("last_name"),
		r.FormValue("nickname"),
		r.FormValue("role"),
	)
	if err != nil {
		h.fail(w, r, err, "/home")
		return
	}

	h.redirectWithFlash(w, r, "/home", cache.FlashSuccess, "User updated!")
}

// AdminDeleteUserHandler removes a target user and their favorites.
func (h *Handler) AdminDeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	targetID, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		h.redirectWithFlash(w, r, "/home", cache.FlashError, "Invalid user.")
		return
	}

	if err := h.identity.AdminDeleteUser(sess.UserID, targetID); err != nil {
		h.fail(w, r, err, "/home")
		return
	}

	h.redirectWithFlash(w, r, "/home", cache.FlashSuccess, "User removed successfully!")
}
