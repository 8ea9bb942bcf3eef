package server

import (
	"net/http"

	"harmonic/cache"
	"harmonic/core/identity"
)

// ProfilePageHandler renders the caller's own profile.
func (h *Handler) ProfilePageHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	user, err := h.identity.GetUser(sess.UserID)
	if err != nil {
		h.fail(w, r, err, "/home")
		return
	}
	h.renderView(w, r, "profile", user)
}

// ProfileUpdateHandler applies the posted profile edits. A new session is
// issued so the displayed nickname follows the rename; the role snapshot is
// carried over unchanged.
func (h *Handler) ProfileUpdateHandler(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	in := identity.ProfileInput{
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		Email:       r.FormValue("email"),
		Nickname:    r.FormValue("nickname"),
		NewPassword: r.FormValue("password"),
	}

	user, err := h.identity.UpdateProfile(sess.UserID, in)
	if err != nil {
		h.fail(w, r, err, "/profile")
		return
	}

	user.Role = sess.Role
	if _, err := h.sessions.Issue(w, user); err != nil {
		h.fail(w, r, err, "/profile")
		return
	}

	h.redirectWithFlash(w, r, "/profile", cache.FlashSuccess, "Profile updated successfully!")
}
