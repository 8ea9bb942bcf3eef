package server

import (
	"net/http"

	"harmonic/cache"
	"harmonic/core/identity"
	"harmonic/logger"
)

// LoginPageHandler renders the login form.
func (h *Handler) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, "login", nil)
}

// LoginHandler authenticates the posted credentials and opens a session. The
// identifier field accepts either email or nickname.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	identifier := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.identity.Authenticate(identifier, password)
	if err != nil {
		h.fail(w, r, err, "/login")
		return
	}

	if _, err := h.sessions.Issue(w, user); err != nil {
		h.fail(w, r, err, "/login")
		return
	}

	logger.Info("login", logger.Int64("userId", user.ID), logger.String("nickname", user.Nickname))
	h.redirectWithFlash(w, r, "/home", cache.FlashSuccess, "Logged in successfully!")
}

// LogoutHandler clears the session.
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	h.redirectWithFlash(w, r, "/login", cache.FlashInfo, "You have been logged out.")
}

// RegisterPageHandler renders the registration form.
func (h *Handler) RegisterPageHandler(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, "register", nil)
}

// RegisterHandler creates a new account from the posted form.
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	in := identity.RegisterInput{
		FirstName:       r.FormValue("firstName"),
		LastName:        r.FormValue("lastName"),
		CPF:             r.FormValue("cpf"),
		Email:           r.FormValue("email"),
		Nickname:        r.FormValue("nickname"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
		RequestedRole:   r.FormValue("userType"),
	}

	if _, err := h.identity.Register(in); err != nil {
		h.fail(w, r, err, "/register")
		return
	}

	h.redirectWithFlash(w, r, "/login", cache.FlashSuccess, "Account created! Please log in.")
}

// RecoverPageHandler renders the password recovery form.
func (h *Handler) RecoverPageHandler(w http.ResponseWriter, r *http.Request) {
	h.renderView(w, r, "recover", nil)
}

// RecoverHandler resets the password for the posted email.
func (h *Handler) RecoverHandler(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	if err := h.identity.ResetPassword(email, password, confirm); err != nil {
		h.fail(w, r, err, "/recover")
		return
	}

	h.redirectWithFlash(w, r, "/login", cache.FlashSuccess, "Password updated! Please log in.")
}
