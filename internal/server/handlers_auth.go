package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alexkim/job-recommender/internal/db"
	"github.com/go-playground/validator/v10"
)

// registerForm is the registration POST body. Any non-empty password is
// accepted; length policy is the user's call, not ours.
type registerForm struct {
	Username string `validate:"required,max=150"`
	Password string `validate:"required"`
}

// loginForm is the login POST body.
type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// handleIndex redirects the root path to the login page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleRegisterForm renders the registration page.
func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "register", pageData{Title: "Register"})
}

// handleRegister handles a registration submission.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := registerForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := s.validator.Struct(form); err != nil {
		setFlash(w, r, extractValidationErrors(err))
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	_, err := s.userService.Register(r.Context(), form.Username, form.Password)
	if err != nil {
		var taken *db.ErrUsernameTaken
		if errors.As(err, &taken) {
			setFlash(w, r, flashUsernameTaken)
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	setFlash(w, r, flashRegistered)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleLoginForm renders the login page.
func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "login", pageData{Title: "Log in"})
}

// handleLogin handles a login submission.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := loginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := s.validator.Struct(form); err != nil {
		s.render(w, r, "login", pageData{Title: "Log in", Flashes: []string{flashLoginFailed}})
		return
	}

	user, err := s.userService.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		var invalid *ErrInvalidCredentials
		if errors.As(err, &invalid) {
			// Failed login re-renders the page, it does not redirect
			s.render(w, r, "login", pageData{Title: "Log in", Flashes: []string{flashLoginFailed}})
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := s.sessions.IssueCookie(w, user.ID, user.Username); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	setFlash(w, r, flashLoginOK)
	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// handleLogout clears the session and redirects to login.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.ClearCookie(w)
	setFlash(w, r, flashLoggedOut)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// extractValidationErrors turns the first validator error into a user-facing message.
func extractValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		ve := validationErrors[0]
		return fmt.Sprintf("Invalid %s: %s.", ve.Field(), ve.Tag())
	}
	return "Invalid request."
}
