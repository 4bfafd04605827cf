package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alexkim/job-recommender/internal/recommend"
)

// profileForm is the profile POST body on /home.
type profileForm struct {
	Degree string `validate:"required"`
	Skills string `validate:"required"`
}

// handleHomeForm renders the profile form.
func (s *Server) handleHomeForm(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r)
	s.render(w, r, "home", pageData{Title: "Home", Username: claims.Username})
}

// handleHome scores the catalog for the logged-in user and renders the
// recommendation view.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := profileForm{
		Degree: r.PostFormValue("degree"),
		Skills: r.PostFormValue("skills"),
	}
	if err := s.validator.Struct(form); err != nil {
		setFlash(w, r, extractValidationErrors(err))
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	// Per-job skip warnings from this request become flashes on the rendered page
	var warnings []string
	scorer := s.scorer.WithWarnf(func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	})

	recs, err := scorer.Recommend(claims.UserID)
	if err != nil {
		var incompatible *recommend.ErrModelIncompatible
		if errors.As(err, &incompatible) {
			setFlash(w, r, flashModelIncompatible)
			http.Redirect(w, r, "/home", http.StatusSeeOther)
			return
		}
		var outOfRange *recommend.ErrFeatureOutOfRange
		if errors.As(err, &outOfRange) {
			setFlash(w, r, "Your account cannot be scored against the current model.")
			http.Redirect(w, r, "/home", http.StatusSeeOther)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	s.render(w, r, "recommendation", pageData{
		Title:           "Recommended jobs",
		Username:        claims.Username,
		Degree:          form.Degree,
		Skills:          form.Skills,
		Recommendations: recs,
		Flashes:         warnings,
	})
}

// handleRecommendation renders the empty recommendation view. Results are
// request-scoped and never persisted, so a direct GET shows the empty state.
func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	claims := sessionFrom(r)
	s.render(w, r, "recommendation", pageData{Title: "Recommended jobs", Username: claims.Username})
}
