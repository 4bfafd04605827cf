// Package server provides the HTTP layer: routing, sessions, flash messages
// and page rendering.
package server

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// Flash texts shown to users. Kept in one place so handlers and tests agree.
const (
	flashRegistered        = "Registration successful! Please log in."
	flashUsernameTaken     = "Username already exists. Please choose another one."
	flashLoginOK           = "Login successful!"
	flashLoginFailed       = "Login failed. Please check your username and password."
	flashLoggedOut         = "Logged out successfully!"
	flashModelIncompatible = "Model doesn't support the scoring operation. Please try again later."
)
