package i

import (
	dmn "github.com/gridforge/labyrinth-api/domain"
)

// Authenticator manages account registration and sign-in.
type Authenticator interface {
	// Register creates a new account from a username and plain password.
	Register(username, password string) error

	// SignIn verifies credentials and returns the user with a signed token.
	SignIn(username, password string) (*dmn.User, string, error)
}
