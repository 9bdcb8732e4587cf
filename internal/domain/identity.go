package domain

import "github.com/google/uuid"

// Identity describes who is calling: either an authenticated user or an
// anonymous visitor. The zero value is anonymous.
type Identity struct {
	userID uuid.UUID
	email  string
	name   string
	authed bool
}

// Anonymous returns the identity of a caller without a session.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns the identity of a signed-in user.
func Authenticated(userID uuid.UUID, email, name string) Identity {
	return Identity{userID: userID, email: email, name: name, authed: true}
}

// IsAuthenticated reports whether the caller is signed in.
func (i Identity) IsAuthenticated() bool {
	return i.authed
}

// UserID returns the signed-in user's ID. ok is false for anonymous callers.
func (i Identity) UserID() (id uuid.UUID, ok bool) {
	return i.userID, i.authed
}

// Email returns the signed-in user's email, empty for anonymous callers.
func (i Identity) Email() string {
	return i.email
}

// Name returns the display name, which may be empty.
func (i Identity) Name() string {
	return i.name
}
