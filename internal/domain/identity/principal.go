package identity

import (
	"errors"
	"strings"
)

var ErrEmptySubject = errors.New("principal subject is empty")

// Principal is a user identity vouched for by the identity collaborator.
type Principal struct {
	userID string
}

// NewPrincipal trims the subject the same way submissions trim their userId.
func NewPrincipal(userID string) (Principal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Principal{}, ErrEmptySubject
	}
	return Principal{userID: userID}, nil
}

func (p Principal) UserID() string { return p.userID }
func (p Principal) IsZero() bool   { return p.userID == "" }
