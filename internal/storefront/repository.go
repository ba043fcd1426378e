package storefront

import (
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

type Repository interface {
	Save(s *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
	// Sweep deletes sessions last seen before cutoff and returns how many
	// it removed.
	Sweep(cutoff time.Time) int
	Count() int
}
