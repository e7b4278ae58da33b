package notification

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// StaticDirectory is an in-memory user-to-email mapping. Addresses arrive
// from JWT claims as users interact with the API; there is no user table to
// look them up in.
type StaticDirectory struct {
	mu     sync.RWMutex
	emails map[uuid.UUID]string
}

// NewStaticDirectory creates an empty directory
func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{
		emails: make(map[uuid.UUID]string),
	}
}

// Record remembers the email address for a user. Empty addresses are ignored.
func (d *StaticDirectory) Record(userID uuid.UUID, email string) {
	if email == "" {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.emails[userID] = email
}

// EmailForUser returns the recorded address for a user
func (d *StaticDirectory) EmailForUser(_ context.Context, userID uuid.UUID) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	email, ok := d.emails[userID]
	if !ok {
		return "", fmt.Errorf("no email recorded for user %s", userID)
	}
	return email, nil
}
