package security

import (
	"sync"
	"time"
)

// Denylist keeps the IDs of revoked tokens until their natural expiry.
// It is safe for concurrent use.
type Denylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewDenylist() *Denylist {
	return &Denylist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke marks jti as revoked until expiresAt. Entries that are already
// expired are not stored: the token is unusable anyway.
func (d *Denylist) Revoke(jti string, expiresAt time.Time) {
	if jti == "" || !expiresAt.After(d.now()) {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[jti] = expiresAt
}

// IsRevoked reports whether jti is on the list and has not expired yet.
func (d *Denylist) IsRevoked(jti string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	expiresAt, ok := d.entries[jti]
	return ok && expiresAt.After(d.now())
}

// PurgeExpired drops entries whose token has expired and returns how many
// were removed.
func (d *Denylist) PurgeExpired() int {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for jti, expiresAt := range d.entries {
		if !expiresAt.After(now) {
			delete(d.entries, jti)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired ones included.
func (d *Denylist) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}
