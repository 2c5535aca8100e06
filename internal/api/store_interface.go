package api

import "time"

// SessionStore keeps live controllers between requests.
type SessionStore interface {
	Create() *Session
	Get(id string) (*Session, bool)
	Delete(id string) bool
	Sweep(cutoff time.Time) int
	Len() int
}

var _ SessionStore = (*memoryStore)(nil)
