package model

// Scope identifies the owner a request acts for.
type Scope struct {
	UserID string
}

// SyncOperation is the kind of change mirrored to external calendars.
type SyncOperation string

const (
	SyncCreate SyncOperation = "CREATE"
	SyncUpdate SyncOperation = "UPDATE"
	SyncDelete SyncOperation = "DELETE"
)
