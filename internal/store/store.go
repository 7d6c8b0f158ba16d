package store

import (
	"context"
	"fmt"
)

// The application state lives under six well-known logical keys, scoped
// per user. Clear removes exactly these six for one user scope and
// nothing else.
const (
	KeyWorkoutProgress = "gym-app-workout-progress"
	KeyShoppingLists   = "gym-app-shopping-lists"
	KeyTheme           = "gym-app-theme"
	KeyTableColumns    = "gym-app-table-columns"
	KeyCurrentWeek     = "gym-app-current-week"
	KeyCurrentDay      = "gym-app-current-day"
)

// Keys lists the six well-known keys - the unit of "clear all data".
var Keys = []string{
	KeyWorkoutProgress,
	KeyShoppingLists,
	KeyTheme,
	KeyTableColumns,
	KeyCurrentWeek,
	KeyCurrentDay,
}

// Store is the persistence contract shared by every backend: a per-record
// state machine of absent -> present (set) -> absent (delete), each
// operation a single atomic request.
//
// Get returns nil for an absent key - absence is not an error. Set is a
// full replace, Delete of an absent key is a no-op. Concurrent writers to
// the same key race under last-write-wins; there is no locking, no
// versioning and no conflict detection. That is the stated consistency
// model of this application, not a defect.
type Store interface {
	Get(ctx context.Context, userID, key string) ([]byte, error)
	Set(ctx context.Context, userID, key string, value []byte) error
	Delete(ctx context.Context, userID, key string) error
	Clear(ctx context.Context, userID string) error
}

// UserKey derives the effective storage key for a user scope. The user id
// is a random per-session token, not a durable account: a new session gets
// a new scope and orphans previously stored data.
func UserKey(userID, baseKey string) string {
	return fmt.Sprintf("%s:%s", userID, baseKey)
}
