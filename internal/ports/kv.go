package ports

import "context"

// KV is the persistence boundary: a named key-value store holding
// JSON-encoded records. The key names and record shapes are fixed for
// compatibility with data written by earlier clients.
type KV interface {
	// Get returns the stored value for key, or (nil, nil) when the key has
	// never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store keys. Both session-token keys are written on sign-in: different
// pages of the original client read different ones, so they are kept in
// sync here.
const (
	KeyUsers           = "users"
	KeyCurrentUser     = "currentUser"
	KeyWellnessSession = "wellness_session"
	KeySessions        = "completedSessions"
	KeyReminders       = "reminders"
	KeyLegacyReminders = "wellness_reminders"
	KeyRecommendations = "recommendations"
)
