package models

// Activity event types published to the broker.
const (
	EventSongLiked       = "song.liked"
	EventSongUnliked     = "song.unliked"
	EventPlaylistCreated = "playlist.created"
)

// Event represents a user-activity event published to Kafka.
type Event struct {
	// EventID is a unique identifier for the event.
	EventID string `json:"event_id"`
	// Timestamp is the Unix timestamp (in seconds) when the event occurred.
	Timestamp int64 `json:"timestamp"`
	// UserID is the identifier of the user who triggered the event.
	UserID string `json:"user_id"`
	// Type describes the activity, e.g. "song.liked" or "playlist.created".
	Type string `json:"type"`
	// SongID is set for song events.
	SongID string `json:"song_id,omitempty"`
	// Playlist is the playlist name for playlist events.
	Playlist string `json:"playlist,omitempty"`
}
