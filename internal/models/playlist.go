package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SongList is an ordered list of song identifiers stored as a JSONB column.
type SongList []string

// Value implements driver.Valuer for the songs column.
func (s SongList) Value() (driver.Value, error) {
	if s == nil {
		s = SongList{}
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for the songs column.
func (s *SongList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = SongList{}
		return nil
	default:
		return errors.New("unsupported source type for song list")
	}
}

// PlaylistDB represents a playlist row in the database. Playlists belong to
// exactly one user and are ordered by position within that user's sequence.
type PlaylistDB struct {
	PlaylistID  uuid.UUID `db:"playlist_id"` // Primary key
	UserID      uuid.UUID `db:"user_id"`     // Owning user
	Name        string    `db:"name"`        // Required display name
	Description string    `db:"description"` // Optional description
	Songs       SongList  `db:"songs"`       // Ordered song identifiers
	IsPublic    bool      `db:"is_public"`   // Visibility flag, defaults to false
	Position    int       `db:"position"`    // Order within the owner's sequence
	CreatedAt   time.Time `db:"created_at"`  // Creation timestamp
}

// Playlist is the API projection of a playlist.
type Playlist struct {
	PlaylistID  uuid.UUID `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Songs       SongList  `json:"songs"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
}

// API returns the API projection of the playlist row.
func (p *PlaylistDB) API() Playlist {
	songs := p.Songs
	if songs == nil {
		songs = SongList{}
	}
	return Playlist{
		PlaylistID:  p.PlaylistID,
		Name:        p.Name,
		Description: p.Description,
		Songs:       songs,
		IsPublic:    p.IsPublic,
		CreatedAt:   p.CreatedAt,
	}
}
