package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Preferences holds per-user display and playback options.
type Preferences struct {
	Theme    string `json:"theme"`    // UI theme, defaults to "dark"
	Language string `json:"language"` // Interface language, defaults to "en"
	Autoplay bool   `json:"autoplay"` // Whether playback continues automatically
}

// DefaultPreferences returns the preferences assigned to new users.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    "dark",
		Language: "en",
		Autoplay: true,
	}
}

// Value implements driver.Valuer so preferences can be stored as JSONB.
func (p Preferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for reading the JSONB column.
func (p *Preferences) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = DefaultPreferences()
		return nil
	default:
		return errors.New("unsupported source type for preferences")
	}
}

// DefaultProfilePicture is assigned to users who never uploaded an avatar.
const DefaultProfilePicture = "img/default-avatar.png"

// UserDB represents a user row in the database.
type UserDB struct {
	UserID         uuid.UUID   `json:"id" db:"user_id"`                      // Primary key
	Username       string      `json:"username" db:"username"`               // Unique username
	Email          string      `json:"email" db:"email"`                     // Unique email, stored lowercase
	PasswordHash   string      `json:"-" db:"password_hash"`                 // Bcrypt hash, never serialized
	IsAdmin        bool        `json:"is_admin" db:"is_admin"`               // Admin flag, defaults to false
	ProfilePicture string      `json:"profile_picture" db:"profile_picture"` // Avatar path
	Preferences    Preferences `json:"preferences" db:"preferences"`         // Display/playback options
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`           // Creation timestamp
	LastLogin      time.Time   `json:"last_login" db:"last_login"`           // Updated on each successful login
}

// UserPublic is the projection returned from the register and login responses.
type UserPublic struct {
	UserID         uuid.UUID `json:"_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProfilePicture string    `json:"profilePicture"`
	IsAdmin        bool      `json:"isAdmin"`
}

// Public returns the public-safe projection of the user.
func (u *UserDB) Public() UserPublic {
	return UserPublic{
		UserID:         u.UserID,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		IsAdmin:        u.IsAdmin,
	}
}

// UserProfile is the full projection returned from the profile endpoint,
// password hash excluded.
type UserProfile struct {
	UserID         uuid.UUID   `json:"_id"`
	Username       string      `json:"username"`
	Email          string      `json:"email"`
	ProfilePicture string      `json:"profilePicture"`
	IsAdmin        bool        `json:"isAdmin"`
	Preferences    Preferences `json:"preferences"`
	FavoriteSongs  []string    `json:"favoriteSongs"`
	Playlists      []Playlist  `json:"playlists"`
	CreatedAt      time.Time   `json:"createdAt"`
	LastLogin      time.Time   `json:"lastLogin"`
}

// ProfileUpdate is a typed partial update restricted to the mutable profile
// fields. Unknown fields are rejected at the decoding boundary, so a request
// carrying anything else fails as a whole.
type ProfileUpdate struct {
	Username       *string      `json:"username,omitempty"`
	Email          *string      `json:"email,omitempty"`
	ProfilePicture *string      `json:"profilePicture,omitempty"`
	Preferences    *Preferences `json:"preferences,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (p ProfileUpdate) Empty() bool {
	return p.Username == nil && p.Email == nil && p.ProfilePicture == nil && p.Preferences == nil
}
