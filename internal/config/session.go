package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ljosa/pagemark/internal/storage"
)

// maxSessions bounds the session file; the oldest entry is dropped
// when a new file pushes it over.
const maxSessions = 50

// Session records where editing left off in one file.
type Session struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Para      int       `json:"para"`
	Offset    int       `json:"offset"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) sessionsPath() string {
	return filepath.Join(s.dir, "sessions.json")
}

// LookupSession returns the stored session for a document path.
func (s *Store) LookupSession(path string) (Session, bool) {
	data, err := os.ReadFile(s.sessionsPath())
	if err != nil {
		return Session{}, false
	}

	var found Session
	var ok bool
	gjson.GetBytes(data, "sessions").ForEach(func(_, value gjson.Result) bool {
		if value.Get("path").String() != path {
			return true
		}
		found = Session{
			ID:        value.Get("id").String(),
			Path:      path,
			Para:      int(value.Get("para").Int()),
			Offset:    int(value.Get("offset").Int()),
			UpdatedAt: value.Get("updated_at").Time(),
		}
		ok = true
		return false
	})
	return found, ok
}

// SaveSession stores the session for its document path, replacing any
// previous entry for the same path. A missing ID is assigned.
func (s *Store) SaveSession(session Session) error {
	if session.Path == "" {
		return fmt.Errorf("failed to save session: empty document path")
	}
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.UpdatedAt = time.Now()

	data, err := os.ReadFile(s.sessionsPath())
	if err != nil {
		data = []byte(`{"sessions":[]}`)
	}

	index := -1
	count := 0
	gjson.GetBytes(data, "sessions").ForEach(func(_, value gjson.Result) bool {
		if value.Get("path").String() == session.Path {
			index = count
		}
		count++
		return true
	})

	path := "sessions.-1"
	if index >= 0 {
		path = fmt.Sprintf("sessions.%d", index)
	}
	data, err = sjson.SetBytes(data, path, session)
	if err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	// Evict the oldest entry when over the cap.
	if index < 0 && count+1 > maxSessions {
		data, err = sjson.DeleteBytes(data, "sessions.0")
		if err != nil {
			return fmt.Errorf("failed to trim sessions: %w", err)
		}
	}

	if err := storage.Save(s.sessionsPath(), string(data)); err != nil {
		return fmt.Errorf("failed to save sessions: %w", err)
	}
	return nil
}
