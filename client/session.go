package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Session is the persisted token/role/email triple — the localStorage
// equivalent. It is written as a small JSON file so separate invocations of
// the CLI share one login.
type Session struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`

	path string
}

// DefaultSessionPath is ~/.attenda/session.json.
func DefaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".attenda-session.json"
	}
	return filepath.Join(home, ".attenda", "session.json")
}

// LoadSession reads the session file if it exists. A missing file is not an
// error; it just means nobody is logged in.
func LoadSession(path string) (*Session, error) {
	s := &Session{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Clear wipes all session fields and removes the file. This is logout.
func (s *Session) Clear() error {
	s.Token = ""
	s.Role = ""
	s.Email = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Session) LoggedIn() bool {
	return s.Token != ""
}

func (s *Session) IsAdmin() bool {
	return s.Role == "ADMIN"
}
