package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// credentials is what survives between invocations: the bearer token, the
// account it belongs to, and a stable per-install device token.
type credentials struct {
	Token       string `json:"token"`
	UserID      int64  `json:"userId"`
	Phone       string `json:"phone"`
	DeviceToken string `json:"deviceToken"`
}

type credentialsStore struct {
	path  string
	creds credentials
}

func newCredentialsStore(path string) *credentialsStore {
	s := &credentialsStore{path: path}
	if raw, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(raw, &s.creds)
	}
	if s.creds.DeviceToken == "" {
		s.creds.DeviceToken = uuid.NewString()
		_ = s.save()
	}
	return s
}

func (s *credentialsStore) Token() string       { return s.creds.Token }
func (s *credentialsStore) UserID() int64       { return s.creds.UserID }
func (s *credentialsStore) DeviceToken() string { return s.creds.DeviceToken }

func (s *credentialsStore) Set(token string, userID int64, phone string) error {
	s.creds.Token = token
	s.creds.UserID = userID
	s.creds.Phone = phone
	return s.save()
}

// Clear drops the session but keeps the device token.
func (s *credentialsStore) Clear() {
	s.creds.Token = ""
	s.creds.UserID = 0
	s.creds.Phone = ""
	_ = s.save()
}

func (s *credentialsStore) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s.creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
