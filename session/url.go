package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/viant/afs"
)

const fileMode os.FileMode = 0o600

// URLStore persists the token as a small JSON document at an afs URL.
type URLStore struct {
	URL string
	fs  afs.Service
}

type snapshot struct {
	Token string `json:"token"`
}

// NewURLStore creates a Store that persists the token at URL.
func NewURLStore(URL string) *URLStore {
	return &URLStore{URL: URL, fs: afs.New()}
}

func (s *URLStore) Load(ctx context.Context) (string, error) {
	ok, err := s.fs.Exists(ctx, s.URL)
	if err != nil {
		return "", fmt.Errorf("failed to check session %v: %w", s.URL, err)
	}
	if !ok {
		return "", nil
	}
	data, err := s.fs.DownloadWithURL(ctx, s.URL)
	if err != nil {
		return "", fmt.Errorf("failed to read session %v: %w", s.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return "", nil
	}
	var snap snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return "", fmt.Errorf("failed to decode session %v: %w", s.URL, err)
	}
	return snap.Token, nil
}

func (s *URLStore) Save(ctx context.Context, token string) error {
	data, err := json.MarshalIndent(snapshot{Token: token}, "", "  ")
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, s.URL, fileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write session %v: %w", s.URL, err)
	}
	return nil
}

func (s *URLStore) Delete(ctx context.Context) error {
	ok, err := s.fs.Exists(ctx, s.URL)
	if err != nil || !ok {
		return err
	}
	if err = s.fs.Delete(ctx, s.URL); err != nil {
		return fmt.Errorf("failed to delete session %v: %w", s.URL, err)
	}
	return nil
}
