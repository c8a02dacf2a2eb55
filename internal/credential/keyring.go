// Package credential keeps remote-service secrets in the system
// keyring so they can stay out of the YAML configuration file.
package credential

import (
	"fmt"
	"sync"

	"github.com/99designs/keyring"
)

const serviceName = "pointage"

// Keys under which the remote-service secrets are stored.
const (
	KeyJiraToken   = "jira-token"
	KeyTempoAPIKey = "tempo-api-key"
)

// Store is a lazily-opened handle on the system keyring. The backend
// is opened on first use and reused for the life of the process.
type Store struct {
	cfg  keyring.Config
	once sync.Once
	ring keyring.Keyring
	err  error
}

// NewStore returns a Store over the default platform backends, with an
// encrypted file fallback under ~/.config/pointage/credentials.
func NewStore() *Store {
	return newStore(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/pointage/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("pointage-file-key"),
		KeychainTrustApplication: true,
	})
}

func newStore(cfg keyring.Config) *Store {
	return &Store{cfg: cfg}
}

func (s *Store) open() (keyring.Keyring, error) {
	s.once.Do(func() {
		s.ring, s.err = keyring.Open(s.cfg)
	})
	if s.err != nil {
		return nil, fmt.Errorf("opening keyring: %w", s.err)
	}
	return s.ring, nil
}

// Get retrieves a credential value by key.
func (s *Store) Get(key string) (string, error) {
	ring, err := s.open()
	if err != nil {
		return "", err
	}
	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}
	return string(item.Data), nil
}

// Set stores a credential value by key.
func (s *Store) Set(key, value string) error {
	ring, err := s.open()
	if err != nil {
		return err
	}
	if err := ring.Set(keyring.Item{Key: key, Data: []byte(value)}); err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}
	return nil
}

// Delete removes a credential by key.
func (s *Store) Delete(key string) error {
	ring, err := s.open()
	if err != nil {
		return err
	}
	if err := ring.Remove(key); err != nil {
		return fmt.Errorf("deleting credential %q: %w", key, err)
	}
	return nil
}
