package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// encryptedStoreInfo is the HKDF info string binding derived keys to this use.
const encryptedStoreInfo = "shopdesk-session-store-v1"

// ErrEmptySecret is returned when an encrypted store is created without a secret.
var ErrEmptySecret = errors.New("encryption secret must not be empty")

// EncryptedFileStore persists session state encrypted at rest with
// ChaCha20-Poly1305. The cipher key is derived from a caller-supplied secret
// via HKDF-SHA-256. Like FileStore, I/O and decryption failures degrade to
// a miss or no-op; a tampered or undecipherable file reads as empty.
type EncryptedFileStore struct {
	mu   sync.Mutex
	path string
	key  []byte
}

// NewEncryptedFileStore creates an encrypted file-backed store at path.
func NewEncryptedFileStore(path string, secret []byte) (*EncryptedFileStore, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	reader := hkdf.New(sha256.New, secret, nil, []byte(encryptedStoreInfo))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}

	return &EncryptedFileStore{path: path, key: key}, nil
}

func (s *EncryptedFileStore) read() map[string]string {
	values := make(map[string]string)

	encoded, err := os.ReadFile(s.path)
	if err != nil {
		return values
	}
	sealed, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil || len(sealed) < chacha20poly1305.NonceSize {
		return values
	}

	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return values
	}
	nonce := sealed[:chacha20poly1305.NonceSize]
	plaintext, err := aead.Open(nil, nonce, sealed[chacha20poly1305.NonceSize:], nil)
	if err != nil {
		return values
	}

	_ = json.Unmarshal(plaintext, &values)
	return values
}

func (s *EncryptedFileStore) write(values map[string]string) {
	plaintext, err := json.Marshal(values)
	if err != nil {
		return
	}

	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return
	}
	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return
	}

	// Format: base64(nonce || ciphertext || tag)
	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	encoded := base64.StdEncoding.EncodeToString(sealed)

	_ = os.MkdirAll(filepath.Dir(s.path), 0700)
	_ = os.WriteFile(s.path, []byte(encoded), 0600)
}

// Get returns the value for key.
func (s *EncryptedFileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.read()[key]
	return v, ok
}

// Set stores value under key.
func (s *EncryptedFileStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.read()
	values[key] = value
	s.write(values)
}

// Remove deletes key.
func (s *EncryptedFileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := s.read()
	if _, ok := values[key]; !ok {
		return
	}
	delete(values, key)
	s.write(values)
}
