package shopdesk

import "github.com/shopdesk/client-go/internal/session"

// Storage is a synchronous key-value store for session state. Implementations
// must degrade gracefully: when the underlying medium is unavailable, Get
// reports a miss and Set/Remove do nothing. The client keeps the live session
// in memory, so a degraded store only costs persistence across restarts.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// NewMemoryStorage returns an in-process store. State is lost on exit.
func NewMemoryStorage() Storage {
	return session.NewMemoryStore()
}

// NewFileStorage returns a store that persists session state as a JSON file
// at path with 0600 permissions. I/O failures degrade to no-ops, and
// persistence is re-attempted on every write.
func NewFileStorage(path string) Storage {
	return session.NewFileStore(path)
}

// NewEncryptedFileStorage returns a file store that encrypts session state
// at rest with ChaCha20-Poly1305, keyed via HKDF from secret.
func NewEncryptedFileStorage(path string, secret []byte) (Storage, error) {
	return session.NewEncryptedFileStore(path, secret)
}
