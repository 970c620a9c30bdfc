package chat

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

const (
	identityLength   = 20
	identityAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	identityFile     = "client_id"
)

// NewClientID generates a random anonymous client identifier. Uniform per
// character; not a secret, so math/rand is enough.
func NewClientID() string {
	var b strings.Builder
	b.Grow(identityLength)
	for i := 0; i < identityLength; i++ {
		b.WriteByte(identityAlphabet[rand.Intn(len(identityAlphabet))])
	}
	return b.String()
}

// EnsureIdentity returns the client identifier persisted under dir,
// generating and persisting one on first use. Subsequent calls return the
// same value. If the state dir cannot be written the identity is ephemeral
// for this process: the visitor starts a fresh conversation next run
// rather than the widget refusing to start.
func EnsureIdentity(dir string, logger *Logger) string {
	path := filepath.Join(dir, identityFile)
	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id
		}
	}

	id := NewClientID()
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("client id not persisted", map[string]interface{}{"error": err.Error()})
		return id
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0644); err != nil {
		logger.Warn("client id not persisted", map[string]interface{}{"error": err.Error()})
	}
	return id
}
