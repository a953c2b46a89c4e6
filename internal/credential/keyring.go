package credential

import (
	"fmt"
	"os"

	"github.com/99designs/keyring"
)

const serviceName = "chiru"

// GeminiAPIKey is the keyring entry holding the Gemini API key.
const GeminiAPIKey = "gemini-api-key"

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/chiru/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("chiru-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// Get retrieves a credential value by key from the system keyring.
func Get(key string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(key)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", key, err)
	}

	return string(item.Data), nil
}

// Set stores a credential value by key in the system keyring.
func Set(key string, value string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:  key,
		Data: []byte(value),
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", key, err)
	}

	return nil
}

// Delete removes a credential by key from the system keyring.
func Delete(key string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Remove(key)
	if err != nil {
		return fmt.Errorf("deleting credential %q: %w", key, err)
	}

	return nil
}

// ResolveGeminiKey returns the Gemini API key to use. The document value
// wins, then the GEMINI_API_KEY environment variable, then the keyring.
// An empty result means the assistant runs offline.
func ResolveGeminiKey(docKey string) string {
	if docKey != "" {
		return docKey
	}
	if env := os.Getenv("GEMINI_API_KEY"); env != "" {
		return env
	}
	if stored, err := Get(GeminiAPIKey); err == nil {
		return stored
	}
	return ""
}
