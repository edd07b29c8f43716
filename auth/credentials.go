// Package auth isolates admin credential checking so a real identity
// provider can replace the config-backed allow-list without touching
// any route handler.
package auth

import (
	"log"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore answers whether an email/password pair identifies an admin.
type CredentialStore interface {
	Authenticate(email, password string) bool
}

// ConfigCredentials is a CredentialStore backed by a fixed allow-list.
// Passwords are held bcrypt-hashed from construction onward.
type ConfigCredentials struct {
	admins map[string][]byte
}

func NewConfigCredentials(pairs map[string]string) *ConfigCredentials {
	admins := make(map[string][]byte, len(pairs))
	for email, password := range pairs {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing admin credential for %s: %v", email, err)
			continue
		}
		admins[email] = hash
	}
	return &ConfigCredentials{admins: admins}
}

func (s *ConfigCredentials) Authenticate(email, password string) bool {
	hash, ok := s.admins[email]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

var store CredentialStore

// Use installs the active CredentialStore.
func Use(s CredentialStore) { store = s }

// Check authenticates against the active store.
func Check(email, password string) bool {
	if store == nil {
		return false
	}
	return store.Authenticate(email, password)
}
