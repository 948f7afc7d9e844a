package session

import (
	"crypto/subtle"
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Service issues and validates admin sessions against the configured
// password. There is a single admin identity; sessions are stateless and
// expire on their own, there is no server-side revocation.
type Service struct {
	codec    *Codec
	password string
}

// NewService creates a session service. The password comes from
// configuration; an empty password disables login entirely.
func NewService(codec *Codec, password string) *Service {
	return &Service{codec: codec, password: password}
}

// Login checks the credentials and returns a fresh session token.
func (s *Service) Login(username, password string, now time.Time) (string, error) {
	if s.password == "" {
		return "", ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.codec.Encode(AdminUsername, now), nil
}

// Validate reports whether token represents a live admin session.
func (s *Service) Validate(token string, now time.Time) bool {
	return s.codec.IsValid(token, now)
}

// Codec exposes the underlying token codec.
func (s *Service) Codec() *Codec {
	return s.codec
}
