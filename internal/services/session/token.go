package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// AdminUsername is the only subject the admin panel knows about.
	AdminUsername = "admin-1"

	// CookieName is the HTTP-only cookie carrying the session token.
	CookieName = "admin_session"

	// Duration is how long an issued session stays valid.
	Duration = 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrBadSignature = errors.New("session token signature mismatch")
)

// Claims are the decoded contents of a session token.
type Claims struct {
	Username string
	Expiry   time.Time
}

// Codec encodes and decodes stateless session tokens.
//
// The wire format is base64("username:expiryMillis"). When a secret is
// configured a third ":"-separated hex HMAC-SHA256 segment over
// "username:expiryMillis" is appended inside the base64 payload and
// verified on decode; without a secret the legacy unsigned format is
// produced and accepted.
type Codec struct {
	secret []byte
}

// NewCodec creates a token codec. An empty secret selects the unsigned
// legacy format.
func NewCodec(secret string) *Codec {
	var key []byte
	if secret != "" {
		key = []byte(secret)
	}
	return &Codec{secret: key}
}

// Encode issues a token for username expiring Duration after now.
func (c *Codec) Encode(username string, now time.Time) string {
	expiry := now.Add(Duration).UnixMilli()
	payload := fmt.Sprintf("%s:%d", username, expiry)
	if len(c.secret) > 0 {
		payload = payload + ":" + c.sign(username, expiry)
	}
	return base64.StdEncoding.EncodeToString([]byte(payload))
}

// Decode reverses Encode. It fails when the token is not base64, does
// not carry a "username:expiryMillis" pair with a numeric expiry, or
// carries a signature that does not verify.
func (c *Codec) Decode(token string) (*Claims, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	parts := strings.Split(string(raw), ":")
	signed := len(c.secret) > 0
	if (signed && len(parts) != 3) || (!signed && len(parts) != 2) {
		return nil, ErrInvalidToken
	}

	expiryMillis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: non-numeric expiry", ErrInvalidToken)
	}

	if signed {
		expected := c.sign(parts[0], expiryMillis)
		if !hmac.Equal([]byte(parts[2]), []byte(expected)) {
			return nil, ErrBadSignature
		}
	}

	return &Claims{
		Username: parts[0],
		Expiry:   time.UnixMilli(expiryMillis),
	}, nil
}

// IsValid reports whether token decodes, belongs to the admin user, and
// has not expired as of now.
func (c *Codec) IsValid(token string, now time.Time) bool {
	claims, err := c.Decode(token)
	if err != nil {
		return false
	}
	return claims.Username == AdminUsername && now.Before(claims.Expiry)
}

func (c *Codec) sign(username string, expiryMillis int64) string {
	mac := hmac.New(sha256.New, c.secret)
	fmt.Fprintf(mac, "%s:%d", username, expiryMillis)
	return hex.EncodeToString(mac.Sum(nil))
}
