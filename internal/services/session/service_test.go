package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceLogin(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		configured string
		username   string
		password   string
		wantErr    bool
	}{
		{
			name:       "correct credentials",
			configured: "hunter2",
			username:   AdminUsername,
			password:   "hunter2",
			wantErr:    false,
		},
		{
			name:       "wrong password",
			configured: "hunter2",
			username:   AdminUsername,
			password:   "hunter3",
			wantErr:    true,
		},
		{
			name:       "wrong username",
			configured: "hunter2",
			username:   "admin-2",
			password:   "hunter2",
			wantErr:    true,
		},
		{
			name:       "login disabled without a password",
			configured: "",
			username:   AdminUsername,
			password:   "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(NewCodec(""), tt.configured)
			token, err := svc.Login(tt.username, tt.password, now)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.True(t, svc.Validate(token, now))
			assert.False(t, svc.Validate(token, now.Add(Duration+time.Second)))
		})
	}
}
