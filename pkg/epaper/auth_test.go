package epaper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presslayer/epaper-studio/pkg/epaper"
)

func TestMintToken(t *testing.T) {
	assert.Equal(t, "mock-token-alice@example.com-admin",
		epaper.MintToken("alice@example.com", epaper.RoleAdmin))
	assert.Equal(t, "mock-token-bob@example.com-editor",
		epaper.MintToken("bob@example.com", epaper.RoleEditor))
}

func TestUserFromToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantOK   bool
		wantName string
		wantRole epaper.Role
	}{
		{
			name:     "admin token",
			token:    epaper.MintToken("alice@example.com", epaper.RoleAdmin),
			wantOK:   true,
			wantName: "alice",
			wantRole: epaper.RoleAdmin,
		},
		{
			name:     "editor token",
			token:    epaper.MintToken("bob@example.com", epaper.RoleEditor),
			wantOK:   true,
			wantName: "bob",
			wantRole: epaper.RoleEditor,
		},
		{
			name:     "admin in email grants admin",
			token:    epaper.MintToken("admin@example.com", epaper.RoleEditor),
			wantOK:   true,
			wantName: "admin",
			wantRole: epaper.RoleAdmin,
		},
		{
			name:   "foreign token rejected",
			token:  "Bearer abc123",
			wantOK: false,
		},
		{
			name:   "empty token rejected",
			token:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, ok := epaper.UserFromToken(tt.token)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantName, user.Name)
			assert.Equal(t, tt.wantRole, user.Role)
		})
	}
}
