//go:build unit

package identity_test

import (
	"testing"

	"tripmatch/internal/domain/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    string
		wantErr error
	}{
		{name: "plain subject", subject: "alice", want: "alice"},
		{name: "surrounding whitespace trimmed", subject: "  alice\t", want: "alice"},
		{name: "empty", subject: "", wantErr: identity.ErrEmptySubject},
		{name: "whitespace only", subject: "   ", wantErr: identity.ErrEmptySubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := identity.NewPrincipal(tt.subject)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, p.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.UserID())
			assert.False(t, p.IsZero())
		})
	}
}
