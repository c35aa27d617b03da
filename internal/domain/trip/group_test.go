//go:build unit

package trip_test

import (
	"testing"
	"time"

	"tripmatch/internal/domain/trip"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lisbonCriteria(t *testing.T) trip.Criteria {
	t.Helper()
	c, err := trip.NewCriteria(june1, june7, "Lisbon", "hiking")
	require.NoError(t, err)
	return c
}

func TestNewGroupSize(t *testing.T) {
	_, err := trip.NewGroupSize(1)
	assert.ErrorIs(t, err, trip.ErrInvalidGroupSize)

	size, err := trip.NewGroupSize(2)
	require.NoError(t, err)
	assert.Equal(t, 1, size.Peers())
	assert.Equal(t, 3, trip.DefaultGroupSize.Peers())
}

func TestNewGroup(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		members []string
		wantErr bool
	}{
		{name: "exact size", members: []string{"D", "A", "B", "C"}},
		{name: "too few", members: []string{"A", "B", "C"}, wantErr: true},
		{name: "too many", members: []string{"A", "B", "C", "D", "E"}, wantErr: true},
		{name: "duplicate member", members: []string{"A", "B", "A", "C"}, wantErr: true},
		{name: "empty member", members: []string{"A", "", "B", "C"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := trip.NewGroup(trip.DefaultGroupSize, lisbonCriteria(t), tt.members, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, trip.ErrInvalidGroup)
				var ige *trip.InvalidGroupError
				assert.ErrorAs(t, err, &ige)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.members, g.Members()); diff != "" {
				t.Errorf("members mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, now, g.CreatedAt())
		})
	}
}

func TestGroup_IsImmutable(t *testing.T) {
	members := []string{"D", "A", "B", "C"}
	g, err := trip.NewGroup(trip.DefaultGroupSize, lisbonCriteria(t), members, june1)
	require.NoError(t, err)

	members[0] = "X"
	got := g.Members()
	got[1] = "Y"

	assert.Equal(t, []string{"D", "A", "B", "C"}, g.Members())
	assert.True(t, g.HasMember("D"))
	assert.False(t, g.HasMember("X"))
}
