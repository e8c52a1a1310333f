package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_NextCap(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		cur     int
		need    int
		initial int
		want    int
	}{
		{"doubling first growth uses initial", Doubling, 0, 1, 64, 64},
		{"doubling first growth beyond initial", Doubling, 0, 100, 64, 128},
		{"doubling zero initial", Doubling, 0, 3, 0, 4},
		{"doubling doubles", Doubling, 8, 9, 8, 16},
		{"doubling large jump", Doubling, 8, 70, 8, 128},
		{"doubling fits", Doubling, 16, 10, 8, 16},
		{"exact", Exact, 8, 9, 64, 9},
		{"exact first growth ignores initial", Exact, 0, 6, 64, 6},
		{"exact fits", Exact, 8, 8, 64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.NextCap(tt.cur, tt.need, tt.initial))
		})
	}
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "doubling", Doubling.String())
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
	assert.True(t, Exact.Valid())
	assert.False(t, Policy(7).Valid())
}
