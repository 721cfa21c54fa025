package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandingFrom(t *testing.T) {
	tests := []struct {
		name                string
		above, below, total int64
		rank                int64
		percentile          int
	}{
		{"only result", 0, 0, 1, 1, 0},
		{"top of four", 0, 3, 4, 1, 75},
		{"bottom of four", 3, 0, 4, 4, 0},
		{"tied in the middle", 1, 1, 4, 2, 25},
		{"rounds", 1, 2, 3, 2, 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := standingFrom(tt.above, tt.below, tt.total)
			assert.Equal(t, tt.rank, st.Rank)
			assert.Equal(t, tt.total, st.Total)
			assert.Equal(t, tt.percentile, st.Percentile)
		})
	}
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "attempt:s1", (&sessionCache{}).key("s1"))
	assert.Equal(t, "result:s1", (&resultCache{}).key("s1"))
	assert.Equal(t, "assessment:a1:scores", (&leaderboardCache{}).key("a1"))
}
