package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Platform
		wantErr bool
	}{
		{name: "exact name", input: "LeetCode", want: LeetCode},
		{name: "case insensitive", input: "codeforces", want: Codeforces},
		{name: "mixed case", input: "GEEKSforgeeks", want: GeeksForGeeks},
		{name: "unknown", input: "TopCoder", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 20, Codeforces.Weight())
	assert.Equal(t, 10, LeetCode.Weight())
	assert.Equal(t, 5, CodeChef.Weight())
	assert.Equal(t, 2, HackerRank.Weight())
	assert.Equal(t, 1, GeeksForGeeks.Weight())
	assert.Equal(t, 0, Platform("TopCoder").Weight())
}

func TestWeightedScore(t *testing.T) {
	assert.Equal(t, 200, Codeforces.WeightedScore(10))
	assert.Equal(t, 0, LeetCode.WeightedScore(0))
}

func TestCleanHandle(t *testing.T) {
	assert.Equal(t, "tourist", CleanHandle("  @tourist  "))
	assert.Equal(t, "tourist", CleanHandle("tourist"))
	assert.Equal(t, "", CleanHandle("   "))
	assert.Equal(t, "", CleanHandle("@"))
}

func TestAllCoversEveryWeight(t *testing.T) {
	for _, p := range All() {
		assert.True(t, p.IsValid())
		assert.Greater(t, p.Weight(), 0, "platform %s must carry a weight", p)
	}
	assert.Len(t, All(), 5)
}

func TestSafeGlobalRank(t *testing.T) {
	ranked := &NormalizedStats{GlobalRank: 1234}
	assert.Equal(t, 1234, ranked.SafeGlobalRank())

	unranked := &NormalizedStats{GlobalRank: 1234, Unranked: true}
	assert.Equal(t, 0, unranked.SafeGlobalRank())
}

func TestNewStat(t *testing.T) {
	stats := &NormalizedStats{Handle: "tourist", Rating: 3800, Unranked: true, ProblemsSolved: 1700}

	stat, err := NewStat(7, Codeforces, stats)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), stat.UserID())
	assert.Equal(t, Codeforces, stat.Platform())
	assert.Equal(t, 0, stat.GlobalRank())
	assert.Equal(t, 1700*20, stat.WeightedScore())

	_, err = NewStat(0, Codeforces, stats)
	assert.Error(t, err)

	_, err = NewStat(7, Platform("TopCoder"), stats)
	assert.Error(t, err)

	_, err = NewStat(7, Codeforces, &NormalizedStats{})
	assert.Error(t, err, "empty handle must be rejected")
}
