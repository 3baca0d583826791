package platform

import (
	"fmt"
	"strings"
)

// Platform identifies one of the supported external coding platforms.
// The set is fixed: adapters exist only for these five.
type Platform string

const (
	LeetCode      Platform = "LeetCode"
	Codeforces    Platform = "Codeforces"
	CodeChef      Platform = "CodeChef"
	HackerRank    Platform = "HackerRank"
	GeeksForGeeks Platform = "GeeksForGeeks"
)

// All returns the supported platforms in their canonical order.
func All() []Platform {
	return []Platform{LeetCode, CodeChef, Codeforces, HackerRank, GeeksForGeeks}
}

// Parse converts a platform name into a Platform value.
func Parse(name string) (Platform, error) {
	for _, p := range All() {
		if strings.EqualFold(name, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", name)
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	for _, known := range All() {
		if p == known {
			return true
		}
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}

// Weight returns the multiplier applied to the platform's problems-solved
// count when computing the weighted leaderboard score. The ordering encodes
// the relative difficulty of solving one problem on each platform and must
// match across the leaderboard query and any in-process scoring.
func (p Platform) Weight() int {
	switch p {
	case Codeforces:
		return 20
	case LeetCode:
		return 10
	case CodeChef:
		return 5
	case HackerRank:
		return 2
	case GeeksForGeeks:
		return 1
	default:
		return 0
	}
}

// WeightedScore returns the weighted contribution of solved problems on p.
func (p Platform) WeightedScore(problemsSolved int) int {
	return p.Weight() * problemsSolved
}

// CleanHandle normalizes a user-supplied handle: surrounding whitespace and a
// leading '@' are stripped, nothing else is altered.
func CleanHandle(handle string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}
