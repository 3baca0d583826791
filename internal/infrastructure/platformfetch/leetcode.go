// Package platformfetch contains the outbound adapters that retrieve public
// coding statistics from the supported external platforms. Every adapter
// normalizes its platform's response into platform.NormalizedStats and
// reports a missing profile as platform.ErrStatsNotFound.
package platformfetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codecampus/internal/domain/platform"
	"codecampus/internal/shared/logger"
)

const (
	leetcodeGraphQLURL = "https://leetcode.com/graphql"

	// HTTP request timeout shared by all adapters
	requestTimeout = 10 * time.Second
	// Maximum response body size for API responses (4MB; Codeforces
	// submission lists can run large)
	maxResponseSize = 4 << 20

	// Scraped sites serve bot traffic a challenge page without a browser UA
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

const leetcodeStatsQuery = `
query userProfile($username: String!) {
  matchedUser(username: $username) {
    username
    profile {
      ranking
      reputation
    }
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
}`

// leetcodeResponse represents the LeetCode GraphQL response
type leetcodeResponse struct {
	Data struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  struct {
				Ranking    int `json:"ranking"`
				Reputation int `json:"reputation"`
			} `json:"profile"`
			SubmitStatsGlobal struct {
				ACSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	} `json:"data"`
}

// LeetCodeFetcher retrieves LeetCode statistics via the public GraphQL API.
type LeetCodeFetcher struct {
	httpClient *http.Client
	logger     logger.Interface
	apiURL     string
}

// NewLeetCodeFetcher creates a new LeetCode stats fetcher
func NewLeetCodeFetcher(log logger.Interface) *LeetCodeFetcher {
	return &LeetCodeFetcher{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
		apiURL:     leetcodeGraphQLURL,
	}
}

var _ platform.StatsFetcher = (*LeetCodeFetcher)(nil)

// Fetch retrieves the user's profile ranking and accepted-problem count.
func (f *LeetCodeFetcher) Fetch(ctx context.Context, handle string) (*platform.NormalizedStats, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     leetcodeStatsQuery,
		"variables": map[string]string{"username": handle},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch leetcode stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data leetcodeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	matched := data.Data.MatchedUser
	if matched == nil {
		return nil, platform.ErrStatsNotFound
	}

	// The "All" bucket aggregates accepted problems across difficulties.
	solved := 0
	for _, bucket := range matched.SubmitStatsGlobal.ACSubmissionNum {
		if bucket.Difficulty == "All" {
			solved = bucket.Count
			break
		}
	}

	f.logger.Debugw("fetched leetcode stats",
		"handle", handle,
		"solved", solved,
		"ranking", matched.Profile.Ranking,
	)

	// LeetCode has no public contest rating here; profile reputation stands
	// in for it.
	return &platform.NormalizedStats{
		Handle:         matched.Username,
		Rating:         matched.Profile.Reputation,
		GlobalRank:     matched.Profile.Ranking,
		ProblemsSolved: solved,
	}, nil
}
