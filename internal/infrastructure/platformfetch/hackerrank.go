package platformfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"codecampus/internal/domain/platform"
	"codecampus/internal/shared/logger"
)

const hackerrankBaseURL = "https://www.hackerrank.com"

type hackerrankBadge struct {
	BadgeName string `json:"badge_name"`
	Stars     int    `json:"stars"`
	Solved    int    `json:"solved"`
}

// hackerrankBadgesResponse represents the badges REST response. Models is a
// pointer so a profile that exists with zero badges (empty array) can be
// told apart from a missing profile (no models key at all).
type hackerrankBadgesResponse struct {
	Models *[]hackerrankBadge `json:"models"`
}

// HackerRankFetcher retrieves HackerRank statistics via the badges REST
// endpoint. HackerRank has no native rating, so one is synthesized from the
// total badge stars.
type HackerRankFetcher struct {
	httpClient *http.Client
	logger     logger.Interface
	baseURL    string
}

// NewHackerRankFetcher creates a new HackerRank stats fetcher
func NewHackerRankFetcher(log logger.Interface) *HackerRankFetcher {
	return &HackerRankFetcher{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
		baseURL:    hackerrankBaseURL,
	}
}

var _ platform.StatsFetcher = (*HackerRankFetcher)(nil)

// Fetch retrieves the user's badges. Solved problems are summed across
// badges (badges without a solved field count as zero); the rating is
// totalStars*50, or a floor of 10 when the profile exists with no stars.
func (f *HackerRankFetcher) Fetch(ctx context.Context, handle string) (*platform.NormalizedStats, error) {
	endpoint := fmt.Sprintf("%s/rest/hackers/%s/badges", f.baseURL, url.PathEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hackerrank badges: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, platform.ErrStatsNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data hackerrankBadgesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if data.Models == nil {
		return nil, platform.ErrStatsNotFound
	}

	totalStars := 0
	totalSolved := 0
	for _, badge := range *data.Models {
		totalStars += badge.Stars
		totalSolved += badge.Solved
	}
	rating := 10
	if totalStars > 0 {
		rating = totalStars * 50
	}

	f.logger.Debugw("fetched hackerrank stats",
		"handle", handle,
		"badges", len(*data.Models),
		"stars", totalStars,
		"solved", totalSolved,
	)

	return &platform.NormalizedStats{
		Handle:         handle,
		Rating:         rating,
		Unranked:       true,
		ProblemsSolved: totalSolved,
	}, nil
}
