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

const codeforcesAPIBaseURL = "https://codeforces.com/api"

// codeforcesUserInfoResponse represents the user.info API response
type codeforcesUserInfoResponse struct {
	Status string `json:"status"`
	Result []struct {
		Handle string `json:"handle"`
		Rating int    `json:"rating"`
		Rank   string `json:"rank"`
	} `json:"result"`
}

// codeforcesStatusResponse represents the user.status API response
type codeforcesStatusResponse struct {
	Status string `json:"status"`
	Result []struct {
		Verdict string `json:"verdict"`
		Problem struct {
			ContestID int    `json:"contestId"`
			Index     string `json:"index"`
		} `json:"problem"`
	} `json:"result"`
}

// CodeforcesFetcher retrieves Codeforces statistics via the public REST API.
// Two calls are made per fetch: user.info for rating and user.status for the
// full submission history, from which distinct accepted problems are counted.
type CodeforcesFetcher struct {
	httpClient *http.Client
	logger     logger.Interface
	baseURL    string
}

// NewCodeforcesFetcher creates a new Codeforces stats fetcher
func NewCodeforcesFetcher(log logger.Interface) *CodeforcesFetcher {
	return &CodeforcesFetcher{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
		baseURL:    codeforcesAPIBaseURL,
	}
}

var _ platform.StatsFetcher = (*CodeforcesFetcher)(nil)

// Fetch retrieves the user's rating and distinct solved-problem count.
func (f *CodeforcesFetcher) Fetch(ctx context.Context, handle string) (*platform.NormalizedStats, error) {
	info, err := f.fetchUserInfo(ctx, handle)
	if err != nil {
		return nil, err
	}

	// user.info decides whether the profile exists; a failing user.status
	// only costs the solved count.
	solved, err := f.fetchSolvedCount(ctx, handle)
	if err != nil {
		f.logger.Warnw("codeforces submission history unavailable",
			"handle", handle, "error", err)
		solved = 0
	}

	f.logger.Debugw("fetched codeforces stats",
		"handle", handle,
		"rating", info.rating,
		"solved", solved,
	)

	// Codeforces ranks are titles ("expert", "master"), not positions, so no
	// numeric global rank is stored.
	return &platform.NormalizedStats{
		Handle:         info.handle,
		Rating:         info.rating,
		Unranked:       true,
		ProblemsSolved: solved,
	}, nil
}

type codeforcesUserInfo struct {
	handle string
	rating int
}

func (f *CodeforcesFetcher) fetchUserInfo(ctx context.Context, handle string) (*codeforcesUserInfo, error) {
	endpoint := fmt.Sprintf("%s/user.info?handles=%s", f.baseURL, url.QueryEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch codeforces user info: %w", err)
	}
	defer resp.Body.Close()

	// The API answers 400 with status FAILED for unknown handles.
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		return nil, platform.ErrStatsNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data codeforcesUserInfoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if data.Status != "OK" || len(data.Result) == 0 {
		return nil, platform.ErrStatsNotFound
	}

	return &codeforcesUserInfo{
		handle: data.Result[0].Handle,
		rating: data.Result[0].Rating,
	}, nil
}

func (f *CodeforcesFetcher) fetchSolvedCount(ctx context.Context, handle string) (int, error) {
	endpoint := fmt.Sprintf("%s/user.status?handle=%s", f.baseURL, url.QueryEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch codeforces submissions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var data codeforcesStatusResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}
	if data.Status != "OK" {
		return 0, fmt.Errorf("user.status returned %q", data.Status)
	}

	// Count distinct accepted problems; resubmissions and the same problem
	// across divisions share a (contest, index) key.
	seen := make(map[string]struct{})
	for _, sub := range data.Result {
		if sub.Verdict != "OK" {
			continue
		}
		key := fmt.Sprintf("%d-%s", sub.Problem.ContestID, sub.Problem.Index)
		seen[key] = struct{}{}
	}
	return len(seen), nil
}
