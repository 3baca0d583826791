package platformfetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"codecampus/internal/domain/platform"
	"codecampus/internal/shared/logger"
)

const geeksforgeeksBaseURL = "https://www.geeksforgeeks.org"

// flexInt decodes a JSON value that the profile payload serves sometimes as
// a number and sometimes as a quoted string. Null and empty string read as
// zero.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		// Some fields carry decorated values like "1,234"; keep digits only.
		*n = flexInt(parseLeadingInt(strings.ReplaceAll(s, ",", "")))
		return nil
	}
	*n = flexInt(v)
	return nil
}

// geeksforgeeksPageData represents the Next.js data blob embedded in the
// profile page.
type geeksforgeeksPageData struct {
	Props struct {
		PageProps struct {
			UserInfo *struct {
				Score               flexInt `json:"score"`
				MonthlyScore        flexInt `json:"monthly_score"`
				TotalProblemsSolved flexInt `json:"total_problems_solved"`
				Rank                flexInt `json:"rank"`
			} `json:"userInfo"`
		} `json:"pageProps"`
	} `json:"props"`
}

// GeeksForGeeksFetcher retrieves GeeksForGeeks statistics by scraping the
// profile page. The page is a Next.js app; all stats live in the
// __NEXT_DATA__ script tag as JSON, so no DOM selectors beyond that one tag
// are needed.
type GeeksForGeeksFetcher struct {
	httpClient *http.Client
	logger     logger.Interface
	baseURL    string
}

// NewGeeksForGeeksFetcher creates a new GeeksForGeeks stats fetcher
func NewGeeksForGeeksFetcher(log logger.Interface) *GeeksForGeeksFetcher {
	return &GeeksForGeeksFetcher{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
		baseURL:    geeksforgeeksBaseURL,
	}
}

var _ platform.StatsFetcher = (*GeeksForGeeksFetcher)(nil)

// Fetch retrieves the user's coding score, solved count and rank.
func (f *GeeksForGeeksFetcher) Fetch(ctx context.Context, handle string) (*platform.NormalizedStats, error) {
	endpoint := fmt.Sprintf("%s/user/%s/", f.baseURL, url.PathEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch geeksforgeeks profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, platform.ErrStatsNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile page: %w", err)
	}

	raw := doc.Find("script#__NEXT_DATA__").First().Text()
	if raw == "" {
		return nil, platform.ErrStatsNotFound
	}

	var data geeksforgeeksPageData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to decode page data: %w", err)
	}

	info := data.Props.PageProps.UserInfo
	if info == nil {
		return nil, platform.ErrStatsNotFound
	}

	f.logger.Debugw("fetched geeksforgeeks stats",
		"handle", handle,
		"score", int(info.Score),
		"solved", int(info.TotalProblemsSolved),
	)

	return &platform.NormalizedStats{
		Handle:         handle,
		Rating:         int(info.Score),
		GlobalRank:     int(info.Rank),
		ProblemsSolved: int(info.TotalProblemsSolved),
	}, nil
}
