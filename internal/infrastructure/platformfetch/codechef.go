package platformfetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"codecampus/internal/domain/platform"
	"codecampus/internal/shared/logger"
)

const codechefBaseURL = "https://www.codechef.com"

// codechefSignupMarker appears on the signup page CodeChef serves instead of
// a profile when the handle does not exist.
const codechefSignupMarker = "New to CodeChef?"

var parenthesizedNumberRe = regexp.MustCompile(`\((\d+)\)`)

// CodeChefFetcher retrieves CodeChef statistics by scraping the public
// profile page. CodeChef has no stats API; the profile markup is the only
// source, so every selector here is lenient and missing sections read as
// zero.
type CodeChefFetcher struct {
	httpClient *http.Client
	logger     logger.Interface
	baseURL    string
}

// NewCodeChefFetcher creates a new CodeChef stats fetcher
func NewCodeChefFetcher(log logger.Interface) *CodeChefFetcher {
	return &CodeChefFetcher{
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
		baseURL:    codechefBaseURL,
	}
}

var _ platform.StatsFetcher = (*CodeChefFetcher)(nil)

// Fetch retrieves the user's rating, global rank and fully solved count.
func (f *CodeChefFetcher) Fetch(ctx context.Context, handle string) (*platform.NormalizedStats, error) {
	endpoint := fmt.Sprintf("%s/users/%s", f.baseURL, url.PathEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch codechef profile: %w", err)
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

	// Unknown handles answer 200 with the signup page.
	if strings.Contains(string(body), codechefSignupMarker) {
		return nil, platform.ErrStatsNotFound
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile page: %w", err)
	}

	rating := parseLeadingInt(doc.Find(".rating-number").First().Text())
	globalRank := parseLeadingInt(doc.Find(".rating-ranks strong").First().Text())
	solved := f.parseFullySolved(doc)

	f.logger.Debugw("fetched codechef stats",
		"handle", handle,
		"rating", rating,
		"solved", solved,
	)

	return &platform.NormalizedStats{
		Handle:         handle,
		Rating:         rating,
		GlobalRank:     globalRank,
		ProblemsSolved: solved,
	}, nil
}

// parseFullySolved finds the "Fully Solved (N)" heading in the problems
// section. Newer profile layouts use "Total Problems Solved: N" instead.
func (f *CodeChefFetcher) parseFullySolved(doc *goquery.Document) int {
	solved := 0
	doc.Find("h5").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, "Fully Solved") {
			return true
		}
		if m := parenthesizedNumberRe.FindStringSubmatch(text); m != nil {
			solved, _ = strconv.Atoi(m[1])
		}
		return false
	})
	if solved > 0 {
		return solved
	}

	doc.Find("h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, "Total Problems Solved") {
			return true
		}
		if idx := strings.LastIndex(text, ":"); idx >= 0 {
			solved = parseLeadingInt(text[idx+1:])
		}
		return false
	})
	return solved
}

// parseLeadingInt reads the first run of digits in s, skipping leading
// non-digit characters. Returns zero when s contains no digits.
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, _ := strconv.Atoi(s[start:end])
	return n
}
