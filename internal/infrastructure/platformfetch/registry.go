package platformfetch

import (
	"fmt"

	"codecampus/internal/domain/platform"
	"codecampus/internal/shared/logger"
)

// Registry holds one fetcher per supported platform.
type Registry struct {
	fetchers map[platform.Platform]platform.StatsFetcher
}

// NewRegistry creates a registry with all supported platform fetchers
func NewRegistry(log logger.Interface) *Registry {
	return &Registry{
		fetchers: map[platform.Platform]platform.StatsFetcher{
			platform.LeetCode:      NewLeetCodeFetcher(log.Named("leetcode")),
			platform.Codeforces:    NewCodeforcesFetcher(log.Named("codeforces")),
			platform.CodeChef:      NewCodeChefFetcher(log.Named("codechef")),
			platform.HackerRank:    NewHackerRankFetcher(log.Named("hackerrank")),
			platform.GeeksForGeeks: NewGeeksForGeeksFetcher(log.Named("geeksforgeeks")),
		},
	}
}

// Fetcher returns the fetcher for the given platform.
func (r *Registry) Fetcher(p platform.Platform) (platform.StatsFetcher, error) {
	f, ok := r.fetchers[p]
	if !ok {
		return nil, fmt.Errorf("no fetcher registered for platform %q", p)
	}
	return f, nil
}
