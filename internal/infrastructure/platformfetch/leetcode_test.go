package platformfetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codecampus/internal/domain/platform"
	"codecampus/internal/shared/logger"
)

func TestLeetCodeFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"matchedUser": {
					"username": "asha",
					"profile": {"ranking": 15321, "reputation": 204},
					"submitStatsGlobal": {
						"acSubmissionNum": [
							{"difficulty": "All", "count": 312},
							{"difficulty": "Easy", "count": 150},
							{"difficulty": "Medium", "count": 140},
							{"difficulty": "Hard", "count": 22}
						]
					}
				}
			}
		}`))
	}))
	defer server.Close()

	f := NewLeetCodeFetcher(logger.NewLogger())
	f.apiURL = server.URL

	stats, err := f.Fetch(context.Background(), "asha")
	assert.NoError(t, err)
	assert.Equal(t, "asha", stats.Handle)
	assert.Equal(t, 312, stats.ProblemsSolved, "only the All bucket counts")
	assert.Equal(t, 15321, stats.GlobalRank)
	assert.Equal(t, 204, stats.Rating, "profile reputation stands in for a rating")
	assert.False(t, stats.Unranked)
}

func TestLeetCodeFetchUnknownUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"matchedUser": null}}`))
	}))
	defer server.Close()

	f := NewLeetCodeFetcher(logger.NewLogger())
	f.apiURL = server.URL

	_, err := f.Fetch(context.Background(), "nobody")
	assert.ErrorIs(t, err, platform.ErrStatsNotFound)
}

func TestLeetCodeFetchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	f := NewLeetCodeFetcher(logger.NewLogger())
	f.apiURL = server.URL

	_, err := f.Fetch(context.Background(), "asha")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, platform.ErrStatsNotFound)
}
