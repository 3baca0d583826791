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

func TestHackerRankFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/rest/hackers/asha/badges")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models":[
			{"badge_name":"Problem Solving","stars":4,"solved":30},
			{"badge_name":"Java","stars":2,"solved":12},
			{"badge_name":"SQL","stars":0,"solved":7},
			{"badge_name":"30 Days of Code","stars":1}
		]}`))
	}))
	defer server.Close()

	f := NewHackerRankFetcher(logger.NewLogger())
	f.baseURL = server.URL

	stats, err := f.Fetch(context.Background(), "asha")
	assert.NoError(t, err)
	assert.Equal(t, 49, stats.ProblemsSolved, "solved sums across badges, missing fields count zero")
	assert.Equal(t, 350, stats.Rating, "rating is total stars times fifty")
	assert.True(t, stats.Unranked)
}

func TestHackerRankFetchNoStars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models":[{"badge_name":"Problem Solving","stars":0,"solved":7}]}`))
	}))
	defer server.Close()

	f := NewHackerRankFetcher(logger.NewLogger())
	f.baseURL = server.URL

	stats, err := f.Fetch(context.Background(), "asha")
	assert.NoError(t, err)
	assert.Equal(t, 7, stats.ProblemsSolved)
	assert.Equal(t, 10, stats.Rating, "a starless profile still gets the floor rating")
}

func TestHackerRankFetchNoBadges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models":[]}`))
	}))
	defer server.Close()

	f := NewHackerRankFetcher(logger.NewLogger())
	f.baseURL = server.URL

	stats, err := f.Fetch(context.Background(), "asha")
	assert.NoError(t, err, "an existing profile with zero badges is not a missing profile")
	assert.Equal(t, 0, stats.ProblemsSolved)
	assert.Equal(t, 10, stats.Rating)
}

func TestHackerRankFetchUnknownHandle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer server.Close()

	f := NewHackerRankFetcher(logger.NewLogger())
	f.baseURL = server.URL

	_, err := f.Fetch(context.Background(), "nobody")
	assert.ErrorIs(t, err, platform.ErrStatsNotFound, "a body without the models key means no profile")
}
