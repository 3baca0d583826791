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

func newCodeforcesTestServer(t *testing.T, infoBody, statusBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/user.info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(infoBody))
	})
	mux.HandleFunc("/user.status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(statusBody))
	})
	return httptest.NewServer(mux)
}

func TestCodeforcesFetch(t *testing.T) {
	info := `{"status":"OK","result":[{"handle":"tourist","rating":3800,"rank":"legendary grandmaster"}]}`
	// Problem 1-A solved twice and once more in a different contest; the
	// rejected 2-B attempt must not count.
	status := `{"status":"OK","result":[
		{"verdict":"OK","problem":{"contestId":1,"index":"A"}},
		{"verdict":"OK","problem":{"contestId":1,"index":"A"}},
		{"verdict":"OK","problem":{"contestId":2,"index":"A"}},
		{"verdict":"WRONG_ANSWER","problem":{"contestId":2,"index":"B"}},
		{"verdict":"OK","problem":{"contestId":1,"index":"B"}}
	]}`

	server := newCodeforcesTestServer(t, info, status)
	defer server.Close()

	f := NewCodeforcesFetcher(logger.NewLogger())
	f.baseURL = server.URL

	stats, err := f.Fetch(context.Background(), "tourist")
	assert.NoError(t, err)
	assert.Equal(t, "tourist", stats.Handle)
	assert.Equal(t, 3800, stats.Rating)
	assert.Equal(t, 3, stats.ProblemsSolved, "resubmissions share a (contest, index) key")
	assert.True(t, stats.Unranked, "textual ranks store no numeric position")
	assert.Equal(t, 0, stats.SafeGlobalRank())
}

func TestCodeforcesFetchUnknownHandle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":"FAILED","comment":"handles: User with handle nobody not found"}`))
	}))
	defer server.Close()

	f := NewCodeforcesFetcher(logger.NewLogger())
	f.baseURL = server.URL

	_, err := f.Fetch(context.Background(), "nobody")
	assert.ErrorIs(t, err, platform.ErrStatsNotFound)
}

func TestCodeforcesFetchSubmissionHistoryDown(t *testing.T) {
	info := `{"status":"OK","result":[{"handle":"tourist","rating":3800,"rank":"legendary grandmaster"}]}`

	mux := http.NewServeMux()
	mux.HandleFunc("/user.info", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(info))
	})
	mux.HandleFunc("/user.status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	f := NewCodeforcesFetcher(logger.NewLogger())
	f.baseURL = server.URL

	stats, err := f.Fetch(context.Background(), "tourist")
	assert.NoError(t, err, "a failing user.status only costs the solved count")
	assert.Equal(t, 3800, stats.Rating)
	assert.Equal(t, 0, stats.ProblemsSolved)
}

func TestCodeforcesFetchSubmissionHistoryFailedStatus(t *testing.T) {
	info := `{"status":"OK","result":[{"handle":"tourist","rating":3800,"rank":"legendary grandmaster"}]}`
	status := `{"status":"FAILED","comment":"user.status temporarily unavailable"}`

	server := newCodeforcesTestServer(t, info, status)
	defer server.Close()

	f := NewCodeforcesFetcher(logger.NewLogger())
	f.baseURL = server.URL

	stats, err := f.Fetch(context.Background(), "tourist")
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.ProblemsSolved)
}

func TestCodeforcesFetchUnratedUser(t *testing.T) {
	info := `{"status":"OK","result":[{"handle":"newbie"}]}`
	status := `{"status":"OK","result":[]}`

	server := newCodeforcesTestServer(t, info, status)
	defer server.Close()

	f := NewCodeforcesFetcher(logger.NewLogger())
	f.baseURL = server.URL

	stats, err := f.Fetch(context.Background(), "newbie")
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Rating, "missing rating reads as zero")
	assert.Equal(t, 0, stats.ProblemsSolved)
}
