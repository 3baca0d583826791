package platformfetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"codecampus/internal/domain/platform"
	"codecampus/internal/shared/logger"
)

func gfgPage(nextData string) string {
	return `<html><body><div id="root"></div>` +
		`<script id="__NEXT_DATA__" type="application/json">` + nextData + `</script>` +
		`</body></html>`
}

func TestGeeksForGeeksFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/user/asha/")
		// The payload mixes numeric and quoted-numeric fields.
		w.Write([]byte(gfgPage(`{"props":{"pageProps":{"userInfo":{
			"score": 685,
			"monthly_score": "42",
			"total_problems_solved": "198",
			"rank": 12
		}}}}`)))
	}))
	defer server.Close()

	f := NewGeeksForGeeksFetcher(logger.NewLogger())
	f.baseURL = server.URL

	stats, err := f.Fetch(context.Background(), "asha")
	assert.NoError(t, err)
	assert.Equal(t, 685, stats.Rating)
	assert.Equal(t, 198, stats.ProblemsSolved)
	assert.Equal(t, 12, stats.GlobalRank)
}

func TestGeeksForGeeksFetchMissingUserInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(gfgPage(`{"props":{"pageProps":{}}}`)))
	}))
	defer server.Close()

	f := NewGeeksForGeeksFetcher(logger.NewLogger())
	f.baseURL = server.URL

	_, err := f.Fetch(context.Background(), "nobody")
	assert.ErrorIs(t, err, platform.ErrStatsNotFound)
}

func TestGeeksForGeeksFetchNoNextData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>plain page</body></html>`))
	}))
	defer server.Close()

	f := NewGeeksForGeeksFetcher(logger.NewLogger())
	f.baseURL = server.URL

	_, err := f.Fetch(context.Background(), "nobody")
	assert.ErrorIs(t, err, platform.ErrStatsNotFound)
}

func TestFlexInt(t *testing.T) {
	var target struct {
		A flexInt `json:"a"`
		B flexInt `json:"b"`
		C flexInt `json:"c"`
		D flexInt `json:"d"`
	}

	err := json.Unmarshal([]byte(`{"a": 7, "b": "13", "c": null, "d": "1,234"}`), &target)
	assert.NoError(t, err)
	assert.Equal(t, flexInt(7), target.A)
	assert.Equal(t, flexInt(13), target.B)
	assert.Equal(t, flexInt(0), target.C)
	assert.Equal(t, flexInt(1234), target.D)
}
