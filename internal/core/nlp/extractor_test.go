package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractorNouns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "감자랑 양파로 뭐 해먹지", body.Text)

		json.NewEncoder(w).Encode(map[string][]string{
			"nouns": {"감자", "양파"},
		})
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL, 2*time.Second)
	nouns, err := e.Nouns(context.Background(), "감자랑 양파로 뭐 해먹지")
	require.NoError(t, err)
	assert.Equal(t, []string{"감자", "양파"}, nouns)
}

func TestHTTPExtractorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	e := NewHTTPExtractor(srv.URL, 2*time.Second)
	_, err := e.Nouns(context.Background(), "감자")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPExtractorUnreachable(t *testing.T) {
	e := NewHTTPExtractor("http://127.0.0.1:1", 200*time.Millisecond)
	_, err := e.Nouns(context.Background(), "감자")
	require.Error(t, err)
}

func TestHangulRunExtractor(t *testing.T) {
	e := HangulRunExtractor{}

	nouns, err := e.Nouns(context.Background(), "감자 2개랑 yang-pa, 양파!")
	require.NoError(t, err)
	assert.Equal(t, []string{"감자", "개랑", "양파"}, nouns)
}

func TestHangulRunExtractorSkipsSingleSyllable(t *testing.T) {
	e := HangulRunExtractor{}

	nouns, err := e.Nouns(context.Background(), "밥 좀 줘 감자탕")
	require.NoError(t, err)
	assert.Equal(t, []string{"감자탕"}, nouns)
}

func TestHangulRunExtractorEmpty(t *testing.T) {
	e := HangulRunExtractor{}

	nouns, err := e.Nouns(context.Background(), "abc 123")
	require.NoError(t, err)
	assert.Empty(t, nouns)
}
