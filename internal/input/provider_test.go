package input

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/store"
	"aoc/pkg/logx"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(store.Options{
		CacheDir:  t.TempDir(),
		ConfigDir: t.TempDir(),
		DataDir:   t.TempDir(),
	})
	require.NoError(t, err)
	return s
}

func TestFetchPrefersCache(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SavePuzzleInput(2021, 1, "cached input"))

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	p := New(st, logx.Nop(), WithBaseURL(srv.URL))
	input, err := p.Fetch(context.Background(), 2021, 1)
	require.NoError(t, err)
	assert.Equal(t, "cached input", input)
	assert.Zero(t, hits.Load(), "cache hits never touch the network")
}

func TestFetchDownloadsAndCaches(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SaveSessionCookie("my-session"))

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/2021/day/1/input", r.URL.Path)
		assert.Equal(t, "session=my-session", r.Header.Get("Cookie"))
		_, _ = w.Write([]byte("199\n200\n208\n"))
	}))
	defer srv.Close()

	p := New(st, logx.Nop(), WithBaseURL(srv.URL))

	input, err := p.Fetch(context.Background(), 2021, 1)
	require.NoError(t, err)
	assert.Equal(t, "199\n200\n208\n", input)

	// Second fetch is served from the cache.
	input, err = p.Fetch(context.Background(), 2021, 1)
	require.NoError(t, err)
	assert.Equal(t, "199\n200\n208\n", input)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetchWithoutCookieFails(t *testing.T) {
	st := openTestStore(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected without a cookie")
	}))
	defer srv.Close()

	p := New(st, logx.Nop(), WithBaseURL(srv.URL))
	_, err := p.Fetch(context.Background(), 2021, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestFetchNotFound(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SaveSessionCookie("my-session"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	p := New(st, logx.Nop(), WithBaseURL(srv.URL))
	_, err := p.Fetch(context.Background(), 2021, 25)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchServerErrorMentionsLogin(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SaveSessionCookie("stale"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// adventofcode.com answers HTTP 400 on stale cookies.
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	p := New(st, logx.Nop(), WithBaseURL(srv.URL))
	_, err := p.Fetch(context.Background(), 2021, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, "HTTP 400")
	assert.ErrorContains(t, err, "are you logged in?")
}

func TestFetchFailureDoesNotPoisonCache(t *testing.T) {
	st := openTestStore(t)
	require.NoError(t, st.SaveSessionCookie("my-session"))

	fail := atomic.Bool{}
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("good input"))
	}))
	defer srv.Close()

	p := New(st, logx.Nop(), WithBaseURL(srv.URL))

	_, err := p.Fetch(context.Background(), 2021, 1)
	require.Error(t, err)

	fail.Store(false)
	input, err := p.Fetch(context.Background(), 2021, 1)
	require.NoError(t, err)
	assert.Equal(t, "good input", input)
}
