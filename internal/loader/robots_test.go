package loader

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotsChecker_CanFetch(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		hits.Add(1)
		_, _ = fmt.Fprint(w, "User-agent: contractlens\nDisallow: /drafts\nCrawl-delay: 1\n\nUser-agent: *\nDisallow: /\n")
	}))
	defer server.Close()

	checker := NewRobotsChecker("contractlens/0.1 (+https://example.com)", 5*time.Second)
	ctx := context.Background()

	allowed, delay, err := checker.CanFetch(ctx, server.URL+"/contracts/lease.pdf")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, time.Second, delay)

	allowed, _, err = checker.CanFetch(ctx, server.URL+"/drafts/nda.pdf")
	require.NoError(t, err)
	assert.False(t, allowed)

	assert.Equal(t, int32(1), hits.Load(), "rules are cached per host")

	checker.Clear()
	_, _, err = checker.CanFetch(ctx, server.URL)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	allowed, delay, err := NewRobotsChecker("contractlens", time.Second).CanFetch(context.Background(), server.URL+"/any")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, delay)
}

func TestRobotsChecker_UnreachableAllows(t *testing.T) {
	allowed, _, err := NewRobotsChecker("contractlens", 100*time.Millisecond).CanFetch(context.Background(), "http://127.0.0.1:1/x")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestProductToken(t *testing.T) {
	assert.Equal(t, "contractlens", productToken("contractlens/0.1 (+https://github.com/ppiankov/contractlens)"))
	assert.Equal(t, "", productToken(""))
}
