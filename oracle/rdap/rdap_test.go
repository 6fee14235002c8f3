package rdap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nameforge/nameforge-go/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckerImplementsInterface(t *testing.T) {
	var _ oracle.Checker = (*Checker)(nil)
}

func TestCheckerName(t *testing.T) {
	assert.Equal(t, "rdap", New(Config{}).Name())
}

func newTestChecker(t *testing.T, handler http.HandlerFunc) *Checker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, TLD: "com"})
}

func TestCheckRegisteredIsTaken(t *testing.T) {
	var gotPath string
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	verdict, err := checker.Check(context.Background(), "shoply")
	require.NoError(t, err)
	assert.Equal(t, oracle.Taken, verdict)
	assert.Equal(t, "/domain/shoply.com", gotPath)
}

func TestCheckNotFoundIsAvailable(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	verdict, err := checker.Check(context.Background(), "shoply")
	require.NoError(t, err)
	assert.Equal(t, oracle.Available, verdict)
}

func TestCheckServerErrorIsUnknown(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	verdict, err := checker.Check(context.Background(), "shoply")
	require.Error(t, err)
	assert.Equal(t, oracle.Unknown, verdict)
}

func TestCheckNetworkFailureIsUnknown(t *testing.T) {
	checker := New(Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

	verdict, err := checker.Check(context.Background(), "shoply")
	require.Error(t, err)
	assert.Equal(t, oracle.Unknown, verdict)
}

func TestCheckHonorsContextCancellation(t *testing.T) {
	checker := newTestChecker(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	verdict, err := checker.Check(ctx, "shoply")
	require.Error(t, err)
	assert.Equal(t, oracle.Unknown, verdict)
}
