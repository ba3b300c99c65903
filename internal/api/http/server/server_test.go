package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	srv "github.com/ndanilova/calendar-server/internal/server"
)

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(http.NewServeMux(), ":8080")
	require.NotNil(t, s)
	assert.Equal(t, ":8080", s.Address())
}

func TestHTTPServer_StartAndStop(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := NewHTTPServer(mux, "127.0.0.1:0")

	done := make(chan error, 1)
	go func() {
		done <- s.Start(srv.NewPlainListener())
	}()

	// Give the listener a moment to come up, then shut down.
	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("server did not stop")
	}
}

type failingListener struct{}

func (failingListener) Listen(protocol, addr string) (net.Listener, error) {
	return nil, errors.New("no sockets today")
}

func TestHTTPServer_Start_ListenFailure(t *testing.T) {
	t.Parallel()

	s := NewHTTPServer(http.NewServeMux(), ":8080")

	err := s.Start(failingListener{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
