package rest

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-client/internal/metrics"
)

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.Rollback()

	server := httptest.NewServer(Handler(reg))
	defer server.Close()

	t.Run("Ping answers pong", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pong", string(body))
	})

	t.Run("Metrics exposes client counters", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "tictactoe_client_rollbacks_total 1")
	})
}

func TestServer_Start(t *testing.T) {
	t.Run("Stops when the context is cancelled", func(t *testing.T) {
		// Given: a free local port
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		addr := listener.Addr().String()
		require.NoError(t, listener.Close())

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		server := New(logger, addr, prometheus.NewRegistry())

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- server.Start(ctx) }()

		// When: the server is up and the context is cancelled
		require.Eventually(t, func() bool {
			resp, err := http.Get("http://" + addr + "/ping")
			if err != nil {
				return false
			}
			resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 2*time.Second, 20*time.Millisecond)
		cancel()

		// Then: Start returns without error
		select {
		case err = <-done:
			require.NoError(t, err)
		case <-time.After(shutdownTimeout + time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("Reports a busy address", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer listener.Close()

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		server := New(logger, listener.Addr().String(), prometheus.NewRegistry())

		err = server.Start(context.Background())

		require.Error(t, err)
	})
}
