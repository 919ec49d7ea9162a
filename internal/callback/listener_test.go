package callback

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListener_RunStopsOnCancel(t *testing.T) {
	l := NewListener("127.0.0.1:0", logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * shutdownTimeout):
		t.Fatal("listener did not stop")
	}
}

func TestListener_RunAddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	l := NewListener(busy.Addr().String(), logger.Nop())
	err = l.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callback listener on")
}
