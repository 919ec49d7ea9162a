package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
)

const (
	resultsBuffer   = 4
	shutdownTimeout = 3 * time.Second
)

type Listener struct {
	address string
	server  *http.Server
	results chan url.Values

	logger *logger.Logger
}

func NewListener(address string, logger *logger.Logger) *Listener {
	l := &Listener{
		address: address,
		results: make(chan url.Values, resultsBuffer),
		logger:  logger,
	}
	l.server = &http.Server{
		Addr:              address,
		Handler:           l.Init(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info().Str("address", address).Msg("callback listener created")
	return l
}

// Results delivers the query of every accepted redirect.
func (l *Listener) Results() <-chan url.Values {
	return l.results
}

// Run serves until ctx is cancelled, then shuts the server down.
func (l *Listener) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", l.address)
	if err != nil {
		return fmt.Errorf("callback listener on %s: %w", l.address, err)
	}
	l.logger.Info().Str("address", ln.Addr().String()).Msg("callback listener started")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- l.server.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err = l.server.Shutdown(shutdownCtx); err != nil {
			l.logger.Err(err).Msg("callback listener shutdown")
			return err
		}
		<-serveErr
		l.logger.Info().Msg("callback listener stopped")
		return nil
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
