// Package httpapi exposes the daybook services over HTTP/JSON:
// account registration and login, the entry sync endpoints, and
// presigned archive URLs. Typed service errors are mapped to status
// codes here and nowhere else.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/daybook/internal/logging"
	"github.com/dmitrijs2005/daybook/internal/server/archive"
	"github.com/dmitrijs2005/daybook/internal/server/entries"
	"github.com/dmitrijs2005/daybook/internal/server/users"
)

type Server struct {
	address   string
	users     *users.Service
	entries   *entries.Service
	archive   *archive.Service
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *users.Service, es *entries.Service, as *archive.Service, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		entries:   es,
		archive:   as,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
