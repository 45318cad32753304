package preview

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/logfields"
)

const shutdownTimeout = 5 * time.Second

// Run serves s on addr until ctx is canceled. When watch is set and the site
// reads an external metadata file, changes to that file are reloaded.
func Run(ctx context.Context, s *Server, addr string, watch bool) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.WrapError(err, errors.CategoryRuntime, "failed to listen").
			WithContext("addr", addr).
			Build()
	}
	return Serve(ctx, s, ln, watch)
}

// Serve is Run on an existing listener.
func Serve(ctx context.Context, s *Server, ln net.Listener, watch bool) error {
	if watch && s.site.MetadataPath() != "" {
		w, err := NewMetadataWatcher(s.site.MetadataPath(), s.reloadMetadata)
		if err != nil {
			_ = ln.Close()
			return err
		}
		if err := w.Start(ctx); err != nil {
			_ = ln.Close()
			return err
		}
		defer w.Stop()
	}

	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("Preview server listening", logfields.Addr(ln.Addr().String()), logfields.AppID(s.app.ID()))

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.WrapError(err, errors.CategoryRuntime, "preview server failed").Build()
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down preview server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
	return nil
}

func (s *Server) reloadMetadata() {
	err := s.site.Reload()
	s.recorder.IncMetadataReload(err == nil)
	if err != nil {
		s.logger.Error("Failed to reload component metadata", logfields.Path(s.site.MetadataPath()), logfields.Error(err))
	}
}
