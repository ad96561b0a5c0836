package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/memefield/internal/config"
	"github.com/vancomm/memefield/internal/middleware"
	"github.com/vancomm/memefield/internal/session"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	log    *logrus.Logger
	cfg    *config.Config
	router *http.ServeMux
	store  *session.Store
	jwt    *config.JWT
	ws     *config.WebSocket
}

func New(log *logrus.Logger, cfg *config.Config, opts ...session.Option) *App {
	a := &App{
		log:    log,
		cfg:    cfg,
		router: http.NewServeMux(),
		store:  session.NewStore(opts...),
		jwt:    config.NewJWT(cfg.TokenSecret, cfg.TokenLifetime),
		ws:     config.NewWebSocket(),
	}
	a.loadRoutes()
	return a
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Token(),
		middleware.Recover(a.log),
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// Run serves until ctx is cancelled or the listener fails, then shuts the
// server down gracefully.
func (a *App) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              a.cfg.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Infof("ready to serve @ %s", a.cfg.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(sCtx)
	})
	g.Go(func() error {
		a.sweep(gCtx)
		return nil
	})

	return g.Wait()
}

func (a *App) sweep(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.store.Sweep(a.cfg.SessionIdle); n > 0 {
				a.log.WithFields(logrus.Fields{
					"removed": n,
					"live":    a.store.Len(),
				}).Info("swept idle fields")
			}
		}
	}
}
