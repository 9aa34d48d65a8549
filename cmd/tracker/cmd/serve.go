package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/soapboxsocial/tracker/pkg/analytics"
	httputil "github.com/soapboxsocial/tracker/pkg/http"
	"github.com/soapboxsocial/tracker/pkg/http/middlewares"
)

var serve = &cobra.Command{
	Use:   "serve",
	Short: "runs the tracking http endpoint",
	RunE:  runServe,
}

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := setup(ctx)
	if err != nil {
		return err
	}

	router := analytics.NewEndpoint(a.Tracker).Router()

	amw := middlewares.NewAuthenticationMiddleware(a.Tracker.Token())
	router.Use(amw.Middleware)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", a.Config.HTTP.Host, a.Config.HTTP.Port),
		Handler: httputil.CORS(router),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("listening")

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "failed to serve")
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := a.Tracker.Flush(shutdown)
		if err != nil {
			log.Error().Err(err).Msg("failed to flush")
		}

		return server.Shutdown(shutdown)
	})

	return g.Wait()
}
