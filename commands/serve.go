package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hotel-admin/controllers"
	"hotel-admin/routes"
)

// ServeCmd runs the admin gateway HTTP server.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the admin gateway HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}

			router := routes.SetupRouter(
				controllers.NewManageController(a.registry),
				controllers.NewEmployeeController(a.conversion),
				controllers.NewSearchController(a.search),
				controllers.NewStatsController(a.stats),
				a.cfg.CORSOrigins,
				a.log,
			)

			srv := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           router,
				ReadTimeout:       10 * time.Second,
				ReadHeaderTimeout: 5 * time.Second,
				WriteTimeout:      20 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				a.log.Info("gateway listening on %s, backend %s", srv.Addr, a.cfg.BackendURL)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errc <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errc:
				return err
			case <-quit:
			}
			a.log.Info("shutdown signal received")

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			a.log.Info("server stopped")
			return nil
		},
	}
}
