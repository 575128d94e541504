package main

import (
	"context"
	"net/http"
	"time"

	"github.com/aretw0/dpda/internal/cli"
	httpAdapter "github.com/aretw0/dpda/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve <definition>",
	Short: "Serve sessions of an automaton over HTTP",
	Long: `Starts an HTTP server where each session is an independent run of the
automaton. Sessions live in the configured store (memory, file or redis). The API is
described at /openapi.yaml and browsable at /swagger.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			app.Config.HTTP.Addr, _ = cmd.Flags().GetString("addr")
		}

		a, err := app.Load(args[0])
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(cmd.Context())
		defer ctx.Cancel()

		manager, closeStore, err := app.NewManager(ctx, a)
		if err != nil {
			return err
		}
		defer closeStore()

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(app.Logger),
			httpAdapter.WithVerdictObserver(app.ObserveVerdict),
		}
		if app.Metrics != nil {
			opts = append(opts, httpAdapter.WithMetrics(app.Config.Metrics.Path, app.Registry))
		}

		srv := &http.Server{
			Addr:    app.Config.HTTP.Addr,
			Handler: httpAdapter.NewHandler(manager, opts...),
		}

		serverErrors := make(chan error, 1)
		go func() {
			app.Logger.Info("dpda server listening", "addr", srv.Addr, "definition", args[0])
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			return err
		case <-ctx.Done():
			app.Logger.Info("shutting down", "signal", ctx.Signal())

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				app.Logger.Warn("graceful shutdown did not complete", "error", err)
				return srv.Close()
			}
			app.Logger.Info("dpda server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (overrides config)")
}
