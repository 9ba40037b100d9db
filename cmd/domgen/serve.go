package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/domgen/internal/service"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the compile service",
		Long: `Serve the compiler over HTTP.

Routes:
  POST /v1/compile   compile one document, respond with Go source
  GET  /v1/stream    WebSocket, one document per message
  GET  /metrics      Prometheus metrics
  GET  /healthz      liveness

Examples:
  domgen serve
  domgen serve --addr :7070`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				if flags.set == nil {
					flags.set = make(map[string]string)
				}
				flags.set["serve.addr"] = addr
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}

			svc, err := service.New(cfg, service.WithLogger(slog.Default()))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			success("Serving on http://%s", cfg.Serve.Addr)
			return svc.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from domgen.json)")

	return cmd
}
