package cli

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mrlokans/wallabag2karakeep/internal/entrypoint"
	"github.com/mrlokans/wallabag2karakeep/internal/http"
)

func newServeCommand(a *app) *cobra.Command {
	var (
		host    string
		port    int32
		verbose int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion service",
		Long: `Run an HTTP server that converts wallabag exports on request.

  POST /api/v1/convert   body: wallabag export, query: format, dedup,
                         tags_mode, include_notes, max_note_length
  GET  /health           service and history database status

Runs are recorded in the history database when history is enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			defaults := a.configOptions()
			if err := validateOptions(defaults); err != nil {
				return err
			}

			httpCfg := a.cfg.HTTP
			if cmd.Flags().Changed("host") {
				httpCfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				httpCfg.Port = port
			}

			// serve logs requests, so it starts at info
			log := a.newLogger(max(verbose, 1))
			defer func() { _ = log.Sync() }()

			runner, db, err := a.newRunner(log, a.cfg.HistoryPath(), a.cfg.Audit.Dir)
			if err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			router := http.NewRouter(http.RouterConfig{
				Runner:   runner,
				Defaults: defaults,
				DB:       db,
				Version:  a.version,
				Log:      log,
			})

			return entrypoint.Serve(cmd.Context(), router, httpCfg, log, func(context.Context) {
				if db != nil {
					if err := db.Close(); err != nil {
						log.Errorf("Failed to close history database: %v", err)
					}
				}
			})
		},
	}

	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "address to listen on")
	cmd.Flags().Int32Var(&port, "port", 8189, "port to listen on")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "increase verbosity (-vv debug)")

	return cmd
}
