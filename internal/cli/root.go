package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wallabag2karakeep/internal/audit"
	"github.com/mrlokans/wallabag2karakeep/internal/config"
	"github.com/mrlokans/wallabag2karakeep/internal/converter"
	"github.com/mrlokans/wallabag2karakeep/internal/database"
	"github.com/mrlokans/wallabag2karakeep/internal/database/runs"
	"github.com/mrlokans/wallabag2karakeep/internal/logger"
	"github.com/mrlokans/wallabag2karakeep/internal/services"
	"github.com/mrlokans/wallabag2karakeep/internal/wallabag"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	version    string
	configFile string
	cfg        *config.Config
}

// NewRootCommand builds the wallabag2karakeep command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	root := &cobra.Command{
		Use:   "wallabag2karakeep",
		Short: "Convert wallabag JSON exports to Karakeep",
		Long: `wallabag2karakeep converts a wallabag JSON export into a file Karakeep
can import: either the flat bookmark list accepted by the Omnivore importer
or the request payloads of the Karakeep bookmark API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig(a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (yaml, toml or json)")

	root.AddCommand(
		newConvertCommand(a),
		newValidateCommand(a),
		newHistoryCommand(a),
		newPruneCommand(a),
		newServeCommand(a),
		newScheduleCommand(a),
		newVersionCommand(a),
	)

	return root
}

// Execute runs the command tree and prints a failure as a single line.
// It returns the process exit code.
func Execute(version string, args []string, stderr io.Writer) int {
	root := NewRootCommand(version)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		st := newStyles(stderr)
		fmt.Fprintln(stderr, st.err.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

// configOptions turns the Convert config group into conversion options.
func (a *app) configOptions() services.Options {
	return services.Options{
		Format:        services.Format(a.cfg.Convert.Format),
		DedupMode:     converter.DedupMode(a.cfg.Convert.DedupMode),
		TagsMode:      converter.TagsMode(a.cfg.Convert.TagsMode),
		IncludeNotes:  a.cfg.Convert.IncludeNotes,
		MaxNoteLength: a.cfg.Convert.MaxNoteLength,
	}
}

// newLogger honours the configured level first and the -v count second.
func (a *app) newLogger(verbose int) logger.Logger {
	level := a.cfg.Log.Level
	if level == "" {
		level = logger.LevelForVerbosity(verbose)
	}
	return logger.New(level, a.cfg.Log.Pretty)
}

// newRunner wires the conversion pipeline. history and auditDir are
// optional; the returned database is nil when history is off and must be
// closed by the caller otherwise.
func (a *app) newRunner(log logger.Logger, historyPath, auditDir string) (*services.Runner, *database.Database, error) {
	runner := services.NewRunner(wallabag.NewReader(log), services.NewConversionService(log), log)

	if auditDir != "" {
		runner.WithAudit(audit.NewAuditor(auditDir))
	}

	if historyPath == "" {
		return runner, nil, nil
	}

	db, err := database.NewDatabase(historyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history database: %w", err)
	}
	runner.WithHistory(runs.NewRepository(db.DB))

	return runner, db, nil
}
