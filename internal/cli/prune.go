package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wallabag2karakeep/internal/audit"
	"github.com/mrlokans/wallabag2karakeep/internal/database"
	"github.com/mrlokans/wallabag2karakeep/internal/database/runs"
)

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func newPruneCommand(a *app) *cobra.Command {
	var (
		dbPath    string
		auditDir  string
		olderThan int
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Remove old audit reports and history runs",
		Long: `Remove audit reports and recorded runs older than the retention period.

Without --older-than-days each store uses its own configured retention
(W2K_AUDIT_RETENTION_DAYS, W2K_HISTORY_RETENTION_DAYS).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				dbPath = a.cfg.History.DatabasePath
			}
			if auditDir == "" {
				auditDir = a.cfg.Audit.Dir
			}
			auditDays, historyDays := a.cfg.Audit.RetentionDays, a.cfg.History.RetentionDays
			if cmd.Flags().Changed("older-than-days") {
				auditDays, historyDays = olderThan, olderThan
			}
			if auditDays <= 0 || historyDays <= 0 {
				return errors.New("retention must be at least one day")
			}

			st := newStyles(cmd.OutOrStderr())

			if auditDir != "" {
				removed, err := audit.NewAuditor(auditDir).Prune(days(auditDays))
				if err != nil {
					return err
				}
				cmd.Printf("Removed %s audit reports older than %d days from %s\n",
					st.bold.Render(fmt.Sprint(removed)), auditDays, auditDir)
			}

			if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
				cmd.Println(st.muted.Render("No conversion history at " + dbPath + "."))
				return nil
			}

			db, err := database.NewDatabase(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer db.Close()

			deleted, err := runs.NewRepository(db.DB).DeleteOlderThan(days(historyDays))
			if err != nil {
				return fmt.Errorf("failed to prune history: %w", err)
			}
			cmd.Printf("Removed %s history runs older than %d days from %s\n",
				st.bold.Render(fmt.Sprint(deleted)), historyDays, dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "history-db", "", "SQLite database the runs were recorded in")
	cmd.Flags().StringVar(&auditDir, "audit-dir", "", "directory holding the audit reports")
	cmd.Flags().IntVar(&olderThan, "older-than-days", 30, "retention for both stores, in days")

	return cmd
}
