package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wallabag2karakeep/internal/database"
	"github.com/mrlokans/wallabag2karakeep/internal/database/runs"
	"github.com/mrlokans/wallabag2karakeep/internal/entities"
)

func newHistoryCommand(a *app) *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversion runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dbPath == "" {
				dbPath = a.cfg.History.DatabasePath
			}

			st := newStyles(cmd.OutOrStderr())
			if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
				cmd.Println(st.muted.Render("No conversion history at " + dbPath + "."))
				return nil
			}

			db, err := database.NewDatabase(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer db.Close()

			repo := runs.NewRepository(db.DB)
			list, err := repo.ListRuns(limit)
			if err != nil {
				return err
			}
			if len(list) == 0 {
				cmd.Println(st.muted.Render("No conversion runs recorded yet."))
				return nil
			}

			cmd.Println(st.title.Render("Conversion History"))
			cmd.Println(st.table(
				[]string{"Run", "When", "Trigger", "Format", "Read", "Converted", "Skipped", "Status"},
				historyRows(list),
				4, 5, 6,
			))

			succeeded, err := repo.CountByStatus(entities.RunStatusSuccess)
			if err != nil {
				return err
			}
			failed, err := repo.CountByStatus(entities.RunStatusFailed)
			if err != nil {
				return err
			}
			cmd.Printf("%s succeeded, %s failed in total\n",
				st.success.Render(fmt.Sprint(succeeded)), st.err.Render(fmt.Sprint(failed)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "history-db", "", "SQLite database the runs were recorded in")
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")

	return cmd
}

func historyRows(list []entities.ConversionRun) [][]string {
	rows := make([][]string, 0, len(list))
	for _, run := range list {
		status := string(run.Status)
		if run.DryRun {
			status += " (dry run)"
		}
		rows = append(rows, []string{
			shortID(run.RunID),
			run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			run.Trigger,
			run.Format,
			strconv.Itoa(run.EntriesRead),
			strconv.Itoa(run.Converted),
			strconv.Itoa(run.Skipped),
			status,
		})
	}
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
