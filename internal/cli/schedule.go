package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wallabag2karakeep/internal/scheduler"
	"github.com/mrlokans/wallabag2karakeep/internal/services"
)

func newScheduleCommand(a *app) *cobra.Command {
	var (
		input    string
		output   string
		schedule string
		runNow   bool
		verbose  int
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Re-run a conversion on a cron schedule",
		Long: `Convert the same wallabag export on a cron schedule until interrupted.

The schedule is a standard five-field cron expression, e.g. "0 * * * *"
for hourly or "30 3 * * *" for every night at 03:30. A failed run is
logged and the next one happens as planned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := a.configOptions()
			if err := validateOptions(opts); err != nil {
				return err
			}

			if input == "" {
				input = a.cfg.Schedule.InputPath
			}
			if output == "" {
				output = a.cfg.Schedule.OutputPath
			}
			if schedule == "" {
				schedule = a.cfg.Schedule.Cron
			}
			if input == "" || output == "" {
				return errors.New("schedule needs an input and an output path")
			}
			if err := scheduler.ValidateCronSchedule(schedule); err != nil {
				return err
			}

			log := a.newLogger(max(verbose, 1))
			defer func() { _ = log.Sync() }()

			runner, db, err := a.newRunner(log, a.cfg.HistoryPath(), a.cfg.Audit.Dir)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sched := scheduler.NewConversionScheduler(runner, services.FileJob{
				InputPath:  input,
				OutputPath: output,
				Options:    opts,
			}, schedule, log)

			if runNow {
				_, _ = sched.RunNow()
			}

			if err := sched.Start(ctx); err != nil {
				return err
			}
			if next := sched.GetNextRunTime(); next != nil {
				st := newStyles(cmd.OutOrStderr())
				cmd.Println(st.muted.Render("Next conversion at " + next.Local().Format("2006-01-02 15:04:05")))
			}

			<-ctx.Done()
			sched.Stop()
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "wallabag JSON export to read on every run")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write on every run")
	cmd.Flags().StringVar(&schedule, "cron", "", `cron schedule (default from config, "0 * * * *")`)
	cmd.Flags().BoolVar(&runNow, "run-now", false, "run once immediately before waiting for the schedule")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "increase verbosity (-vv debug)")

	return cmd
}
