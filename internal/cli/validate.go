package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wallabag2karakeep/internal/wallabag"
)

// exportSummary counts what a wallabag export contains.
type exportSummary struct {
	Total           int
	Invalid         int
	WithURL         int
	WithTags        int
	WithAnnotations int
	Archived        int
	Starred         int
}

func summarize(read wallabag.ReadResult) exportSummary {
	s := exportSummary{Total: len(read.Entries), Invalid: len(read.Skipped)}
	for _, e := range read.Entries {
		if e.URL != "" {
			s.WithURL++
		}
		if len(e.Tags) > 0 {
			s.WithTags++
		}
		if len(e.Annotations) > 0 {
			s.WithAnnotations++
		}
		if e.IsArchived {
			s.Archived++
		}
		if e.IsStarred {
			s.Starred++
		}
	}
	return s
}

func (s exportSummary) rows() [][]string {
	rows := [][]string{
		{"Total entries", strconv.Itoa(s.Total)},
		{"Valid URLs", strconv.Itoa(s.WithURL)},
		{"With tags", strconv.Itoa(s.WithTags)},
		{"With annotations", strconv.Itoa(s.WithAnnotations)},
		{"Archived", strconv.Itoa(s.Archived)},
		{"Starred", strconv.Itoa(s.Starred)},
	}
	if s.Invalid > 0 {
		rows = append(rows, []string{"Invalid records", strconv.Itoa(s.Invalid)})
	}
	return rows
}

func newValidateCommand(a *app) *cobra.Command {
	var (
		input   string
		verbose int
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a wallabag export and show what it contains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(input); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file not found: %s", input)
			}

			log := a.newLogger(verbose)
			defer func() { _ = log.Sync() }()

			read, err := wallabag.NewReader(log).ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}

			summary := summarize(read)
			st := newStyles(cmd.OutOrStderr())

			cmd.Println(st.title.Render("Wallabag Export Summary"))
			cmd.Println(st.table([]string{"Metric", "Count"}, summary.rows(), 1))

			if missing := summary.Total - summary.WithURL; missing > 0 {
				cmd.Println(st.warning.Render(fmt.Sprintf("Warning: %d entries have missing or empty URLs.", missing)))
			} else {
				cmd.Println(st.success.Render("All entries are valid."))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "wallabag JSON export to check")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "increase verbosity (-v info, -vv debug)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
