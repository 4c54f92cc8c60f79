package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wallabag2karakeep/internal/converter"
	"github.com/mrlokans/wallabag2karakeep/internal/exporters"
	"github.com/mrlokans/wallabag2karakeep/internal/services"
)

const previewSize = 3

type convertFlags struct {
	input         string
	output        string
	format        string
	dedup         string
	tagsMode      string
	dryRun        bool
	includeNotes  bool
	noNotes       bool
	maxNoteLength int
	verbose       int
	auditDir      string
	historyDB     string
}

func newConvertCommand(a *app) *cobra.Command {
	f := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a wallabag export into a Karakeep import file",
		Long: `Convert a wallabag JSON export into one of two Karakeep formats:

  omnivore  - flat bookmark list for Karakeep's Omnivore importer (default)
  api-json  - bookmark API payloads with the tags to attach under "_tags"

Entries are deduplicated first, by normalized URL unless --dedup says
otherwise. Entries without a valid http(s) URL are skipped.`,
		Example: `  wallabag2karakeep convert -i wallabag.json -o karakeep.json
  wallabag2karakeep convert -i wallabag.json -o api.json -f api-json --tags-mode lowercase
  wallabag2karakeep convert -i wallabag.json -o out.json --dry-run -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, a, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.input, "input", "i", "", "wallabag JSON export to read")
	flags.StringVarP(&f.output, "output", "o", "", "file to write the converted bookmarks to")
	flags.StringVarP(&f.format, "format", "f", string(services.FormatOmnivore), "output format: omnivore or api-json")
	flags.StringVar(&f.dedup, "dedup", string(converter.DedupByURL), "deduplication: url, none, source-id or wallabag-id")
	flags.StringVar(&f.tagsMode, "tags-mode", string(converter.TagsModePreserve), "tag handling: preserve, lowercase or strip")
	flags.BoolVar(&f.dryRun, "dry-run", false, "convert without writing the output file")
	flags.BoolVar(&f.includeNotes, "include-notes", true, "add annotations to the bookmark note (api-json)")
	flags.BoolVar(&f.noNotes, "no-notes", false, "leave the bookmark note out (api-json)")
	flags.IntVar(&f.maxNoteLength, "max-note-length", converter.DefaultMaxNoteLength, "truncate notes longer than this many characters")
	flags.CountVarP(&f.verbose, "verbose", "v", "increase verbosity (-v info, -vv debug)")
	flags.StringVar(&f.auditDir, "audit-dir", "", "directory to save the run report to")
	flags.StringVar(&f.historyDB, "history-db", "", "SQLite database to record the run in")

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	cmd.MarkFlagsMutuallyExclusive("include-notes", "no-notes")

	return cmd
}

// options merges config defaults with the flags that were set explicitly.
func (f *convertFlags) options(cmd *cobra.Command, a *app) (services.Options, error) {
	opts := a.configOptions()

	changed := cmd.Flags().Changed
	if changed("format") {
		opts.Format = services.Format(f.format)
	}
	if changed("dedup") {
		opts.DedupMode = converter.DedupMode(f.dedup)
	}
	if changed("tags-mode") {
		opts.TagsMode = converter.TagsMode(f.tagsMode)
	}
	if changed("include-notes") {
		opts.IncludeNotes = f.includeNotes
	}
	if f.noNotes {
		opts.IncludeNotes = false
	}
	if changed("max-note-length") {
		opts.MaxNoteLength = f.maxNoteLength
	}

	return opts, validateOptions(opts)
}

func validateOptions(opts services.Options) error {
	if !slices.Contains(services.Formats, opts.Format) {
		return fmt.Errorf("invalid format %q, expected one of %v", opts.Format, services.Formats)
	}
	if !slices.Contains(converter.DedupModes, opts.DedupMode) {
		return fmt.Errorf("invalid dedup mode %q, expected one of %v", opts.DedupMode, converter.DedupModes)
	}
	if !slices.Contains(converter.TagsModes, opts.TagsMode) {
		return fmt.Errorf("invalid tags mode %q, expected one of %v", opts.TagsMode, converter.TagsModes)
	}
	if opts.MaxNoteLength < 0 {
		return fmt.Errorf("invalid max note length %d", opts.MaxNoteLength)
	}
	return nil
}

func runConvert(cmd *cobra.Command, a *app, f *convertFlags) error {
	opts, err := f.options(cmd, a)
	if err != nil {
		return err
	}

	if _, err := os.Stat(f.input); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file not found: %s", f.input)
	}

	historyPath := f.historyDB
	if historyPath == "" {
		historyPath = a.cfg.HistoryPath()
	}
	auditDir := f.auditDir
	if auditDir == "" {
		auditDir = a.cfg.Audit.Dir
	}

	log := a.newLogger(f.verbose)
	defer func() { _ = log.Sync() }()

	runner, db, err := a.newRunner(log, historyPath, auditDir)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	report, err := runner.RunFile(services.FileJob{
		InputPath:  f.input,
		OutputPath: f.output,
		Options:    opts,
		DryRun:     f.dryRun,
		Trigger:    services.TriggerCLI,
	})
	if errors.Is(err, services.ErrReadInput) {
		return err
	}

	st := newStyles(cmd.OutOrStderr())
	cmd.Printf("Read %s entries from %s\n", st.bold.Render(fmt.Sprint(report.EntriesRead)), f.input)
	if report.EntriesInvalid > 0 {
		cmd.Println(st.warning.Render(fmt.Sprintf("Skipped %d invalid records", report.EntriesInvalid)))
	}
	cmd.Printf("After dedup (%s): %s entries\n", opts.DedupMode, st.bold.Render(fmt.Sprint(report.EntriesAfterDedup)))
	if err != nil {
		return err
	}

	cmd.Printf("Converted: %s  Skipped: %s\n",
		st.success.Render(fmt.Sprint(report.Converted)),
		st.warning.Render(fmt.Sprint(report.Skipped())))

	if f.dryRun {
		cmd.Println(st.warning.Render("Dry-run mode: no output written."))
		if f.verbose > 0 && report.Converted > 0 {
			cmd.Println(st.muted.Render(fmt.Sprintf("Preview (first %d):", min(previewSize, report.Converted))))
			return exporters.WriteJSON(cmd.OutOrStderr(), report.Preview(previewSize))
		}
		return nil
	}

	cmd.Printf("Written to %s\n", st.success.Render(report.Written.Path))
	return nil
}
