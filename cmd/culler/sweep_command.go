package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"culler/internal/backup"
	"culler/internal/config"
	"culler/internal/confirm"
	"culler/internal/dedupe"
	"culler/internal/identify"
	"culler/internal/ledger"
	"culler/internal/logging"
	"culler/internal/quality"
	"culler/internal/scanner"
	"culler/internal/sweep"
)

type sweepOptions struct {
	directory     string
	mode          string
	dryRun        bool
	reverse       bool
	preferSmaller bool
	interactive   bool
	fuzzy         bool
	keepExtras    bool
	noBackup      bool
	verbose       bool
	backupPath    string
	trashDir      string
	minSizeMB     float64
	fuzzyRatio    float64
	include       []string
	exclude       []string
}

func newSweepCommand(ctx *commandContext) *cobra.Command {
	opts := sweepOptions{minSizeMB: -1}

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Scan a library, group duplicate releases, and delete the losers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.directory, "directory", "d", "", "Library root to scan (required)")
	cmd.Flags().StringVar(&opts.mode, "mode", "auto", "Content kind: auto, tv, or movie")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would be deleted without touching files")
	cmd.Flags().BoolVar(&opts.reverse, "reverse", false, "Keep the lowest-scoring file instead of the highest")
	cmd.Flags().BoolVar(&opts.preferSmaller, "prefer-smaller", false, "Apply a size penalty so smaller files win ties")
	cmd.Flags().BoolVar(&opts.interactive, "interactive", true, "Prompt before deleting each group (on by default; --interactive=false deletes without asking)")
	cmd.Flags().BoolVar(&opts.fuzzy, "fuzzy", false, "Enable the fuzzy title-similarity pass for movies")
	cmd.Flags().Float64Var(&opts.fuzzyRatio, "fuzzy-threshold", 0, "Similarity ratio for the fuzzy pass (overrides config)")
	cmd.Flags().BoolVar(&opts.keepExtras, "keep-extras", false, "Include files inside extras folders")
	cmd.Flags().Float64Var(&opts.minSizeMB, "min-size-mb", -1, "Minimum movie file size in MB (overrides config)")
	cmd.Flags().StringVar(&opts.backupPath, "backup", "", "Backup manifest path (overrides config)")
	cmd.Flags().StringVar(&opts.trashDir, "trash-dir", "", "Move losers into this directory instead of deleting them")
	cmd.Flags().BoolVar(&opts.noBackup, "no-backup", false, "Skip writing the backup manifest")
	cmd.Flags().StringArrayVar(&opts.include, "include", nil, "Only consider filenames matching this pattern (repeatable)")
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "Skip filenames matching this pattern (repeatable)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	_ = cmd.MarkFlagRequired("directory")

	return cmd
}

func runSweep(cmd *cobra.Command, cmdCtx *commandContext, opts sweepOptions) error {
	switch opts.mode {
	case "auto", "tv", "movie":
	default:
		return fmt.Errorf("unsupported mode %q (want auto, tv, or movie)", opts.mode)
	}

	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.newLogger(opts.verbose)
	if err != nil {
		return err
	}

	if err := cfg.EnsureStateDir(); err != nil {
		return err
	}
	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another culler instance is already running (lock: %s)", cfg.LockPath())
	}
	defer func() { _ = lock.Unlock() }()

	out := cmd.OutOrStdout()
	root := opts.directory

	kind, err := resolveKind(opts.mode, root, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("sweep starting",
		logging.String("root", root),
		logging.String("mode", kind.String()),
		logging.Bool("dry_run", opts.dryRun),
	)

	candidates, err := scanLibrary(root, kind, cfg, opts, logger)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(out, "No media files found.")
		return nil
	}

	scorer := quality.NewScorer(quality.DefaultLexicon().Merge(cfg.Quality.Weights))
	preferSmaller := opts.preferSmaller || cfg.Quality.PreferSmaller
	records := buildRecords(candidates, kind, scorer, preferSmaller, logger)

	groups := groupRecords(records, kind, opts, cfg)
	if len(groups) == 0 {
		fmt.Fprintf(out, "Scanned %d files; no duplicates found.\n", len(candidates))
		return nil
	}

	plans := make([]sweepPlan, 0, len(groups))
	var planned []*dedupe.Record
	for i := range groups {
		keep, drop := dedupe.Resolve(&groups[i], opts.reverse)
		plans = append(plans, sweepPlan{group: &groups[i], keep: keep, drop: drop})
		planned = append(planned, drop...)
	}

	rounded := isTerminal(out)
	for _, plan := range plans {
		fmt.Fprintf(out, "\n%s\n", displayGroupKey(plan.group.Key))
		fmt.Fprintln(out, renderGroupTable(plan, root, rounded))
	}
	fmt.Fprintf(out, "\nFound %d duplicate groups (%d files to delete).\n", len(plans), len(planned))

	if !opts.noBackup && !opts.dryRun {
		backupPath := opts.backupPath
		if backupPath == "" {
			backupPath = cfg.Paths.BackupFile
		}
		if err := backup.Write(backupPath, planned); err != nil {
			return err
		}
		logger.Info("backup manifest written", logging.String("path", backupPath))
	}

	store := openLedger(cfg, logger)
	defer func() { _ = store.Close() }()

	run := ledger.Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Mode:      kind.String(),
		Root:      root,
		DryRun:    opts.dryRun,
		Reverse:   opts.reverse,
	}
	recordRun(store, run, logger)

	outcome := executePlans(cmd, plans, run, store, opts, logger)

	if opts.dryRun {
		fmt.Fprintf(out, "\nDry run: %d files (%s) would be deleted.\n",
			outcome.deleted, humanSize(outcome.reclaimedMB))
		return nil
	}
	fmt.Fprintf(out, "\nDeleted %d files, reclaimed %s.", outcome.deleted, humanSize(outcome.reclaimedMB))
	if outcome.failed > 0 {
		fmt.Fprintf(out, " %d files could not be removed.", outcome.failed)
	}
	fmt.Fprintln(out)
	return nil
}

type sweepPlan struct {
	group *dedupe.Group
	keep  *dedupe.Record
	drop  []*dedupe.Record
}

type sweepOutcome struct {
	deleted     int
	failed      int
	reclaimedMB float64
}

// executePlans walks the confirmed plans and removes their drop sets. With
// interactive set, each group is confirmed on stdin first; dry-run skips
// prompting entirely since nothing is at stake.
func executePlans(cmd *cobra.Command, plans []sweepPlan, run ledger.Run, store *ledger.Store, opts sweepOptions, logger *slog.Logger) sweepOutcome {
	out := cmd.OutOrStdout()
	prompter := confirm.New(cmd.InOrStdin(), out)
	sweeper := sweep.New(sweep.Options{DryRun: opts.dryRun, TrashDir: opts.trashDir}, logger)

	var outcome sweepOutcome
	skipRemaining := false
	for _, plan := range plans {
		if skipRemaining {
			break
		}

		if !opts.dryRun && opts.interactive {
			fmt.Fprintf(out, "\n%s: delete %d of %d files?\n",
				displayGroupKey(plan.group.Key), len(plan.drop), len(plan.group.Members))
			switch prompter.Ask() {
			case confirm.Confirmed:
			case confirm.SkipAll:
				logger.Info("skipping remaining groups")
				skipRemaining = true
				continue
			case confirm.Quit:
				logger.Info("aborted by user")
				return outcome
			default:
				logger.Info("group skipped", logging.String("group", plan.group.Key))
				continue
			}
		}

		for _, rec := range plan.drop {
			result := sweeper.Remove(rec.Path)
			status := "deleted"
			var errText string
			switch {
			case opts.dryRun:
				status = "planned"
			case !result.OK():
				status = "failed"
				errText = joinFailures(result.Failures)
				outcome.failed++
			}
			if status != "failed" {
				outcome.deleted++
				outcome.reclaimedMB += rec.SizeMB
			}
			recordDeletion(store, ledger.Deletion{
				RunID:    run.ID,
				Path:     rec.Path,
				GroupKey: plan.group.Key,
				Score:    rec.Score,
				SizeMB:   rec.SizeMB,
				Status:   status,
				Error:    errText,
			}, logger)
		}
	}
	return outcome
}

// resolveKind applies the --mode flag, sampling the library for auto.
func resolveKind(mode, root string, cfg *config.Config, logger *slog.Logger) (identify.Kind, error) {
	switch mode {
	case "tv":
		return identify.KindTV, nil
	case "movie":
		return identify.KindMovie, nil
	}

	probe, err := scanner.New(scanner.Options{Extensions: cfg.Scan.Extensions}, logger)
	if err != nil {
		return identify.KindMovie, err
	}
	stems := probe.Sample(root, identify.DetectSampleSize)
	kind := identify.DetectKind(stems)
	logger.Info("content kind detected",
		logging.String("kind", kind.String()),
		logging.Int("sampled", len(stems)),
	)
	return kind, nil
}

// scanLibrary runs the filtered walk. The minimum-size filter only applies to
// movie libraries; TV episodes are routinely small and legitimate.
func scanLibrary(root string, kind identify.Kind, cfg *config.Config, opts sweepOptions, logger *slog.Logger) ([]scanner.Candidate, error) {
	minSize := 0.0
	if kind == identify.KindMovie {
		minSize = cfg.Scan.MinSizeMB
		if opts.minSizeMB >= 0 {
			minSize = opts.minSizeMB
		}
	}

	sc, err := scanner.New(scanner.Options{
		Extensions:    cfg.Scan.Extensions,
		ExtrasFolders: cfg.Scan.ExtrasFolders,
		IgnoreExtras:  !opts.keepExtras,
		MinSizeMB:     minSize,
		Include:       opts.include,
		Exclude:       opts.exclude,
	}, logger)
	if err != nil {
		return nil, err
	}
	return sc.Scan(root)
}

// buildRecords parses and scores every candidate. TV files without an episode
// marker carry no usable identity and are dropped with a debug log.
func buildRecords(candidates []scanner.Candidate, kind identify.Kind, scorer *quality.Scorer, preferSmaller bool, logger *slog.Logger) []*dedupe.Record {
	records := make([]*dedupe.Record, 0, len(candidates))
	for _, cand := range candidates {
		base := filepath.Base(cand.Path)
		stem := strings.TrimSuffix(base, filepath.Ext(base))

		rec := &dedupe.Record{
			Path:   cand.Path,
			Kind:   kind,
			Folder: filepath.Dir(cand.Path),
			SizeMB: cand.SizeMB,
		}

		if kind == identify.KindTV {
			ep, ok := identify.ParseEpisode(stem)
			if !ok {
				logger.Debug("no episode marker, skipping", logging.String("path", cand.Path))
				continue
			}
			rec.Series = ep.Series
			rec.Episode = ep.ID
			rec.Quality = ep.Quality
		} else {
			movie := identify.ParseMovie(cand.Path)
			rec.Title = movie.Title
			rec.Year = movie.Year
			rec.MovieID = movie.ID()
			rec.Quality = movie.Quality
			rec.Folder = movie.Folder
		}

		// The quality fragment is scored verbatim; a stem with no release
		// text scores zero rather than letting title words hit the lexicon.
		rec.Score = scorer.Score(rec.Quality, cand.SizeMB, preferSmaller)
		records = append(records, rec)
	}
	return records
}

func groupRecords(records []*dedupe.Record, kind identify.Kind, opts sweepOptions, cfg *config.Config) []dedupe.Group {
	if kind == identify.KindTV {
		return dedupe.GroupEpisodes(records)
	}
	threshold := cfg.Match.FuzzyThreshold
	if opts.fuzzyRatio > 0 {
		threshold = opts.fuzzyRatio
	}
	return dedupe.GroupMovies(records, dedupe.GrouperOptions{
		Fuzzy:          opts.fuzzy,
		FuzzyThreshold: threshold,
	})
}

// openLedger opens the run-history store when enabled. History is auxiliary:
// an unopenable database downgrades to a warning, never a failed sweep.
func openLedger(cfg *config.Config, logger *slog.Logger) *ledger.Store {
	path := cfg.LedgerPath()
	if path == "" {
		return nil
	}
	store, err := ledger.Open(path)
	if err != nil {
		logger.Warn("run history unavailable", logging.String("path", path), logging.Error(err))
		return nil
	}
	return store
}

func recordRun(store *ledger.Store, run ledger.Run, logger *slog.Logger) {
	if store == nil {
		return
	}
	if err := store.RecordRun(context.Background(), run); err != nil {
		logger.Warn("recording run failed", logging.Error(err))
	}
}

func recordDeletion(store *ledger.Store, del ledger.Deletion, logger *slog.Logger) {
	if store == nil {
		return
	}
	if err := store.RecordDeletion(context.Background(), del); err != nil {
		logger.Warn("recording deletion failed", logging.String("path", del.Path), logging.Error(err))
	}
}

func joinFailures(failures []sweep.Failure) string {
	parts := make([]string, 0, len(failures))
	for _, f := range failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Path, f.Err))
	}
	return strings.Join(parts, "; ")
}
