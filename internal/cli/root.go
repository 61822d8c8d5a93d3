// Package cli wires the stop-word loader, indexer, ranker and reporter into
// the wordindex command.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/ranker"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/report"
	"github.com/Adithya-Monish-Kumar-K/wordindex/internal/stopwords"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/wordindex/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/metrics"
	"github.com/Adithya-Monish-Kumar-K/wordindex/pkg/tracing"
)

type options struct {
	configPath  string
	stopWords   []string
	short       bool
	top         int
	metricsFile string
	logLevel    string
	logFormat   string
}

// NewCommand builds the root command. The report is written to stdout and
// logs to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "wordindex [flags] textfile",
		Short: "Index the words of a text file and report the most frequent ones",
		Long: `wordindex reads a text file, records the line and column of every word
(case-insensitive, stop words removed) and prints the words ranked by how
often they occur. Ties are broken alphabetically.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return apperrors.InvalidArgument("expected exactly one textfile, got %d arguments", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, args[0], stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&opts.stopWords, "stopwords", "w", nil, "file with one stop word per line (repeatable)")
	flags.BoolVarP(&opts.short, "short", "s", false, "print only each word and its number of occurrences")
	flags.IntVarP(&opts.top, "top", "t", 0, "number of most frequent words to print (default all)")
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format to this path")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperrors.InvalidArgument("%v", err)
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// Execute runs the command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return apperrors.ExitOK
	}
	fmt.Fprintf(stderr, "wordindex: %v\n", err)
	code := apperrors.ExitCode(err)
	if code == apperrors.ExitUsage {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	return code
}

// resolveConfig layers explicitly set flags over the config file and
// environment.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("stopwords") {
		cfg.StopWords.Paths = opts.stopWords
	}
	if flags.Changed("short") {
		cfg.Report.Mode = report.ModeDetailed.String()
		if opts.short {
			cfg.Report.Mode = report.ModeShort.String()
		}
	}
	if flags.Changed("top") {
		top := opts.top
		cfg.Report.Top = &top
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile = opts.metricsFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, textfile string, stdout, stderr io.Writer) error {
	logger.Setup(stderr, cfg.Logging.Level, cfg.Logging.Format)

	ctx, root := tracing.Start(ctx, "wordindex")
	ctx = logger.WithRunID(ctx, root.TraceID)
	log := logger.FromContext(ctx).With("component", "cli")
	m := metrics.New()

	mode, err := report.ParseMode(cfg.Report.Mode)
	if err != nil {
		return err
	}

	var stop stopwords.Set
	err = stage(ctx, m, "load_stopwords", func() error {
		stop, err = stopwords.LoadAll(ctx, cfg.StopWords.Paths, cfg.StopWords.MaxParallel)
		return err
	})
	if err != nil {
		return err
	}
	m.StopWordFilesTotal.Add(float64(len(cfg.StopWords.Paths)))
	m.StopWordsLoaded.Set(float64(stop.Len()))

	var idx *index.WordIndex
	err = stage(ctx, m, "build_index", func() error {
		builder := indexer.NewBuilder(cfg.Indexer, stop,
			indexer.WithMetrics(m),
			indexer.WithLogger(logger.FromContext(ctx).With("component", "indexer")),
		)
		idx, err = builder.BuildFile(textfile)
		return err
	})
	if err != nil {
		return err
	}

	var entries []index.Entry
	err = stage(ctx, m, "rank", func() error {
		if cfg.Report.Top == nil {
			entries = ranker.All(idx)
		} else {
			entries = ranker.TopK(idx, *cfg.Report.Top)
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = stage(ctx, m, "render", func() error {
		return report.NewRenderer(stdout).Render(entries, mode)
	})
	if err != nil {
		return err
	}

	root.SetAttr("distinct_words", idx.Len())
	root.SetAttr("reported", len(entries))
	root.End()
	root.Log(log)

	if cfg.Metrics.Textfile != "" {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Warn("metrics export failed", "path", cfg.Metrics.Textfile, "error", err)
		}
	}
	return nil
}

// stage runs fn inside a child span and records its latency.
func stage(ctx context.Context, m *metrics.Metrics, name string, fn func() error) error {
	_, span := tracing.Start(ctx, name)
	err := fn()
	span.End()
	m.ObserveStage(name, span.StartTime)
	if err != nil {
		logger.FromContext(ctx).Debug("stage failed", "stage", name, "error", err)
	}
	return err
}
