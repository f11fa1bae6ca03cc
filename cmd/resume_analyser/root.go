package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/lachho/resume/internal/analysis"
	"github.com/lachho/resume/internal/config"
	"github.com/lachho/resume/internal/lexicon"
	"github.com/lachho/resume/internal/logging"
	"github.com/lachho/resume/internal/observability"
)

const tracingShutdownTimeout = 5 * time.Second

// cli carries the persistent flags and the runtime built from them
type cli struct {
	configPath  string
	lexiconPath string
	logLevel    string
	logFormat   string
	trace       bool

	cfg             config.Config
	logger          *slog.Logger
	lex             *lexicon.Lexicon
	shutdownTracing func(context.Context) error
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "resume_analyser",
		Short: "Deterministic resume analysis",
		Long: "resume_analyser scores a resume for ATS compatibility, content quality and section coverage, " +
			"and matches it against reference job requirements. It works offline and is fully deterministic.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.setup,
		PersistentPostRunE: c.teardown,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "Path to a JSON or YAML config file")
	flags.StringVar(&c.lexiconPath, "lexicon", "", "Path to a lexicon JSON file replacing the built-in tables")
	flags.StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn or error (default warn)")
	flags.StringVar(&c.logFormat, "log-format", "", "Log format: text or json (default text)")
	flags.BoolVar(&c.trace, "trace", false, "Write OpenTelemetry spans to stderr")

	rootCmd.AddCommand(
		newAnalyseCmd(c),
		newMatchJobCmd(c),
		newBatchCmd(c),
		newWatchCmd(c),
		newLexiconCmd(c),
	)

	return rootCmd
}

// setup merges flags over the config file and environment, then builds the logger, lexicon and tracer
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	fileCfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	flagCfg := config.Config{
		Lexicon:   c.lexiconPath,
		LogLevel:  c.logLevel,
		LogFormat: c.logFormat,
		Trace:     c.trace,
	}
	merged := fileCfg.MergeWithDefaults(config.Defaults())
	c.cfg = flagCfg.MergeWithDefaults(merged)

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.logger, err = logging.New(c.cfg.LogLevel, c.cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	c.lex = lexicon.Default()
	if c.cfg.Lexicon != "" {
		c.lex, err = lexicon.Load(c.cfg.Lexicon)
		if err != nil {
			return fmt.Errorf("failed to load lexicon: %w", err)
		}
		c.logger.Debug("lexicon loaded", "path", c.cfg.Lexicon)
	}

	if c.cfg.Trace {
		c.shutdownTracing, err = observability.SetupTracing(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *cli) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.LoadConfig(c.configPath)
	}
	return config.LoadEnv()
}

// teardown flushes spans. It still runs after an interrupt has cancelled the command context.
func (c *cli) teardown(cmd *cobra.Command, _ []string) error {
	if c.shutdownTracing == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), tracingShutdownTimeout)
	defer cancel()
	return c.shutdownTracing(ctx)
}

// orchestrator builds an orchestrator wired to the CLI logger
func (c *cli) orchestrator(opts ...analysis.Option) *analysis.Orchestrator {
	return analysis.New(c.lex, append([]analysis.Option{analysis.WithLogger(c.logger)}, opts...)...)
}

// outputFormat resolves a command's --format flag against the configured default
func (c *cli) outputFormat(flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = c.cfg.Format
	}
	switch format {
	case formatJSON, formatText, formatMarkdown:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json, text or markdown)", format)
	}
}
