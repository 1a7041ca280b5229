// Package cmd wires the findfiles command-line surface to the search core.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harrison/findfiles/internal/config"
	"github.com/harrison/findfiles/internal/display"
	"github.com/harrison/findfiles/internal/executor"
	"github.com/harrison/findfiles/internal/finder"
	"github.com/harrison/findfiles/internal/logger"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for findfiles
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "findfiles <directory> [pattern]",
		Short: "Recursively search directories for files matching a pattern",
		Long: `findfiles walks a directory tree and reports files whose name matches a
DOS wildcard or regular expression, with optional date filtering,
multi-key sorting, and per-file command execution.

The pattern defaults to * when omitted. Matching is case-insensitive; in
name mode the pattern must match the entire filename, while --path tests
the pattern as a substring of the full path.

Defaults are read from .findfiles.yaml in the working directory if
present. CLI flags override configuration file settings.

Examples:
  # All .txt files below the current directory
  findfiles . "*.txt"

  # Shallow search with a regular expression
  findfiles /var/log --regex --shallow "^syslog(\.\d+)?$"

  # Match against the full path instead of the filename
  findfiles src --path "internal"

  # Largest first, then by name
  findfiles . "*.log" --sort -sn

  # Files modified in January 2026
  findfiles . --modified-after 20260101 --modified-before 20260201

  # Run a command per file (%d=directory, %n=name, %f=full path)
  findfiles . "*.bak" --execute "rm %f"

  # Preview the commands without running them
  findfiles . "*.bak" --execute "rm %f" --dry-run

  # Machine-readable output
  findfiles . "*.go" --tab --concise`,
		Version: Version,
		Args:    cobra.RangeArgs(1, 2),
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("regex", "r", false, "Treat pattern as a regular expression instead of a DOS wildcard")
	cmd.Flags().BoolP("shallow", "s", false, "Do not recurse into subdirectories")
	cmd.Flags().BoolP("path", "p", false, "Match the pattern against the full path instead of the filename")
	cmd.Flags().String("sort", "", "Sort order: p=path, n=name, s=size, c=created, m=modified; prefix a letter with - for descending (e.g. -np)")
	cmd.Flags().String("created-after", "", "Keep files created at or after this date/time")
	cmd.Flags().String("created-before", "", "Keep files created before this date/time (exclusive)")
	cmd.Flags().String("modified-after", "", "Keep files modified at or after this date/time")
	cmd.Flags().String("modified-before", "", "Keep files modified before this date/time (exclusive)")
	cmd.Flags().StringP("execute", "x", "", "Command to run per matched file (%d=directory, %n=filename, %f=full path)")
	cmd.Flags().Bool("dry-run", false, "Print the commands that would run instead of running them")
	cmd.Flags().BoolP("tab", "t", false, "Single tab between columns (better for parsing)")
	cmd.Flags().BoolP("concise", "c", false, "Omit header and summary")
	cmd.Flags().BoolP("bare", "b", false, "Print only file paths (implies --concise)")
	cmd.Flags().BoolP("group", "g", false, "Group table output by parent directory")
	cmd.Flags().BoolP("debug", "d", false, "Show detailed debug information during the search")
	cmd.Flags().String("config", "", "Path to config file (default: .findfiles.yaml)")
	cmd.Flags().String("log-dir", "", "Directory for run log files")

	return cmd
}

// pipelineLogger is the logging surface the search pipeline needs. Both
// logger implementations satisfy it.
type pipelineLogger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// runSearch implements the search pipeline: compile, traverse, filter,
// sort, render, and optionally execute.
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")

	log, cleanup, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	root := filepath.Clean(args[0])
	patternSource := "*"
	if len(args) > 1 {
		patternSource = args[1]
	}

	useRegex, _ := cmd.Flags().GetBool("regex")
	shallow, _ := cmd.Flags().GetBool("shallow")
	pathMatch, _ := cmd.Flags().GetBool("path")

	// Pattern and date errors are fail-fast: invalid input never proceeds
	// with a default.
	bounds, err := parseDateBounds(cmd)
	if err != nil {
		return err
	}

	pattern, err := finder.CompilePattern(patternSource, useRegex, pathMatch)
	if err != nil {
		return err
	}

	if debug {
		log.LogDebug(fmt.Sprintf("directory: %s", root))
		log.LogDebug(fmt.Sprintf("pattern: %s (regex=%v, path=%v, shallow=%v)",
			patternSource, useRegex, pathMatch, shallow))
		log.LogDebug(fmt.Sprintf("sort: %s, output: %s", cfg.Sort, cfg.Output))
	}

	start := time.Now()
	records, accessErrs := finder.Traverse(root, pattern, !shallow)

	// Access errors are fail-soft: report and keep going.
	for _, accessErr := range accessErrs {
		log.LogWarn(accessErr.Error())
	}

	records = finder.FilterByDate(records, bounds)
	finder.Sort(records, finder.ParseSortSpec(cfg.Sort))

	log.LogDebug(fmt.Sprintf("matched %d file(s) in %s",
		len(records), time.Since(start).Round(time.Millisecond)))

	renderResults(cmd, cfg, records)

	if execTemplate, _ := cmd.Flags().GetString("execute"); execTemplate != "" {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		runner := &executor.Runner{
			Template: executor.NewTemplate(execTemplate),
			DryRun:   dryRun,
			Verbose:  debug,
			Shell:    cfg.Shell,
			Out:      cmd.OutOrStdout(),
			ErrOut:   cmd.ErrOrStderr(),
			Log:      log,
		}
		if _, err := runner.Run(records); err != nil {
			return err
		}
	}

	return nil
}

// loadConfig loads the YAML configuration and merges explicitly set flags
// over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		cfg, err = config.LoadConfigFromDir(".")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var sortPtr, outputPtr, logLevelPtr, logDirPtr *string
	var groupPtr *bool

	if cmd.Flags().Changed("sort") {
		v, _ := cmd.Flags().GetString("sort")
		sortPtr = &v
	}

	// Output-mode flags beat the configured default; bare wins over tab.
	if bare, _ := cmd.Flags().GetBool("bare"); bare {
		v := "bare"
		outputPtr = &v
	} else if tab, _ := cmd.Flags().GetBool("tab"); tab {
		v := "tab"
		outputPtr = &v
	}

	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		v := "debug"
		logLevelPtr = &v
	}

	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &v
	}

	if cmd.Flags().Changed("group") {
		v, _ := cmd.Flags().GetBool("group")
		groupPtr = &v
	}

	cfg.MergeWithFlags(sortPtr, outputPtr, logLevelPtr, logDirPtr, groupPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// buildLogger creates the console logger and, when a log directory is
// configured, a file logger behind a multiLogger. The returned cleanup
// closes the file logger.
func buildLogger(cfg *config.Config) (pipelineLogger, func(), error) {
	consoleLog := logger.NewConsoleLogger(os.Stderr, cfg.LogLevel)

	if cfg.LogDir == "" {
		return consoleLog, func() {}, nil
	}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}

	multi := &multiLogger{loggers: []pipelineLogger{consoleLog, fileLog}}
	return multi, func() { fileLog.Close() }, nil
}

// parseDateBounds parses the four date-bound flags, failing fast on the
// first malformed literal.
func parseDateBounds(cmd *cobra.Command) (finder.DateBounds, error) {
	var bounds finder.DateBounds

	for _, bound := range []struct {
		flag string
		dst  **time.Time
	}{
		{"created-after", &bounds.CreatedStart},
		{"created-before", &bounds.CreatedEnd},
		{"modified-after", &bounds.ModifiedStart},
		{"modified-before", &bounds.ModifiedEnd},
	} {
		text, _ := cmd.Flags().GetString(bound.flag)
		if text == "" {
			continue
		}
		t, err := finder.ParseDateTime(text)
		if err != nil {
			return finder.DateBounds{}, fmt.Errorf("--%s: %w", bound.flag, err)
		}
		*bound.dst = &t
	}

	return bounds, nil
}

// renderResults writes the ordered records to stdout in the configured
// output mode. Terminal geometry and TTY state are probed here, outside
// the core, and passed in through RenderOptions.
func renderResults(cmd *cobra.Command, cfg *config.Config, records []finder.FileRecord) {
	var mode display.Mode
	switch cfg.Output {
	case "tab":
		mode = display.ModeTab
	case "bare":
		mode = display.ModeBare
	default:
		mode = display.ModeTable
	}

	concise, _ := cmd.Flags().GetBool("concise")

	opts := display.RenderOptions{
		Mode:      mode,
		Concise:   concise,
		GroupDirs: cfg.GroupDirs,
	}

	out := cmd.OutOrStdout()
	if f, ok := out.(*os.File); ok {
		opts.Width = display.DetectWidth(f)
		opts.Color = display.IsTerminal(f)
	}

	display.NewRenderer(out, opts).Render(records)
}

// multiLogger forwards every message to all of its loggers.
type multiLogger struct {
	loggers []pipelineLogger
}

// LogDebug forwards to all loggers
func (ml *multiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards to all loggers
func (ml *multiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

// LogWarn forwards to all loggers
func (ml *multiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}

// LogError forwards to all loggers
func (ml *multiLogger) LogError(message string) {
	for _, l := range ml.loggers {
		l.LogError(message)
	}
}
