// Package cli implements the braidkit command-line interface.
//
// This package provides commands for acting on loops in Dynnikov
// coordinates, deciding braid word equality, estimating topological entropy
// and geometric complexity, serving the analysis API, and managing the
// local result cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - act: Apply a braid word to a loop in Dynnikov coordinates
//   - eq: Decide whether two words represent the same braid
//   - entropy: Estimate topological entropy
//   - complexity: Compute geometric complexity
//   - analyze: Run the analysis battery over a word list
//   - serve: Serve the analysis API over HTTP
//   - cache: Manage the local result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/topodyn/braidkit/pkg/buildinfo"
	"github.com/topodyn/braidkit/pkg/cache"
	"github.com/topodyn/braidkit/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "braidkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration, if any.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfigOrDefault(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "braidkit",
		Short:        "Braidkit analyzes braids through their action on loop coordinates",
		Long:         `Braidkit is a CLI tool for computing with braid groups: it acts on loops in Dynnikov coordinates, decides word equality, and estimates topological entropy and geometric complexity.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.actCommand())
	root.AddCommand(c.eqCommand())
	root.AddCommand(c.entropyCommand())
	root.AddCommand(c.complexityCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cch, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cch, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache || !c.Config.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	dir := c.Config.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/braidkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the configuration directory using XDG standard
// (~/.config/braidkit/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// baseOptions seeds pipeline options from the configured defaults.
func (c *CLI) baseOptions(op string) pipeline.Options {
	return pipeline.Options{
		Op:      op,
		Backend: c.Config.Defaults.Backend,
		Basis:   c.Config.Defaults.Basis,
		Measure: c.Config.Defaults.Measure,
		Logger:  c.Logger,
	}
}
