package commands

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sisgea/unispec/internal/cli/config"
	"github.com/sisgea/unispec/internal/cli/ui"
	"github.com/sisgea/unispec/internal/logging"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// session carries the state shared by every subcommand of one invocation
type session struct {
	configPath string
	logLevel   string
	modules    []string
	noColor    bool

	cfg    *config.Config
	logger *zap.Logger
}

// reportedError marks an error whose message was already rendered
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	s := &session{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "unispec",
		Short: "Declarative schema registry for the SISGEA platform",
		Long: color.CyanString(`unispec - SISGEA schema registry

Builds the registry of entities, views and operation declarators declared
by the SISGEA modules, checks that every reference resolves, and exports
the result as an ordered JSON or YAML document.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&s.configPath, "config", "", "Config file (default: unispec.yaml in the current or a parent directory)")
	flags.StringVar(&s.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringSliceVarP(&s.modules, "module", "m", nil, "Build only the named modules")
	flags.BoolVar(&s.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewBuildCommand(s))
	rootCmd.AddCommand(NewListCommand(s))
	rootCmd.AddCommand(NewInspectCommand(s))
	rootCmd.AddCommand(NewExportCommand(s))
	rootCmd.AddCommand(NewLintCommand(s))
	rootCmd.AddCommand(NewSnapshotCommand(s))
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

func (s *session) load(cmd *cobra.Command) error {
	if s.noColor {
		color.NoColor = true
	}

	path := s.configPath
	if path == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return err
		}
		path = found
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), s.noColor))
		return reported(err)
	}
	if s.logLevel != "" {
		cfg.Log.Level = s.logLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.logger = logger.With(zap.String("catalog", cfg.Catalog))
	s.logger.Debug("configuration loaded", zap.String("path", path))
	return nil
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the unispec version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			out := cmd.OutOrStdout()
			titleColor := color.New(color.FgCyan, color.Bold)

			titleColor.Fprint(out, "unispec version: ")
			fmt.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			fmt.Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			fmt.Fprintln(out, goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		var r *reportedError
		if !errors.As(err, &r) {
			errorColor := color.New(color.FgRed, color.Bold)
			errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		}
		return err
	}
	return nil
}
