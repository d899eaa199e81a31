package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/specialistvlad/pyship/internal/app"
	"github.com/specialistvlad/pyship/internal/hcl_adapter"
	"github.com/specialistvlad/pyship/internal/localexecutor"
	"github.com/specialistvlad/pyship/internal/shell"
	"github.com/spf13/cobra"
)

// Environment variables consulted when the matching flag is not given.
const (
	EnvLogLevel = "PYSHIP_LOG_LEVEL"
	EnvNoPause  = "PYSHIP_NO_PAUSE"
)

// Options are the process-level collaborators of a CLI invocation.
type Options struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader
	// Shell runs external programs. Nil means the local machine.
	Shell shell.Commander
	// Getenv reads the environment. Nil means os.Getenv.
	Getenv func(string) string
}

type globalFlags struct {
	dir       string
	config    string
	logLevel  string
	logFormat string
	noPause   bool
}

// Execute parses args and runs the selected subcommand. Usage and project
// errors are returned as *ExitError with code 2, workflow failures with
// code 1.
func Execute(ctx context.Context, args []string, opts Options) error {
	slog.Debug("CLI parser started.")
	if opts.Shell == nil {
		opts.Shell = localexecutor.New()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	root := newRootCmd(&opts)
	root.SetArgs(args)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)
	root.SetIn(opts.In)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return nil
	}
	if _, ok := err.(*ExitError); ok {
		return err
	}
	slog.Debug("Command failed before running.", "command", cmd.Name(), "error", err)
	return usageError(err)
}

func newRootCmd(opts *Options) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "pyship",
		Short:         "pyship installs, runs, and packages a Python desktop application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.dir, "dir", ".", "Project directory.")
	pf.StringVar(&flags.config, "config", hcl_adapter.DefaultFileName, "Project file, relative to --dir.")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&flags.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	pf.BoolVar(&flags.noPause, "no-pause", false, "Do not wait for a key press before exiting.")

	root.AddCommand(
		workflowCmd(opts, flags, app.WorkflowInstall, "Create the virtual environment and install dependencies", (*app.App).Install),
		workflowCmd(opts, flags, app.WorkflowRun, "Start the application", (*app.App).Launch),
		workflowCmd(opts, flags, app.WorkflowBuild, "Package the application into a standalone distributable", (*app.App).Build),
		iconCmd(opts, flags),
		initCmd(opts, flags),
	)
	return root
}

// appConfig resolves the global flags, applying environment overrides for
// flags the operator did not set.
func appConfig(cmd *cobra.Command, opts *Options, flags *globalFlags) (*app.Config, error) {
	level := flags.logLevel
	if !cmd.Flags().Changed("log-level") {
		if v := opts.Getenv(EnvLogLevel); v != "" {
			level = v
		}
	}
	noPause := flags.noPause
	if !cmd.Flags().Changed("no-pause") {
		if v := opts.Getenv(EnvNoPause); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, &ExitError{Code: ExitUsage, Message: "invalid " + EnvNoPause + ": " + v}
			}
			noPause = b
		}
	}

	cfg, err := app.NewConfig(app.Config{
		Dir:        flags.dir,
		ConfigPath: flags.config,
		LogFormat:  flags.logFormat,
		LogLevel:   level,
		NoPause:    noPause,
	})
	if err != nil {
		return nil, usageError(err)
	}
	slog.Debug("CLI parameter validation complete.", "config", cfg)
	return cfg, nil
}

func newApp(cmd *cobra.Command, opts *Options, flags *globalFlags) (*app.App, error) {
	cfg, err := appConfig(cmd, opts, flags)
	if err != nil {
		return nil, err
	}
	streams := app.Streams{Out: opts.Out, Err: opts.Err, In: opts.In}
	a, err := app.NewApp(streams, cfg, hcl_adapter.NewLoaderWithEnv(opts.Getenv), opts.Shell)
	if err != nil {
		return nil, usageError(err)
	}
	return a, nil
}

func workflowCmd(opts *Options, flags *globalFlags, name, short string, run func(*app.App, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts, flags)
			if err != nil {
				return err
			}
			return workflowError(run(a, cmd.Context()))
		},
	}
}

func iconCmd(opts *Options, flags *globalFlags) *cobra.Command {
	var force bool
	c := &cobra.Command{
		Use:   "icon",
		Short: "Generate the application icon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts, flags)
			if err != nil {
				return err
			}
			return workflowError(a.Icon(cmd.Context(), force))
		},
	}
	c.Flags().BoolVar(&force, "force", false, "Replace an existing icon.")
	return c
}
