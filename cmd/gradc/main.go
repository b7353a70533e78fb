package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gradc/common"
	"gradc/config"
	"gradc/misc"
	"gradc/state"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()
	env.Setup()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	env.RestoreStdLog()

	// log is synced now and could be put into report, errors must be
	// reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Subcommands return regular errors, cli.Exit is not used.
var errWasHandled bool

// called before appContext is destroyed, so error could be logged properly
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// reported either by exitErrHandler or on exit directly to stderr
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	state.EnvFromContext(ctx).Log.Warn("Unknown command, nothing to do", zap.String("command", name))
}

const inputHelp = `
INPUT:
    CSS color or gradient, possibly wrapped into declaration ("background: red;")
    or a rule; several arguments are joined with spaces, "-" reads STDIN
`

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "CSS color and gradient codec",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Writer:          out,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "parse",
				Usage:        "Shows parsed representation of color or gradient",
				OnUsageError: usageErrorHandler,
				Action:       parseValue,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "tree", Usage: "output gradient stack as a tree (default)"},
					&cli.BoolFlag{Name: "yaml", Usage: "output complete codec result as YAML"},
				},
				ArgsUsage:          "INPUT",
				CustomHelpTemplate: cli.CommandHelpTemplate + inputHelp,
			},
			{
				Name:         "format",
				Usage:        "Outputs canonical CSS for color or gradient",
				OnUsageError: usageErrorHandler,
				Action:       formatValue,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "mode", Value: common.ViewModeAllGradients.String(),
						Usage: "what to render `MODE` (supported modes: " + strings.Join(common.ViewModeNames(), ", ") + ")"},
					&cli.IntFlag{Name: "gradient", Aliases: []string{"g"}, Usage: "selected gradient `INDEX`"},
					&cli.IntFlag{Name: "stop", Aliases: []string{"s"}, Usage: "selected color stop `INDEX`"},
					&cli.BoolFlag{Name: "no-multistops", Usage: "do not merge hard edges into \"color a b\" form"},
					&cli.StringFlag{Name: "accept",
						Usage: "verify input against `KIND` of accepted values (supported kinds: " + strings.Join(common.ColorModeNames(), ", ") + "), configuration value if absent"},
				},
				ArgsUsage:          "INPUT",
				CustomHelpTemplate: cli.CommandHelpTemplate + inputHelp,
			},
			{
				Name:               "validate",
				Usage:              "Checks input against color and gradient grammars",
				OnUsageError:       usageErrorHandler,
				Action:             validateValue,
				ArgsUsage:          "INPUT",
				CustomHelpTemplate: cli.CommandHelpTemplate + inputHelp,
			},
			{
				Name:         "presets",
				Usage:        "Lists processed preset catalogue",
				OnUsageError: usageErrorHandler,
				Action:       listPresets,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "gradients", Usage: "list gradients instead of colors"},
					&cli.StringFlag{Name: "render", Usage: "render thumbnails of listed presets into `DIRECTORY`"},
				},
			},
			{
				Name:         "thumbnail",
				Usage:        "Renders color or gradient into image",
				OnUsageError: usageErrorHandler,
				Action:       renderThumbnail,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "width", Usage: "image `WIDTH`, configuration value if absent"},
					&cli.IntFlag{Name: "height", Usage: "image `HEIGHT`, configuration value if absent"},
				},
				ArgsUsage: "INPUT DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s
INPUT:
    CSS color or gradient, "-" reads STDIN

DESTINATION:
    image file name, format is selected by extension (.png, .jpg), when
    extension is absent configured format is used; "-" writes to STDOUT
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// log is either not set yet (argument parsing) or already closed
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp(os.Stdout).Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err  error
		data []byte
		kind string
	)

	out := cmd.Root().Writer
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		kind = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Debug("Outputing configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
