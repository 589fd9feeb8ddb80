package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettegen/internal/app"
	"github.com/alexisbeaulieu97/palettegen/internal/clipboard"
	"github.com/alexisbeaulieu97/palettegen/internal/config"
	"github.com/alexisbeaulieu97/palettegen/internal/logger"
	"github.com/alexisbeaulieu97/palettegen/internal/palette"
	"github.com/alexisbeaulieu97/palettegen/internal/store"
)

// AppContext bundles the services one command invocation needs.
type AppContext struct {
	Config     *config.Config
	Logger     *logger.Logger
	Store      *store.FileStore
	Controller *app.Controller
	Ctx        context.Context

	closers []io.Closer
}

type contextOptions struct {
	sampler palette.Sampler
	// logToFile sends logs to a file so they do not corrupt a full-screen UI.
	logToFile bool
}

func newAppContext(cmd *cobra.Command, flags *rootFlags, opts contextOptions) (*AppContext, error) {
	if err := config.LoadDotEnv(flags.envFile); err != nil {
		return nil, newCommandError("start", "loading "+flags.envFile, err, "Fix the syntax of the .env file or pass --env-file with another path.")
	}

	cfgPath := flags.configPath
	if cfgPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, newCommandError("start", "determining config path", err, "Ensure your HOME directory is set correctly or pass --config.")
		}
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, newCommandError("start", "loading configuration "+cfgPath, err, "Fix the configuration file or remove it to use defaults.")
	}
	if flags.statePath != "" {
		cfg.StatePath = flags.statePath
	}

	statePath, err := cfg.ResolveStatePath()
	if err != nil {
		return nil, newCommandError("start", "determining state path", err, "Ensure your HOME directory is set correctly or pass --state.")
	}

	ac := &AppContext{Config: cfg}

	var logWriter io.Writer = cmd.ErrOrStderr()
	logFile := cfg.Log.File
	if logFile == "" && opts.logToFile {
		logFile = filepath.Join(filepath.Dir(statePath), "palettegen.log")
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, newCommandError("start", "creating log directory", err, "Check permissions for "+filepath.Dir(logFile)+".")
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, newCommandError("start", "opening log file "+logFile, err, "Check permissions or set log.file in the configuration.")
		}
		ac.closers = append(ac.closers, f)
		logWriter = f
	}

	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.Human, Writer: logWriter})
	if err != nil {
		ac.Close()
		return nil, newCommandError("start", "creating logger", err, "Use one of trace, debug, info, warn, error or disabled for log.level.")
	}
	ac.Logger = log

	clipFile := flags.clipboardFile
	if clipFile == "" {
		clipFile = cfg.Clipboard.File
	}
	var terminal io.Writer
	if supportsUnicode(os.Stderr) {
		terminal = os.Stderr
	}
	clip, err := clipboard.FromNames(clipboard.Options{
		Names:    cfg.Clipboard.Strategies,
		File:     clipFile,
		Terminal: terminal,
		Logger:   log,
	})
	if err != nil {
		ac.Close()
		return nil, newCommandError("start", "configuring clipboard", err, "Use system, osc52 or file in clipboard.strategies.")
	}

	ac.Store = store.NewFileStore(statePath, log)
	ctrl, err := app.NewController(app.Options{
		Store:     ac.Store,
		Sampler:   opts.sampler,
		Clipboard: clip,
		Logger:    log,
		Defaults: app.Defaults{
			Mode:     cfg.Mode(),
			Format:   cfg.Format(),
			Language: cfg.Language,
		},
	})
	if err != nil {
		ac.Close()
		return nil, newCommandError("start", "creating controller", err, "Reinstall palettegen; the embedded translations could not be read.")
	}
	ac.Controller = ctrl

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ac.Ctx = logger.WithCorrelationID(ctx, logger.NewCorrelationID())

	return ac, nil
}

// EnsurePalette generates a first palette when none has been saved yet.
func (ac *AppContext) EnsurePalette() error {
	if len(ac.Controller.Palette()) > 0 {
		return nil
	}
	_, err := ac.Controller.Start(ac.Ctx)
	return err
}

// Dispatch forwards to the controller with the command's context.
func (ac *AppContext) Dispatch(in app.Intent) (app.Result, error) {
	return ac.Controller.Dispatch(ac.Ctx, in)
}

// Close releases files opened for logging.
func (ac *AppContext) Close() {
	for _, c := range ac.closers {
		_ = c.Close()
	}
	ac.closers = nil
}
