package main

import (
	"errors"

	"github.com/revelaction/arbol/config"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var errNoDocPath = errors.New("doc path must be specified via -d, ARBOL_DOC_PATH or the config file")

// env is the state shared by all commands of one run
type env struct {
	ui     UI
	cfg    *config.Config
	logger *zap.Logger
	pool   Pool
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui, logger: zap.NewNop()}

	return &cli.App{
		Name:                 "arbol",
		Usage:                "Print tagged words, parse trees, dependency trees and semantic graphs of analyzed documents",
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "doc-path",
				Aliases: []string{"d"},
				Usage:   "Path to docs directory or SQLite file",
				EnvVars: []string{"ARBOL_DOC_PATH"},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
				Value:   config.DefaultFile,
				EnvVars: []string{"ARBOL_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"ARBOL_LOG_LEVEL"},
			},
		},
		Before: e.setup,
		After:  e.teardown,
		Commands: []*cli.Command{
			docCommand(e),
			lsDocCommand(e),
			lsLabelsCommand(e),
			sentenceCommand(e),
			statCommand(e),
			queryCommand(e),
			importDocCommand(e),
			exportDocCommand(e),
			bashCommand(e),
			versionCommand(e),
		},
	}
}

// setup merges the config file with the global flags and builds the
// logger. Flags and their environment variables win over the file.
func (e *env) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if c.IsSet("doc-path") {
		cfg.DocPath = c.String("doc-path")
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	logger, err := newLogger(cfg.LogLevel, e.ui.Err)
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.logger = logger
	return nil
}

func (e *env) teardown(c *cli.Context) error {
	_ = e.logger.Sync()
	return e.pool.Close()
}

func (e *env) docPath() (string, error) {
	if e.cfg.DocPath == "" {
		return "", errNoDocPath
	}

	return e.cfg.DocPath, nil
}
