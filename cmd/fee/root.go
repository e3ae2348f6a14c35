package main

import (
	"fmt"
	"os"

	apppkg "github.com/kk-code-lab/fee/internal/app"
	"github.com/kk-code-lab/fee/internal/config"
	"github.com/kk-code-lab/fee/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const logFileName = "fee.log"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fee",
		Short: "Terminal directory browser",
		Long: `fee lists the current directory, lets you walk into subdirectories
and back out, and opens files in your editor.

Keys: Up/Down move, Enter/Right open, Left/Esc go up, Ctrl-C quits.
Text files open with text_editor_command, everything else with
binary_editor_command; both are set in the config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
}

func run() error {
	logPath, err := config.Scope().LogPath(logFileName)
	if err != nil {
		logPath = ""
	}
	log, closeLog, err := logging.Open(os.Getenv, logPath)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"config":        cfgPath,
		"text_editor":   cfg.TextEditorCommand,
		"binary_editor": cfg.BinaryEditorCommand,
		"wait":          cfg.WaitForEditorExit,
	}).Debug("config loaded")

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}

	app, err := apppkg.NewApplication(cwd, cfg, apppkg.Options{Logger: log})
	if err != nil {
		return err
	}
	return app.Run()
}
