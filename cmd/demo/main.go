package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/comalice/edgeswitch/internal/config"
	"github.com/comalice/edgeswitch/internal/production"
	"github.com/comalice/edgeswitch/poll"
	"github.com/comalice/edgeswitch/version"
)

func main() {
	app := &cli.App{
		Name:  "edgeswitch",
		Usage: "edgeswitch command [args]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "Print version info",
			},
		},
		Action: Action,
		Commands: []*cli.Command{
			demoCmd,
			replayCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		return
	}
}

func Action(cCtx *cli.Context) error {
	buildInfo := version.Info()
	if cCtx.Bool("version") {
		fmt.Printf("VERSION:         %s\n", buildInfo.Version)
		fmt.Printf("GO_VERSION:      %s\n", buildInfo.GoVersion)
		fmt.Printf("GIT_BRANCH:      %s\n", buildInfo.GitBranch)
		fmt.Printf("COMMIT_HASH:     %s\n", buildInfo.CommitHash)
		fmt.Printf("GIT_TREE_STATE:  %s\n", buildInfo.GitTreeState)
		fmt.Printf("BUILD_TIME:      %s\n", buildInfo.BuildTime)
	} else {
		cli.ShowAppHelpAndExit(cCtx, 0)
	}
	return nil
}

var demoCmd = &cli.Command{
	Name:  "demo",
	Usage: "Feed the canonical six-frame button sequence through a polling loop",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to TOML config file",
			Value:   "edgeswitch.toml",
		},
	},
	Action: demoAction,
}

func demoAction(cCtx *cli.Context) error {
	cfg, err := config.NewCfg(cCtx.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.Log.Level)

	frames := []bool{false, false, true, true, false, false}

	var loop poll.Loop
	for _, observed := range frames {
		e := loop.Step(observed)
		switch {
		case e.Rose:
			logger.Info("button pressed", "tick", e.Tick)
		case e.Fell:
			logger.Info("button released", "tick", e.Tick)
		}
	}

	persister, err := production.NewYAMLPersister(cfg.Demo.SnapshotDir)
	if err != nil {
		return fmt.Errorf("new persister: %w", err)
	}

	snap, err := persister.Save(cCtx.Context, loop.Snapshot(""))
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	logger.Info("snapshot saved", "id", snap.ID, "dir", cfg.Demo.SnapshotDir)

	return nil
}

var replayCmd = &cli.Command{
	Name:      "replay",
	Usage:     "Replay a recorded YAML scenario and print its edges",
	ArgsUsage: "<scenario.yaml>",
	Action:    replayAction,
}

func replayAction(cCtx *cli.Context) error {
	path := cCtx.Args().First()
	if path == "" {
		return fmt.Errorf("scenario path required")
	}

	sc, err := poll.LoadScenario(path)
	if err != nil {
		return err
	}

	edges := sc.Run()
	fmt.Printf("%s: %d samples, %d edges\n", sc.Name, len(sc.Samples), len(edges))
	for _, e := range edges {
		if e.Rose {
			fmt.Printf("  tick %d: turned on\n", e.Tick)
		} else {
			fmt.Printf("  tick %d: turned off\n", e.Tick)
		}
	}

	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))
}
