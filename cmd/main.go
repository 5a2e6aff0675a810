package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/spidertaire/application"
	"github.com/luca-patrignani/spidertaire/config"
	"github.com/luca-patrignani/spidertaire/network"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(cfg.LogLevel)))

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("pider", pterm.FgDarkGray.ToStyle()),
	).Render()

	opts := []application.Option{application.WithLogger(logger)}
	if cfg.Seed != nil {
		opts = append(opts, application.WithSeed(*cfg.Seed))
	}
	orchestrator, err := application.NewGameOrchestrator(cfg.Difficulty, opts...)
	if err != nil {
		logger.Error("failed to start the game", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Listen != "" {
		started := make(chan string, 1)
		failed := make(chan error, 1)
		go func() {
			if err := network.Run(ctx, cfg.Listen, network.NewServer(orchestrator, logger), started); err != nil {
				failed <- err
			}
		}()
		select {
		case addr := <-started:
			pterm.Info.Printfln("Serving the game on ws://%s/ws", addr)
		case err := <-failed:
			logger.Error("websocket server failed", "error", err)
			os.Exit(1)
		}
	}

	pterm.Info.Printfln("Difficulty: %s. Type help for the list of commands.", cfg.Difficulty)
	if err := printState(orchestrator.View()); err != nil {
		logger.Error("failed to render the game", "error", err)
	}

	for ctx.Err() == nil {
		line, err := pterm.DefaultInteractiveTextInput.WithDefaultText("Command").Show()
		if err != nil {
			logger.Error("failed to read input", "error", err)
			return
		}
		pterm.Println()

		cmd, err := parseCommand(line)
		if errors.Is(err, errEmptyCommand) {
			continue
		}
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if cmd.kind == cmdQuit {
			return
		}

		panels, err := runCommand(orchestrator, cmd)
		if err != nil {
			pterm.Warning.Println(err.Error())
		}
		if err := printState(orchestrator.View(), panels...); err != nil {
			logger.Error("failed to render the game", "error", err)
		}
	}
}

// runCommand executes cmd and returns the extra panels to show below the
// tableau.
func runCommand(o *application.GameOrchestrator, cmd command) ([]pterm.Panel, error) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	switch cmd.kind {
	case cmdAction:
		_, err := o.Submit(cmd.action)
		return nil, err
	case cmdNew:
		_, err := o.NewGame(o.Difficulty())
		return nil, err
	case cmdHint:
		return []pterm.Panel{getMovesPanel(o.View().LegalMoves)}, nil
	case cmdVerify:
		if err := o.Verify(); err != nil {
			return nil, err
		}
		text := pterm.Sprintf("%d blocks, chain intact", o.Journal().Len())
		return []pterm.Panel{{Data: pbox.WithTitle(pterm.LightGreen("|JOURNAL|")).WithTitleTopCenter().Sprint(text)}}, nil
	case cmdHelp:
		return []pterm.Panel{{Data: pbox.WithTitle("|HELP|").WithTitleTopCenter().Sprint(helpText)}}, nil
	default:
		return nil, fmt.Errorf("unsupported command %d", cmd.kind)
	}
}

func ptermLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case level <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case level <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
