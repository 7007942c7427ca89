package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"

	"VectorBoard/internal/config"
	"VectorBoard/internal/export"
	"VectorBoard/internal/share"
	"VectorBoard/internal/state"
	"VectorBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml")
	shareFlag := flag.Bool("share", false, "share the drawing with viewers on the local network")
	port := flag.Int("port", 0, "share port, overrides the config")
	discover := flag.Bool("discover", false, "list boards shared on the local network and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [vectorboard://host:port]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.NewLoader(*configPath).Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	if *shareFlag {
		cfg.Share.Enabled = true
	}
	if *port != 0 {
		cfg.Share.Port = *port
	}

	if *discover {
		links, err := share.Discover(2 * time.Second)
		if err != nil {
			slog.Error("discovery failed", "err", err)
			os.Exit(1)
		}
		for _, link := range links {
			fmt.Println(link)
		}
		return
	}

	editor, err := newEditor(cfg)
	if err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}
	format, err := cfg.ExportFormat()
	if err != nil {
		slog.Error("invalid config", "err", err)
		os.Exit(1)
	}
	board := ui.NewBoard(editor)
	opts := ui.Options{
		Title: "VectorBoard",
		Size:  fyne.NewSize(cfg.Window.Width, cfg.Window.Height),
		Export: export.Target{
			Dir:  cfg.Export.Dir,
			Name: cfg.Export.Name,
		},
		Format: format,
	}

	if link := flag.Arg(0); share.IsLink(link) {
		runViewer(board, opts, link)
		return
	}
	runHost(cfg, board, opts)
}

func newEditor(cfg *config.Config) (*state.Editor, error) {
	tool, err := cfg.InitialTool()
	if err != nil {
		return nil, err
	}
	style, err := cfg.ShapeStyle()
	if err != nil {
		return nil, err
	}
	return state.NewEditor(state.WithTool(tool), state.WithStyle(style)), nil
}

func runHost(cfg *config.Config, board *ui.Board, opts ui.Options) {
	slog.Info("starting editor", "tool", board.Editor().Tools().Tool())
	if cfg.Share.Enabled {
		host, err := share.Listen(cfg.Share.Port, cfg.Share.Advertise)
		if err != nil {
			slog.Warn("drawing not shared", "err", err)
		} else {
			defer host.Close()
			board.Editor().Scene().Observe(host.Publish)
			opts.ShareLink = host.Link()
		}
	}
	ui.RunApp(board, opts)
}

func runViewer(board *ui.Board, opts ui.Options, link string) {
	slog.Info("starting viewer", "link", link)
	board.SetReadOnly(true)
	opts.Title = "VectorBoard - " + link

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		board.SetStatus("Connecting to " + link)
		err := share.Follow(ctx, link, board.ApplyRemote)
		switch {
		case ctx.Err() != nil:
		case err != nil:
			board.SetStatus(fmt.Sprintf("Disconnected: %v", err))
		default:
			board.SetStatus("Host closed the board")
		}
	}()
	ui.RunApp(board, opts)
}
