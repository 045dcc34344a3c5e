package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"GeoBoard/internal/config"
	"GeoBoard/internal/logging"
	boardnet "GeoBoard/internal/net"
	"GeoBoard/internal/state"
	"GeoBoard/internal/ui"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const browseTimeout = 3 * time.Second

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage:
  geoboard [flags]                     host a sketch and share it on the LAN
  geoboard [flags] geoboard://IP:PORT  view a shared sketch
  geoboard [flags] join                find a host with mDNS and view it

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to TOML config")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Logger().Error("[MAIN] bad config", "path", *configPath, "err", err)
		os.Exit(1)
	}

	switch arg := flag.Arg(0); {
	case arg == "":
		runHost(cfg)
	case boardnet.IsShareLink(arg):
		addr, err := boardnet.ParseShareLink(arg)
		if err != nil {
			logging.Logger().Error("[MAIN] bad share link", "err", err)
			os.Exit(1)
		}
		runViewer(cfg, addr)
	case arg == "join":
		addr, err := boardnet.Browse(browseTimeout)
		if err != nil {
			logging.Logger().Error("[MAIN] no host found", "err", err)
			os.Exit(1)
		}
		runViewer(cfg, addr)
	default:
		usage()
		os.Exit(2)
	}
}

func runHost(cfg config.Config) {
	logging.Logger().Info("[HOST] starting")
	a := app.New()
	board := ui.NewBoardWidget(cfg)
	replica := state.NewReplica()
	hub := boardnet.NewHub()

	// Snapshots carry a sequence number, so sending them off the UI
	// goroutine is safe even if they arrive out of order.
	board.OnFrame = func(state.Frame) {
		snap := replica.Stamp(board.Controller().Points())
		go hub.Broadcast(snap)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := boardnet.ListenAndServe(ctx, cfg.Port, hub); err != nil {
			logging.Logger().Error("[HOST] sharing unavailable", "err", err)
			board.SetStatus("Sharing unavailable: " + err.Error())
		}
	}()

	if server, err := boardnet.Advertise(cfg.Port); err != nil {
		logging.Logger().Warn("[HOST] mDNS disabled", "err", err)
	} else {
		defer server.Shutdown()
	}

	link := boardnet.ShareLink(boardnet.GetOutgoingIP(), cfg.Port)
	logging.Logger().Info("[HOST] share link", "link", link, "session", replica.SiteID())
	ui.NewWindow(a, "GeoBoard", board, link).ShowAndRun()
}

func runViewer(cfg config.Config, addr string) {
	logging.Logger().Info("[VIEWER] starting", "host", addr)
	a := app.New()
	board := ui.NewBoardWidget(cfg)
	board.SetReadOnly(true)
	replica := state.NewReplica()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		board.SetStatus("Connecting to " + addr)
		err := boardnet.Follow(ctx, addr, func(s state.Snapshot) {
			if !replica.Apply(s) {
				return
			}
			fyne.Do(func() { board.Load(s.Points) })
			board.SetStatus("Viewing " + addr)
		})
		if err != nil && ctx.Err() == nil {
			logging.Logger().Warn("[VIEWER] disconnected", "err", err)
			board.SetStatus("Disconnected from host: " + err.Error())
		}
	}()

	ui.NewWindow(a, "GeoBoard (viewing "+addr+")", board, "").ShowAndRun()
}
