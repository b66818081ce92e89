package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	ossignal "os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"golang.org/x/sync/errgroup"

	"lifegame/src/config"
	"lifegame/src/filter"
	"lifegame/src/grid"
	"lifegame/src/playback"
	"lifegame/src/signal"
	"lifegame/src/telemetry"
	"lifegame/src/universe"
	"lifegame/src/view"
)

//frontend is the terminal side of the simulation: the frames sink and the key listener
type frontend interface {
	playback.Sink
	Listen() error
	Stop()
	Close() error
}

type EnvOptions struct {
	configPath string
	saveConfig string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, eo, err := initOptions(args)
	if err != nil {
		return err
	}
	if eo.saveConfig != "" {
		if err := cfg.WriteYAML(eo.saveConfig); err != nil {
			return err
		}
	}

	log, closeLog, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	engine, ok := universe.Engines[cfg.Engine.Name]
	if !ok {
		return fmt.Errorf("%w: unknown engine %q", config.ErrInvalid, cfg.Engine.Name)
	}

	rng := universe.NewRand(cfg.World.Seed)
	genesis, err := universe.Genesis(grid.Shape{Rows: cfg.World.Rows, Cols: cfg.World.Cols}, cfg.World.Density, rng)
	if err != nil {
		return err
	}
	f, err := filter.New(cfg.View.Filter, cfg.View.ColorDead, cfg.View.ColorAlive, rng)
	if err != nil {
		return err
	}

	hub := signal.NewHub()
	conf := describe(cfg)

	var fe frontend
	if cfg.View.Mode == "plain" {
		fe = view.NewConsoleOut(hub, os.Stdin, os.Stdout, conf, log)
	} else {
		ui, err := view.NewConsoleUI(hub, conf, log)
		if err != nil {
			return err
		}
		fe = ui
	}

	o := playback.Options{
		FPSMax:         cfg.Playback.FPSMax,
		ShowStats:      cfg.View.ShowStats,
		MaxGenerations: cfg.Playback.MaxGenerations,
		Universe:       engine(cfg.Engine.Workers),
	}
	pb := playback.New(genesis, &o, hub, f, fe)
	pb.SetLogger(log)
	pb.SetRand(rng)

	if cfg.Output.StatsCSV != "" {
		rec, err := telemetry.NewCSVRecorder(cfg.Output.StatsCSV, cfg.Output.StatsEvery)
		if err != nil {
			_ = fe.Close()
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Error("closing stats", "path", cfg.Output.StatsCSV, "err", err)
			}
		}()
		pb.SetRecorder(rec)
	}

	//SIGINT reaches us only in plain mode, the full-screen UI reads Ctrl-C as a key
	sigCh := make(chan os.Signal, 1)
	ossignal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer ossignal.Stop(sigCh)
	go func() {
		if s, ok := <-sigCh; ok {
			log.Info("signal received", "signal", s.String())
			hub.RequestQuit()
		}
	}()

	startTime := time.Now()
	var eg errgroup.Group
	eg.Go(func() error {
		defer hub.RequestQuit()
		return fe.Listen()
	})
	eg.Go(func() error {
		defer fe.Stop()
		return pb.Run()
	})
	err = eg.Wait()
	if cerr := fe.Close(); err == nil {
		err = cerr
	}

	u := pb.Universe()
	log.Info("simulation finished",
		"generation", u.Generation(),
		"population", u.Population(),
		"total_time", time.Since(startTime).String())
	if out, ok := fe.(*view.ConsoleOut); ok && err == nil {
		out.Summary(map[string]interface{}{
			"Last generation": u.Generation(),
			"Total time":      time.Since(startTime).Round(time.Millisecond),
			"Live cells":      u.Population(),
		})
	}
	return err
}

func initOptions(args []string) (*config.Config, *EnvOptions, error) {
	//the first pass only looks for the configuration file
	eo := &EnvOptions{}
	if err := newParser(config.Default(), eo).ParseArgs(args); err != nil {
		return nil, nil, fmt.Errorf("parsing arguments: %w", err)
	}
	cfg, err := config.Load(eo.configPath)
	if err != nil {
		return nil, nil, err
	}
	//flags override the file
	if err := newParser(cfg, eo).ParseArgs(args); err != nil {
		return nil, nil, fmt.Errorf("parsing arguments: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, eo, nil
}

func newParser(cfg *config.Config, eo *EnvOptions) *flaggy.Parser {
	engineNames := make([]string, 0, len(universe.Engines))
	for k := range universe.Engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)

	p := flaggy.NewParser("lifegame")
	p.Description = "\"The Life\" game simulation"
	p.ShowHelpOnUnexpected = true
	p.String(&eo.configPath, "", "config", "YAML configuration file, flags override its values")
	p.String(&eo.saveConfig, "", "save-config", "Save the effective configuration to a YAML file")
	p.Int(&cfg.World.Rows, "r", "nrows", "Number of rows of the world")
	p.Int(&cfg.World.Cols, "c", "ncols", "Number of columns of the world")
	p.String(&cfg.World.Seed, "", "seed", "Seed of the genesis, a random one when empty")
	p.Float64(&cfg.World.Density, "p", "density", "Probability of a live cell in the genesis, 0.0..=1.0")
	p.String(&cfg.View.Filter, "", "filter", "Cell filter ["+strings.Join(filter.Names, "|")+"]")
	p.String(&cfg.View.ColorDead, "D", "color-dead", "Color of dead cells with the dye filter ["+strings.Join(filter.ColorNames(), "|")+"]")
	p.String(&cfg.View.ColorAlive, "A", "color-alive", "Color of live cells with the dye filter")
	p.Float64(&cfg.Playback.FPSMax, "", "fps-max", "Frames per second limit, out of range values fall back to 60")
	p.Bool(&cfg.View.ShowStats, "", "show-stats", "Show the statistics below the world")
	p.String(&cfg.View.Mode, "", "mode", "Terminal front end [tui|plain]")
	p.String(&cfg.Engine.Name, "e", "engine", "Engine to use ["+strings.Join(engineNames, "|")+"]")
	p.Int(&cfg.Engine.Workers, "", "workers", "Workers of the multithreaded engine")
	p.Int(&cfg.Playback.MaxGenerations, "", "max-generations", "Stop after the number of generations, 0 is unlimited")
	p.String(&cfg.Output.StatsCSV, "", "stats-csv", "Write the statistics of the frames to a CSV file")
	p.Int(&cfg.Output.StatsEvery, "", "stats-every", "Record every n-th frame to the statistics")
	p.String(&cfg.Output.LogFile, "", "log-file", "Write the JSON log to a file")
	return p
}

func initLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Output.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Output.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return log, func() { _ = f.Close() }, nil
}

//describe lists the settings shown by the front ends
func describe(cfg *config.Config) map[string]interface{} {
	d := map[string]interface{}{
		"Dimension":       fmt.Sprintf("%v x %v", cfg.World.Rows, cfg.World.Cols),
		"Density":         cfg.World.Density,
		"Engine":          cfg.Engine.Name,
		"Filter":          cfg.View.Filter,
		"FPS max":         playback.FPSMax(cfg.Playback.FPSMax),
		"Max generations": cfg.Playback.MaxGenerations,
	}
	if cfg.World.Seed != "" {
		d["Seed"] = cfg.World.Seed
	}
	if cfg.Engine.Workers > 0 {
		d["Workers"] = cfg.Engine.Workers
	}
	return d
}

func printError(err error) {
	_, _ = fmt.Fprintln(os.Stderr, aurora.Bold(aurora.Red("error:")), err)
	for e := errors.Unwrap(err); e != nil; e = errors.Unwrap(e) {
		_, _ = fmt.Fprintln(os.Stderr, aurora.Bold(aurora.Red("caused by:")), e)
	}
}
