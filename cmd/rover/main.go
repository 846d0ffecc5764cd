package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"rover/internal/config"
	"rover/internal/fleet"
	"rover/internal/interpreter"
	"rover/internal/journal"
	"rover/internal/rover"
	"rover/internal/world"
	"rover/pkg/logger"
)

type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string {
	return e.msg
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.msg)
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	world    string
	script   string
	commands string
	plan     string
	render   bool
}

func run(ctx context.Context, out, errOut io.Writer, args []string) error {
	cfg, err := config.Parse()
	if err != nil {
		return err
	}

	var opts options
	fs := flag.NewFlagSet("rover", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&opts.world, "world", "", "HCL world file (required)")
	fs.StringVar(&opts.script, "script", "", "mission script run by every rover")
	fs.StringVar(&opts.commands, "commands", "", "raw command string run by every rover, e.g. NNES")
	fs.IntVar(&cfg.MaxCommands, "max-commands", cfg.MaxCommands, "cap on commands and script loop iterations per rover")
	fs.StringVar(&opts.plan, "plan", "", "plan a route for every rover to x,y")
	fs.BoolVar(&opts.render, "render", false, "animate every step in the terminal")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "SQLite journal of finished runs")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "rovers evaluated in parallel")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &exitError{code: 2, msg: err.Error()}
	}
	if opts.world == "" && fs.NArg() > 0 {
		opts.world = fs.Arg(0)
	}
	if opts.world == "" {
		fs.Usage()
		return &exitError{code: 2, msg: "missing -world"}
	}
	if err := cfg.Validate(); err != nil {
		return &exitError{code: 2, msg: err.Error()}
	}

	log := logger.Init(cfg.LogLevel, cfg.LogFormat, errOut)

	w, err := world.Load(ctx, log, opts.world)
	if err != nil {
		return err
	}

	missions := make([]fleet.Mission, 0, len(w.Rovers))
	for _, d := range w.Rovers {
		cmds, err := resolveCommands(w.Grid, d, opts, cfg.MaxCommands)
		if err != nil {
			return fmt.Errorf("rover %s: %w", d.Rover.Name, err)
		}
		missions = append(missions, fleet.Mission{Rover: d.Rover, Commands: cmds})
	}

	runner := &fleet.Runner{Grid: w.Grid, Workers: cfg.Workers, Log: log}
	results, err := runner.RunAll(ctx, missions)
	if err != nil {
		return err
	}

	for _, res := range results {
		if opts.render {
			if err := world.Animate(out, w.Grid, res.Steps, cfg.RenderDelay); err != nil {
				return err
			}
		}
		fmt.Fprintf(out, "Rover %s final position: (%d,%d) facing %s\n",
			res.Final.Name, res.Final.Position.X, res.Final.Position.Y, res.Final.Orientation)
	}

	if cfg.JournalPath != "" {
		return record(ctx, log, cfg.JournalPath, results)
	}
	return nil
}

// resolveCommands picks a rover's commands: -commands, then -script, then
// -plan, then the rover's own script, then its inline commands.
func resolveCommands(g rover.Grid, d world.Deployment, opts options, limit int) ([]rover.Cardinal, error) {
	switch {
	case opts.commands != "":
		return decodeCommands(opts.commands, limit)
	case opts.script != "":
		return compileScript(opts.script, limit)
	case opts.plan != "":
		to, err := parseCoord(opts.plan)
		if err != nil {
			return nil, err
		}
		path, ok := world.Plan(g, d.Rover.Position, to)
		if !ok {
			return nil, fmt.Errorf("no route from %s to %s", d.Rover.Position, to)
		}
		return path, nil
	case d.Script != "":
		return compileScript(d.Script, limit)
	}
	return decodeCommands(d.Commands, limit)
}

func decodeCommands(s string, limit int) ([]rover.Cardinal, error) {
	cmds := rover.DecodeString(s)
	if limit > 0 && len(cmds) > limit {
		return nil, fmt.Errorf("%w: %d commands, limit %d", interpreter.ErrCommandLimit, len(cmds), limit)
	}
	return cmds, nil
}

func compileScript(path string, limit int) ([]rover.Cardinal, error) {
	prog, err := interpreter.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return interpreter.Compile(prog, limit)
}

func parseCoord(s string) (rover.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return rover.Coord{}, fmt.Errorf("invalid coordinate %q, want x,y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return rover.Coord{}, fmt.Errorf("invalid coordinate %q, want x,y", s)
	}
	return rover.Coord{X: x, Y: y}, nil
}

func record(ctx context.Context, log logrus.FieldLogger, path string, results []fleet.Result) error {
	store, err := journal.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, res := range results {
		id, err := store.Record(ctx, journal.Entry{
			Commands: rover.Encode(res.Mission.Commands),
			Start:    res.Mission.Rover,
			Final:    res.Final,
			Blocked:  res.Blocked,
		})
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"rover": res.Final.Name, "id": id}).Debug("run journaled")
	}
	return nil
}
