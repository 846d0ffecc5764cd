// Package world loads rover deployments from HCL world files and provides
// path planning and terminal rendering on top of a rover.Grid.
package world

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/sirupsen/logrus"

	"rover/internal/rover"
)

var (
	ErrNoRovers     = errors.New("world declares no rovers")
	ErrBlockedSpawn = errors.New("rover starts on an obstacle")
)

// World is a grid plus the rovers deployed on it.
type World struct {
	Grid   rover.Grid
	Rovers []Deployment
}

// Deployment is a rover start state and the commands it should run. Script
// is an absolute path when set.
type Deployment struct {
	Rover    rover.Rover
	Commands string
	Script   string
}

type hclWorldFile struct {
	Grid   hclGrid    `hcl:"grid,block"`
	Rovers []hclRover `hcl:"rover,block"`
}

type hclGrid struct {
	Size      int           `hcl:"size"`
	Obstacles []hclObstacle `hcl:"obstacle,block"`
}

type hclObstacle struct {
	X int `hcl:"x"`
	Y int `hcl:"y"`
}

type hclRover struct {
	Name     string `hcl:"name,label"`
	X        int    `hcl:"x"`
	Y        int    `hcl:"y"`
	Facing   string `hcl:"facing"`
	Commands string `hcl:"commands,optional"`
	Script   string `hcl:"script,optional"`
}

// Load parses the HCL world file at path. Relative script paths are resolved
// against the directory of the file.
func Load(ctx context.Context, log logrus.FieldLogger, path string) (*World, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("loading world")

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse world file %s: %w", path, diags)
	}
	w, err := decode(file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"path":      path,
		"size":      w.Grid.Size(),
		"obstacles": len(w.Grid.Obstacles()),
		"rovers":    len(w.Rovers),
	}).Info("world loaded")
	return w, nil
}

// Parse decodes an in-memory world. Relative script paths stay relative.
func Parse(src []byte, filename string) (*World, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse world %s: %w", filename, diags)
	}
	return decode(file, "")
}

func decode(file *hcl.File, baseDir string) (*World, error) {
	var parsed hclWorldFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, diags
	}
	if len(parsed.Rovers) == 0 {
		return nil, ErrNoRovers
	}

	obstacles := make([]rover.Coord, 0, len(parsed.Grid.Obstacles))
	for _, o := range parsed.Grid.Obstacles {
		obstacles = append(obstacles, rover.Coord{X: o.X, Y: o.Y})
	}
	grid, err := rover.NewGrid(parsed.Grid.Size, obstacles...)
	if err != nil {
		return nil, err
	}

	w := &World{Grid: grid, Rovers: make([]Deployment, 0, len(parsed.Rovers))}
	for _, hr := range parsed.Rovers {
		facing, err := rover.ParseCardinal(hr.Facing)
		if err != nil {
			return nil, fmt.Errorf("rover %q: %w", hr.Name, err)
		}
		pos := grid.Wrap(rover.Coord{X: hr.X, Y: hr.Y})
		if grid.HasObstacle(pos) {
			return nil, fmt.Errorf("rover %q at %s: %w", hr.Name, pos, ErrBlockedSpawn)
		}
		script := hr.Script
		if script != "" && baseDir != "" && !filepath.IsAbs(script) {
			script = filepath.Join(baseDir, script)
		}
		w.Rovers = append(w.Rovers, Deployment{
			Rover:    rover.New(hr.Name, facing, pos),
			Commands: hr.Commands,
			Script:   script,
		})
	}
	return w, nil
}
