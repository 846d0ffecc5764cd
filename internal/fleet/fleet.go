// Package fleet runs independent rover missions on a shared, read-only grid.
package fleet

import (
	"context"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"rover/internal/rover"
)

type Mission struct {
	Rover    rover.Rover
	Commands []rover.Cardinal
}

type Result struct {
	Mission Mission
	Final   rover.Rover
	Steps   []rover.Outcome
	Blocked int
}

// Runner evaluates missions concurrently. Rovers never observe each other:
// every mission is folded against Grid alone, which must come from rover.NewGrid.
type Runner struct {
	Grid    rover.Grid
	Workers int
	Log     logrus.FieldLogger
}

// RunAll returns one result per mission, in mission order.
func (r *Runner) RunAll(ctx context.Context, missions []Mission) ([]Result, error) {
	if r.Grid.Size() <= 0 {
		return nil, rover.ErrInvalidSize
	}
	results := make([]Result, len(missions))

	g, ctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, m := range missions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.run(m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) run(m Mission) Result {
	steps := rover.Trace(m.Commands, m.Rover, r.Grid)
	res := Result{Mission: m, Final: m.Rover, Steps: steps}
	if len(steps) > 0 {
		res.Final = steps[len(steps)-1].After
	}
	for _, s := range steps {
		if s.Blocked {
			res.Blocked++
		}
	}

	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"rover":    m.Rover.Name,
			"commands": len(m.Commands),
			"blocked":  res.Blocked,
			"final":    res.Final.Position.String(),
			"facing":   res.Final.Orientation.String(),
		}).Debug("mission finished")
	}
	return res
}
