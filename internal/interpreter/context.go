package interpreter

import (
	"errors"
	"fmt"

	"rover/internal/rover"
)

var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrCommandLimit      = errors.New("command limit exceeded")
)

// Context holds script variables and the directions expanded so far. The
// limit caps both emitted directions and loop iterations.
type Context struct {
	vars  map[string]int
	out   []rover.Cardinal
	iters int
	limit int
}

func NewContext(limit int) *Context {
	return &Context{vars: make(map[string]int), limit: limit}
}

func (c *Context) Get(name string) (int, bool) {
	v, ok := c.vars[name]
	return v, ok
}

func (c *Context) Set(name string, val int) {
	c.vars[name] = val
}

func (c *Context) Commands() []rover.Cardinal {
	return c.out
}

func (c *Context) emit(ds ...rover.Cardinal) error {
	if c.limit > 0 && len(c.out)+len(ds) > c.limit {
		return fmt.Errorf("%w: more than %d commands", ErrCommandLimit, c.limit)
	}
	c.out = append(c.out, ds...)
	return nil
}

// tick charges one loop iteration, so loops that emit nothing stay bounded.
func (c *Context) tick() error {
	c.iters++
	if c.limit > 0 && c.iters > c.limit {
		return fmt.Errorf("%w: more than %d loop iterations", ErrCommandLimit, c.limit)
	}
	return nil
}
