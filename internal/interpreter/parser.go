package interpreter

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"rover/internal/rover"
)

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Loop   *Loop   `parser:"  @@"`
	If     *If     `parser:"| @@"`
	Raw    *Raw    `parser:"| @@ ';'"`
	Move   *Move   `parser:"| @@ ';'"`
	Assign *Assign `parser:"| @@ ';'"`
}

type Assign struct {
	Name string `parser:"@Ident"`
	Expr *Expr  `parser:"'=' @@"`
}

// Move is a run of direction letters, e.g. "N E E" or "NEE".
type Move struct {
	Dirs []string `parser:"@Dir+"`
}

// Raw carries an undecoded command string; unknown characters are dropped.
type Raw struct {
	Text string `parser:"'raw' @String"`
}

type Loop struct {
	Var  string   `parser:"'repeat' @Ident"`
	From *Expr    `parser:"'=' @@ ':'"`
	To   *Expr    `parser:"@@"`
	Body *Program `parser:"'do' @@ 'end'"`
}

type If struct {
	Cond *Expr    `parser:"'if' @@"`
	Body *Program `parser:"'do' @@ 'end'"`
}

type Expr struct {
	Left *Term     `parser:"@@"`
	Rest []*OpTerm `parser:"@@*"`
}

type OpTerm struct {
	Op    string `parser:"@('+'|'-')"`
	Right *Term  `parser:"@@"`
}

type Term struct {
	Number *int    `parser:"@Int"`
	Ident  *string `parser:"| @Ident"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Dir", Pattern: `[NESW]+\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Punct", Pattern: `[-+=:;]`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

func Parse(data string) (*Program, error) {
	return parser.ParseString("input", data)
}

func ParseFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prog, err := parser.ParseString(path, string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return prog, nil
}

// Compile expands p into a flat command sequence of at most limit
// directions. A limit <= 0 disables the cap.
func Compile(p *Program, limit int) ([]rover.Cardinal, error) {
	ctx := NewContext(limit)
	if err := p.Expand(ctx); err != nil {
		return nil, err
	}
	return ctx.Commands(), nil
}

func (p *Program) Expand(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Expand(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Expand(ctx *Context) error {
	switch {
	case s.Assign != nil:
		val, err := s.Assign.Expr.Eval(ctx)
		if err != nil {
			return err
		}
		ctx.Set(s.Assign.Name, val)
	case s.Move != nil:
		for _, d := range s.Move.Dirs {
			if err := ctx.emit(rover.DecodeString(d)...); err != nil {
				return err
			}
		}
	case s.Raw != nil:
		return ctx.emit(rover.DecodeString(s.Raw.Text)...)
	case s.Loop != nil:
		start, err := s.Loop.From.Eval(ctx)
		if err != nil {
			return err
		}
		end, err := s.Loop.To.Eval(ctx)
		if err != nil {
			return err
		}
		if end < start {
			return nil
		}
		// Stop on i == end so an end of MaxInt cannot wrap around.
		for i := start; ; i++ {
			if err := ctx.tick(); err != nil {
				return err
			}
			ctx.Set(s.Loop.Var, i)
			if err := s.Loop.Body.Expand(ctx); err != nil {
				return err
			}
			if i == end {
				break
			}
		}
	case s.If != nil:
		cond, err := s.If.Cond.Eval(ctx)
		if err != nil {
			return err
		}
		if cond != 0 {
			return s.If.Body.Expand(ctx)
		}
	}
	return nil
}

func (e *Expr) Eval(ctx *Context) (int, error) {
	val, err := e.Left.Eval(ctx)
	if err != nil {
		return 0, err
	}
	for _, rt := range e.Rest {
		v, err := rt.Right.Eval(ctx)
		if err != nil {
			return 0, err
		}
		switch rt.Op {
		case "+":
			val += v
		case "-":
			val -= v
		}
	}
	return val, nil
}

func (t *Term) Eval(ctx *Context) (int, error) {
	switch {
	case t.Number != nil:
		return *t.Number, nil
	case t.Ident != nil:
		v, ok := ctx.Get(*t.Ident)
		if !ok {
			return 0, fmt.Errorf("%w %s", ErrUndefinedVariable, *t.Ident)
		}
		return v, nil
	}
	return 0, fmt.Errorf("invalid term")
}
