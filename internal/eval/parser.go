package eval

import (
	"fmt"
	"strings"
)

// Node is a parsed expression.
type Node interface {
	// Pos is the byte offset of the node in the source text.
	Pos() int
	// String renders the node fully parenthesized.
	String() string
}

// Literal is a numeric literal, kept as text until evaluation so that it
// can be read under the evaluator's context.
type Literal struct {
	Offset  int
	Text    string
	IsFloat bool
}

// Ident is a variable reference.
type Ident struct {
	Offset int
	Name   string
}

// Unary is a prefix sign.
type Unary struct {
	Offset int
	Op     byte
	X      Node
}

// Binary is an infix operation.
type Binary struct {
	Offset int
	Op     byte
	X, Y   Node
}

// Call is a function application.
type Call struct {
	Offset int
	Name   string
	Args   []Node
}

func (n *Literal) Pos() int { return n.Offset }
func (n *Ident) Pos() int   { return n.Offset }
func (n *Unary) Pos() int   { return n.Offset }
func (n *Binary) Pos() int  { return n.Offset }
func (n *Call) Pos() int    { return n.Offset }

func (n *Literal) String() string { return n.Text }
func (n *Ident) String() string   { return n.Name }
func (n *Unary) String() string   { return fmt.Sprintf("(%c%s)", n.Op, n.X) }
func (n *Binary) String() string  { return fmt.Sprintf("(%s %c %s)", n.X, n.Op, n.Y) }

func (n *Call) String() string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.String()
	}
	return n.Name + "(" + strings.Join(args, ", ") + ")"
}

// Parse parses src into an expression tree. Failures are *SyntaxError
// values.
func Parse(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %s", describe(t))
	}
	return n, nil
}

type parser struct {
	src  string
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &SyntaxError{Expr: p.src, Pos: t.pos, Msg: fmt.Sprintf(format, args...)}
}

func describe(t token) string {
	if t.kind == tokEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

func (p *parser) isOp(ops string) bool {
	t := p.peek()
	return t.kind == tokOp && strings.Contains(ops, t.text)
}

func (p *parser) expr() (Node, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.isOp("+-") {
		op := p.next()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		x = &Binary{Offset: op.pos, Op: op.text[0], X: x, Y: y}
	}
	return x, nil
}

func (p *parser) term() (Node, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.isOp("*/%") {
		op := p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		x = &Binary{Offset: op.pos, Op: op.text[0], X: x, Y: y}
	}
	return x, nil
}

func (p *parser) unary() (Node, error) {
	if p.isOp("+-") {
		op := p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Offset: op.pos, Op: op.text[0], X: x}, nil
	}
	return p.power()
}

func (p *parser) power() (Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.isOp("^") {
		op := p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Binary{Offset: op.pos, Op: '^', X: x, Y: y}, nil
	}
	return x, nil
}

func (p *parser) primary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokInt, tokFloat:
		return &Literal{Offset: t.pos, Text: t.text, IsFloat: t.kind == tokFloat}, nil
	case tokIdent:
		if p.peek().kind != tokLParen {
			return &Ident{Offset: t.pos, Name: t.text}, nil
		}
		p.next()
		call := &Call{Offset: t.pos, Name: strings.ToLower(t.text)}
		if p.peek().kind == tokRParen {
			p.next()
			return call, nil
		}
		for {
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			switch sep := p.next(); sep.kind {
			case tokComma:
			case tokRParen:
				return call, nil
			default:
				return nil, p.errorf(sep, "expected ',' or ')', found %s", describe(sep))
			}
		}
	case tokLParen:
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if r := p.next(); r.kind != tokRParen {
			return nil, p.errorf(r, "expected ')', found %s", describe(r))
		}
		return x, nil
	}
	return nil, p.errorf(t, "unexpected %s", describe(t))
}
