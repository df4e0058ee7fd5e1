package eval

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/bignum/bigfloat"
	"github.com/agbru/bignum/bigint"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/nat"
	"github.com/agbru/bignum/numerr"
)

// DefaultMaxBits bounds the bit length of integer powers.
const DefaultMaxBits = 1 << 32

var (
	// ErrOperand reports an operand of the wrong kind or range for an
	// operator or function.
	ErrOperand = errors.New("invalid operand")
	// ErrUnknown reports an unknown function or variable.
	ErrUnknown = errors.New("unknown name")
	// ErrTooLarge reports a power whose result would exceed the size limit.
	ErrTooLarge = errors.New("result too large")
)

// Options configures an Evaluator.
type Options struct {
	// Context rounds float results.
	Context bigfloat.Context
	// FloatBase is the base floats are held in; 0 means 10.
	FloatBase nat.Word
	// Thresholds, when set, replaces the process-wide crossovers for the
	// integer multiplications and divisions of this evaluator.
	Thresholds *nat.Thresholds
	// Vars holds named values, such as the last REPL result.
	Vars map[string]Value
	// MaxBits bounds integer powers; 0 means DefaultMaxBits.
	MaxBits uint64
	// Logger receives a debug event per evaluation; nil discards.
	Logger logging.Logger
	// Label names the evaluator in traces and logs (the algorithm).
	Label string
}

// Evaluator evaluates parsed expressions under fixed Options. It is safe
// for concurrent use if Vars is not modified meanwhile.
type Evaluator struct {
	opts   Options
	tracer trace.Tracer
}

// New returns an Evaluator for opts.
func New(opts Options) *Evaluator {
	if opts.FloatBase == 0 {
		opts.FloatBase = 10
	}
	if opts.MaxBits == 0 {
		opts.MaxBits = DefaultMaxBits
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	return &Evaluator{opts: opts, tracer: otel.Tracer("github.com/agbru/bignum/internal/eval")}
}

// Options returns the evaluator's settings.
func (e *Evaluator) Options() Options { return e.opts }

// Evaluate parses and evaluates src. Failures other than context errors
// are returned as apperrors.EvaluationError wrapping a *SyntaxError, a
// *numerr.ParseError, one of the numerr sentinels or one of this
// package's errors.
func (e *Evaluator) Evaluate(ctx context.Context, src string) (Value, error) {
	n, err := Parse(src)
	if err != nil {
		return Value{}, apperrors.EvaluationError{Expr: src, Cause: err}
	}
	return e.EvaluateNode(ctx, src, n, nil)
}

// ProgressFunc receives the fraction of expression nodes evaluated so far,
// in (0, 1].
type ProgressFunc func(done float64)

// EvaluateNode evaluates an expression parsed from src, reporting progress
// to progress when it is not nil.
func (e *Evaluator) EvaluateNode(ctx context.Context, src string, n Node, progress ProgressFunc) (v Value, err error) {
	ctx, span := e.tracer.Start(ctx, "eval.Evaluate", trace.WithAttributes(
		attribute.Int("expr.length", len(src)),
		attribute.String("eval.label", e.opts.Label),
		attribute.Int64("float.precision", int64(e.opts.Context.Precision)),
	))
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.String("result.kind", v.Kind().String()), attribute.Int("result.bits", v.BitLen()))
		}
		span.End()
		e.opts.Logger.Debug("evaluated",
			logging.String("label", e.opts.Label),
			logging.Int("expr_len", len(src)),
			logging.Float64("ms", float64(time.Since(start).Microseconds())/1e3),
			logging.Err(err))
	}()

	w := &walk{Evaluator: e, src: src, total: countNodes(n), progress: progress}
	v, err = w.eval(ctx, n)
	if err != nil && !apperrors.IsContextError(err) {
		err = apperrors.EvaluationError{Expr: src, Cause: err}
	}
	return v, err
}

// walk is the state of one evaluation.
type walk struct {
	*Evaluator
	src         string
	done, total int
	progress    ProgressFunc
}

func countNodes(n Node) int {
	switch n := n.(type) {
	case *Unary:
		return 1 + countNodes(n.X)
	case *Binary:
		return 1 + countNodes(n.X) + countNodes(n.Y)
	case *Call:
		c := 1
		for _, a := range n.Args {
			c += countNodes(a)
		}
		return c
	}
	return 1
}

func (w *walk) eval(ctx context.Context, n Node) (Value, error) {
	v, err := w.node(ctx, n)
	if err == nil && w.progress != nil {
		w.done++
		w.progress(float64(w.done) / float64(w.total))
	}
	return v, err
}

func (w *walk) node(ctx context.Context, n Node) (Value, error) {
	if err := ctx.Err(); err != nil {
		return Value{}, err
	}
	switch n := n.(type) {
	case *Literal:
		return w.literal(w.src, n)
	case *Ident:
		if v, ok := w.opts.Vars[n.Name]; ok {
			return v, nil
		}
		return Value{}, fmt.Errorf("%w: variable %q", ErrUnknown, n.Name)
	case *Unary:
		x, err := w.eval(ctx, n.X)
		if err != nil || n.Op == '+' {
			return x, err
		}
		return neg(x)
	case *Binary:
		x, err := w.eval(ctx, n.X)
		if err != nil {
			return Value{}, err
		}
		y, err := w.eval(ctx, n.Y)
		if err != nil {
			return Value{}, err
		}
		return w.binary(ctx, n.Op, x, y)
	case *Call:
		fn, ok := builtins[n.Name]
		if !ok {
			return Value{}, fmt.Errorf("%w: function %q", ErrUnknown, n.Name)
		}
		if len(n.Args) < fn.minArgs || fn.maxArgs >= 0 && len(n.Args) > fn.maxArgs {
			return Value{}, fmt.Errorf("%w: %s takes %s", ErrOperand, n.Name, fn.arity())
		}
		args := make([]Value, len(n.Args))
		for i, a := range n.Args {
			v, err := w.eval(ctx, a)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		return fn.call(w.Evaluator, ctx, args)
	}
	panic(fmt.Sprintf("eval: unexpected node %T", n))
}

// literal reads a numeric literal. Parse errors are reported at their
// offset in the whole expression.
func (e *Evaluator) literal(src string, n *Literal) (Value, error) {
	if !n.IsFloat {
		x, err := bigint.Parse(n.Text, 0)
		if err != nil {
			return Value{}, relocate(src, n.Offset, err)
		}
		return IntValue(x), nil
	}
	base := nat.Word(10)
	if len(n.Text) > 1 && n.Text[1]|0x20 == 'x' {
		base = 2
	}
	f, _, err := bigfloat.Parse(n.Text, base, bigfloat.Context{})
	if err != nil {
		return Value{}, relocate(src, n.Offset, err)
	}
	return e.toBase(f)
}

func relocate(src string, offset int, err error) error {
	var pe *numerr.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	if pe.Offset >= 0 {
		offset += pe.Offset
	}
	return numerr.NewParseError(src, offset, pe.Err)
}

// toBase rounds an exact float into the evaluator's base and context.
func (e *Evaluator) toBase(f bigfloat.Float) (Value, error) {
	if f.Base() == e.opts.FloatBase {
		r, acc := f.Round(e.opts.Context)
		return FloatValue(r, acc), nil
	}
	r, acc, err := f.WithBase(e.opts.FloatBase, e.opts.Context)
	if err != nil {
		return Value{}, err
	}
	return FloatValue(r, acc), nil
}

// toFloat promotes an integer; floats pass through.
func (e *Evaluator) toFloat(v Value) (bigfloat.Float, error) {
	switch v.kind {
	case KindFloat:
		return v.f, nil
	case KindInt:
		f, _ := bigfloat.FromInt(v.i, e.opts.FloatBase, e.opts.Context)
		return f, nil
	}
	return bigfloat.Float{}, fmt.Errorf("%w: tuple used as a number", ErrOperand)
}

func neg(x Value) (Value, error) {
	switch x.kind {
	case KindInt:
		return IntValue(x.i.Neg()), nil
	case KindFloat:
		return FloatValue(x.f.Neg(), -x.acc), nil
	}
	return Value{}, fmt.Errorf("%w: cannot negate a tuple", ErrOperand)
}

// ─────────────────────────────────────────────────────────────────────────────
// Operators
// ─────────────────────────────────────────────────────────────────────────────

func (e *Evaluator) binary(ctx context.Context, op byte, x, y Value) (Value, error) {
	if x.kind == KindTuple || y.kind == KindTuple {
		return Value{}, fmt.Errorf("%w: tuple used as a number", ErrOperand)
	}
	if op == '^' {
		return e.pow(ctx, x, y)
	}
	if x.kind == KindInt && y.kind == KindInt {
		return e.intBinary(op, x.i, y.i)
	}
	if op == '%' {
		return Value{}, fmt.Errorf("%w: %% requires integers", ErrOperand)
	}
	fx, err := e.toFloat(x)
	if err != nil {
		return Value{}, err
	}
	fy, err := e.toFloat(y)
	if err != nil {
		return Value{}, err
	}
	c := e.opts.Context
	var (
		r   bigfloat.Float
		acc bigfloat.Accuracy
	)
	switch op {
	case '+':
		r, acc, err = c.Add(fx, fy)
	case '-':
		r, acc, err = c.Sub(fx, fy)
	case '*':
		r, acc, err = c.Mul(fx, fy)
	case '/':
		r, acc, err = c.Quo(fx, fy)
	}
	if err != nil {
		return Value{}, err
	}
	return FloatValue(r, acc), nil
}

func (e *Evaluator) intBinary(op byte, x, y bigint.Int) (Value, error) {
	switch op {
	case '+':
		return IntValue(x.Add(y)), nil
	case '-':
		return IntValue(x.Sub(y)), nil
	case '*':
		return IntValue(e.mul(x, y)), nil
	}
	q, r, err := e.quoRem(x, y)
	if err != nil {
		return Value{}, err
	}
	if op == '/' {
		return IntValue(q), nil
	}
	return IntValue(r), nil
}

func (e *Evaluator) mul(x, y bigint.Int) bigint.Int {
	if e.opts.Thresholds != nil {
		return bigint.MulWith(x, y, *e.opts.Thresholds)
	}
	return x.Mul(y)
}

func (e *Evaluator) quoRem(x, y bigint.Int) (q, r bigint.Int, err error) {
	if e.opts.Thresholds != nil {
		return bigint.QuoRemWith(x, y, *e.opts.Thresholds)
	}
	return x.QuoRem(y)
}

// exponent returns an integral exponent, accepting integral floats.
func exponent(y Value) (bigint.Int, error) {
	switch y.kind {
	case KindInt:
		return y.i, nil
	case KindFloat:
		if y.f.IsInt() {
			return y.f.Int(), nil
		}
	}
	return bigint.Int{}, fmt.Errorf("%w: exponent must be an integer", ErrOperand)
}

func (e *Evaluator) pow(ctx context.Context, x, y Value) (Value, error) {
	n, err := exponent(y)
	if err != nil {
		return Value{}, err
	}
	if x.kind == KindInt && !n.IsNeg() {
		return e.powInt(ctx, x.i, n)
	}
	k, err := n.Int64()
	if err != nil || k != int64(int(k)) {
		return Value{}, fmt.Errorf("%w: exponent %s", ErrTooLarge, n)
	}
	fx, err := e.toFloat(x)
	if err != nil {
		return Value{}, err
	}
	r, acc, err := e.opts.Context.Pow(fx, int(k))
	if err != nil {
		return Value{}, err
	}
	return FloatValue(r, acc), nil
}

// powInt returns x**n for n >= 0 by left-to-right binary exponentiation,
// checking for cancellation between squarings.
func (e *Evaluator) powInt(ctx context.Context, x, n bigint.Int) (Value, error) {
	switch {
	case n.IsZero() || x.IsOne():
		return IntValue(bigint.NewInt(1)), nil
	case x.IsZero():
		return IntValue(x), nil
	case x.CmpAbs(bigint.NewInt(1)) == 0: // -1
		if n.Bit(0) == 0 {
			return IntValue(bigint.NewInt(1)), nil
		}
		return IntValue(x), nil
	}
	k, err := n.Uint64()
	if err != nil {
		return Value{}, fmt.Errorf("%w: exponent %s", ErrTooLarge, n)
	}
	if hi, lo := bits.Mul64(uint64(x.BitLen()-1), k); hi != 0 || lo >= e.opts.MaxBits {
		return Value{}, fmt.Errorf("%w: %s^%d exceeds %d bits", ErrTooLarge, x, k, e.opts.MaxBits)
	}
	r := x
	for i := bits.Len64(k) - 2; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return Value{}, err
		}
		r = e.mul(r, r)
		if k>>uint(i)&1 == 1 {
			r = e.mul(r, x)
		}
	}
	return IntValue(r), nil
}
