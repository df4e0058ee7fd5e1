package eval

import (
	"context"
	"fmt"
	"sort"

	"github.com/agbru/bignum/bigfloat"
	"github.com/agbru/bignum/bigint"
)

type builtin struct {
	minArgs, maxArgs int // maxArgs < 0: variadic
	usage            string
	call             func(e *Evaluator, ctx context.Context, args []Value) (Value, error)
}

func (b builtin) arity() string {
	switch {
	case b.maxArgs < 0:
		return fmt.Sprintf("at least %d arguments", b.minArgs)
	case b.minArgs == b.maxArgs && b.minArgs == 1:
		return "1 argument"
	case b.minArgs == b.maxArgs:
		return fmt.Sprintf("%d arguments", b.minArgs)
	}
	return fmt.Sprintf("%d to %d arguments", b.minArgs, b.maxArgs)
}

var builtins map[string]builtin

func init() {
	builtins = map[string]builtin{
		"abs":    {1, 1, "abs(x): absolute value", fnAbs},
		"gcd":    {2, -1, "gcd(a, b, ...): greatest common divisor", fnFold(bigint.GCD)},
		"lcm":    {2, -1, "lcm(a, b, ...): least common multiple", fnFold(bigint.LCM)},
		"xgcd":   {2, 2, "xgcd(a, b): (g, s, t) with a*s + b*t = g", fnXGCD},
		"modinv": {2, 2, "modinv(a, m): inverse of a modulo m", fnModInv},
		"modpow": {3, 3, "modpow(b, e, m): b^e mod m", fnModPow},
		"ilog":   {2, 2, "ilog(x, b): largest e with b^e <= x", fnILog},
		"sqrt":   {1, 1, "sqrt(x): floor root of an integer, rounded root of a float", fnSqrt},
		"pow":    {2, 2, "pow(x, n): x^n", fnPow},
		"ln":     {1, 1, "ln(x): natural logarithm", fnLog(bigfloat.Context.Ln)},
		"log2":   {1, 1, "log2(x): base-2 logarithm", fnLog(bigfloat.Context.Log2)},
		"float":  {1, 1, "float(x): x as a float", fnFloat},
		"trunc":  {1, 1, "trunc(x): integer part", fnTrunc},
	}
}

// Functions returns the builtin function usages, sorted by name.
func Functions() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = builtins[name].usage
	}
	return out
}

func intArgs(name string, args []Value) ([]bigint.Int, error) {
	xs := make([]bigint.Int, len(args))
	for i, a := range args {
		x, ok := a.Int()
		if !ok {
			return nil, fmt.Errorf("%w: %s requires integers, argument %d is a %s", ErrOperand, name, i+1, a.Kind())
		}
		xs[i] = x
	}
	return xs, nil
}

func fnFold(op func(a, b bigint.Int) bigint.Int) func(*Evaluator, context.Context, []Value) (Value, error) {
	return func(_ *Evaluator, _ context.Context, args []Value) (Value, error) {
		xs, err := intArgs("gcd/lcm", args)
		if err != nil {
			return Value{}, err
		}
		r := xs[0]
		for _, x := range xs[1:] {
			r = op(r, x)
		}
		return IntValue(r), nil
	}
}

func fnXGCD(_ *Evaluator, _ context.Context, args []Value) (Value, error) {
	xs, err := intArgs("xgcd", args)
	if err != nil {
		return Value{}, err
	}
	g, s, t := bigint.ExtendedGCD(xs[0], xs[1])
	return TupleValue(IntValue(g), IntValue(s), IntValue(t)), nil
}

func fnModInv(_ *Evaluator, _ context.Context, args []Value) (Value, error) {
	xs, err := intArgs("modinv", args)
	if err != nil {
		return Value{}, err
	}
	r, err := bigint.ModInverse(xs[0], xs[1])
	if err != nil {
		return Value{}, err
	}
	return IntValue(r), nil
}

func fnModPow(_ *Evaluator, _ context.Context, args []Value) (Value, error) {
	xs, err := intArgs("modpow", args)
	if err != nil {
		return Value{}, err
	}
	r, err := bigint.ModPow(xs[0], xs[1], xs[2])
	if err != nil {
		return Value{}, err
	}
	return IntValue(r), nil
}

func fnILog(_ *Evaluator, _ context.Context, args []Value) (Value, error) {
	xs, err := intArgs("ilog", args)
	if err != nil {
		return Value{}, err
	}
	r, err := xs[0].ILog(xs[1])
	if err != nil {
		return Value{}, err
	}
	return IntValue(bigint.FromUint64(uint64(r))), nil
}

func fnAbs(_ *Evaluator, _ context.Context, args []Value) (Value, error) {
	switch a := args[0]; a.Kind() {
	case KindInt:
		return IntValue(a.i.Abs()), nil
	case KindFloat:
		return FloatValue(a.f.Abs(), a.acc*bigfloat.Accuracy(a.f.Signum())), nil
	}
	return Value{}, fmt.Errorf("%w: abs of a tuple", ErrOperand)
}

func fnSqrt(e *Evaluator, _ context.Context, args []Value) (Value, error) {
	if x, ok := args[0].Int(); ok {
		r, err := x.Sqrt()
		if err != nil {
			return Value{}, err
		}
		return IntValue(r), nil
	}
	f, err := e.toFloat(args[0])
	if err != nil {
		return Value{}, err
	}
	r, acc, err := e.opts.Context.Sqrt(f)
	if err != nil {
		return Value{}, err
	}
	return FloatValue(r, acc), nil
}

func fnPow(e *Evaluator, ctx context.Context, args []Value) (Value, error) {
	if args[0].Kind() == KindTuple || args[1].Kind() == KindTuple {
		return Value{}, fmt.Errorf("%w: tuple used as a number", ErrOperand)
	}
	return e.pow(ctx, args[0], args[1])
}

func fnLog(f func(bigfloat.Context, bigfloat.Float) (bigfloat.Float, bigfloat.Accuracy, error)) func(*Evaluator, context.Context, []Value) (Value, error) {
	return func(e *Evaluator, _ context.Context, args []Value) (Value, error) {
		x, err := e.toFloat(args[0])
		if err != nil {
			return Value{}, err
		}
		r, acc, err := f(e.opts.Context, x)
		if err != nil {
			return Value{}, err
		}
		return FloatValue(r, acc), nil
	}
}

func fnFloat(e *Evaluator, _ context.Context, args []Value) (Value, error) {
	if args[0].Kind() == KindFloat {
		return args[0], nil
	}
	if x, ok := args[0].Int(); ok {
		f, acc := bigfloat.FromInt(x, e.opts.FloatBase, e.opts.Context)
		return FloatValue(f, acc), nil
	}
	return Value{}, fmt.Errorf("%w: float of a tuple", ErrOperand)
}

func fnTrunc(_ *Evaluator, _ context.Context, args []Value) (Value, error) {
	switch a := args[0]; a.Kind() {
	case KindInt:
		return a, nil
	case KindFloat:
		return IntValue(a.f.Int()), nil
	}
	return Value{}, fmt.Errorf("%w: trunc of a tuple", ErrOperand)
}
