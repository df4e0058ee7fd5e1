// Command generate-golden regenerates testdata/golden.json, the reference
// vectors the integer tests check against. Every expected value comes from
// math/big, and operands are derived from fixed formulas so that the output
// is byte-for-byte reproducible.
//
// Usage:
//
//	go run ./cmd/generate-golden -o testdata/golden.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"runtime"

	"github.com/cyberphone/json-canonicalization/go/src/webpki.org/jsoncanonicalizer"
	"golang.org/x/sync/errgroup"
)

// formatVersion is bumped whenever the case layout changes.
const formatVersion = 1

// sizes are operand sizes in bits, chosen to land on each side of the
// default multiplication and division crossovers on 64-bit words.
var sizes = []int{64, 640, 3200, 12800, 25600}

// maxModPowBits caps modular exponentiation cases.
const maxModPowBits = 3200

// Case is one golden vector. A and B are decimal operands (B unused by
// unary operations), Want the decimal result and Rem the remainder for
// "quorem".
type Case struct {
	Name string `json:"name"`
	Op   string `json:"op"`
	A    string `json:"a"`
	B    string `json:"b,omitempty"`
	M    string `json:"m,omitempty"`
	Want string `json:"want"`
	Rem  string `json:"rem,omitempty"`
}

// File is the top-level document.
type File struct {
	Version int    `json:"version"`
	Cases   []Case `json:"cases"`
}

// operand returns the bits-wide value 2**(bits-1) + (3**(bits/2+salt) mod
// 2**(bits-1)).
func operand(bits, salt int) *big.Int {
	half := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
	v := new(big.Int).Exp(big.NewInt(3), big.NewInt(int64(bits/2+salt)), half)
	return v.Add(v, half)
}

func neg(x *big.Int) *big.Int { return new(big.Int).Neg(x) }

// casesFor returns the vectors for one operand size.
func casesFor(bits int) []Case {
	a, b := operand(bits, 0), operand(bits, 1)
	na := neg(a)
	name := func(op string) string { return fmt.Sprintf("%s/%d", op, bits) }

	cs := []Case{
		{Name: name("add"), Op: "add", A: a.String(), B: neg(b).String(), Want: new(big.Int).Sub(a, b).String()},
		{Name: name("sub"), Op: "sub", A: na.String(), B: b.String(), Want: new(big.Int).Sub(na, b).String()},
		{Name: name("mul"), Op: "mul", A: na.String(), B: b.String(), Want: new(big.Int).Mul(na, b).String()},
		{Name: name("sqr"), Op: "sqr", A: a.String(), Want: new(big.Int).Mul(a, a).String()},
	}

	// Truncated division of a 2n-bit dividend by an n-bit divisor.
	wide := neg(operand(2*bits, 2))
	q, r := new(big.Int).QuoRem(wide, b, new(big.Int))
	cs = append(cs, Case{Name: name("quorem"), Op: "quorem", A: wide.String(), B: b.String(), Want: q.String(), Rem: r.String()})

	pos := neg(wide)
	cs = append(cs, Case{Name: name("sqrt"), Op: "sqrt", A: pos.String(), Want: new(big.Int).Sqrt(pos).String()})

	g := operand(bits/2, 3)
	ga, gb := new(big.Int).Mul(a, g), new(big.Int).Mul(b, g)
	cs = append(cs, Case{Name: name("gcd"), Op: "gcd", A: ga.String(), B: gb.String(), Want: new(big.Int).GCD(nil, nil, ga, gb).String()})

	if bits <= maxModPowBits {
		e := operand(64, 4)
		even := new(big.Int).Lsh(b, 1)
		cs = append(cs,
			Case{Name: name("modpow-odd"), Op: "modpow", A: a.String(), B: e.String(), M: b.String(), Want: new(big.Int).Exp(a, e, b).String()},
			Case{Name: name("modpow-even"), Op: "modpow", A: a.String(), B: e.String(), M: even.String(), Want: new(big.Int).Exp(a, e, even).String()},
		)
	}
	return cs
}

// generate builds every case, computing sizes concurrently while keeping
// the output order fixed.
func generate(ctx context.Context, sizes []int) (File, error) {
	perSize := make([][]Case, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, bits := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			perSize[i] = casesFor(bits)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return File{}, err
	}

	f := File{Version: formatVersion}
	for _, cs := range perSize {
		f.Cases = append(f.Cases, cs...)
	}
	return f, nil
}

// encode returns the canonical (RFC 8785) JSON form of f, newline
// terminated.
func encode(f File) ([]byte, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	out, err := jsoncanonicalizer.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing: %w", err)
	}
	return append(out, '\n'), nil
}

func main() {
	output := flag.String("o", "testdata/golden.json", "output file")
	flag.Parse()

	f, err := generate(context.Background(), sizes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	data, err := encode(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d cases to %s\n", len(f.Cases), *output)
}
