package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/agbru/bignum/bigfloat"
	"github.com/agbru/bignum/internal/config"
	"github.com/agbru/bignum/internal/eval"
	"github.com/agbru/bignum/internal/format"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/orchestration"
	"github.com/agbru/bignum/internal/ui"
)

// AnsVar names the variable holding the last result.
const AnsVar = "ans"

// REPL is an interactive evaluation session. Settings changed with
// commands apply to later lines.
type REPL struct {
	cfg    config.AppConfig
	logger logging.Logger
	vars   map[string]eval.Value
	in     io.Reader
	out    io.Writer
}

// NewREPL returns a session starting from cfg.
func NewREPL(cfg config.AppConfig, logger logging.Logger) *REPL {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &REPL{
		cfg:    cfg,
		logger: logger,
		vars:   make(map[string]eval.Value),
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

func (r *REPL) SetInput(in io.Reader)   { r.in = in }
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start reads lines until "exit" or end of input.
func (r *REPL) Start(ctx context.Context) {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"calc> "+ui.ColorReset())
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		if line = strings.TrimSpace(line); line != "" {
			if !r.processCommand(ctx, line) {
				return
			}
		}
		if err != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sbigcalc - Interactive Mode%s                           %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	cmd := func(name, desc string) {
		fmt.Fprintf(r.out, "  %s%-14s%s - %s\n", ui.ColorYellow(), name, ui.ColorReset(), desc)
	}
	fmt.Fprintf(r.out, "%sEnter an expression, or a command:%s\n", ui.ColorBold(), ui.ColorReset())
	cmd("radix <n>", "Output radix for integers (2-36)")
	cmd("upper", "Toggle upper-case digits")
	cmd("prec <n>", "Float precision in digits, 0 for exact")
	cmd("round <mode>", "Float rounding (even, away-half, zero-half, trunc, away, ceil, floor)")
	cmd("base <n>", "Float base (2-36)")
	cmd("algo <name>", "Multiplication strategy ("+strings.Join(config.Algorithms, ", ")+")")
	cmd("funcs", "List functions")
	cmd("status", "Display current settings")
	cmd("help", "Display this help")
	cmd("exit", "Leave interactive mode")
	fmt.Fprintf(r.out, "The previous result is available as %s%s%s.\n", ui.ColorYellow(), AnsVar, ui.ColorReset())
}

// processCommand runs one line. It returns false when the session ends.
func (r *REPL) processCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	case "help", "h", "?":
		r.printHelp()
	case "status", "st":
		r.cmdStatus()
	case "funcs":
		for _, f := range eval.Functions() {
			fmt.Fprintf(r.out, "  %s\n", f)
		}
	case "upper":
		r.cfg.Upper = !r.cfg.Upper
		fmt.Fprintf(r.out, "Upper-case digits: %s%v%s\n", ui.ColorGreen(), r.cfg.Upper, ui.ColorReset())
	case "radix", "prec", "base":
		if len(args) != 1 {
			r.errorf("Usage: %s <n>", cmd)
			break
		}
		r.setNumber(cmd, args[0])
	case "round":
		if len(args) != 1 {
			r.errorf("Usage: round <mode>")
			break
		}
		if _, err := bigfloat.ParseRoundingMode(args[0]); err != nil {
			r.errorf("%v", err)
			break
		}
		r.cfg.Rounding = strings.ToLower(args[0])
		r.confirm("Rounding", r.cfg.FloatContext().Rounding.String())
	case "algo":
		if len(args) != 1 {
			r.errorf("Usage: algo <name> (%s)", strings.Join(config.Algorithms, ", "))
			break
		}
		next := r.cfg
		next.Algo = strings.ToLower(args[0])
		if err := next.Validate(); err != nil {
			r.errorf("%v", err)
			break
		}
		r.cfg = next
		r.confirm("Strategy", r.cfg.Algo)
	default:
		r.evaluate(ctx, line)
	}
	return true
}

func (r *REPL) setNumber(cmd, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		r.errorf("Invalid value: %s", arg)
		return
	}
	next := r.cfg
	switch cmd {
	case "radix":
		next.Radix = n
	case "prec":
		next.Precision = uint(n)
	case "base":
		next.FloatBase = n
	}
	if err := next.Validate(); err != nil {
		r.errorf("%v", err)
		return
	}
	r.cfg = next
	r.confirm(cmd, arg)
}

func (r *REPL) confirm(what, value string) {
	fmt.Fprintf(r.out, "%s set to %s%s%s\n", what, ui.ColorGreen(), value, ui.ColorReset())
}

func (r *REPL) errorf(f string, args ...any) {
	fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorRed(), fmt.Sprintf(f, args...), ui.ColorReset())
}

// evaluate runs the line under the selected strategies and stores the
// result in ans.
func (r *REPL) evaluate(ctx context.Context, expr string) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	strategies := orchestration.StrategiesFor(r.cfg, r.vars, r.logger)
	results, err := orchestration.ExecuteEvaluations(ctx, strategies, expr, orchestration.NullProgressReporter{}, r.out)
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	if len(results) > 1 {
		orchestration.SortResults(results)
		CLIResultPresenter{}.PresentComparisonTable(results, r.out)
	}
	best, err := orchestration.CheckConsistency(expr, results)
	if err != nil {
		r.errorf("Error: %v", err)
		return
	}
	r.vars[AnsVar] = best.Value

	text := best.Value.Text(r.cfg.Radix, r.cfg.Upper)
	if len(text) > TruncationLimit {
		text = format.Truncate(text, DisplayEdges)
	}
	fmt.Fprintf(r.out, "= %s%s%s", ui.ColorGreen(), text, ui.ColorReset())
	fmt.Fprintf(r.out, "  %s(%s", ui.ColorCyan(), format.FormatExecutionDuration(best.Duration))
	if x, ok := best.Value.Int(); ok && x.BitLen() > 64 {
		fmt.Fprintf(r.out, ", %s", format.FormatBits(x.BitLen()))
	}
	if best.Value.Kind() == eval.KindFloat && best.Value.Accuracy() != bigfloat.Exact {
		fmt.Fprintf(r.out, ", %s", best.Value.Accuracy())
	}
	fmt.Fprintf(r.out, ")%s\n", ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	row := func(k, v string) {
		fmt.Fprintf(r.out, "  %-12s %s%s%s\n", k+":", ui.ColorCyan(), v, ui.ColorReset())
	}
	fmt.Fprintf(r.out, "\n%sCurrent settings:%s\n", ui.ColorBold(), ui.ColorReset())
	row("Radix", strconv.Itoa(r.cfg.Radix))
	row("Upper", strconv.FormatBool(r.cfg.Upper))
	row("Precision", strconv.FormatUint(uint64(r.cfg.Precision), 10))
	row("Rounding", r.cfg.FloatContext().Rounding.String())
	row("Float base", strconv.Itoa(r.cfg.FloatBase))
	row("Strategy", r.cfg.Algo)
	row("Timeout", r.cfg.Timeout.String())
	if v, ok := r.vars[AnsVar]; ok {
		row(AnsVar, format.Truncate(v.Text(r.cfg.Radix, r.cfg.Upper), DisplayEdges))
	}
	fmt.Fprintln(r.out)
}

// Vars returns the session variables.
func (r *REPL) Vars() map[string]eval.Value { return r.vars }
