package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a flag for shell completion scripts. Every
// generator reads flagRegistry, so a new flag needs one entry here.
type FlagCompletion struct {
	Long      string // without "--"
	Short     string // without "-"
	Help      string
	Values    []string // suggested values; nil for booleans
	ValueName string   // value label for zsh; empty for booleans
	IsFile    bool
	IsAlgo    bool // values come from the algorithm list
}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "radix", Short: "r", Help: "Output radix for integers", Values: []string{"2", "8", "10", "16", "36"}, ValueName: "radix"},
	{Long: "upper", Help: "Upper-case digits above 9"},
	{Long: "prec", Short: "p", Help: "Float precision in digits (0 = exact)", Values: []string{"0", "20", "50", "100", "1000"}, ValueName: "digits"},
	{Long: "round", Help: "Float rounding mode", Values: []string{"even", "away-half", "zero-half", "trunc", "away", "ceil", "floor"}, ValueName: "mode"},
	{Long: "float-base", Help: "Base floats are held in", Values: []string{"2", "10", "16"}, ValueName: "base"},
	{Long: "algo", Help: "Multiplication strategy", IsAlgo: true, ValueName: "algorithm"},
	{Long: "karatsuba-threshold", Help: "Karatsuba crossover in words", ValueName: "words"},
	{Long: "toom3-threshold", Help: "Toom-3 crossover in words", ValueName: "words"},
	{Long: "newton-threshold", Help: "Newton division crossover in words", ValueName: "words"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration"},
	{Long: "verbose", Short: "v", Help: "Display the full result"},
	{Long: "quiet", Short: "q", Help: "Print only the result"},
	{Long: "json", Help: "Print the result as JSON"},
	{Long: "output", Short: "o", Help: "Save the result to a file", IsFile: true, ValueName: "file"},
	{Long: "interactive", Short: "i", Help: "Start the interactive mode"},
	{Long: "tui", Help: "Start the dashboard"},
	{Long: "calibrate", Help: "Measure crossover thresholds"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file"},
	{Long: "server", Help: "Start the HTTP server"},
	{Long: "port", Help: "HTTP server port", ValueName: "port"},
	{Long: "no-color", Help: "Disable colours"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error"}, ValueName: "level"},
	{Long: "completion", Help: "Generate a completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion writes the completion script for shell.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	var script string
	switch shell {
	case "bash":
		script = bashCompletion(algorithms)
	case "zsh":
		script = zshCompletion(algorithms)
	case "fish":
		script = fishCompletion(algorithms)
	case "powershell", "ps":
		script = powerShellCompletion(algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
	if _, err := io.WriteString(out, script); err != nil {
		return fmt.Errorf("completion %s generation failed: %w", shell, err)
	}
	return nil
}

// names returns the dash-prefixed spellings of f.
func (f FlagCompletion) names() []string {
	var ns []string
	if f.Long != "" {
		ns = append(ns, "--"+f.Long)
	}
	if f.Short != "" {
		ns = append(ns, "-"+f.Short)
	}
	return ns
}

func (f FlagCompletion) values(algorithms []string) []string {
	if f.IsAlgo {
		return algorithms
	}
	return f.Values
}

func bashCompletion(algorithms []string) string {
	var opts []string
	var cases strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, f.names()...)
		var body string
		switch {
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.values(algorithms)) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.values(algorithms), " "))
		default:
			continue
		}
		fmt.Fprintf(&cases, "        %s)\n            %s\n            return 0\n            ;;\n", strings.Join(f.names(), "|"), body)
	}
	return fmt.Sprintf(`# Bash completion script for bigcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_bigcalc_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _bigcalc_completions bigcalc
`, strings.Join(opts, " "), cases.String())
}

func zshCompletion(algorithms []string) string {
	var args []string
	for _, f := range flagRegistry {
		var suffix string
		switch {
		case f.IsFile:
			suffix = ":" + f.ValueName + ":_files"
		case len(f.values(algorithms)) > 0:
			suffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.values(algorithms), " "))
		case f.ValueName != "":
			suffix = ":" + f.ValueName + ":"
		}
		if f.Short != "" {
			args = append(args, fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'", f.Short, f.Long, f.Short, f.Long, f.Help, suffix))
		} else {
			args = append(args, fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, suffix))
		}
	}
	args = append(args, "        '*:expression:'")
	return fmt.Sprintf(`#compdef bigcalc

# Zsh completion script for bigcalc
# Place this file in a directory of $fpath as _bigcalc

_bigcalc() {
    _arguments -s \
%s
}

_bigcalc "$@"
`, strings.Join(args, " \\\n"))
}

func fishCompletion(algorithms []string) string {
	lines := []string{
		"# Fish completion script for bigcalc",
		"# Add this to ~/.config/fish/completions/bigcalc.fish",
		"",
		"complete -c bigcalc -f",
	}
	for _, f := range flagRegistry {
		parts := []string{"complete -c bigcalc"}
		if f.Short != "" {
			parts = append(parts, "-s "+f.Short)
		}
		parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))
		switch {
		case f.IsFile:
			parts = append(parts, "-rF")
		case len(f.values(algorithms)) > 0:
			parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.values(algorithms), " ")))
		case f.ValueName != "":
			parts = append(parts, "-x")
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func powerShellCompletion(algorithms []string) string {
	var options, cases []string
	for _, f := range flagRegistry {
		for _, n := range f.names() {
			options = append(options, fmt.Sprintf("        @{ Name = '%s'; Description = '%s' }", n, f.Help))
		}
		vals := f.values(algorithms)
		if len(vals) == 0 {
			continue
		}
		quoted := make([]string, len(vals))
		for i, v := range vals {
			quoted[i] = "'" + v + "'"
		}
		cases = append(cases, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quoted, ", ")))
	}
	return fmt.Sprintf(`# PowerShell completion script for bigcalc
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'bigcalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(options, "\n"), strings.Join(cases, "\n"))
}
