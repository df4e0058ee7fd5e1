package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/bigcalc into a temporary directory. go test runs
// in the package directory, so the build starts from the module root.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "bigcalc"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/bigcalc")
	cmd.Dir = filepath.Join("..", "..")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("building bigcalc: %v", err)
	}
	return binPath
}

// TestCLI_E2E runs the built binary and checks output and exit status.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}
	binPath := buildBinary(t)
	home := t.TempDir()

	tests := []struct {
		name     string
		args     []string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{"Basic Evaluation", []string{"2^64"}, "18446744073709551616", 0},
		{"Quiet Mode", []string{"-q", "6*7"}, "42", 0},
		{"Hex Output", []string{"-q", "-r", "16", "--upper", "255*256"}, "FF00", 0},
		{"Float Result", []string{"-q", "-p", "10", "1/3.0"}, "0.3333333333", 0},
		{"All Algorithms Comparison", []string{"--algo", "all", "3^2000"}, "toom3", 0},
		{"JSON Output", []string{"--json", "2^10"}, `"result": "1024"`, 0},
		{"Help", []string{"--help"}, "usage", 0},
		{"Version Flag", []string{"--version"}, "bigcalc", 0},
		{"Division By Zero", []string{"-q", "1/0"}, "division by zero", 5},
		{"Syntax Error", []string{"-q", "1 +"}, "", 5},
		{"Invalid Radix", []string{"-r", "40", "1"}, "radix", 4},
		{"Missing Expression", []string{}, "no expression", 4},
		{"Very Short Timeout", []string{"--timeout", "1ms", "3^50000000"}, "", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1", "HOME="+home)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("running bigcalc: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("output missing %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
