package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agbru/bignum/internal/config"
)

// isSetting reports whether cmd changes a session setting.
func isSetting(cmd string) bool {
	switch cmd {
	case "radix", "prec", "base", "round", "algo", "upper":
		return true
	}
	return false
}

// applySetting returns cfg with one setting changed, and the notice to
// show. cfg is returned unchanged on error.
func applySetting(cfg config.AppConfig, cmd string, args []string) (config.AppConfig, string, error) {
	next := cfg
	if cmd == "upper" {
		next.Upper = !next.Upper
		return next, fmt.Sprintf("upper-case digits: %v", next.Upper), nil
	}
	if len(args) != 1 {
		return cfg, "", fmt.Errorf("usage: %s <value>", cmd)
	}
	arg := strings.ToLower(args[0])
	switch cmd {
	case "radix", "prec", "base":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return cfg, "", fmt.Errorf("invalid value: %s", arg)
		}
		switch cmd {
		case "radix":
			next.Radix = n
		case "prec":
			next.Precision = uint(n)
		case "base":
			next.FloatBase = n
		}
	case "round":
		next.Rounding = arg
	case "algo":
		next.Algo = arg
	}
	if err := next.Validate(); err != nil {
		return cfg, "", err
	}
	return next, fmt.Sprintf("%s set to %s", cmd, arg), nil
}
