package playground

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/on-the-ground/curry_ive_go/demo"
)

var ErrNotANumber = errors.New("must be a number")

// parseArg reads the raw input of argument i the way the entry expects it.
func parseArg(entry demo.Entry, i int, raw string) (any, error) {
	if entry.Kind == demo.KindText {
		if raw == "" {
			return entry.Default(i), nil
		}
		return raw, nil
	}
	n, ok := parseNumber(raw)
	if !ok {
		return nil, fmt.Errorf("arg%d %w", i+1, ErrNotANumber)
	}
	return n, nil
}

// parseNumber follows JavaScript's Number(): surrounding space is ignored,
// blank input is 0, and 0x/0o/0b integer literals and ±Infinity are accepted.
func parseNumber(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	switch s {
	case "":
		return 0, true
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if strings.Contains(s, "_") {
		return 0, false
	}

	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		n, err := strconv.ParseUint(strings.ToLower(s[:2])+s[2:], 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	}

	// ParseFloat also takes inf, nan and hex floats, Number() does not.
	if strings.ContainsAny(strings.ToLower(s), "xpian") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// formatValue renders v like JavaScript's String().
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "undefined"
	case string:
		return x
	case float64:
		return formatNumber(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		s = strings.Replace(s, "e-0", "e-", 1)
		return strings.Replace(s, "e+0", "e+", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
