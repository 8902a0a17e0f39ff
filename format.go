package grid

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Number renders numeric cell values with thousands separators. Floats
// get decimals places; integers print in full. Other values pass through.
func Number(decimals int) ValueRenderer {
	return func(ctx CellContext) any {
		s, ok := numberText(ctx.Value, decimals)
		if !ok {
			return ctx.Value
		}
		return groupThousands(s)
	}
}

// Currency renders numeric values with a symbol prefix and comma separators.
func Currency(symbol string, decimals int) ValueRenderer {
	return func(ctx CellContext) any {
		s, ok := numberText(ctx.Value, decimals)
		if !ok {
			return ctx.Value
		}
		return symbol + groupThousands(s)
	}
}

// Percent renders numeric values as percentages.
func Percent(decimals int) ValueRenderer {
	return func(ctx CellContext) any {
		f, ok := numberValue(ctx.Value)
		if !ok {
			return ctx.Value
		}
		return strconv.FormatFloat(f, 'f', decimals, 64) + "%"
	}
}

// Bytes renders numeric values as human-readable byte sizes.
func Bytes() ValueRenderer {
	return func(ctx CellContext) any {
		f, ok := numberValue(ctx.Value)
		if !ok {
			return ctx.Value
		}
		return byteSize(f)
	}
}

// Bool renders boolean values with custom labels.
func Bool(yes, no string) ValueRenderer {
	return func(ctx CellContext) any {
		if b, ok := ctx.Value.(bool); ok && b {
			return yes
		}
		return no
	}
}

// ParseNumber is a ValueParser for numeric columns. Commas are ignored.
func ParseNumber(_ CellContext, text string) (any, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if s == "" {
		return nil, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	return strconv.ParseFloat(s, 64)
}

// DisplayText converts a rendered value to the text shown in a cell.
func DisplayText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// numberText formats a numeric cell value in plain decimal notation.
// Integer kinds, including named ones, keep full precision.
func numberText(v any, decimals int) (string, bool) {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10), true
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10), true
	case rv.CanFloat():
		return strconv.FormatFloat(rv.Float(), 'f', decimals, 64), true
	}
	return "", false
}

func numberValue(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		return rv.Float(), true
	}
	return 0, false
}

// groupThousands puts a comma between every three integer digits of a
// plain decimal string.
func groupThousands(s string) string {
	sign, digits := "", s
	if strings.HasPrefix(s, "-") {
		sign, digits = "-", s[1:]
	}
	whole, frac, hasFrac := strings.Cut(digits, ".")
	out := make([]byte, 0, len(s)+len(whole)/3)
	for i := range len(whole) {
		if i > 0 && (len(whole)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, whole[i])
	}
	if hasFrac {
		out = append(append(out, '.'), frac...)
	}
	return sign + string(out)
}

var byteUnits = [...]string{"B", "KB", "MB", "GB", "TB", "PB"}

// byteSize scales n by powers of 1024, stopping at petabytes. Plain bytes
// print as a whole number.
func byteSize(n float64) string {
	if n < 0 {
		return "-" + byteSize(-n)
	}
	unit := 0
	for n >= 1024 && unit < len(byteUnits)-1 {
		n /= 1024
		unit++
	}
	if unit == 0 {
		return strconv.FormatFloat(math.Floor(n), 'f', 0, 64) + " B"
	}
	return strconv.FormatFloat(n, 'f', 1, 64) + " " + byteUnits[unit]
}
