package frozen

import (
	"fmt"
	"strconv"
	"strings"
)

// renderItems renders elements quoted and escape-safe for debug output.
// Strings come out through strconv.Quote so tabs, newlines and carriage
// returns never break a rendered line.
func renderItems[T any](items []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(renderValue(v))
	}
	b.WriteByte(']')
	return b.String()
}

func renderValue(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return strconv.Quote(x.String())
	default:
		return fmt.Sprintf("%v", x)
	}
}
