package utils

import (
	"strconv"
	"strings"
)

// BatchLines packs lines into messages of at most budget bytes, keeping line
// order. A single line longer than budget is sent on its own, cut to budget.
func BatchLines(lines []string, budget int) []string {
	var (
		batches []string
		buf     strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			batches = append(batches, buf.String())
			buf.Reset()
		}
	}

	for _, line := range lines {
		if len(line)+1 > budget {
			flush()
			batches = append(batches, truncate(line, budget))
			continue
		}
		if buf.Len()+len(line)+1 > budget {
			flush()
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	flush()
	return batches
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// FormatBalance renders an amount with thousands separators.
func FormatBalance(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
