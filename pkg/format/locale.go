package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type separators struct {
	group   string
	decimal string
}

var defaultSeparators = separators{group: ",", decimal: "."}

// localeSeparators reads the digit group and decimal separators the locale prints
func localeSeparators(tag language.Tag) separators {
	p := message.NewPrinter(tag)

	seps := defaultSeparators
	if group := nonDigits(p.Sprintf("%d", 1000)); group != "" {
		seps.group = group
	}
	if decimal := nonDigits(p.Sprintf("%.1f", 1.5)); decimal != "" {
		seps.decimal = decimal
	}
	if seps.group == seps.decimal {
		return defaultSeparators
	}
	return seps
}

func nonDigits(s string) string {
	return strings.Trim(strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, s), " ")
}

// groupDigits inserts sep every three digits from the right
func groupDigits(digits string, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
