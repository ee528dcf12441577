package format

import (
	"fmt"
	"strings"
	"time"
)

// longest tokens first so that "yyyy" wins over "yy"
var dateTokens = []string{
	"yyyy", "yy",
	"MMMM", "MMM", "MM", "M",
	"EEEE", "EEE",
	"dd", "d",
	"HH", "H", "hh", "h",
	"mm", "m",
	"ss", "s",
	"Q", "a",
}

// ApplyDateFormat renders t with a date-fns style pattern. Text between single quotes is copied as is.
func ApplyDateFormat(t time.Time, pattern string) string {
	var b strings.Builder

	for i := 0; i < len(pattern); {
		if pattern[i] == '\'' {
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				break
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}

		token := ""
		for _, candidate := range dateTokens {
			if strings.HasPrefix(pattern[i:], candidate) {
				token = candidate
				break
			}
		}
		if token == "" {
			b.WriteByte(pattern[i])
			i++
			continue
		}

		b.WriteString(dateToken(t, token))
		i += len(token)
	}

	return b.String()
}

func dateToken(t time.Time, token string) string {
	switch token {
	case "yyyy":
		return fmt.Sprintf("%04d", t.Year())
	case "yy":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return fmt.Sprint(int(t.Month()))
	case "EEEE":
		return t.Weekday().String()
	case "EEE":
		return t.Weekday().String()[:3]
	case "dd":
		return fmt.Sprintf("%02d", t.Day())
	case "d":
		return fmt.Sprint(t.Day())
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return fmt.Sprint(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12(t))
	case "h":
		return fmt.Sprint(hour12(t))
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return fmt.Sprint(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return fmt.Sprint(t.Second())
	case "Q":
		return fmt.Sprint((int(t.Month())-1)/3 + 1)
	case "a":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	}
	return token
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}
