package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTime converts a clock string such as "09:30", "9:30 PM" or
// "12:05 am" into minutes since midnight. It never fails: tokens that are
// not integers count as zero, so "" and "bad:text" both yield 0.
// Out-of-range hours and minutes are not clamped.
func ParseTime(text string) int {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	if normalized == "" {
		return 0
	}

	parts := strings.Split(normalized, " ")
	clock := parts[0]
	meridiem := ""
	if len(parts) > 1 {
		meridiem = parts[1]
	}

	fields := strings.Split(clock, ":")
	hours := atoiOrZero(fields[0])
	minutes := 0
	if len(fields) > 1 {
		minutes = atoiOrZero(fields[1])
	}

	switch {
	case meridiem == "PM" && hours < 12:
		hours += 12
	case meridiem == "AM" && hours == 12:
		hours = 0
	}

	return hours*60 + minutes
}

// FormatMinutes renders a minute offset as canonical "HH:MM".
//
// Only the hour is wrapped (mod 24), so 1440 renders as "00:00" and 1500 as
// "01:00". Negative offsets are floored so the result stays well formed.
func FormatMinutes(total int) string {
	h := floorMod(floorDiv(total, 60), 24)
	m := floorMod(total, 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
