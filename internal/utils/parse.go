package utils

import (
	"math"
	"strings"
)

// ParseLeadingInt reads an optional sign followed by decimal digits from the
// start of s, ignoring surrounding whitespace. Anything after the digits is
// dropped, so "12.7" and "12abc" both yield 12. ok is false when s does not
// start with a number.
func ParseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	digits := 0
	var v int64
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if v < math.MaxInt32 {
			v = v*10 + int64(s[digits]-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}

	if v > math.MaxInt32 {
		v = math.MaxInt32
	}
	if neg {
		v = -v
	}
	return int(v), true
}

// IntOrDefault parses s with ParseLeadingInt and substitutes def when s is
// not numeric or parses to zero.
func IntOrDefault(s string, def int) int {
	n, ok := ParseLeadingInt(s)
	if !ok || n == 0 {
		return def
	}
	return n
}

// ClampMin returns v, or floor if v is smaller.
func ClampMin(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

// CeilDiv divides a by b rounding up. b must be positive.
func CeilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// SaturatingAdd adds two non-negative values, stopping at math.MaxInt.
func SaturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// SaturatingMul multiplies two non-negative values, stopping at math.MaxInt.
func SaturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
