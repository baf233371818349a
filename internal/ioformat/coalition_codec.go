// Package ioformat reads and writes the game table and result tables in
// CSV, Parquet, and (for results only) xlsx form, including the
// coalition-cell codec that normalizes the several accepted wire formats.
package ioformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coopmetrics/coopmetrics/schema"
)

// DecodeCoalition parses a coalition cell. With coalitionFormat "auto" (or
// empty) it accepts, in this order: empty/"{}"/"()", brace-set "{0,2,3}",
// paren-tuple "(0,2,3)", bracket-list "[0,2,3]", and bare comma-list
// "0,2,3". The bitmask and bitstring forms are only tried when
// coalitionFormat explicitly names them, since a bare digit string is
// ambiguous between the two.
func DecodeCoalition(raw string, coalitionFormat string) (schema.Coalition, error) {
	s := strings.TrimSpace(raw)

	switch schema.CoalitionFormat(coalitionFormat) {
	case schema.BitmaskCoalitionFormat:
		return decodeBitmask(s)
	case schema.BitstringCoalitionFormat:
		return decodeBitstring(s)
	}

	if s == "" || s == "{}" || s == "()" {
		return 0, nil
	}
	switch {
	case strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}"):
		return decodeList(s[1 : len(s)-1])
	case strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")"):
		return decodeList(s[1 : len(s)-1])
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		return decodeList(s[1 : len(s)-1])
	default:
		return decodeList(s)
	}
}

func decodeList(body string) (schema.Coalition, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return 0, nil
	}
	var c schema.Coalition
	for _, p := range strings.Split(body, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid coalition member %q: %w", p, schema.ErrInputSchema)
		}
		c |= schema.CoalitionOf(n)
	}
	return c, nil
}

func decodeBitmask(s string) (schema.Coalition, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid bitmask coalition %q: %w", s, schema.ErrInputSchema)
	}
	return schema.Coalition(n), nil
}

// decodeBitstring interprets bits bit-by-bit with the leftmost character as
// the highest player index (i.e. the bit string is read as if reversed).
func decodeBitstring(bits string) (schema.Coalition, error) {
	var c schema.Coalition
	n := len(bits)
	for i := 0; i < n; i++ {
		switch bits[i] {
		case '1':
			c |= schema.CoalitionOf(n - 1 - i)
		case '0':
		default:
			return 0, fmt.Errorf("invalid bitstring coalition %q: %w", bits, schema.ErrInputSchema)
		}
	}
	return c, nil
}

// EncodeCoalition renders a coalition in the canonical output wire form: a
// sorted comma-separated player list wrapped in braces, e.g. "{0,2,3}".
func EncodeCoalition(c schema.Coalition) string {
	return c.String()
}
