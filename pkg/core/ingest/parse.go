// Package ingest reads raw observation and market-cap files into models.
package ingest

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks malformed input. It is fatal for the entity being loaded.
var ErrInvalidInput = errors.New("invalid input")

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"20060102",
}

var reportDateLayouts = []string{
	"20060102",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ParseReportDate parses a period end date and requires it to be the last day of a
// calendar quarter.
func ParseReportDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range reportDateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if !IsQuarterEnd(t) {
			return time.Time{}, fmt.Errorf("%w: report date %q is not a quarter end", ErrInvalidInput, s)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: unparseable report date %q", ErrInvalidInput, s)
}

// IsQuarterEnd reports whether t is Mar 31, Jun 30, Sep 30 or Dec 31.
func IsQuarterEnd(t time.Time) bool {
	if t.Month()%3 != 0 {
		return false
	}
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

// ParseTimestamp parses an optional timestamp. An empty string is the zero time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", ErrInvalidInput, s)
}

// ParseValue parses a reported amount exactly and scales it. ok is false for an empty
// or "nan" cell, which means the fact was not reported.
func ParseValue(s string, scale decimal.Decimal) (v float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "nan") || strings.EqualFold(s, "null") {
		return 0, false, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return 0, false, fmt.Errorf("%w: unparseable value %q", ErrInvalidInput, s)
	}
	f, _ := d.Mul(scale).Float64()
	return f, true, nil
}

var (
	symbolSuffix = regexp.MustCompile(`(?i)\.(SZ|SH|SS)$`)
	symbolPrefix = regexp.MustCompile(`(?i)^(SZ|SH)\.?`)
	allDigits    = regexp.MustCompile(`^[0-9]+$`)
)

// NormalizeSymbol canonicalizes an A-share code: "2508.SZ", "sz002508" and "002508"
// all become "002508". Other symbols are upper-cased.
func NormalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	s = symbolSuffix.ReplaceAllString(s, "")
	if rest := symbolPrefix.ReplaceAllString(s, ""); allDigits.MatchString(rest) {
		s = rest
	}
	if allDigits.MatchString(s) && len(s) < 6 {
		s = strings.Repeat("0", 6-len(s)) + s
	}
	return strings.ToUpper(s)
}
