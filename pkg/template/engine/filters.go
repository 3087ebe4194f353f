package engine

import (
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Filter is a pure formatting function applied to an interpolated
// value. Filters are total: given input of the wrong shape they return
// the original value unchanged rather than failing the render.
type Filter func(any) any

// Registry maps filter names to their implementations.
type Registry map[string]Filter

// DefaultFilters returns the built-in filter set.
func DefaultFilters() Registry {
	return Registry{
		"currency":   currencyFilter,
		"uppercase":  uppercaseFilter,
		"lowercase":  lowercaseFilter,
		"capitalize": capitalizeFilter,
		"date":       dateFilter,
		"time":       timeFilter,
		"list":       listFilter,
		"count":      countFilter,
	}
}

// usd formats grouped dollar amounts ("$1,234.56"). Message printers
// are safe for concurrent use.
var usd = message.NewPrinter(language.AmericanEnglish)

// currencyFilter formats an amount in integer cents as a dollar string.
func currencyFilter(v any) any {
	cents, ok := numberValue(v)
	if !ok {
		return v
	}
	return usd.Sprintf("$%.2f", cents/100)
}

func uppercaseFilter(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.ToUpper(s)
}

func lowercaseFilter(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.ToLower(s)
}

// capitalizeFilter uppercases the first letter, leaving the rest of the
// string as authored.
func capitalizeFilter(v any) any {
	s, ok := v.(string)
	if !ok || s == "" {
		return v
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

const (
	longDateFormat  = "January 2, 2006"
	shortTimeFormat = "3:04 PM"
)

// dateFilter formats a date as a long date ("January 2, 2006").
// Accepted shapes: time.Time, RFC 3339 strings, and bare "2006-01-02"
// date strings.
func dateFilter(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(longDateFormat)
	case *time.Time:
		if val != nil {
			return val.Format(longDateFormat)
		}
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, val); err == nil {
				return t.Format(longDateFormat)
			}
		}
	}
	return v
}

// timeFilter formats a time of day as a short time ("3:04 PM").
func timeFilter(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(shortTimeFormat)
	case *time.Time:
		if val != nil {
			return val.Format(shortTimeFormat)
		}
	case string:
		for _, layout := range []string{time.RFC3339, "15:04:05", "15:04"} {
			if t, err := time.Parse(layout, val); err == nil {
				return t.Format(shortTimeFormat)
			}
		}
	}
	return v
}

// listFilter joins an array into a human-readable comma-separated
// string.
func listFilter(v any) any {
	switch val := v.(type) {
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, elem := range val {
			parts[i] = Stringify(elem)
		}
		return strings.Join(parts, ", ")
	}
	return v
}

// countFilter returns the length of an array.
func countFilter(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return v
}
