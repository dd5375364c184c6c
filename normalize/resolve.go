// Package normalize reconciles the several historical response shapes of the
// tea-garden backend into the stable view models under models/. Every adapter
// in this package is a pure function over decoded JSON: no I/O, no panics,
// and absence of data always degrades to a documented default.
package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// displayCandidateKeys are tried in order when an object lands in a text slot.
var displayCandidateKeys = []string{"text", "name", "title", "label", "value", "description", "content"}

var nonNumericRe = regexp.MustCompile(`[^\d.-]`)

// ToDisplayText coerces an arbitrary decoded-JSON value into a renderable
// string. Objects are resolved through displayCandidateKeys and serialized as
// JSON only as a last resort, so a raw object can never leak into a UI text
// slot. Arrays render element-wise, dropping blanks, joined with 、.
func ToDisplayText(value any, fallback string) string {
	switch v := value.(type) {
	case nil:
		return fallback
	case string:
		return v
	case bool:
		if v {
			return "是"
		}
		return "否"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(ToDisplayText(item, "")); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) == 0 {
			return fallback
		}
		return strings.Join(parts, "、")
	case map[string]any:
		for _, key := range displayCandidateKeys {
			if inner, ok := v[key]; ok {
				if s := ToDisplayText(inner, ""); s != "" {
					return s
				}
			}
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return fallback
		}
		return string(raw)
	default:
		return fallback
	}
}

// ToNumberValue extracts a finite number from a numeric or numeric-looking
// string value ("约 1.5kg" parses as 1.5). The second return reports success.
func ToNumberValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(nonNumericRe.ReplaceAllString(v, ""), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// ResolveFromSources scans candidate source objects in order and, within
// each, candidate key names in order, returning the first non-nil value.
// This models "try the new API field, then the old one, then the legacy
// top-level one" in a single auditable place.
func ResolveFromSources(sources []map[string]any, keys []string) any {
	for _, source := range sources {
		if source == nil {
			continue
		}
		for _, key := range keys {
			if value, ok := source[key]; ok && value != nil {
				return value
			}
		}
	}
	return nil
}

// ParsePercentage reads a percentage that may arrive as a number or as a
// decorated string ("72%", "约72").
func ParsePercentage(value any) (float64, bool) {
	return ToNumberValue(value)
}

// StringifyPickingPeriod renders a picking period that may arrive as a plain
// string or as a list of date fragments.
func StringifyPickingPeriod(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "，"), true
	default:
		return "", false
	}
}

// ---- shared accessors over decoded JSON ----

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// strField returns the first non-empty string found under keys, trimmed.
func strField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

// numField resolves keys in order and coerces the first hit to a number.
func numField(m map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if value, ok := m[key]; ok && value != nil {
			if n, ok := ToNumberValue(value); ok {
				return n, true
			}
		}
	}
	return 0, false
}

func boolField(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if b, ok := m[key].(bool); ok {
			return b
		}
	}
	return false
}

// stringSlice coerces an array value into its non-empty string elements.
func stringSlice(v any) []string {
	items := asSlice(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(ToDisplayText(item, "")); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// rawStringSlice keeps only real string elements, untouched. Used for media
// URL arrays where coercion would be wrong.
func rawStringSlice(v any) []string {
	items := asSlice(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func mapSlice(v any) []map[string]any {
	items := asSlice(v)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m := asMap(item); m != nil {
			out = append(out, m)
		}
	}
	return out
}

// firstMediaURL returns the first string in the chain of direct keys, then the
// first element of the array-valued keys. Used by media resolution where the
// priority order is part of the contract.
func firstMediaURL(m map[string]any, directKeys []string, arrayKeys []string) string {
	if s := strField(m, directKeys...); s != "" {
		return s
	}
	for _, key := range arrayKeys {
		if urls := rawStringSlice(m[key]); len(urls) > 0 {
			return urls[0]
		}
	}
	return ""
}
