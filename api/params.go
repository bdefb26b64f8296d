package api

import (
	"net/url"
	"strconv"
	"strings"
)

// csvValues collects every value of a query parameter, splitting each on
// commas and trimming whitespace. Repeated parameters and comma-separated
// lists are equivalent.
func csvValues(values url.Values, key string) []string {
	var out []string
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}

// uniqueStrings drops repeated values, keeping first-seen order.
func uniqueStrings(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// intParam parses a numeric parameter, returning fallback for absent or
// unparsable values.
func intParam(values url.Values, key string, fallback int) int {
	s := strings.TrimSpace(values.Get(key))
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// yearParams parses the year filter, keeping only plausible 4-digit years.
func yearParams(values url.Values) []int {
	var years []int
	for _, token := range csvValues(values, "year") {
		v, err := strconv.Atoi(token)
		if err != nil || v < 1000 || v > 9999 {
			continue
		}
		years = append(years, v)
	}
	return years
}

// featuredParam parses the tri-state featured filter. The deployed frontend
// still sends the legacy favoritesOrFeatured parameter with Sí/No literals,
// so those are honored alongside the usual boolean spellings. Absent or
// unparsable values mean "no constraint".
func featuredParam(values url.Values) *bool {
	raw := values.Get("featured")
	if raw == "" {
		raw = values.Get("favoritesOrFeatured")
	}
	switch raw {
	case "":
		return nil
	case "Sí", "Si":
		return boolPtr(true)
	case "No":
		return boolPtr(false)
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return boolPtr(b)
	}
	return nil
}

// sortParam returns the sort keyword, preferring sort over the legacy
// orderBy alias.
func sortParam(values url.Values) string {
	if s := values.Get("sort"); s != "" {
		return s
	}
	return values.Get("orderBy")
}

func boolPtr(b bool) *bool {
	return &b
}
