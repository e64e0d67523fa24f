package core

import (
	"strconv"
	"time"
)

// Helpers for the normalization boundary: backend payloads name the same field
// inconsistently (camelCase vs snake_case), so every resource type maps a decoded
// JSON object into its canonical shape through these accessors. The first key
// present wins; absent fields default to the zero value and are never fatal.

func JSONString(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			switch s := v.(type) {
			case string:
				return s
			case float64:
				return strconv.FormatFloat(s, 'f', -1, 64)
			}
		}
	}
	return ""
}

func JSONInt(m map[string]interface{}, keys ...string) int {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			switch n := v.(type) {
			case float64:
				return int(n)
			case string:
				if i, err := strconv.Atoi(n); err == nil {
					return i
				}
			}
		}
	}
	return 0
}

func JSONFloat(m map[string]interface{}, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			switch n := v.(type) {
			case float64:
				return n
			case string:
				if f, err := strconv.ParseFloat(n, 64); err == nil {
					return f
				}
			}
		}
	}
	return 0
}

func JSONStringSlice(m map[string]interface{}, keys ...string) []string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			raw, ok := v.([]interface{})
			if !ok {
				continue
			}
			out := make([]string, 0, len(raw))
			for _, item := range raw {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return nil
}

func JSONObjectSlice(m map[string]interface{}, keys ...string) []map[string]interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			raw, ok := v.([]interface{})
			if !ok {
				continue
			}
			out := make([]map[string]interface{}, 0, len(raw))
			for _, item := range raw {
				if obj, ok := item.(map[string]interface{}); ok {
					out = append(out, obj)
				}
			}
			return out
		}
	}
	return nil
}

func JSONObject(m map[string]interface{}, keys ...string) map[string]interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if obj, ok := v.(map[string]interface{}); ok {
				return obj
			}
		}
	}
	return nil
}

// JSONTime parses RFC3339 with or without fractional seconds; zero time otherwise.
func JSONTime(m map[string]interface{}, keys ...string) time.Time {
	s := JSONString(m, keys...)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
