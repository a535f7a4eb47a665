package utils

import (
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeValue walks a decoded JSON value and strips markup from every string
// leaf. Arrays and objects are rebuilt with sanitized members; numbers, bools
// and nulls pass through untouched.
func SanitizeValue(v any) any {
	switch val := v.(type) {
	case string:
		return SanitizeString(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = SanitizeValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, item := range val {
			out[key] = SanitizeValue(item)
		}
		return out
	default:
		return v
	}
}

// SanitizeString drops HTML tags (script bodies included) and leaves the
// remaining text entity-escaped. Unescaping here would hand typed entities
// like &lt;script&gt; back to the storefront as live markup.
func SanitizeString(s string) string {
	return strictPolicy.Sanitize(s)
}
