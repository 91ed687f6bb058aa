package content

import (
	"encoding/json"
	"fmt"
)

// EnsureString flattens a decoded JSON value into plain prose. Models
// occasionally wrap a section in {"content": "..."} or {"text": "..."}
// instead of a bare string.
func EnsureString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if inner, ok := t["content"]; ok {
			return EnsureString(inner)
		}
		if inner, ok := t["text"]; ok {
			return EnsureString(inner)
		}
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	case []any:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

// mergeSections overlays generated section text onto base. Only the ten
// known keys are considered; anything else the model emitted is dropped.
func mergeSections(base *ReportContent, raw map[string]any) {
	for _, key := range SectionKeys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if s := EnsureString(v); s != "" {
			*base.section(key) = s
		}
	}
}
