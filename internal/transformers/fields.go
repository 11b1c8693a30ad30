package transformers

import (
	"strings"
)

// Field accessors over decoded provider JSON. Keys use dot notation for
// nested objects ("geometry.location.lat"). The getOptional* variants return
// nil for anything absent or of the wrong type, so callers can keep "unknown"
// distinct from zero.

func getString(m map[string]interface{}, key string) string {
	keys := strings.Split(key, ".")
	current := m
	for _, k := range keys[:len(keys)-1] {
		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			return ""
		}
	}
	if val, ok := current[keys[len(keys)-1]].(string); ok {
		return val
	}
	return ""
}

func getOptionalString(m map[string]interface{}, key string) *string {
	if val := getString(m, key); val != "" {
		return &val
	}
	return nil
}

func getOptionalFloat(m map[string]interface{}, key string) *float64 {
	keys := strings.Split(key, ".")
	current := m
	for _, k := range keys[:len(keys)-1] {
		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			return nil
		}
	}
	// encoding/json decodes every number to float64
	if val, ok := current[keys[len(keys)-1]].(float64); ok {
		return &val
	}
	return nil
}

func getOptionalInt(m map[string]interface{}, key string) *int {
	if val := getOptionalFloat(m, key); val != nil {
		n := int(*val)
		return &n
	}
	return nil
}

// joinTypes renders a provider category list as "a, b, c". Empty, absent or
// non-list values map to absent.
func joinTypes(val interface{}) *string {
	list, ok := val.([]interface{})
	if !ok || len(list) == 0 {
		return nil
	}
	parts := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok && s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return nil
	}
	joined := strings.Join(parts, ", ")
	return &joined
}
