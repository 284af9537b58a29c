package dispatch

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/model"
)

// legacyVariableKeys is the fixed key set campaigns used before
// structured bindings existed. Kept for backward compatibility with
// such campaigns; likely unreachable for campaigns created through the
// current flow.
var legacyVariableKeys = []string{"name", "email", "phone", "company"}

// EffectiveKeys determines the placeholder key set of one send
// attempt, in priority order: the campaign's own sample-value keys,
// then the template's stored variable keys, then the placeholders of
// the template body, then the legacy fixed set.
func EffectiveKeys(campaign model.Campaign, template model.NullTemplate) []string {
	if len(campaign.Variables) > 0 {
		return sortedKeys(campaign.Variables)
	}
	if template.Valid {
		if len(template.Template.Variables) > 0 {
			return sortedKeys(template.Template.Variables)
		}
		if keys := ExtractPlaceholders(template.Template.Body); len(keys) > 0 {
			return keys
		}
	}

	keys := make([]string, len(legacyVariableKeys))
	copy(keys, legacyVariableKeys)
	return keys
}

// ResolveVariables computes the substitution map for one recipient.
// Pure: the same (campaign, template, record) triple always yields the
// same map. Absent values resolve to the empty string.
func ResolveVariables(
	campaign model.Campaign, template model.NullTemplate, record map[string]interface{},
) map[string]string {
	keys := EffectiveKeys(campaign, template)

	result := make(map[string]string, len(keys))
	for _, key := range keys {
		result[key] = resolveKey(campaign, record, key)
	}
	return result
}

func resolveKey(campaign model.Campaign, record map[string]interface{}, key string) string {
	if fieldPath, ok := campaign.VariableBindings[key]; ok && fieldPath != "" {
		if value, ok := lookupPath(record, fieldPath); ok {
			return coerceString(value)
		}
	}

	if value, ok := record[key]; ok {
		return coerceString(value)
	}

	if sample, ok := campaign.Variables[key]; ok {
		return sample
	}

	return ""
}

// lookupPath resolves a dotted field path against a recipient record.
// A leading "lead" segment addresses the record root. Total: any
// missing or non-object intermediate segment yields (nil, false),
// never a panic.
func lookupPath(record map[string]interface{}, fieldPath string) (interface{}, bool) {
	segments := strings.Split(fieldPath, ".")
	if len(segments) > 1 && segments[0] == "lead" {
		segments = segments[1:]
	}

	var current interface{} = record
	for _, segment := range segments {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		value, exists := obj[segment]
		if !exists {
			return nil, false
		}
		current = value
	}
	return current, true
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(m model.JSONMap) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// RenderBody substitutes resolved variables into a template body,
// used when recording the outgoing message in conversation history
func RenderBody(body string, variables map[string]string) string {
	result := body
	for key, value := range variables {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return result
}
