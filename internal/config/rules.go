package config

import (
	"encoding/json"
	"fmt"
)

// RuleSpec is the rule selection passed to php-cs-fixer: either a raw
// rule-set string (for example "@PSR12") or a structured rule mapping.
type RuleSpec struct {
	raw string
	set map[string]any
}

// RuleString creates a RuleSpec from a raw rule-set string.
func RuleString(s string) RuleSpec {
	return RuleSpec{raw: s}
}

// RuleSet creates a RuleSpec from a structured rule mapping.
func RuleSet(m map[string]any) RuleSpec {
	return RuleSpec{set: m}
}

// IsZero reports whether no rules are configured.
func (r RuleSpec) IsZero() bool {
	return r.raw == "" && r.set == nil
}

// Flag returns the value for the --rules flag: the JSON serialization
// of a structured mapping, or the raw string unmodified.
func (r RuleSpec) Flag() (string, error) {
	if r.set != nil {
		data, err := json.Marshal(r.set)
		if err != nil {
			return "", fmt.Errorf("serialize rules: %w", err)
		}
		return string(data), nil
	}
	return r.raw, nil
}

// normalizeRules converts a decoded settings value into a RuleSpec.
// TOML decodes rule tables as map[string]any and rule-set names as string.
func normalizeRules(v any) (RuleSpec, error) {
	switch rules := v.(type) {
	case nil:
		return RuleSpec{}, nil
	case string:
		return RuleString(rules), nil
	case map[string]any:
		return RuleSet(rules), nil
	default:
		return RuleSpec{}, fmt.Errorf("rules must be a string or a table, got %T", v)
	}
}
