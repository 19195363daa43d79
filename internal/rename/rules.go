package rename

import (
	"strings"

	"schema-migrator/internal/document"
	"schema-migrator/internal/naming"
)

// Component names with special label handling.
const (
	AutoIncrementerComponent = "BasicAutoIncrementer"
	autoIncrementerLabel     = "Auto Incrementer"
)

// DefaultReservedPrefix marks human-readable-identifier fields.
const DefaultReservedPrefix = "hrid"

// Field is the part of a field definition that label resolution looks at.
type Field struct {
	ID                 string
	ComponentName      string
	ComponentNamespace string
	// Params is component-parameters; nil when missing or not an object.
	Params *document.Object
}

// FieldFromValue builds a Field from a decoded field definition.
// Definitions that are not objects yield a Field with only the ID set.
func FieldFromValue(id string, v any) Field {
	f := Field{ID: id}

	def, ok := v.(*document.Object)
	if !ok || def == nil {
		return f
	}

	f.ComponentName, _ = def.String("component-name")
	f.ComponentNamespace, _ = def.String("component-namespace")
	f.Params, _ = def.Object("component-parameters")

	return f
}

// Param returns the string found by following path through the component
// parameters, or "" if any step is missing or has the wrong type.
func (f Field) Param(path ...string) string {
	if f.Params == nil || len(path) == 0 {
		return ""
	}

	obj := f.Params
	for _, key := range path[:len(path)-1] {
		next, ok := obj.Object(key)
		if !ok {
			return ""
		}

		obj = next
	}

	s, _ := obj.String(path[len(path)-1])

	return s
}

// Rule is one step of label resolution.
type Rule struct {
	// Name identifies the rule in logs and tests.
	Name string
	// Match reports whether the rule applies to the field.
	Match func(f Field) bool
	// Extract returns the label, or "" when the rule has nothing to offer.
	Extract func(f Field) string
	// Verbatim labels are used as the new id as-is: no slug, no counter.
	Verbatim bool
}

func always(Field) bool { return true }

// DefaultRules returns the label resolution rules in precedence order.
// An empty reservedPrefix disables the reserved-prefix rule.
func DefaultRules(reservedPrefix string) []Rule {
	isAutoIncrementer := func(f Field) bool { return f.ComponentName == AutoIncrementerComponent }

	return []Rule{
		{
			Name: "reserved-prefix",
			Match: func(f Field) bool {
				return reservedPrefix != "" && strings.HasPrefix(f.ID, reservedPrefix)
			},
			Extract:  func(f Field) string { return f.ID },
			Verbatim: true,
		},
		{
			Name:    "input-label-props",
			Match:   always,
			Extract: func(f Field) string { return f.Param("InputLabelProps", "label") },
		},
		{
			Name:    "label",
			Match:   func(f Field) bool { return !isAutoIncrementer(f) },
			Extract: func(f Field) string { return f.Param("label") },
		},
		{
			Name:    "form-label-children",
			Match:   always,
			Extract: func(f Field) string { return f.Param("FormLabelProps", "children") },
		},
		{
			Name:    "auto-incrementer",
			Match:   isAutoIncrementer,
			Extract: func(Field) string { return autoIncrementerLabel },
		},
		{
			Name:    "component-name",
			Match:   always,
			Extract: func(f Field) string { return f.ComponentName },
		},
	}
}

// ResolveLabel evaluates rules in order and returns the first usable label
// together with the rule that produced it. A label counts as absent when it
// is empty or, for non-verbatim rules, when it has no characters that survive
// slugification. The returned rule is nil if nothing matched.
func ResolveLabel(rules []Rule, f Field) (string, *Rule) {
	for i := range rules {
		rule := &rules[i]
		if !rule.Match(f) {
			continue
		}

		label := rule.Extract(f)
		if label == "" {
			continue
		}

		if !rule.Verbatim && naming.Slugify(label) == "" {
			continue
		}

		return label, rule
	}

	return "", nil
}
