package legacy

import (
	"fmt"

	"schema-migrator/internal/diagnostic"
	"schema-migrator/internal/match"
)

// Join binds every control of ui to a property of the entity named by its tab
// group and renders it into a Field. Each tab becomes a view with its fields
// in encounter order. Controls that cannot be bound are skipped and reported.
func Join(schema *DataSchema, ui *UISchema, name string) *Module {
	m := &Module{Name: name}
	seen := make(map[string]bool)

	for _, tg := range ui.TabGroups {
		entity, ok := schema.Entity(tg.Entity)
		if !ok {
			m.Diagnostics.AddWarning("entity_not_found",
				fmt.Sprintf("tab group is linked to unknown entity %q", tg.Entity), tg.Ref, tg.Entity)
		}

		vs := Viewset{ID: tg.Ref, Label: tg.Label}

		for _, tab := range tg.Tabs {
			view := View{ID: tg.Ref + "/" + tab.Ref, Label: tab.Label, Fields: []string{}}

			for _, c := range tab.Controls {
				field, ok := bind(&m.Diagnostics, view.ID, entity, c)
				if !ok {
					continue
				}

				if seen[field.Ref] {
					m.Diagnostics.AddInfo("duplicate_field",
						"field already defined by an earlier tab, reusing it", view.ID, field.Ref)
				} else {
					seen[field.Ref] = true
					m.Fields = append(m.Fields, field)
				}

				view.Fields = append(view.Fields, field.Ref)
			}

			m.Views = append(m.Views, view)
			vs.Views = append(vs.Views, view.ID)
		}

		m.Viewsets = append(m.Viewsets, vs)
	}

	return m
}

// bind resolves one control. The second result is false when the control is
// skipped; the reason has been added to diags.
func bind(diags *diagnostic.Diagnostics, viewID string, entity *Entity, c Control) (Field, bool) {
	if c.Attribute == "" {
		diags.AddWarning("unbound_control", "control has no attribute binding", viewID, c.Ref)
		return Field{}, false
	}

	var prop *Property
	if entity != nil {
		prop = entity.Properties[c.Attribute]
	}

	if prop == nil {
		msg := fmt.Sprintf("no property named %q", c.Attribute)
		if entity != nil {
			if near, ok := match.Suggest(c.Attribute, entity.Order, match.DefaultThreshold); ok {
				msg += fmt.Sprintf(" (did you mean %q?)", near)
			}
		}

		diags.AddWarning("attribute_not_found", msg, viewID, c.Ref)

		return Field{}, false
	}

	field := Field{
		Ref:       c.Ref,
		Label:     c.Label,
		Entity:    entity.Name,
		Attribute: prop.Name,
	}

	switch prop.Type {
	case PropertyMeasure:
		field.Kind = FieldText
		field.HelperText = prop.Description
	case PropertyVocab:
		field.Kind = FieldSelect
		field.HelperText = c.Label

		field.Options = make([]Option, 0, len(prop.Vocabulary))
		for _, t := range prop.Vocabulary {
			field.Options = append(field.Options, Option{Value: t.Term, Label: t.Term})
		}
	default:
		diags.AddWarning("unhandled_property_type",
			fmt.Sprintf("property %q has unhandled type %q", prop.Name, prop.Type), viewID, c.Ref)

		return Field{}, false
	}

	return field, true
}
