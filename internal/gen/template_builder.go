package gen

import (
	"strings"

	"schema-migrator/internal/legacy"
)

// templateData holds all data needed for the module template.
type templateData struct {
	ProjectKey   string
	Fields       []fieldData
	Views        []legacy.View
	Viewsets     []legacy.Viewset
	VisibleTypes []string
	StartView    string
	Placeholder  string
}

// fieldData is one field definition.
type fieldData struct {
	Ref        string
	Label      string
	Component  string
	HelperText string
	Options    []legacy.Option
}

// buildTemplateData constructs the template data from a joined module.
func (g *Generator) buildTemplateData(m *legacy.Module) *templateData {
	data := &templateData{
		ProjectKey:   g.projectKey(m.Name),
		Views:        m.Views,
		Viewsets:     m.Viewsets,
		VisibleTypes: m.VisibleTypes(),
		StartView:    Placeholder,
		Placeholder:  Placeholder,
	}

	if len(m.Views) > 0 {
		data.StartView = m.Views[0].ID
	}

	data.Fields = make([]fieldData, 0, len(m.Fields))
	for _, f := range m.Fields {
		data.Fields = append(data.Fields, fieldData{
			Ref:        f.Ref,
			Label:      f.Label,
			Component:  f.Kind.String(),
			HelperText: f.HelperText,
			Options:    f.Options,
		})
	}

	return data
}

func (g *Generator) projectKey(name string) string {
	if g.config.Namespace == "" {
		return name
	}

	return g.config.Namespace + "/" + name
}

// tsString quotes s as a single-quoted TypeScript string literal.
func tsString(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('\'')

	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}

	b.WriteByte('\'')

	return b.String()
}
