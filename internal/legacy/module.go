package legacy

import (
	"schema-migrator/internal/common"
	"schema-migrator/internal/diagnostic"
)

// FieldKind selects the component template a field is rendered with.
type FieldKind int

const (
	// FieldText is a free-text input (TextField).
	FieldText FieldKind = iota
	// FieldSelect is a single choice from a vocabulary (Select).
	FieldSelect
)

// String returns the component name for the kind.
func (k FieldKind) String() string {
	switch k {
	case FieldText:
		return "TextField"
	case FieldSelect:
		return "Select"
	default:
		return common.UnknownStr
	}
}

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Field is a control joined to its property.
type Field struct {
	// Ref is the field id in the generated specification.
	Ref        string
	Label      string
	Kind       FieldKind
	HelperText string
	Options    []Option
	// Entity and Attribute record where the field came from.
	Entity    string
	Attribute string
}

// View is one tab: an ordered list of field refs.
type View struct {
	ID     string
	Label  string
	Fields []string
}

// Viewset is one tab group.
type Viewset struct {
	ID    string
	Label string
	Views []string
}

// Module is the joined result, ready for rendering.
type Module struct {
	// Name is the project display name.
	Name     string
	Fields   []Field
	Views    []View
	Viewsets []Viewset

	Diagnostics diagnostic.Diagnostics
}

// Field returns the field with the given ref.
func (m *Module) Field(ref string) (*Field, bool) {
	for i := range m.Fields {
		if m.Fields[i].Ref == ref {
			return &m.Fields[i], true
		}
	}

	return nil, false
}

// VisibleTypes lists the viewset ids in order.
func (m *Module) VisibleTypes() []string {
	out := make([]string, 0, len(m.Viewsets))
	for _, vs := range m.Viewsets {
		out = append(out, vs.ID)
	}

	return out
}
