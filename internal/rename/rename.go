package rename

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"schema-migrator/internal/document"
	"schema-migrator/internal/naming"
)

// ErrNoLabel is returned when no rule yields a label for a field.
var ErrNoLabel = errors.New("no usable label")

// CollisionError reports two fields that would receive the same new id.
type CollisionError struct {
	ID     string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("fields %q and %q both map to %q", e.First, e.Second, e.ID)
}

// Entry is one row of the rename table.
type Entry struct {
	From string
	To   string
}

// Table maps original field ids to new ids, in field order.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Add records a rename. Adding an existing id replaces its target in place.
func (t *Table) Add(from, to string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if i, ok := t.index[from]; ok {
		t.entries[i].To = to
		return
	}

	t.index[from] = len(t.entries)
	t.entries = append(t.entries, Entry{From: from, To: to})
}

// Lookup returns the new id for from.
func (t *Table) Lookup(from string) (string, bool) {
	i, ok := t.index[from]
	if !ok {
		return "", false
	}

	return t.entries[i].To, true
}

// Entries returns the rows in field order.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.entries)
}

// Changed returns the rows whose id actually changes.
func (t *Table) Changed() []Entry {
	var out []Entry

	for _, e := range t.entries {
		if e.From != e.To {
			out = append(out, e)
		}
	}

	return out
}

// Object returns the table as an ordered JSON object.
func (t *Table) Object() *document.Object {
	obj := document.NewObject()
	for _, e := range t.entries {
		obj.Set(e.From, e.To)
	}

	return obj
}

// Renamer derives new field ids from an ordered rule list.
type Renamer struct {
	rules  []Rule
	logger *zap.Logger
}

// NewRenamer creates a Renamer using DefaultRules for reservedPrefix.
func NewRenamer(reservedPrefix string, logger *zap.Logger) *Renamer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Renamer{rules: DefaultRules(reservedPrefix), logger: logger}
}

// Rename derives a new id for every field in the fields object of a UI
// specification. Collision counters live for one call only.
func (r *Renamer) Rename(fields *document.Object) (*Table, error) {
	table := NewTable()
	counts := make(map[string]int)
	owners := make(map[string]string)

	for _, id := range fields.Keys() {
		def, _ := fields.Get(id)
		f := FieldFromValue(id, def)

		label, rule := ResolveLabel(r.rules, f)
		if rule == nil {
			return nil, fmt.Errorf("field %q (component %q): %w", id, f.ComponentName, ErrNoLabel)
		}

		newID := label
		if !rule.Verbatim {
			counts[label]++
			newID = numberedSlug(label, counts[label])
		}

		if prev, ok := owners[newID]; ok {
			return nil, &CollisionError{ID: newID, First: prev, Second: id}
		}

		owners[newID] = id
		table.Add(id, newID)

		r.logger.Debug("renamed field",
			zap.String("from", id),
			zap.String("to", newID),
			zap.String("rule", rule.Name))
	}

	return table, nil
}

// Rename derives new ids using the default reserved prefix.
func Rename(fields *document.Object) (*Table, error) {
	return NewRenamer(DefaultReservedPrefix, nil).Rename(fields)
}

// numberedSlug returns the slug for the n-th field carrying label.
func numberedSlug(label string, n int) string {
	if n <= 1 {
		return naming.Slugify(label)
	}

	return naming.Slugify(fmt.Sprintf("%s %d", label, n))
}
