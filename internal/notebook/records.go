package notebook

import (
	"fmt"
	"strings"

	"schema-migrator/internal/document"
)

// Well-known record ids.
const (
	MetadataRecordID = "project-metadata"
	UISpecRecordID   = "ui-specification"

	// metadataKeyPrefix marks per-key metadata records ("project-metadata-<key>").
	metadataKeyPrefix = MetadataRecordID + "-"
)

// Internal storage keys stripped from the UI specification.
var storageKeys = []string{"_id", "_rev"}

// MissingRecordError reports a required record absent from the dump.
type MissingRecordError struct {
	ID string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("required record %q not found in dump", e.ID)
}

// ParseDump decodes a legacy dump. Both a plain JSON array of records and a
// CouchDB export ({"rows": [{"doc": {...}}]} or {"docs": [...]}) are accepted.
func ParseDump(data []byte) ([]*document.Object, error) {
	v, err := document.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dump: %w", err)
	}

	switch t := v.(type) {
	case []any:
		return recordList(t, "")
	case *document.Object:
		if rows, ok := t.Array("rows"); ok {
			return recordList(rows, "doc")
		}

		if docs, ok := t.Array("docs"); ok {
			return recordList(docs, "")
		}

		return nil, fmt.Errorf("failed to parse dump: object has neither %q nor %q", "rows", "docs")
	default:
		return nil, fmt.Errorf("failed to parse dump: expected an array of records")
	}
}

func recordList(items []any, wrapper string) ([]*document.Object, error) {
	records := make([]*document.Object, 0, len(items))

	for i, item := range items {
		rec, ok := item.(*document.Object)
		if !ok {
			return nil, fmt.Errorf("failed to parse dump: record %d is not an object", i)
		}

		if wrapper != "" {
			inner, ok := rec.Object(wrapper)
			if !ok {
				// _all_docs without include_docs carries no payload
				continue
			}

			rec = inner
		}

		records = append(records, rec)
	}

	return records, nil
}

// Index is a lookup of records by id that remembers first-seen order.
type Index struct {
	byID  map[string]*document.Object
	order []string
}

// IndexRecords builds a lookup keyed by "_id". Records without a string id are
// ignored; on duplicate ids the last record wins.
func IndexRecords(records []*document.Object) *Index {
	idx := &Index{byID: make(map[string]*document.Object, len(records))}

	for _, rec := range records {
		id, ok := rec.String("_id")
		if !ok {
			continue
		}

		if _, seen := idx.byID[id]; !seen {
			idx.order = append(idx.order, id)
		}

		idx.byID[id] = rec
	}

	return idx
}

// Get returns the record with the given id.
func (idx *Index) Get(id string) (*document.Object, bool) {
	rec, ok := idx.byID[id]
	return rec, ok
}

// Len returns the number of distinct ids.
func (idx *Index) Len() int {
	return len(idx.order)
}

// Require returns the record with the given id or a *MissingRecordError.
func (idx *Index) Require(id string) (*document.Object, error) {
	rec, ok := idx.Get(id)
	if !ok {
		return nil, &MissingRecordError{ID: id}
	}

	return rec, nil
}

// Metadata returns the notebook metadata. Per-key records
// ("project-metadata-<key>") fill in keys the main record does not define.
func (idx *Index) Metadata() (*document.Object, error) {
	rec, err := idx.Require(MetadataRecordID)
	if err != nil {
		return nil, err
	}

	metadata, ok := rec.Object("metadata")
	if !ok {
		return nil, fmt.Errorf("record %q has no metadata object", MetadataRecordID)
	}

	for _, id := range idx.order {
		key, ok := strings.CutPrefix(id, metadataKeyPrefix)
		if !ok || key == "" || metadata.Has(key) {
			continue
		}

		if v, ok := idx.byID[id].Get("metadata"); ok {
			metadata.Set(key, v)
		}
	}

	return metadata, nil
}

// UISpecification returns the UI specification record with internal storage
// ids removed.
func (idx *Index) UISpecification() (*document.Object, error) {
	rec, err := idx.Require(UISpecRecordID)
	if err != nil {
		return nil, err
	}

	for _, key := range storageKeys {
		rec.Delete(key)
	}

	return rec, nil
}
