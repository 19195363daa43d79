package notebook

import (
	"fmt"
	"strings"

	"schema-migrator/internal/document"
	"schema-migrator/internal/rename"
)

// SubstituteFieldIDs replaces every occurrence of each old field id with its
// new id anywhere in text, in table order.
//
// This is a plain substring replacement over the serialized document, not a
// structural rewrite: an old id appearing inside help text, a condition or
// any other prose is rewritten too, and an id that is a prefix of another id
// ("newfield12" vs "newfield123") rewrites part of the longer one if it comes
// first in the table. Output must match earlier migrations byte for byte.
func SubstituteFieldIDs(text string, table *rename.Table) string {
	for _, e := range table.Changed() {
		text = strings.ReplaceAll(text, e.From, e.To)
	}

	return text
}

// SubstituteInDocument applies SubstituteFieldIDs to the serialized form of
// doc and decodes the result.
func SubstituteInDocument(doc *document.Object, table *rename.Table) (*document.Object, error) {
	data, err := document.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("serializing ui specification: %w", err)
	}

	out, err := document.DecodeObject([]byte(SubstituteFieldIDs(string(data), table)))
	if err != nil {
		return nil, fmt.Errorf("decoding substituted ui specification: %w", err)
	}

	return out, nil
}
