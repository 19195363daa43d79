package notebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-migrator/internal/rename"
)

func table(pairs ...string) *rename.Table {
	t := rename.NewTable()
	for i := 0; i+1 < len(pairs); i += 2 {
		t.Add(pairs[i], pairs[i+1])
	}

	return t
}

func TestSubstituteFieldIDs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		table    *rename.Table
		expected string
	}{
		{
			name:     "structural positions",
			text:     `{"fields":{"newfield1":{}},"fviews":{"V":{"fields":["newfield1"]}}}`,
			table:    table("newfield1", "site-name"),
			expected: `{"fields":{"site-name":{}},"fviews":{"V":{"fields":["site-name"]}}}`,
		},
		{
			name:     "prose is rewritten too",
			text:     `{"helperText":"copied from newfield1 earlier"}`,
			table:    table("newfield1", "site-name"),
			expected: `{"helperText":"copied from site-name earlier"}`,
		},
		{
			name:     "prefix ids rewrite longer ids when listed first",
			text:     `["newfield12","newfield123"]`,
			table:    table("newfield12", "depth", "newfield123", "width"),
			expected: `["depth","depth3"]`,
		},
		{
			name:     "verbatim ids are untouched",
			text:     `{"hridFORM1":"hridFORM1"}`,
			table:    table("hridFORM1", "hridFORM1"),
			expected: `{"hridFORM1":"hridFORM1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubstituteFieldIDs(tt.text, tt.table))
		})
	}
}

func TestSubstituteInDocument(t *testing.T) {
	doc := mustObject(t, `{"fields": {"newfield1": {"component-parameters": {"name": "newfield1"}}}, "fviews": {"V": {"fields": ["newfield1"]}}}`)

	out, err := SubstituteInDocument(doc, table("newfield1", "site-name"))
	require.NoError(t, err)

	fields, ok := out.Object("fields")
	require.True(t, ok)
	assert.Equal(t, []string{"site-name"}, fields.Keys())
	assert.True(t, CheckViewReferences(out).Warnings == nil)
}
