package notebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-migrator/internal/document"
)

func mustObject(t *testing.T, src string) *document.Object {
	t.Helper()

	obj, err := document.DecodeObject([]byte(src))
	require.NoError(t, err)

	return obj
}

func TestInjectVersions(t *testing.T) {
	metadata := mustObject(t, `{"name": "x", "schema_version": "0.1"}`)

	InjectVersions(metadata, "1.0", "1.0")

	nv, _ := metadata.String("notebook_version")
	sv, _ := metadata.String("schema_version")
	assert.Equal(t, "1.0", nv)
	assert.Equal(t, "1.0", sv)
	assert.Equal(t, []string{"name", "schema_version", "notebook_version"}, metadata.Keys())
}

func TestRelocateSectionDescriptions(t *testing.T) {
	metadata := mustObject(t, `{
		"sections": {
			"S1": {"sectiondescriptionS1": "First section text"},
			"S2": {"sectiondescriptionS2": "No view for this one"},
			"S3": {"other": "no description key"},
			"S4": "not an object"
		}
	}`)
	uiSpec := mustObject(t, `{
		"fviews": {
			"S1": {"label": "One", "fields": []},
			"S3": {"label": "Three", "fields": []}
		}
	}`)

	moved := RelocateSectionDescriptions(metadata, uiSpec)
	assert.Equal(t, []string{"S1"}, moved)

	views, _ := uiSpec.Object("fviews")

	s1, _ := views.Object("S1")
	desc, ok := s1.String("description")
	require.True(t, ok)
	assert.Equal(t, "First section text", desc)

	s3, _ := views.Object("S3")
	assert.False(t, s3.Has("description"))
	assert.False(t, views.Has("S2"), "no view is created for orphan sections")

	sections, ok := metadata.Object("sections")
	require.True(t, ok)
	assert.Equal(t, 0, sections.Len())
}

func TestRelocateSectionDescriptionsWithoutSections(t *testing.T) {
	metadata := mustObject(t, `{"name": "x"}`)
	uiSpec := mustObject(t, `{"fviews": {}}`)

	assert.Empty(t, RelocateSectionDescriptions(metadata, uiSpec))
	assert.False(t, metadata.Has("sections"))
}

func TestRelocateSectionDescriptionsWithoutViews(t *testing.T) {
	metadata := mustObject(t, `{"sections": {"S1": {"sectiondescriptionS1": "text"}}}`)
	uiSpec := mustObject(t, `{"fields": {}}`)

	assert.Empty(t, RelocateSectionDescriptions(metadata, uiSpec))
}

func TestCheckViewReferences(t *testing.T) {
	uiSpec := mustObject(t, `{
		"fields": {"a": {}, "b": {}},
		"fviews": {
			"V1": {"fields": ["a", "b"]},
			"V2": {"fields": ["a", "ghost", 7]}
		}
	}`)

	diags := CheckViewReferences(uiSpec)
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, "unknown_field_reference", diags.Warnings[0].Code)
	assert.Equal(t, "V2", diags.Warnings[0].Scope)
	assert.Equal(t, "ghost", diags.Warnings[0].Subject)
	assert.Equal(t, "invalid_field_reference", diags.Warnings[1].Code)
}

func TestCheckViewReferencesSuggestsNearField(t *testing.T) {
	uiSpec := mustObject(t, `{
		"fields": {"site-name": {}, "context": {}},
		"fviews": {"V": {"fields": ["site-nam", "weather"]}}
	}`)

	diags := CheckViewReferences(uiSpec)
	require.Len(t, diags.Warnings, 2)
	assert.Contains(t, diags.Warnings[0].Message, `did you mean "site-name"?`)
	assert.NotContains(t, diags.Warnings[1].Message, "did you mean")
}
