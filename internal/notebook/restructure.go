package notebook

import (
	"fmt"

	"schema-migrator/internal/diagnostic"
	"schema-migrator/internal/document"
	"schema-migrator/internal/match"
)

// Keys of the combined notebook document.
const (
	MetadataKey = "metadata"
	UISpecKey   = "ui-specification"

	fieldsKey   = "fields"
	viewsKey    = "fviews"
	sectionsKey = "sections"

	sectionDescriptionPrefix = "sectiondescription"
)

// InjectVersions stamps the metadata with fixed format versions.
func InjectVersions(metadata *document.Object, notebookVersion, schemaVersion string) {
	metadata.Set("notebook_version", notebookVersion)
	metadata.Set("schema_version", schemaVersion)
}

// RelocateSectionDescriptions copies each section's description onto the view
// with the same id and then empties the section map. Sections without a
// matching view are dropped silently. It returns the ids of the views that
// received a description.
func RelocateSectionDescriptions(metadata, uiSpec *document.Object) []string {
	sections, ok := metadata.Object(sectionsKey)
	if !ok {
		return nil
	}

	views, _ := uiSpec.Object(viewsKey)

	var moved []string

	for _, id := range sections.Keys() {
		section, ok := sections.Object(id)
		if !ok {
			continue
		}

		desc, ok := section.String(sectionDescriptionPrefix + id)
		if !ok {
			continue
		}

		view, ok := views.Object(id)
		if !ok {
			continue
		}

		view.Set("description", desc)
		moved = append(moved, id)
	}

	metadata.Set(sectionsKey, document.NewObject())

	return moved
}

// CheckViewReferences reports every view entry naming a field that is not
// defined in the fields map.
func CheckViewReferences(uiSpec *document.Object) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	fields, _ := uiSpec.Object(fieldsKey)
	views, _ := uiSpec.Object(viewsKey)

	for _, viewID := range views.Keys() {
		view, ok := views.Object(viewID)
		if !ok {
			continue
		}

		refs, _ := view.Array(fieldsKey)
		for _, ref := range refs {
			name, ok := ref.(string)
			if !ok {
				diags.AddWarning("invalid_field_reference", "view lists a non-string field entry", viewID, "")
				continue
			}

			if !fields.Has(name) {
				msg := "view references a field that is not defined"
				if near, ok := match.Suggest(name, fields.Keys(), match.DefaultThreshold); ok {
					msg += fmt.Sprintf(" (did you mean %q?)", near)
				}

				diags.AddWarning("unknown_field_reference", msg, viewID, name)
			}
		}
	}

	return diags
}
