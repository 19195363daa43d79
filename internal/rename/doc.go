// Package rename derives human-readable identifiers for notebook fields and
// persists the resulting rename table.
//
// Legacy notebooks name their fields with opaque generated ids such as
// "newfield1233445". Rename replaces each id with a slug of the field's label.
//
// # Label resolution
//
// The label of a field is taken from the first rule in an ordered list that
// yields a non-empty value:
//  1. reserved-prefix: ids starting with the reserved prefix ("hrid") are kept verbatim
//  2. input-label-props: component-parameters.InputLabelProps.label
//  3. label: component-parameters.label (not for BasicAutoIncrementer)
//  4. form-label-children: component-parameters.FormLabelProps.children
//  5. auto-incrementer: the fixed label "Auto Incrementer"
//  6. component-name: the component name itself
//
// # Collisions
//
// A counter is kept per label for the duration of one Rename call. The first
// field with a label gets the bare slug, the k-th gets the slug of
// "<label> <k>". Verbatim ids bypass both the slug and the counter. Any
// remaining duplicate is reported as a *CollisionError.
//
// # Rename table
//
// The table is written to mapping.json in the working directory by default
// so that tooling migrating stored records can apply the same renames. Tables may be written as JSON or YAML:
//
//	{
//	  "newfield1233445": "site-name",
//	  "hridPrimary": "hridPrimary"
//	}
package rename
