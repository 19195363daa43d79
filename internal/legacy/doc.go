// Package legacy reads FAIMS 2 module definitions and joins their UI layout
// to their data schema.
//
// A FAIMS 2 module directory holds two XML files:
//   - data_schema.xml: archaeological entities, their properties and the
//     controlled vocabularies of "vocab" properties
//   - ui_schema.xml: an XForms document whose body nests tab groups, tabs and
//     input controls; each control names the entity attribute it binds to
//
// Join resolves each control against the properties of the entity named by
// its tab group and produces a Module: field definitions plus one view per
// tab. Controls that cannot be resolved are skipped and reported as
// diagnostics.
package legacy
