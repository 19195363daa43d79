// Package notebook migrates a legacy notebook dump into the combined
// notebook document.
//
// A legacy dump is the list of records of a notebook's metadata database.
// Two of them are required: "project-metadata" (the notebook metadata) and
// "ui-specification" (fields, views and viewsets). The migration:
//
//  1. indexes the records by id and extracts both payloads
//  2. injects notebook_version and schema_version into the metadata
//  3. moves each section description onto the view with the same id
//  4. names the notebook after the input file
//  5. renames every field (see package rename) and rewrites every reference
//     to the old ids by plain text substitution
//
// Everything happens in memory. Only then is the rename table written, the
// input renamed to <file>.bak and the combined document written in its place.
package notebook
