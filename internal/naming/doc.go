// Package naming turns free-form labels into identifiers.
//
// Key functions:
//   - Slugify: lowercase, hyphen-separated, ASCII-only identifiers for notebook fields
//   - DisplayName: human-readable notebook names derived from file names
//   - FileIdent: underscore-joined names for generated source files
package naming
