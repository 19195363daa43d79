// Package match ranks names by similarity so that unresolved references can
// be reported together with the closest known name.
//
// Key functions:
//   - Normalize: folds a name for fuzzy comparison
//   - Levenshtein: computes edit distance between strings
//   - Rank: orders candidate names by similarity
//   - Suggest: picks the best candidate above a threshold
package match
