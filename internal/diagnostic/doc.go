// Package diagnostic provides structured warnings and errors for the
// conversion pipelines.
//
// Problems that must not abort a run (an attribute with no matching property,
// a property type with no component template, a view pointing at a field that
// no longer exists) are collected here and logged once the run completes.
package diagnostic
