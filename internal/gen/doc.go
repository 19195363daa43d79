// Package gen renders a joined FAIMS 2 module as a TypeScript module holding
// a UI specification for the current notebook format.
//
// Generation uses text/template with one template per component:
//   - TextField for measure properties
//   - Select for vocab properties, one option per vocabulary term
//
// Views, viewsets and visible types follow the module's tab layout. Output is
// deterministic for a given module.
package gen
