// Package frozen turns decoded YAML/JSON data into an immutable, recursive
// view whose mapping keys are addressable as field names.
//
// What:
//
//   - Wrap(v) builds a Value, a tagged variant of mapping, sequence or scalar.
//     Nested mappings and sequences are wrapped recursively, once, at construction.
//   - Keys that are Go keywords or not valid identifiers are rewritten by
//     SanitizeKey ("type" → "type_", "1st" → "v_1st").
//   - Lookup falls back to the container's own operations ("len", "keys", "kind")
//     when a name is not a field.
//   - Parse / Load decode YAML or JSON with gopkg.in/yaml.v3.
//   - Registry / Instance hold one process-wide Params.
//
// Singleton rule:
//
//	The first Instance call initializes Params. All later calls return the
//	same Params and DISCARD their arguments without error.
//
// Errors:
//
//   - ErrNoField, ErrIndex, ErrNotContainer: Get path failures.
//   - ErrParse: malformed documents.
package frozen
