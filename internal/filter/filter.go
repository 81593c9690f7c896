// Package filter evaluates exact-match metadata predicates against
// search candidates.
package filter

import "reflect"

// Matches reports whether metadata satisfies every key in criteria by
// exact equality. A nil or empty criteria matches everything. Values
// are compared with reflect.DeepEqual so JSON-decoded metadata
// (strings, numbers, nested maps) compares by content.
//
// Equality is strict: a criteria value that is itself a list is not
// treated as "one of". Callers wanting membership over several allowed
// values must issue one search per value; see retrieval.Retriever.
func Matches(metadata, criteria map[string]any) bool {
	for key, want := range criteria {
		got, ok := metadata[key]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
