// internal/nodeid/parser.go
package nodeid

import "fmt"

// Parse maps a short name such as "cs" to its ID. Matching is exact and
// case-sensitive.
func Parse(name string) (ID, error) {
	for _, id := range All {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown node name %q", name)
}

// IsName reports whether name is the short name of a known node.
func IsName(name string) bool {
	_, err := Parse(name)
	return err == nil
}
