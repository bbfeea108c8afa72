package core

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A RepositoryMapping is one repository's table from apparent name (the short
// name its own sources use to refer to a dependency) to the dependency's
// canonical name. Apparent names are unique within one repository; an empty
// apparent name may only appear in the main repository's mapping, where it
// denotes a reference to itself.
type RepositoryMapping struct {
	entries map[string]RepositoryName
}

// Get returns the canonical name an apparent name maps to.
func (m RepositoryMapping) Get(apparentName string) (RepositoryName, bool) {
	repo, present := m.entries[apparentName]
	return repo, present
}

// ApparentNames returns all apparent names in the mapping, sorted ascending.
func (m RepositoryMapping) ApparentNames() []string {
	names := maps.Keys(m.entries)
	slices.Sort(names)
	return names
}

// Len returns the number of entries in the mapping.
func (m RepositoryMapping) Len() int {
	return len(m.entries)
}
