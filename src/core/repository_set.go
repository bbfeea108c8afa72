package core

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// A RepositorySet is a set of canonical repository names, deduplicated by
// identity. It is not safe for concurrent mutation; each reachability walk
// owns its own set.
type RepositorySet struct {
	repos map[RepositoryName]struct{}
}

// NewRepositorySet creates a set containing the given repositories.
func NewRepositorySet(repos ...RepositoryName) *RepositorySet {
	set := &RepositorySet{repos: make(map[RepositoryName]struct{}, len(repos))}
	for _, repo := range repos {
		set.repos[repo] = struct{}{}
	}
	return set
}

// Add adds a repository to the set, returning true if it was not already present.
func (set *RepositorySet) Add(repo RepositoryName) bool {
	if _, present := set.repos[repo]; present {
		return false
	}
	set.repos[repo] = struct{}{}
	return true
}

// Contains returns true if the given repository is in the set.
func (set *RepositorySet) Contains(repo RepositoryName) bool {
	_, present := set.repos[repo]
	return present
}

// Names returns the members of the set sorted by name.
func (set *RepositorySet) Names() []RepositoryName {
	names := maps.Keys(set.repos)
	slices.SortFunc(names, func(a, b RepositoryName) bool { return a.Less(b) })
	return names
}

// Len returns the number of repositories in the set.
func (set *RepositorySet) Len() int {
	return len(set.repos)
}
