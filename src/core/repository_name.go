// Representation of canonical repository names.
// The module resolver assigns every resolved repository instance a canonical
// name that is unique within one build; two resolved versions of the same
// logical dependency get two different names (e.g. ddd~1.0 and ddd~2.0).

package core

import (
	"fmt"
	"regexp"
)

// A RepositoryName is the canonical identity of one resolved repository
// instance. The zero value (the empty name) identifies the main repository,
// i.e. the workspace being built.
type RepositoryName struct {
	name string
}

// Main is the canonical name of the main repository.
var Main = RepositoryName{}

// This is a little strict; notably it forbids the field and row separators
// of the manifest format, which the serializer relies on.
const repoNamePart = "[A-Za-z0-9\\._~\\+-]+"

var repoNameOnly = regexp.MustCompile("^" + repoNamePart + "$")

// NewRepositoryName constructs a canonical repository name. Panics on failure.
func NewRepositoryName(name string) RepositoryName {
	repo, err := TryNewRepositoryName(name)
	if err != nil {
		panic(err)
	}
	return repo
}

// TryNewRepositoryName constructs a canonical repository name from its string
// form. The empty string names the main repository.
func TryNewRepositoryName(name string) (RepositoryName, error) {
	if name == "" {
		return Main, nil
	}
	if !repoNameOnly.MatchString(name) {
		return RepositoryName{}, fmt.Errorf("Invalid repository name: %s", name)
	}
	return RepositoryName{name: name}, nil
}

// IsMain returns true if this is the main repository.
func (repo RepositoryName) IsMain() bool {
	return repo.name == ""
}

// String returns the canonical string form of the name; empty for the main repo.
func (repo RepositoryName) String() string {
	return repo.name
}

// Less provides a byte-wise total order over repository names. It is
// deliberately independent of platform or locale since manifest row order is
// part of the output format.
func (repo RepositoryName) Less(other RepositoryName) bool {
	return repo.name < other.name
}
