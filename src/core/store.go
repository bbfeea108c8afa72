package core

import (
	"github.com/hashicorp/go-multierror"

	"github.com/please-build/repomap/src/cli/logging"
)

var log = logging.Log

// A MappingEntry is one row of the module resolver's final output: within the
// sources of Repo, ApparentName refers to Target.
type MappingEntry struct {
	Repo         RepositoryName
	ApparentName string
	Target       RepositoryName
}

// A MappingStore is the immutable, build-wide table from canonical repository
// name to that repository's mapping. It is constructed exactly once per build
// from the module resolver's output, after version selection has completed,
// and is never mutated afterwards; concurrent manifest builds may read from it
// freely.
type MappingStore struct {
	workspaceName string
	mappings      map[RepositoryName]RepositoryMapping
}

// NewMappingStore builds the store from the resolver's entries and the declared
// workspace name of the main repository. It returns a ConsistencyError if an
// apparent name appears twice for one repository, or if an empty apparent name
// appears anywhere but the main repository's own mapping; either indicates a
// bug in the resolver. All violations are reported, not just the first.
func NewMappingStore(workspaceName string, entries []MappingEntry) (*MappingStore, error) {
	mappings := map[RepositoryName]map[string]RepositoryName{}
	var errs *multierror.Error
	for _, entry := range entries {
		if entry.ApparentName == "" && !(entry.Repo.IsMain() && entry.Target.IsMain()) {
			errs = multierror.Append(errs, ConsistencyErrorf(
				"Empty apparent name in mapping for repository %s; only the main repository may map it, to itself", entry.Repo))
			continue
		}
		m, present := mappings[entry.Repo]
		if !present {
			m = map[string]RepositoryName{}
			mappings[entry.Repo] = m
		}
		if existing, present := m[entry.ApparentName]; present {
			errs = multierror.Append(errs, ConsistencyErrorf(
				"Duplicate apparent name %s in mapping for repository %s (%s vs. %s)",
				entry.ApparentName, entry.Repo, existing, entry.Target))
			continue
		}
		m[entry.ApparentName] = entry.Target
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	store := &MappingStore{
		workspaceName: workspaceName,
		mappings:      make(map[RepositoryName]RepositoryMapping, len(mappings)),
	}
	for repo, m := range mappings {
		store.mappings[repo] = RepositoryMapping{entries: m}
	}
	log.Debug("Built repo mapping store for workspace %s with %d repositories", workspaceName, len(store.mappings))
	return store, nil
}

// WorkspaceName returns the declared display name of the main repository.
func (store *MappingStore) WorkspaceName() string {
	return store.workspaceName
}

// Mapping returns the mapping for the given repository, if the store has one.
func (store *MappingStore) Mapping(repo RepositoryName) (RepositoryMapping, bool) {
	m, present := store.mappings[repo]
	return m, present
}

// Restrict projects the store down to exactly the given set of repositories,
// typically the reachable set of one target. The returned map is owned by the
// caller. It is a ConsistencyError for the set to name a repository the store
// does not know about.
func (store *MappingStore) Restrict(repos *RepositorySet) (map[RepositoryName]RepositoryMapping, error) {
	reposAndMappings := make(map[RepositoryName]RepositoryMapping, repos.Len())
	for _, repo := range repos.Names() {
		m, present := store.mappings[repo]
		if !present {
			return nil, ConsistencyErrorf("Reachable repository %s has no entry in the repo mapping store", repo)
		}
		reposAndMappings[repo] = m
	}
	return reposAndMappings, nil
}
