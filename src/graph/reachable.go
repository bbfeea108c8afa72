package graph

import (
	"github.com/please-build/repomap/src/core"
)

// TransitiveRepos computes the set of repositories whose mappings must be
// resolvable by the given target's runfiles at runtime. It walks outward from
// the target over data edges and resolved toolchain edges only; each
// repository appears in the result at most once however many paths reach it.
// The result is scoped to this one target: repositories another target in the
// same build reaches are not included unless this one reaches them too.
func TransitiveRepos(target *Target) *core.RepositorySet {
	repos := core.NewRepositorySet()
	populateRepos(target, repos, map[*Target]struct{}{})
	return repos
}

func populateRepos(target *Target, repos *core.RepositorySet, visited map[*Target]struct{}) {
	if _, present := visited[target]; present {
		return
	}
	visited[target] = struct{}{}
	repos.Add(target.Repo)
	for _, datum := range target.Data() {
		populateRepos(datum, repos, visited)
	}
	for _, toolchain := range target.Toolchains() {
		populateRepos(toolchain.Implementation, repos, visited)
	}
}
