// Generation of repo mapping manifests.
// A manifest describes, for one target, the repositories its runfiles must be
// able to resolve at runtime and each repository's local name mapping. The
// output is consumed both by a runtime name resolver and by the build cache,
// so it must be byte-identical across re-runs regardless of how the inputs
// were assembled in memory.

package manifest

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/please-build/repomap/src/cli/logging"
	"github.com/please-build/repomap/src/core"
	"github.com/please-build/repomap/src/graph"
)

var log = logging.Log

// A Row is one line of the manifest: within the sources of Repo, ApparentName
// resolves to ResolvedName. ResolvedName is the workspace name where the
// mapped repository is the main one, otherwise its canonical name.
type Row struct {
	Repo         string
	ApparentName string
	ResolvedName string
}

// A DeterministicWriter can report a fingerprint over its logical content and
// reproduce exactly the same output bytes every time it is written.
type DeterministicWriter interface {
	io.WriterTo
	Fingerprint() []byte
}

// A Manifest is the fully sorted repo mapping table for one target. It is
// immutable once built and safe to write from multiple goroutines.
type Manifest struct {
	workspaceName string
	rows          []Row
}

var _ DeterministicWriter = (*Manifest)(nil)

// ForTarget builds the manifest for one target: its reachable repositories,
// projected through the build-wide mapping store.
func ForTarget(store *core.MappingStore, target *graph.Target) (*Manifest, error) {
	reposAndMappings, err := store.Restrict(graph.TransitiveRepos(target))
	if err != nil {
		return nil, err
	}
	log.Debug("Building repo mapping manifest for %s", target.Label)
	return New(reposAndMappings, store.WorkspaceName())
}

// New builds a manifest from a set of repositories and their mappings, already
// restricted to one target's reachable set. Rows are sorted by repository name
// then apparent name, byte-wise; entries with an empty apparent name (the main
// repository's self-reference) carry no information and are dropped.
func New(reposAndMappings map[core.RepositoryName]core.RepositoryMapping, workspaceName string) (*Manifest, error) {
	repos := maps.Keys(reposAndMappings)
	slices.SortFunc(repos, func(a, b core.RepositoryName) bool { return a.Less(b) })
	m := &Manifest{workspaceName: workspaceName}
	for _, repo := range repos {
		mapping := reposAndMappings[repo]
		for _, apparentName := range mapping.ApparentNames() {
			if apparentName == "" {
				continue
			}
			// Apparent names come straight from the resolver; a separator here
			// would silently corrupt the manifest, so refuse it outright.
			if strings.ContainsAny(apparentName, ",\n") {
				return nil, core.ConsistencyErrorf("Apparent name %q in repository %s contains a manifest separator", apparentName, repo)
			}
			target, _ := mapping.Get(apparentName)
			resolvedName := target.String()
			if target.IsMain() {
				resolvedName = workspaceName
			}
			m.rows = append(m.rows, Row{
				Repo:         repo.String(),
				ApparentName: apparentName,
				ResolvedName: resolvedName,
			})
		}
	}
	return m, nil
}

// Rows returns the manifest's rows in their sorted order.
func (m *Manifest) Rows() []Row {
	return m.rows
}

// Bytes returns the serialized manifest: one `repo,apparent,resolved` line per
// row, each terminated by a single line feed, no header. Repository and
// apparent names are ASCII by construction so every character is one byte;
// nothing here depends on platform or locale.
func (m *Manifest) Bytes() []byte {
	var buf bytes.Buffer
	for _, row := range m.rows {
		buf.WriteString(row.Repo)
		buf.WriteByte(',')
		buf.WriteString(row.ApparentName)
		buf.WriteByte(',')
		buf.WriteString(row.ResolvedName)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteTo writes the serialized manifest to the given writer. It performs no
// computation that could vary between invocations; writing the same manifest
// twice produces identical bytes both times.
func (m *Manifest) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.Bytes())
	return int64(n), err
}
