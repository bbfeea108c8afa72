// Package runfiles implements the runtime side of repo mapping manifests:
// parsing the manifest an executable finds next to its runfiles tree and
// resolving apparent repository names from it.
package runfiles

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A RepoMapping is a parsed repo mapping manifest, indexed for constant-time
// lookups. It is immutable once parsed.
type RepoMapping struct {
	index map[repoMappingKey]string
}

type repoMappingKey struct {
	repo         string
	apparentName string
}

// ParseRepoMapping parses manifest bytes as written by the manifest package.
// Lines that do not have exactly three fields, or that have an empty apparent
// name, are an error; the writer never produces them.
func ParseRepoMapping(r io.Reader) (*RepoMapping, error) {
	index := map[repoMappingKey]string{}
	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := scanner.Text()
		fields := strings.Split(line, ",")
		if len(fields) != 3 || fields[1] == "" {
			return nil, fmt.Errorf("Invalid repo mapping manifest line %d: %q", lineNum, line)
		}
		index[repoMappingKey{repo: fields[0], apparentName: fields[1]}] = fields[2]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Failed to read repo mapping manifest: %w", err)
	}
	return &RepoMapping{index: index}, nil
}

// Resolve maps an apparent name, as used by sources in the given repository,
// to its resolved name. The repository is identified by the canonical name it
// is currently executing as; the main repository's is the empty string.
func (m *RepoMapping) Resolve(currentRepo, apparentName string) (string, bool) {
	resolved, present := m.index[repoMappingKey{repo: currentRepo, apparentName: apparentName}]
	return resolved, present
}

// Len returns the number of mapping entries.
func (m *RepoMapping) Len() int {
	return len(m.index)
}
