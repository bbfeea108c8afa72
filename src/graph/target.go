// Representation of the resolved dependency graph of configured targets.
// By the time this package sees it, all of the hard decisions have been made
// elsewhere: the module resolver has picked one version per dependency, and
// toolchain resolution has picked one implementation per requested toolchain
// type for the active configuration. We only ever walk the result.

package graph

import (
	"github.com/please-build/repomap/src/core"
)

// A Target is one configured target in the resolved graph.
type Target struct {
	// Label identifies the target, e.g. //src/core:core. Used for messages only.
	Label string
	// Repo is the canonical name of the repository hosting this target.
	Repo core.RepositoryName
	// Resolved runtime dependencies whose runfiles merge into this target's.
	data []*Target
	// Resolved toolchain bindings, one per toolchain type the rule declares.
	toolchains []ToolchainBinding
}

// A ToolchainBinding records the single toolchain implementation that
// resolution selected for one toolchain type a target's rule declares.
// Registered toolchains that were not selected for this target's configuration
// never appear as bindings.
type ToolchainBinding struct {
	// Type is the label of the toolchain type, e.g. //:toolchain_type.
	Type string
	// Implementation is the selected toolchain implementation target.
	Implementation *Target
}

// NewTarget constructs a target hosted in the given repository.
func NewTarget(label string, repo core.RepositoryName) *Target {
	return &Target{Label: label, Repo: repo}
}

// AddDatum adds a resolved runtime dependency to the target.
func (target *Target) AddDatum(datum *Target) {
	target.data = append(target.data, datum)
}

// BindToolchain records the toolchain implementation selected for one of the
// toolchain types this target's rule declares.
func (target *Target) BindToolchain(toolchainType string, implementation *Target) {
	target.toolchains = append(target.toolchains, ToolchainBinding{
		Type:           toolchainType,
		Implementation: implementation,
	})
}

// Data returns the target's resolved runtime dependencies.
func (target *Target) Data() []*Target {
	return target.data
}

// Toolchains returns the target's resolved toolchain bindings.
func (target *Target) Toolchains() []ToolchainBinding {
	return target.toolchains
}
