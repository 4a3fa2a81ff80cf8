// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

// Constructor applies a deterministic mutation to b using the resolved
// builderConfig. Constructors validate their parameters before touching b and
// return sentinel errors; they never panic.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a core.Builder with gopts, resolves the configuration from
// bopts, applies all constructors in order and compiles the result.
// Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of constructors + O(V + E) to compile.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.CSR, error) {
	b := core.NewBuilder(gopts...)
	if err := Apply(b, bopts, cons...); err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// Apply runs cons against an existing builder, for fixtures that combine
// constructors with hand-written relationships.
func Apply(b *core.Builder, bopts []BuilderOption, cons ...Constructor) error {
	if b == nil {
		return fmt.Errorf("BuildGraph: nil builder: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addNodes registers ids 0..n-1 through cfg.idFn.
func addNodes(method string, b *core.Builder, cfg builderConfig, n int) error {
	var i int
	for i = 0; i < n; i++ {
		id := cfg.idFn(i)
		if _, err := b.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}
	return nil
}

// link adds the relationship idFn(i)→idFn(j).
func link(method string, b *core.Builder, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := b.AddRelationship(u, v); err != nil {
		return fmt.Errorf("%s: AddRelationship(%s→%s): %w", method, u, v, err)
	}
	return nil
}
