package core

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"slimdx-generator/internal/ports"
	"slimdx-generator/internal/types"
)

const defaultReadConcurrency = 4

// DependencyMerger expands a schema document's dependencies recursively and
// merges everything into a single registry.
//
// Dependencies are merged in declaration order with last-write-wins, and a
// document's own declarations are applied after all of its dependencies, so
// the root document always has the final word.  Direct dependency files of
// one document may be read concurrently; merge order never depends on read
// completion order.
type DependencyMerger struct {
	Source ports.SchemaSourcePort
	Parser EntityParser

	// ReadConcurrency bounds concurrent dependency reads.  Values below 1
	// use the default.
	ReadConcurrency int
}

func NewDependencyMerger(source ports.SchemaSourcePort, parser EntityParser) DependencyMerger {
	return DependencyMerger{
		Source:          source,
		Parser:          parser,
		ReadConcurrency: defaultReadConcurrency,
	}
}

type loadedDependency struct {
	relative  string
	path      string
	canonical string
	doc       types.SchemaFile
}

// Merge resolves root, loaded from rootPath, into a registry.  rootPath may
// be empty for documents that did not come from a file.
//
// A file reached through several dependency paths is parsed once; every
// path shares its models.  Once all layers are merged, every type reference
// and parent link is rebound to the definition that won.
func (m DependencyMerger) Merge(ctx context.Context, root types.SchemaFile, rootPath string, searchPaths []string) (*Registry, error) {
	var stack []string
	if rootPath != "" {
		stack = append(stack, canonicalPath(rootPath))
	}
	resolved := make(map[string]*Registry)
	registry, err := m.resolve(ctx, root, rootPath, searchPaths, stack, resolved)
	if err != nil {
		return nil, err
	}
	if err := m.Parser.Rebind(ctx, registry); err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().
		Str("schema", rootPath).
		Int("keys", registry.Len()).
		Int("files", len(resolved)+1).
		Int("overrides", len(registry.Overrides())).
		Msg("schema merged")
	return registry, nil
}

// resolve builds the registry of one document.  stack holds the canonical
// paths of the documents currently being resolved, outermost first;
// resolved holds the finished registry of every dependency file seen so far
// in this merge, keyed by canonical path.
func (m DependencyMerger) resolve(ctx context.Context, doc types.SchemaFile, origin string, searchPaths []string, stack []string, resolved map[string]*Registry) (*Registry, error) {
	dependencies, err := m.loadDependencies(ctx, doc.Dependencies, searchPaths, resolved)
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	for _, dep := range dependencies {
		if slices.Contains(stack, dep.canonical) {
			return nil, errCyclicDependency(append(slices.Clone(stack), dep.canonical))
		}
		child, ok := resolved[dep.canonical]
		if !ok {
			child, err = m.resolve(ctx, dep.doc, dep.path, searchPaths, append(slices.Clone(stack), dep.canonical), resolved)
			if err != nil {
				return nil, err
			}
			resolved[dep.canonical] = child
		}
		if err := registry.MergeFrom(ctx, child); err != nil {
			return nil, err
		}
		log.Ctx(ctx).Debug().
			Str("dependency", dep.relative).
			Str("path", dep.path).
			Bool("shared", ok).
			Int("keys", child.Len()).
			Msg("schema layer loaded")
	}

	if err := m.Parser.Parse(ctx, doc, origin, registry); err != nil {
		return nil, err
	}
	return registry, nil
}

// loadDependencies locates and decodes dependency files, possibly in
// parallel.  Files already in resolved are located but not read again.
// Results keep declaration order, and when several files fail the error of
// the first one in declaration order is returned.
func (m DependencyMerger) loadDependencies(ctx context.Context, relatives []string, searchPaths []string, resolved map[string]*Registry) ([]loadedDependency, error) {
	if len(relatives) == 0 {
		return nil, nil
	}
	limit := m.ReadConcurrency
	if limit < 1 {
		limit = defaultReadConcurrency
	}

	results := make([]loadedDependency, len(relatives))
	errs := make([]error, len(relatives))
	var g errgroup.Group
	g.SetLimit(limit)
	for i, relative := range relatives {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			path, found, err := m.Source.Locate(relative, searchPaths)
			if err != nil {
				errs[i] = err
				return nil
			}
			if !found {
				errs[i] = errDependencyNotFound(relative)
				return nil
			}
			dep := loadedDependency{relative: relative, path: path, canonical: canonicalPath(path)}
			if _, ok := resolved[dep.canonical]; !ok {
				if dep.doc, err = m.Source.Load(path); err != nil {
					errs[i] = err
					return nil
				}
			}
			results[i] = dep
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
