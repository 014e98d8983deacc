package core

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"slimdx-generator/internal/types"
)

type testExternalTypes map[string]types.ExternalType

func (t testExternalTypes) LoadCatalog(string) error { return nil }

func (t testExternalTypes) ResolveType(name string) (types.ExternalType, bool) {
	external, ok := t[name]
	return external, ok
}

func newTestExternalTypes() testExternalTypes {
	return testExternalTypes{
		"SlimDX.ComObject": {QualifiedName: "SlimDX.ComObject", Kind: types.ExternalKindComObject},
		"System.Int32":     {QualifiedName: "System.Int32", Kind: types.ExternalKindInt32, Size: 4},
		"System.UInt32":    {QualifiedName: "System.UInt32", Kind: types.ExternalKindUint32, Size: 4},
		"System.Void":      {QualifiedName: "System.Void", Kind: types.ExternalKindVoid},
	}
}

// baseReferences declares the host types most test schemas build on.
func baseReferences() []types.ReferenceEntry {
	return []types.ReferenceEntry{
		{Key: "SlimDX.ComObject", Target: "SlimDX.ComObject"},
		{Key: "IUnknown", Target: "SlimDX.ComObject", Name: "IUnknown"},
		{Key: "HRESULT", Target: "System.Int32", Name: "int"},
		{Key: "UINT", Target: "System.UInt32"},
		{Key: "void", Target: "System.Void"},
	}
}

func newTestParser(opts ParseOptions) EntityParser {
	return NewEntityParser(NewReferenceResolver(newTestExternalTypes()), opts)
}

func parseTestDocument(t *testing.T, doc types.SchemaFile, opts ParseOptions) (*Registry, error) {
	t.Helper()
	registry := NewRegistry()
	err := newTestParser(opts).Parse(t.Context(), doc, "test.json", registry)
	return registry, err
}

func methodsNamed(names ...string) []types.MethodEntry {
	methods := make([]types.MethodEntry, 0, len(names))
	for i, name := range names {
		methods = append(methods, types.MethodEntry{Key: name, Type: "HRESULT", Index: i})
	}
	return methods
}

func errorMsg(t *testing.T, err error) string {
	t.Helper()
	var builder *errbuilder.ErrBuilder
	require.True(t, errors.As(err, &builder), "expected errbuilder error, got %T", err)
	return builder.Msg
}

// memorySchemaSource serves schema documents from memory, keyed by path.
type memorySchemaSource struct {
	files map[string]types.SchemaFile

	mu    sync.Mutex
	loads []string
}

func newMemorySchemaSource(files map[string]types.SchemaFile) *memorySchemaSource {
	return &memorySchemaSource{files: files}
}

func (s *memorySchemaSource) Locate(relative string, searchPaths []string) (string, bool, error) {
	for _, dir := range searchPaths {
		candidate := filepath.Join(dir, relative)
		if _, ok := s.files[candidate]; ok {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

func (s *memorySchemaSource) Load(path string) (types.SchemaFile, error) {
	s.mu.Lock()
	s.loads = append(s.loads, path)
	s.mu.Unlock()
	doc, ok := s.files[path]
	if !ok {
		return types.SchemaFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read schema file: " + path)
	}
	return doc, nil
}
