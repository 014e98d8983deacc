package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slimdx-generator/internal/types"
)

func TestExternalTypeCatalogBuiltins(t *testing.T) {
	catalog := NewExternalTypeCatalogAdapter()

	external, ok := catalog.ResolveType("System.Int32")
	require.True(t, ok)
	assert.Equal(t, types.ExternalKindInt32, external.Kind)
	assert.Equal(t, 4, external.Size)

	external, ok = catalog.ResolveType(" SlimDX.ComObject ")
	require.True(t, ok)
	assert.Equal(t, types.ExternalKindComObject, external.Kind)

	_, ok = catalog.ResolveType("SlimDX.Color4")
	assert.False(t, ok)
	assert.Empty(t, catalog.Layers())
}

func TestExternalTypeCatalogLayering(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(override, []byte(`
catalog_version: "v1"
types:
  SlimDX.Color4:
    kind: opaque
    size: 32
  System.Boolean:
    kind: bool
    size: 1
`), 0644))

	catalog := NewExternalTypeCatalogAdapter()
	require.NoError(t, catalog.LoadCatalog("../../fixtures/catalogs/slimdx.yaml"))

	color, ok := catalog.ResolveType("SlimDX.Color4")
	require.True(t, ok)
	assert.Equal(t, types.ExternalKindOpaque, color.Kind)
	assert.Equal(t, 16, color.Size)

	require.NoError(t, catalog.LoadCatalog(override))
	color, _ = catalog.ResolveType("SlimDX.Color4")
	assert.Equal(t, 32, color.Size)
	boolean, _ := catalog.ResolveType("System.Boolean")
	assert.Equal(t, 1, boolean.Size)

	assert.Equal(t, []string{"../../fixtures/catalogs/slimdx.yaml", override}, catalog.Layers())
}

func TestExternalTypeCatalogErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode errbuilder.ErrCode
	}{
		{
			name:     "missing version",
			content:  "types:\n  A.B:\n    kind: opaque\n",
			wantCode: errbuilder.CodeInvalidArgument,
		},
		{
			name:     "invalid kind",
			content:  "catalog_version: v1\ntypes:\n  A.B:\n    kind: decimal\n",
			wantCode: errbuilder.CodeInvalidArgument,
		},
		{
			name:     "negative size",
			content:  "catalog_version: v1\ntypes:\n  A.B:\n    kind: opaque\n    size: -1\n",
			wantCode: errbuilder.CodeInvalidArgument,
		},
		{
			name:     "malformed yaml",
			content:  "catalog_version: [v1\n",
			wantCode: errbuilder.CodeInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			catalog := NewExternalTypeCatalogAdapter()
			err := catalog.LoadCatalog(path)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errbuilder.CodeOf(err))
			assert.Empty(t, catalog.Layers())
		})
	}

	err := NewExternalTypeCatalogAdapter().LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
