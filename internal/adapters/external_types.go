package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"slimdx-generator/internal/ports"
	"slimdx-generator/internal/types"
)

// builtinExternalTypes are the host types every catalog starts from.
var builtinExternalTypes = []types.ExternalType{
	{QualifiedName: "System.Void", Kind: types.ExternalKindVoid},
	{QualifiedName: "System.Boolean", Kind: types.ExternalKindBool, Size: 4},
	{QualifiedName: "System.SByte", Kind: types.ExternalKindInt8, Size: 1},
	{QualifiedName: "System.Byte", Kind: types.ExternalKindUint8, Size: 1},
	{QualifiedName: "System.Int16", Kind: types.ExternalKindInt16, Size: 2},
	{QualifiedName: "System.UInt16", Kind: types.ExternalKindUint16, Size: 2},
	{QualifiedName: "System.Int32", Kind: types.ExternalKindInt32, Size: 4},
	{QualifiedName: "System.UInt32", Kind: types.ExternalKindUint32, Size: 4},
	{QualifiedName: "System.Int64", Kind: types.ExternalKindInt64, Size: 8},
	{QualifiedName: "System.UInt64", Kind: types.ExternalKindUint64, Size: 8},
	{QualifiedName: "System.Single", Kind: types.ExternalKindFloat32, Size: 4},
	{QualifiedName: "System.Double", Kind: types.ExternalKindFloat64, Size: 8},
	{QualifiedName: "System.IntPtr", Kind: types.ExternalKindPointer},
	{QualifiedName: "System.UIntPtr", Kind: types.ExternalKindPointer},
	{QualifiedName: "System.String", Kind: types.ExternalKindString},
	{QualifiedName: "System.Guid", Kind: types.ExternalKindGUID, Size: 16},
	{QualifiedName: "SlimDX.ComObject", Kind: types.ExternalKindComObject},
}

var validExternalKinds = map[types.ExternalKind]struct{}{
	types.ExternalKindVoid:      {},
	types.ExternalKindBool:      {},
	types.ExternalKindInt8:      {},
	types.ExternalKindUint8:     {},
	types.ExternalKindInt16:     {},
	types.ExternalKindUint16:    {},
	types.ExternalKindInt32:     {},
	types.ExternalKindUint32:    {},
	types.ExternalKindInt64:     {},
	types.ExternalKindUint64:    {},
	types.ExternalKindFloat32:   {},
	types.ExternalKindFloat64:   {},
	types.ExternalKindPointer:   {},
	types.ExternalKindString:    {},
	types.ExternalKindGUID:      {},
	types.ExternalKindComObject: {},
	types.ExternalKindOpaque:    {},
}

// ExternalTypeCatalogAdapter implements ExternalTypePort with the builtin
// host types plus layered catalog.yaml files.  Each LoadCatalog call merges
// new declarations into the table; later loads override earlier ones per
// qualified name.
type ExternalTypeCatalogAdapter struct {
	// merged holds the flattened table after all layers.
	merged map[string]types.ExternalType

	// layers tracks load order for debugging / provenance.
	layers []string
}

// NewExternalTypeCatalogAdapter returns a catalog holding only the builtin
// host types.
func NewExternalTypeCatalogAdapter() *ExternalTypeCatalogAdapter {
	merged := make(map[string]types.ExternalType, len(builtinExternalTypes))
	for _, external := range builtinExternalTypes {
		merged[external.QualifiedName] = external
	}
	return &ExternalTypeCatalogAdapter{merged: merged}
}

// LoadCatalog reads a catalog file and merges its declarations.
func (a *ExternalTypeCatalogAdapter) LoadCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read catalog file: " + path).
			WithCause(err)
	}

	var catalog types.CatalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog file: " + path).
			WithCause(err)
	}

	if catalog.CatalogVersion == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog file missing catalog_version: " + path)
	}

	for name, entry := range catalog.Types {
		qualified := strings.TrimSpace(name)
		if qualified == "" {
			continue
		}
		if _, ok := validExternalKinds[entry.Kind]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("catalog type '" + qualified + "' has invalid kind '" + string(entry.Kind) + "' in " + path)
		}
		if entry.Size < 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("catalog type '" + qualified + "' has negative size in " + path)
		}

		if _, exists := a.merged[qualified]; exists {
			log.Debug().
				Str("type", qualified).
				Str("layer", path).
				Msg("external type overridden by later layer")
		}

		a.merged[qualified] = types.ExternalType{
			QualifiedName: qualified,
			Kind:          entry.Kind,
			Size:          entry.Size,
		}
	}

	a.layers = append(a.layers, path)
	log.Debug().
		Str("path", path).
		Int("types", len(catalog.Types)).
		Int("total", len(a.merged)).
		Msg("catalog layer loaded")

	return nil
}

// ResolveType maps a fully qualified name to its host type.
func (a *ExternalTypeCatalogAdapter) ResolveType(qualifiedName string) (types.ExternalType, bool) {
	external, ok := a.merged[strings.TrimSpace(qualifiedName)]
	return external, ok
}

// Layers returns the catalog files loaded so far, in load order.
func (a *ExternalTypeCatalogAdapter) Layers() []string {
	return append([]string(nil), a.layers...)
}

var _ ports.ExternalTypePort = (*ExternalTypeCatalogAdapter)(nil)
