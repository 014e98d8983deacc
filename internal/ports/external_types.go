package ports

import "slimdx-generator/internal/types"

// ExternalTypePort resolves fully qualified host type names, the Go
// counterpart of a runtime type lookup.
//
// Catalog layers are merged in load order.  When several catalogs declare
// the same qualified name, the last-loaded layer wins.
type ExternalTypePort interface {
	// LoadCatalog merges a catalog file into the lookup table.
	LoadCatalog(path string) error

	// ResolveType looks up a fully qualified name.  Returns (zero, false)
	// when the name is unknown.
	ResolveType(qualifiedName string) (types.ExternalType, bool)
}
