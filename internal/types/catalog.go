package types

// ExternalType describes a host-environment type that a schema reference
// resolves to.
type ExternalType struct {
	// QualifiedName is the fully qualified name, e.g. "System.Int32".
	QualifiedName string

	Kind ExternalKind

	// Size is the native size in bytes, or 0 when the size is not fixed.
	Size int
}

// CatalogEntry is a single external type declaration in a catalog file.
type CatalogEntry struct {
	Kind ExternalKind `yaml:"kind"`
	Size int          `yaml:"size,omitempty"`
}

// CatalogFile is the top-level structure of an external type catalog.
// Catalogs layer on top of the builtin host types; later catalogs override
// earlier ones per qualified name.
type CatalogFile struct {
	// CatalogVersion identifies the file format version.
	CatalogVersion string `yaml:"catalog_version"`

	// Types maps fully qualified names to their declaration.
	Types map[string]CatalogEntry `yaml:"types"`
}
