package ports

import "slimdx-generator/internal/types"

// SchemaSourcePort locates and decodes schema documents.
//
// Dependency files are named relative to an ordered list of search
// directories; the first directory that contains the file wins.
type SchemaSourcePort interface {
	// Locate returns the path of the first search directory entry that
	// holds relative.  A miss is reported with found == false and a nil
	// error; err is reserved for I/O failures other than absence.
	Locate(relative string, searchPaths []string) (path string, found bool, err error)

	// Load reads and decodes the schema document at path.
	Load(path string) (types.SchemaFile, error)
}
