package ports

import "slimdx-generator/internal/types"

// ModelWriterPort persists a resolved model document for downstream tools.
type ModelWriterPort interface {
	WriteModel(path string, doc types.ModelDocument) error
}
