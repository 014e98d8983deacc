package app

import (
	"slimdx-generator/internal/adapters"
	"slimdx-generator/internal/ports"
)

type Service struct {
	SchemaSource  func(strict bool) ports.SchemaSourcePort
	ExternalTypes func() ports.ExternalTypePort
	ModelWriter   ports.ModelWriterPort
}

func NewService() Service {
	return Service{
		SchemaSource: func(strict bool) ports.SchemaSourcePort {
			return adapters.NewSchemaFileAdapter(strict)
		},
		ExternalTypes: func() ports.ExternalTypePort {
			return adapters.NewExternalTypeCatalogAdapter()
		},
		ModelWriter: adapters.NewModelDumpAdapter(),
	}
}
