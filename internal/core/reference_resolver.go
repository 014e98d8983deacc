package core

import (
	"strings"

	"slimdx-generator/internal/ports"
	"slimdx-generator/internal/types"
)

// ReferenceResolver turns "references" entries into models bound to host
// types.
type ReferenceResolver struct {
	ExternalTypes ports.ExternalTypePort
}

func NewReferenceResolver(externalTypes ports.ExternalTypePort) ReferenceResolver {
	return ReferenceResolver{ExternalTypes: externalTypes}
}

// Resolve looks up entry.Target and builds the reference model.  The
// display name falls back to the resolved qualified name.
func (r ReferenceResolver) Resolve(entry types.ReferenceEntry) (*types.ReferenceModel, error) {
	target := strings.TrimSpace(entry.Target)
	external, ok := r.ExternalTypes.ResolveType(target)
	if target == "" || !ok {
		return nil, errUnresolvableExternalType(entry.Target, entry.Key)
	}
	name := entry.Name
	if name == "" {
		name = external.QualifiedName
	}
	return &types.ReferenceModel{
		Key:         entry.Key,
		DisplayName: name,
		External:    external,
	}, nil
}
