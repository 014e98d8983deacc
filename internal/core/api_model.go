package core

import (
	"context"
	"slices"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"slimdx-generator/internal/types"
)

// ApiModel is the resolved type graph handed to code emission.  It has no
// mutating operations; the only state it changes is its vtable offset memo.
// An ApiModel is not safe for concurrent use.
type ApiModel struct {
	baseTypeKey  string
	enumerations []*types.EnumerationModel
	structures   []*types.StructureModel
	interfaces   []*types.InterfaceModel
	index        map[string]types.TypeModel
	overrides    []types.Override
	offsets      map[*types.InterfaceModel]int
}

// Assemble partitions a fully resolved registry into enumerations,
// structures and interfaces, in registry insertion order.  Reference models
// are reachable through Lookup but are not part of the public collections.
// The registry is sealed and must not be used for further resolution.
func Assemble(ctx context.Context, registry *Registry, baseTypeKey string) *ApiModel {
	if baseTypeKey == "" {
		baseTypeKey = DefaultBaseTypeKey
	}
	model := &ApiModel{
		baseTypeKey: baseTypeKey,
		index:       make(map[string]types.TypeModel, registry.Len()),
		overrides:   registry.Overrides(),
		offsets:     make(map[*types.InterfaceModel]int),
	}
	for _, key := range registry.Keys() {
		entry, _ := registry.Lookup(key)
		assert.NotEmpty(ctx, entry.TypeKey(), "registry entry key must be set")
		model.index[key] = entry
		switch typed := entry.(type) {
		case *types.EnumerationModel:
			model.enumerations = append(model.enumerations, typed)
		case *types.StructureModel:
			model.structures = append(model.structures, typed)
		case *types.InterfaceModel:
			model.interfaces = append(model.interfaces, typed)
		}
	}
	registry.seal()

	log.Ctx(ctx).Debug().
		Int("enumerations", len(model.enumerations)).
		Int("structures", len(model.structures)).
		Int("interfaces", len(model.interfaces)).
		Msg("api model assembled")
	return model
}

func (m *ApiModel) BaseTypeKey() string { return m.baseTypeKey }

func (m *ApiModel) Enumerations() []*types.EnumerationModel {
	return slices.Clone(m.enumerations)
}

func (m *ApiModel) Structures() []*types.StructureModel {
	return slices.Clone(m.structures)
}

func (m *ApiModel) Interfaces() []*types.InterfaceModel {
	return slices.Clone(m.interfaces)
}

// Overrides lists the keys whose definitions were replaced while merging.
func (m *ApiModel) Overrides() []types.Override {
	return slices.Clone(m.overrides)
}

// Lookup returns any model by key, including reference models.
func (m *ApiModel) Lookup(key string) (types.TypeModel, bool) {
	model, ok := m.index[key]
	return model, ok
}

// Interface returns the interface registered under key.
func (m *ApiModel) Interface(key string) (*types.InterfaceModel, bool) {
	model, ok := m.index[key]
	if !ok {
		return nil, false
	}
	iface, ok := model.(*types.InterfaceModel)
	return iface, ok
}
