package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"slimdx-generator/internal/types"
)

const (
	// DefaultBaseTypeKey is the registry key of the base COM object type.
	DefaultBaseTypeKey = "SlimDX.ComObject"

	// unknownInterfaceKey is the schema spelling of the COM root interface.
	// A parent resolving to this key is rewired to the base type.
	unknownInterfaceKey = "IUnknown"
)

// ParseOptions tunes how schema documents are turned into models.
type ParseOptions struct {
	// BaseTypeKey is the registry key of the base COM object type.
	BaseTypeKey string

	// StrictFlags rejects parameter flag tokens that are not recognized.
	StrictFlags bool
}

func (o ParseOptions) baseTypeKey() string {
	if strings.TrimSpace(o.BaseTypeKey) == "" {
		return DefaultBaseTypeKey
	}
	return o.BaseTypeKey
}

// EntityParser builds models for one schema document in two passes.  The
// first pass registers every declared key so that the second pass can
// resolve references regardless of declaration order.
type EntityParser struct {
	References ReferenceResolver
	Options    ParseOptions
}

func NewEntityParser(references ReferenceResolver, opts ParseOptions) EntityParser {
	return EntityParser{References: references, Options: opts}
}

// Parse applies doc on top of registry.  registry must already hold every
// model merged from doc's dependencies.
func (p EntityParser) Parse(ctx context.Context, doc types.SchemaFile, origin string, registry *Registry) error {
	if err := p.registerSkeletons(ctx, doc, origin, registry); err != nil {
		return err
	}
	if err := p.populateDetails(doc, registry); err != nil {
		return err
	}
	log.Ctx(ctx).Debug().
		Str("schema", origin).
		Int("references", len(doc.References)).
		Int("enumerations", len(doc.Enumerations)).
		Int("structures", len(doc.Structures)).
		Int("interfaces", len(doc.Interfaces)).
		Msg("schema document parsed")
	return nil
}

// registerSkeletons is pass one.  References and enumerations need nothing
// from the registry and are complete here; structures are registered empty
// and interfaces carry only their identity.
func (p EntityParser) registerSkeletons(ctx context.Context, doc types.SchemaFile, origin string, registry *Registry) error {
	for i, entry := range doc.References {
		if strings.TrimSpace(entry.Key) == "" {
			return errMissingKey("references", i)
		}
		model, err := p.References.Resolve(entry)
		if err != nil {
			return err
		}
		if err := registry.Put(ctx, model, origin); err != nil {
			return err
		}
	}

	for i, entry := range doc.Enumerations {
		if strings.TrimSpace(entry.Key) == "" {
			return errMissingKey("enumerations", i)
		}
		model := &types.EnumerationModel{Key: entry.Key}
		for _, value := range entry.Values {
			model.Values = append(model.Values, types.EnumerationValueModel{Key: value.Key, Value: value.Value})
		}
		if err := registry.Put(ctx, model, origin); err != nil {
			return err
		}
	}

	for i, entry := range doc.Structures {
		if strings.TrimSpace(entry.Key) == "" {
			return errMissingKey("structures", i)
		}
		if err := registry.Put(ctx, &types.StructureModel{Key: entry.Key}, origin); err != nil {
			return err
		}
	}

	for i, entry := range doc.Interfaces {
		if strings.TrimSpace(entry.Key) == "" {
			return errMissingKey("interfaces", i)
		}
		guid, err := uuid.Parse(strings.TrimSpace(entry.GUID))
		if err != nil {
			return errMalformedGUID(entry.GUID, entry.Key, err)
		}
		if err := registry.Put(ctx, &types.InterfaceModel{Key: entry.Key, GUID: guid}, origin); err != nil {
			return err
		}
	}
	return nil
}

// populateDetails is pass two.  Every key of the document exists by now, so
// a lookup miss is a dangling reference.
func (p EntityParser) populateDetails(doc types.SchemaFile, registry *Registry) error {
	for _, entry := range doc.Structures {
		model, err := lookupStructure(registry, entry.Key)
		if err != nil {
			return err
		}
		members := make([]types.StructureMemberModel, 0, len(entry.Members))
		for _, member := range entry.Members {
			memberType, ok := registry.Lookup(member.Type)
			if !ok {
				return errUnresolvedReference(member.Type, fmt.Sprintf("member '%s' of structure '%s'", member.Key, entry.Key))
			}
			members = append(members, types.StructureMemberModel{Key: member.Key, Type: memberType})
		}
		model.Members = members
	}

	for _, entry := range doc.Interfaces {
		model, err := lookupInterface(registry, entry.Key)
		if err != nil {
			return err
		}
		ancestry, err := p.resolveAncestry(entry, registry)
		if err != nil {
			return err
		}
		methods, err := p.parseMethods(entry, registry)
		if err != nil {
			return err
		}
		model.Ancestry = ancestry
		model.Methods = methods
	}
	return nil
}

// resolveAncestry wires an interface to its parent.  A parent keyed
// "IUnknown", or the base type itself, yields the root variant bound to the
// registry's base COM object type.
func (p EntityParser) resolveAncestry(entry types.InterfaceEntry, registry *Registry) (types.Ancestry, error) {
	parent, ok := registry.Lookup(entry.Type)
	if !ok {
		return types.Ancestry{}, errUnresolvedReference(entry.Type, fmt.Sprintf("parent of interface '%s'", entry.Key))
	}
	return p.ancestryFor(entry.Key, parent, registry)
}

// ancestryFor classifies parent as the root or derived variant for the
// interface keyed key.
func (p EntityParser) ancestryFor(key string, parent types.TypeModel, registry *Registry) (types.Ancestry, error) {
	baseKey := p.Options.baseTypeKey()
	if parent.TypeKey() == unknownInterfaceKey || parent.TypeKey() == baseKey {
		base, ok := registry.Lookup(baseKey)
		if !ok {
			return types.Ancestry{}, errUnresolvedReference(baseKey, fmt.Sprintf("base type of interface '%s'", key))
		}
		return types.RootAncestry(base), nil
	}
	iface, ok := parent.(*types.InterfaceModel)
	if !ok {
		return types.Ancestry{}, errUnrootedInheritance(key, fmt.Sprintf("has parent '%s' which is not an interface", parent.TypeKey()))
	}
	return types.DerivedAncestry(iface), nil
}

func (p EntityParser) parseMethods(entry types.InterfaceEntry, registry *Registry) ([]types.MethodModel, error) {
	methods := make([]types.MethodModel, 0, len(entry.Methods))
	claimed := make(map[int]string, len(entry.Methods))
	for _, method := range entry.Methods {
		where := fmt.Sprintf("method '%s' of interface '%s'", method.Key, entry.Key)
		if method.Index < 0 || method.Index >= len(entry.Methods) {
			return nil, errMethodIndexOutOfRange(method.Index, len(entry.Methods), where)
		}
		if other, taken := claimed[method.Index]; taken {
			return nil, errDuplicateMethodIndex(method.Index, other, method.Key, entry.Key)
		}
		claimed[method.Index] = method.Key
		returnType, ok := registry.Lookup(method.Type)
		if !ok {
			return nil, errUnresolvedReference(method.Type, "return type of "+where)
		}
		parameters, err := p.parseParameters(method.Parameters, where, registry)
		if err != nil {
			return nil, err
		}
		methods = append(methods, types.MethodModel{
			Key:        method.Key,
			ReturnType: returnType,
			Index:      method.Index,
			Parameters: parameters,
		})
	}
	return methods, nil
}

func (p EntityParser) parseParameters(entries []types.ParameterEntry, where string, registry *Registry) ([]types.ParameterModel, error) {
	parameters := make([]types.ParameterModel, 0, len(entries))
	for _, entry := range entries {
		paramWhere := fmt.Sprintf("parameter '%s' of %s", entry.Key, where)
		paramType, ok := registry.Lookup(entry.Type)
		if !ok {
			return nil, errUnresolvedReference(entry.Type, paramWhere)
		}
		flags, err := parseParameterFlags(entry.Flags, p.Options.StrictFlags, paramWhere)
		if err != nil {
			return nil, err
		}
		parameters = append(parameters, types.ParameterModel{Key: entry.Key, Type: paramType, Flags: flags})
	}
	return parameters, nil
}

func lookupStructure(registry *Registry, key string) (*types.StructureModel, error) {
	model, ok := registry.Lookup(key)
	if !ok {
		return nil, errUnresolvedReference(key, "structure declarations")
	}
	structure, ok := model.(*types.StructureModel)
	if !ok {
		return nil, errVariantMismatch(key, "structure")
	}
	return structure, nil
}

func lookupInterface(registry *Registry, key string) (*types.InterfaceModel, error) {
	model, ok := registry.Lookup(key)
	if !ok {
		return nil, errUnresolvedReference(key, "interface declarations")
	}
	iface, ok := model.(*types.InterfaceModel)
	if !ok {
		return nil, errVariantMismatch(key, "interface")
	}
	return iface, nil
}
