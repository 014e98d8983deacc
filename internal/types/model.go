package types

import "github.com/google/uuid"

// TypeModel is any named type in the resolved graph.  Keys are unique
// within a registry and are used for all cross-references.
type TypeModel interface {
	TypeKey() string
	TypeName() string
}

// ReferenceModel is a type defined outside the schema and bound to a host
// type through a "references" entry.  Reference models are used only as
// cross-reference targets and never surface as top-level declarations.
type ReferenceModel struct {
	Key         string
	DisplayName string
	External    ExternalType
}

func (m *ReferenceModel) TypeKey() string  { return m.Key }
func (m *ReferenceModel) TypeName() string { return m.DisplayName }

type EnumerationValueModel struct {
	Key   string
	Value string
}

type EnumerationModel struct {
	Key    string
	Values []EnumerationValueModel
}

func (m *EnumerationModel) TypeKey() string  { return m.Key }
func (m *EnumerationModel) TypeName() string { return m.Key }

// StructureMemberModel is a structure field.  Type points into the
// registry; structures never own their member types.
type StructureMemberModel struct {
	Key  string
	Type TypeModel
}

// StructureModel members keep schema declaration order, which is the
// layout order downstream.
type StructureModel struct {
	Key     string
	Members []StructureMemberModel
}

func (m *StructureModel) TypeKey() string  { return m.Key }
func (m *StructureModel) TypeName() string { return m.Key }

type ParameterModel struct {
	Key   string
	Type  TypeModel
	Flags ParameterFlags
}

// IsOutput reports whether the callee writes through the parameter.
func (p ParameterModel) IsOutput() bool {
	return p.Flags.Has(ParameterFlagOutput)
}

// MethodModel is one interface method.  Index is the position declared in
// the schema for the method's own interface, not its absolute vtable slot.
type MethodModel struct {
	Key        string
	ReturnType TypeModel
	Index      int
	Parameters []ParameterModel
}

// Ancestry is either the root variant, wired to the base COM object type,
// or the derived variant, wired to exactly one parent interface.  The zero
// value means the ancestry has not been populated yet.
type Ancestry struct {
	kind   AncestryKind
	base   TypeModel
	parent *InterfaceModel
}

// RootAncestry marks an interface that derives directly from the base COM
// object type.
func RootAncestry(base TypeModel) Ancestry {
	return Ancestry{kind: AncestryKindRoot, base: base}
}

// DerivedAncestry marks an interface that derives from parent.
func DerivedAncestry(parent *InterfaceModel) Ancestry {
	return Ancestry{kind: AncestryKindDerived, parent: parent}
}

func (a Ancestry) Kind() AncestryKind { return a.kind }

func (a Ancestry) IsRoot() bool { return a.kind == AncestryKindRoot }

// Base returns the base COM object type of a root ancestry.
func (a Ancestry) Base() (TypeModel, bool) {
	return a.base, a.kind == AncestryKindRoot
}

// Parent returns the parent interface of a derived ancestry.
func (a Ancestry) Parent() (*InterfaceModel, bool) {
	return a.parent, a.kind == AncestryKindDerived
}

// Type returns whichever model the ancestry points at, or nil when unset.
func (a Ancestry) Type() TypeModel {
	switch a.Kind() {
	case AncestryKindRoot:
		return a.base
	case AncestryKindDerived:
		if a.parent == nil {
			return nil
		}
		return a.parent
	default:
		return nil
	}
}

// InterfaceModel is a virtual-dispatch interface.  Methods keep schema
// declaration order, which determines vtable slot order.
type InterfaceModel struct {
	Key      string
	GUID     uuid.UUID
	Ancestry Ancestry
	Methods  []MethodModel
}

func (m *InterfaceModel) TypeKey() string  { return m.Key }
func (m *InterfaceModel) TypeName() string { return m.Key }

// Override records a registry key whose definition was replaced by a
// later one.  Previous and Current name the schema files involved.
type Override struct {
	Key      string
	Previous string
	Current  string
}
