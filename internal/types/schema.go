package types

// SchemaFile is the top-level structure of an interface-definition schema
// document.  Every section is optional.
//
// Documents are layered through Dependencies: each listed file is resolved
// first and merged in declaration order, then this document's own sections
// are applied on top, so the document always has the final word on any key
// it defines.
type SchemaFile struct {
	// Dependencies lists schema files relative to the caller's search paths.
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`

	// References bind keys to types provided by the host environment.
	References []ReferenceEntry `json:"references,omitempty" yaml:"references,omitempty"`

	Enumerations []EnumerationEntry `json:"enumerations,omitempty" yaml:"enumerations,omitempty"`
	Structures   []StructureEntry   `json:"structures,omitempty" yaml:"structures,omitempty"`
	Interfaces   []InterfaceEntry   `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
}

// ReferenceEntry maps a schema key onto an external, fully qualified type
// name such as "System.Int32".
type ReferenceEntry struct {
	Key    string `json:"key" yaml:"key"`
	Target string `json:"target" yaml:"target"`

	// Name is the display name.  Defaults to the resolved qualified name.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

type EnumerationEntry struct {
	Key    string                  `json:"key" yaml:"key"`
	Values []EnumerationValueEntry `json:"values,omitempty" yaml:"values,omitempty"`
}

type EnumerationValueEntry struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type StructureEntry struct {
	Key     string        `json:"key" yaml:"key"`
	Members []MemberEntry `json:"members,omitempty" yaml:"members,omitempty"`
}

type MemberEntry struct {
	Key  string `json:"key" yaml:"key"`
	Type string `json:"type" yaml:"type"`
}

// InterfaceEntry declares a COM interface.  Type names the parent
// interface; the literal key "IUnknown" stands for the base COM object.
type InterfaceEntry struct {
	Key     string        `json:"key" yaml:"key"`
	GUID    string        `json:"guid" yaml:"guid"`
	Type    string        `json:"type" yaml:"type"`
	Methods []MethodEntry `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// MethodEntry declares one method.  Type is the return type key and Index
// is the method's position within its own interface.
type MethodEntry struct {
	Key        string           `json:"key" yaml:"key"`
	Type       string           `json:"type" yaml:"type"`
	Index      int              `json:"index" yaml:"index"`
	Parameters []ParameterEntry `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

type ParameterEntry struct {
	Key   string   `json:"key" yaml:"key"`
	Type  string   `json:"type" yaml:"type"`
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}
