package types

// ModelDocument is the serialized form of a resolved Api Model.  Type
// references are written as keys.
type ModelDocument struct {
	Schema       string           `yaml:"schema"`
	BaseType     string           `yaml:"base_type"`
	Enumerations []EnumerationDoc `yaml:"enumerations,omitempty"`
	Structures   []StructureDoc   `yaml:"structures,omitempty"`
	Interfaces   []InterfaceDoc   `yaml:"interfaces,omitempty"`
	Overrides    []OverrideDoc    `yaml:"overrides,omitempty"`
}

type EnumerationDoc struct {
	Key    string                `yaml:"key"`
	Values []EnumerationValueDoc `yaml:"values,omitempty"`
}

type EnumerationValueDoc struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type StructureDoc struct {
	Key     string      `yaml:"key"`
	Members []MemberDoc `yaml:"members,omitempty"`
}

type MemberDoc struct {
	Key  string `yaml:"key"`
	Type string `yaml:"type"`
}

type InterfaceDoc struct {
	Key          string      `yaml:"key"`
	GUID         string      `yaml:"guid"`
	Parent       string      `yaml:"parent"`
	MethodOffset int         `yaml:"method_offset"`
	Methods      []MethodDoc `yaml:"methods,omitempty"`
}

type MethodDoc struct {
	Key        string         `yaml:"key"`
	ReturnType string         `yaml:"return_type"`
	Index      int            `yaml:"index"`
	Slot       int            `yaml:"slot"`
	Parameters []ParameterDoc `yaml:"parameters,omitempty"`
}

type ParameterDoc struct {
	Key    string `yaml:"key"`
	Type   string `yaml:"type"`
	Output bool   `yaml:"output,omitempty"`
}

type OverrideDoc struct {
	Key      string `yaml:"key"`
	Previous string `yaml:"previous"`
	Current  string `yaml:"current"`
}
