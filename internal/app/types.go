package app

import (
	"slimdx-generator/internal/core"
	"slimdx-generator/internal/types"
)

// SchemaOptions are the inputs shared by every operation that resolves a
// schema.
type SchemaOptions struct {
	SchemaPath      string
	SearchPaths     []string
	Catalogs        []string
	BaseType        string
	StrictFlags     bool
	ReadConcurrency int
}

type ResolveRequest struct {
	SchemaOptions
	OutputPath string
}

type ResolveResult struct {
	Model      *core.ApiModel
	Overrides  []types.Override
	OutputPath string
}

type ValidateRequest struct {
	SchemaOptions
}

type ValidateResult struct {
	Enumerations int
	Structures   int
	Interfaces   int
	Overrides    int
}

type InspectRequest struct {
	SchemaOptions
}

type InspectInterfaceSummary struct {
	Key          string
	Parent       string
	MethodOffset int
	MethodCount  int
}

type InspectResult struct {
	Enumerations int
	Structures   int
	Interfaces   []InspectInterfaceSummary
	Overrides    []types.Override
}
