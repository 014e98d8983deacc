package types

// ExternalKind classifies a host type that a schema reference resolves to.
type ExternalKind string

const (
	ExternalKindVoid      ExternalKind = "void"
	ExternalKindBool      ExternalKind = "bool"
	ExternalKindInt8      ExternalKind = "int8"
	ExternalKindUint8     ExternalKind = "uint8"
	ExternalKindInt16     ExternalKind = "int16"
	ExternalKindUint16    ExternalKind = "uint16"
	ExternalKindInt32     ExternalKind = "int32"
	ExternalKindUint32    ExternalKind = "uint32"
	ExternalKindInt64     ExternalKind = "int64"
	ExternalKindUint64    ExternalKind = "uint64"
	ExternalKindFloat32   ExternalKind = "float32"
	ExternalKindFloat64   ExternalKind = "float64"
	ExternalKindPointer   ExternalKind = "pointer"
	ExternalKindString    ExternalKind = "string"
	ExternalKindGUID      ExternalKind = "guid"
	ExternalKindComObject ExternalKind = "com-object"
	ExternalKindOpaque    ExternalKind = "opaque"
)

// ParameterFlags is a bit set of parameter attributes.
type ParameterFlags uint8

const (
	ParameterFlagNone ParameterFlags = 0

	// ParameterFlagOutput marks a parameter the callee writes through.
	ParameterFlagOutput ParameterFlags = 1 << 0
)

// Has reports whether every bit of flag is set.
func (f ParameterFlags) Has(flag ParameterFlags) bool {
	return f&flag == flag
}

// ParameterFlagToken is the schema spelling of a parameter flag.
type ParameterFlagToken string

const (
	ParameterFlagTokenOut ParameterFlagToken = "out"
)

// AncestryKind discriminates the Ancestry variants.
type AncestryKind string

const (
	AncestryKindRoot    AncestryKind = "root"
	AncestryKindDerived AncestryKind = "derived"
)
