package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slimdx-generator/internal/types"
)

func TestAssemblePartitionsByKind(t *testing.T) {
	model := assembleTestDocument(t, types.SchemaFile{
		References: baseReferences(),
		Enumerations: []types.EnumerationEntry{
			{Key: "Usage"},
			{Key: "Format"},
		},
		Structures: []types.StructureEntry{
			{Key: "Rect", Members: []types.MemberEntry{{Key: "left", Type: "UINT"}}},
		},
		Interfaces: []types.InterfaceEntry{
			{Key: "IDevice", GUID: guidA, Type: "IUnknown"},
		},
	})

	var enumKeys []string
	for _, enumeration := range model.Enumerations() {
		enumKeys = append(enumKeys, enumeration.Key)
	}
	if diff := cmp.Diff([]string{"Usage", "Format"}, enumKeys); diff != "" {
		t.Fatalf("unexpected enumerations (-want +got):\n%s", diff)
	}
	require.Len(t, model.Structures(), 1)
	assert.Equal(t, "Rect", model.Structures()[0].Key)
	require.Len(t, model.Interfaces(), 1)
	assert.Equal(t, "IDevice", model.Interfaces()[0].Key)
	assert.Equal(t, DefaultBaseTypeKey, model.BaseTypeKey())
}

func TestAssembleExcludesReferencesFromCollections(t *testing.T) {
	model := assembleTestDocument(t, types.SchemaFile{References: baseReferences()})

	assert.Empty(t, model.Enumerations())
	assert.Empty(t, model.Structures())
	assert.Empty(t, model.Interfaces())

	hresult, ok := model.Lookup("HRESULT")
	require.True(t, ok)
	_, isReference := hresult.(*types.ReferenceModel)
	assert.True(t, isReference)

	_, ok = model.Interface("HRESULT")
	assert.False(t, ok)
	_, ok = model.Interface("missing")
	assert.False(t, ok)
}

func TestAssembleCollectionsAreCopies(t *testing.T) {
	model := assembleTestDocument(t, types.SchemaFile{
		Enumerations: []types.EnumerationEntry{{Key: "Usage"}},
	})

	enumerations := model.Enumerations()
	enumerations[0] = nil
	require.NotNil(t, model.Enumerations()[0])
}

func TestAssembleCarriesOverrides(t *testing.T) {
	model := assembleTestDocument(t, types.SchemaFile{
		Enumerations: []types.EnumerationEntry{{Key: "Usage"}, {Key: "Usage"}},
	})

	require.Len(t, model.Enumerations(), 1)
	want := []types.Override{{Key: "Usage", Previous: "test.json", Current: "test.json"}}
	if diff := cmp.Diff(want, model.Overrides()); diff != "" {
		t.Fatalf("unexpected overrides (-want +got):\n%s", diff)
	}
}
