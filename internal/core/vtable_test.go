package core

import (
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slimdx-generator/internal/types"
)

func assembleTestDocument(t *testing.T, doc types.SchemaFile) *ApiModel {
	t.Helper()
	registry, err := parseTestDocument(t, doc, ParseOptions{})
	require.NoError(t, err)
	return Assemble(t.Context(), registry, "")
}

func chainDocument() types.SchemaFile {
	return types.SchemaFile{
		References: baseReferences(),
		Interfaces: []types.InterfaceEntry{
			{Key: "B", GUID: guidB, Type: "A", Methods: methodsNamed("Present")},
			{Key: "A", GUID: guidA, Type: "IUnknown", Methods: methodsNamed("GetDesc", "SetName")},
			{Key: "C", GUID: guidC, Type: "B"},
		},
	}
}

func TestOffsetOfFollowsParentChain(t *testing.T) {
	model := assembleTestDocument(t, chainDocument())
	a, _ := model.Interface("A")
	b, _ := model.Interface("B")
	c, _ := model.Interface("C")

	offset, err := model.OffsetOf(a)
	require.NoError(t, err)
	assert.Equal(t, 3, offset)

	offset, err = model.OffsetOf(b)
	require.NoError(t, err)
	assert.Equal(t, 5, offset)

	offset, err = model.OffsetOf(c)
	require.NoError(t, err)
	assert.Equal(t, 6, offset)

	slot, err := model.SlotOf(b, b.Methods[0])
	require.NoError(t, err)
	assert.Equal(t, 5, slot)
}

func TestOffsetOfMemoizesWalkedChain(t *testing.T) {
	model := assembleTestDocument(t, chainDocument())
	c, _ := model.Interface("C")
	a, _ := model.Interface("A")

	first, err := model.OffsetOf(c)
	require.NoError(t, err)
	assert.Len(t, model.offsets, 3)

	// The memo is authoritative once computed.
	a.Methods = append(a.Methods, types.MethodModel{Key: "Late", Index: 2})
	second, err := model.OffsetOf(c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOffsetOfCyclicInheritance(t *testing.T) {
	model := assembleTestDocument(t, types.SchemaFile{
		References: baseReferences(),
		Interfaces: []types.InterfaceEntry{
			{Key: "A", GUID: guidA, Type: "B"},
			{Key: "B", GUID: guidB, Type: "A"},
		},
	})
	a, _ := model.Interface("A")

	_, err := model.OffsetOf(a)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Equal(t, "cyclic inheritance: A -> B -> A", errorMsg(t, err))
	assert.Empty(t, model.offsets)
}

func TestOffsetOfUnsetAncestry(t *testing.T) {
	model := Assemble(t.Context(), NewRegistry(), "")
	orphan := &types.InterfaceModel{Key: "IOrphan"}

	_, err := model.OffsetOf(orphan)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.True(t, strings.HasPrefix(errorMsg(t, err), "inheritance chain does not terminate at base type: interface 'IOrphan'"))

	_, err = model.OffsetOf(nil)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestVtableLayout(t *testing.T) {
	model := assembleTestDocument(t, chainDocument())
	b, _ := model.Interface("B")

	layout, err := model.VtableLayout(b)
	require.NoError(t, err)
	want := []VtableSlot{
		{Slot: 0, Interface: "SlimDX.ComObject", Method: "QueryInterface"},
		{Slot: 1, Interface: "SlimDX.ComObject", Method: "AddRef"},
		{Slot: 2, Interface: "SlimDX.ComObject", Method: "Release"},
		{Slot: 3, Interface: "A", Method: "GetDesc"},
		{Slot: 4, Interface: "A", Method: "SetName"},
		{Slot: 5, Interface: "B", Method: "Present"},
	}
	if diff := cmp.Diff(want, layout); diff != "" {
		t.Fatalf("unexpected layout (-want +got):\n%s", diff)
	}
}

func TestResolveOffsets(t *testing.T) {
	model := assembleTestDocument(t, chainDocument())

	offsets, err := model.ResolveOffsets()
	require.NoError(t, err)
	if diff := cmp.Diff(map[string]int{"A": 3, "B": 5, "C": 6}, offsets); diff != "" {
		t.Fatalf("unexpected offsets (-want +got):\n%s", diff)
	}
}

func TestVtableLayoutOrdersByIndex(t *testing.T) {
	model := assembleTestDocument(t, types.SchemaFile{
		References: baseReferences(),
		Interfaces: []types.InterfaceEntry{
			{Key: "A", GUID: guidA, Type: "IUnknown", Methods: []types.MethodEntry{
				{Key: "Second", Type: "HRESULT", Index: 1},
				{Key: "First", Type: "HRESULT", Index: 0},
			}},
		},
	})
	a, _ := model.Interface("A")

	layout, err := model.VtableLayout(a)
	require.NoError(t, err)
	require.Len(t, layout, 5)
	assert.Equal(t, VtableSlot{Slot: 3, Interface: "A", Method: "First"}, layout[3])
	assert.Equal(t, VtableSlot{Slot: 4, Interface: "A", Method: "Second"}, layout[4])
}
