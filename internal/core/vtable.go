package core

import (
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"slimdx-generator/internal/types"
)

// baseObjectSlots is the number of vtable slots the base COM object
// reserves ahead of any derived interface.
const baseObjectSlots = 3

var baseObjectMethods = [baseObjectSlots]string{"QueryInterface", "AddRef", "Release"}

// VtableSlot is one entry of an interface's dispatch table.
type VtableSlot struct {
	Slot      int
	Interface string
	Method    string
}

// OffsetOf returns the zero-based vtable slot of iface's first declared
// method.  An interface deriving from the base COM object starts at 3; any
// other starts where its parent's methods end.  Results are memoized for
// every interface on the walked chain.
func (m *ApiModel) OffsetOf(iface *types.InterfaceModel) (int, error) {
	if iface == nil {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("interface is required")
	}
	if offset, ok := m.offsets[iface]; ok {
		return offset, nil
	}

	// Walk up until a memoized or root interface is found.  chain holds the
	// interfaces still missing an offset, child first.
	var chain []*types.InterfaceModel
	visited := make(map[*types.InterfaceModel]struct{})
	current := iface
	for {
		if _, ok := m.offsets[current]; ok {
			break
		}
		if _, seen := visited[current]; seen {
			keys := make([]string, 0, len(chain)+1)
			for _, link := range chain {
				keys = append(keys, link.Key)
			}
			return 0, errCyclicInheritance(append(keys, current.Key))
		}
		visited[current] = struct{}{}

		if current.Ancestry.IsRoot() {
			m.offsets[current] = baseObjectSlots
			break
		}
		parent, ok := current.Ancestry.Parent()
		if !ok || parent == nil {
			return 0, errUnrootedInheritance(current.Key, "has no resolved parent")
		}
		chain = append(chain, current)
		current = parent
	}

	known := current
	for i := len(chain) - 1; i >= 0; i-- {
		child := chain[i]
		m.offsets[child] = m.offsets[known] + len(known.Methods)
		known = child
	}
	return m.offsets[iface], nil
}

// SlotOf returns the absolute vtable slot of method within iface.
func (m *ApiModel) SlotOf(iface *types.InterfaceModel, method types.MethodModel) (int, error) {
	offset, err := m.OffsetOf(iface)
	if err != nil {
		return 0, err
	}
	return offset + method.Index, nil
}

// VtableLayout lists every slot of iface's dispatch table in slot order,
// starting with the base COM object slots and ending with iface's own
// methods.
func (m *ApiModel) VtableLayout(iface *types.InterfaceModel) ([]VtableSlot, error) {
	if _, err := m.OffsetOf(iface); err != nil {
		return nil, err
	}

	var lineage []*types.InterfaceModel
	for current := iface; ; {
		lineage = append(lineage, current)
		parent, ok := current.Ancestry.Parent()
		if !ok {
			break
		}
		current = parent
	}

	slots := make([]VtableSlot, 0, baseObjectSlots)
	for i, name := range baseObjectMethods {
		slots = append(slots, VtableSlot{Slot: i, Interface: m.baseTypeKey, Method: name})
	}
	for i := len(lineage) - 1; i >= 0; i-- {
		owner := lineage[i]
		offset := m.offsets[owner]
		start := len(slots)
		for _, method := range owner.Methods {
			slots = append(slots, VtableSlot{
				Slot:      offset + method.Index,
				Interface: owner.Key,
				Method:    method.Key,
			})
		}
		// Declared order may differ from index order.
		slices.SortStableFunc(slots[start:], func(a, b VtableSlot) int { return a.Slot - b.Slot })
	}
	return slots, nil
}

// ResolveOffsets computes the offset of every interface in the model and
// returns them by key.
func (m *ApiModel) ResolveOffsets() (map[string]int, error) {
	offsets := make(map[string]int, len(m.interfaces))
	for _, iface := range m.interfaces {
		offset, err := m.OffsetOf(iface)
		if err != nil {
			return nil, err
		}
		offsets[iface.Key] = offset
	}
	return offsets, nil
}
