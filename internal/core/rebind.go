package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"slimdx-generator/internal/types"
)

// Rebind points every member type, return type, parameter type and parent
// link in registry at the model currently registered under the same key.
// Layers are linked while they are parsed, so a definition replaced by a
// later layer would otherwise stay reachable from the layers below it.
func (p EntityParser) Rebind(ctx context.Context, registry *Registry) error {
	rebound := 0
	bind := func(current types.TypeModel, where string) (types.TypeModel, error) {
		if current == nil {
			return nil, nil
		}
		winner, ok := registry.Lookup(current.TypeKey())
		if !ok {
			return nil, errUnresolvedReference(current.TypeKey(), where)
		}
		if winner != current {
			rebound++
		}
		return winner, nil
	}

	for _, key := range registry.Keys() {
		model, _ := registry.Lookup(key)
		switch typed := model.(type) {
		case *types.StructureModel:
			for i := range typed.Members {
				member := &typed.Members[i]
				winner, err := bind(member.Type, fmt.Sprintf("member '%s' of structure '%s'", member.Key, typed.Key))
				if err != nil {
					return err
				}
				member.Type = winner
			}
		case *types.InterfaceModel:
			ancestry, err := p.rebindAncestry(typed, registry, bind)
			if err != nil {
				return err
			}
			typed.Ancestry = ancestry
			for i := range typed.Methods {
				method := &typed.Methods[i]
				where := fmt.Sprintf("method '%s' of interface '%s'", method.Key, typed.Key)
				if method.ReturnType, err = bind(method.ReturnType, "return type of "+where); err != nil {
					return err
				}
				for j := range method.Parameters {
					param := &method.Parameters[j]
					if param.Type, err = bind(param.Type, fmt.Sprintf("parameter '%s' of %s", param.Key, where)); err != nil {
						return err
					}
				}
			}
		}
	}

	log.Ctx(ctx).Debug().Int("links", rebound).Msg("registry links rebound")
	return nil
}

func (p EntityParser) rebindAncestry(iface *types.InterfaceModel, registry *Registry, bind func(types.TypeModel, string) (types.TypeModel, error)) (types.Ancestry, error) {
	switch iface.Ancestry.Kind() {
	case types.AncestryKindRoot:
		base, _ := iface.Ancestry.Base()
		winner, err := bind(base, fmt.Sprintf("base type of interface '%s'", iface.Key))
		if err != nil {
			return types.Ancestry{}, err
		}
		return types.RootAncestry(winner), nil
	case types.AncestryKindDerived:
		parent, _ := iface.Ancestry.Parent()
		winner, err := bind(parent, fmt.Sprintf("parent of interface '%s'", iface.Key))
		if err != nil {
			return types.Ancestry{}, err
		}
		return p.ancestryFor(iface.Key, winner, registry)
	default:
		return iface.Ancestry, nil
	}
}
