package core

import (
	"context"
	"slices"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"slimdx-generator/internal/types"
)

type registryEntry struct {
	model  types.TypeModel
	origin string
}

// overrideRecord is shared by pointer between registries merged from one
// another, so an event reached through two dependency paths counts once.
type overrideRecord struct {
	types.Override
	replaced types.TypeModel
}

// Registry maps schema keys to resolved models.  It is an ordered
// insert-or-replace table: a key keeps the position of its first insert,
// and replacing a key records an Override (last write wins).
//
// A registry belongs to a single resolution pass.  Assemble seals it, after
// which Put fails.
type Registry struct {
	entries   map[string]registryEntry
	order     []string
	overrides []*overrideRecord
	sealed    bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registryEntry)}
}

// Put inserts model under its key, replacing any earlier definition.
// origin names the schema file that defined the model.  Putting the model
// already registered under the key is a no-op.
func (r *Registry) Put(ctx context.Context, model types.TypeModel, origin string) error {
	return r.put(ctx, model, origin, nil)
}

func (r *Registry) put(ctx context.Context, model types.TypeModel, origin string, reported func(types.TypeModel) bool) error {
	if r.sealed {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("registry is sealed: cannot define '" + model.TypeKey() + "'")
	}
	key := model.TypeKey()
	previous, exists := r.entries[key]
	switch {
	case !exists:
		r.order = append(r.order, key)
	case previous.model == model:
		return nil
	case reported != nil && reported(previous.model):
	default:
		r.overrides = append(r.overrides, &overrideRecord{
			Override: types.Override{Key: key, Previous: previous.origin, Current: origin},
			replaced: previous.model,
		})
		log.Ctx(ctx).Warn().
			Str("key", key).
			Str("previous", previous.origin).
			Str("current", origin).
			Msg("schema key overridden by later definition")
	}
	r.entries[key] = registryEntry{model: model, origin: origin}
	return nil
}

// MergeFrom replays every entry of other in its insertion order, so keys
// already present here are replaced by other's definitions.  Overrides
// recorded in other are carried over ahead of the ones this merge causes;
// a record reached twice, as with a shared dependency, is kept once, and a
// replacement other already reported is not reported again.
func (r *Registry) MergeFrom(ctx context.Context, other *Registry) error {
	for _, record := range other.overrides {
		if !slices.Contains(r.overrides, record) {
			r.overrides = append(r.overrides, record)
		}
	}
	reported := func(model types.TypeModel) bool {
		return slices.ContainsFunc(other.overrides, func(record *overrideRecord) bool {
			return record.replaced == model
		})
	}
	for _, key := range other.order {
		entry := other.entries[key]
		if err := r.put(ctx, entry.model, entry.origin, reported); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the model registered under key.
func (r *Registry) Lookup(key string) (types.TypeModel, bool) {
	entry, ok := r.entries[key]
	if !ok {
		return nil, false
	}
	return entry.model, true
}

// Origin returns the schema file that supplied the current definition of key.
func (r *Registry) Origin(key string) (string, bool) {
	entry, ok := r.entries[key]
	return entry.origin, ok
}

// Keys returns every key in insertion order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	return len(r.order)
}

// Overrides returns every replacement recorded so far, oldest first.
func (r *Registry) Overrides() []types.Override {
	overrides := make([]types.Override, 0, len(r.overrides))
	for _, record := range r.overrides {
		overrides = append(overrides, record.Override)
	}
	return overrides
}

func (r *Registry) seal() {
	r.sealed = true
}
