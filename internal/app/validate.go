package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Validate resolves the schema and computes every vtable offset, so broken
// inheritance chains surface before any code is generated.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	model, err := s.resolveModel(ctx, req.SchemaOptions)
	if err != nil {
		return ValidateResult{}, err
	}
	if _, err := model.ResolveOffsets(); err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{
		Enumerations: len(model.Enumerations()),
		Structures:   len(model.Structures()),
		Interfaces:   len(model.Interfaces()),
		Overrides:    len(model.Overrides()),
	}
	log.Ctx(ctx).Debug().Str("schema", req.SchemaPath).Msg("schema validated")
	return result, nil
}
