package app

import "context"

// Inspect resolves the schema and summarizes each interface's position in
// the dispatch table.  Interfaces keep model order.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	model, err := s.resolveModel(ctx, req.SchemaOptions)
	if err != nil {
		return InspectResult{}, err
	}

	interfaces := model.Interfaces()
	summaries := make([]InspectInterfaceSummary, 0, len(interfaces))
	for _, iface := range interfaces {
		offset, err := model.OffsetOf(iface)
		if err != nil {
			return InspectResult{}, err
		}
		summaries = append(summaries, InspectInterfaceSummary{
			Key:          iface.Key,
			Parent:       parentKey(iface),
			MethodOffset: offset,
			MethodCount:  len(iface.Methods),
		})
	}
	return InspectResult{
		Enumerations: len(model.Enumerations()),
		Structures:   len(model.Structures()),
		Interfaces:   summaries,
		Overrides:    model.Overrides(),
	}, nil
}
