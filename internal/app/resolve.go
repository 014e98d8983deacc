package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"slimdx-generator/internal/core"
	"slimdx-generator/internal/types"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	model, err := s.resolveModel(ctx, req.SchemaOptions)
	if err != nil {
		return ResolveResult{}, err
	}

	result := ResolveResult{
		Model:     model,
		Overrides: model.Overrides(),
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return result, nil
	}
	if s.ModelWriter == nil {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("model output requested but no model writer is configured")
	}
	doc, err := buildModelDocument(model, req.SchemaPath)
	if err != nil {
		return ResolveResult{}, err
	}
	if err := s.ModelWriter.WriteModel(outputPath, doc); err != nil {
		return ResolveResult{}, err
	}
	result.OutputPath = outputPath
	log.Ctx(ctx).Debug().Str("output", outputPath).Msg("model document written")
	return result, nil
}

// resolveModel runs one full resolution pass: catalogs, root document,
// dependency merge and assembly.  Nothing is returned on failure.
func (s Service) resolveModel(ctx context.Context, opts SchemaOptions) (*core.ApiModel, error) {
	schemaPath := strings.TrimSpace(opts.SchemaPath)
	if schemaPath == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema path is required")
	}
	if s.SchemaSource == nil || s.ExternalTypes == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("service requires schema source and external type ports")
	}

	externalTypes := s.ExternalTypes()
	for _, catalog := range opts.Catalogs {
		if strings.TrimSpace(catalog) == "" {
			continue
		}
		if err := externalTypes.LoadCatalog(catalog); err != nil {
			return nil, err
		}
	}

	source := s.SchemaSource(opts.StrictFlags)
	root, err := source.Load(schemaPath)
	if err != nil {
		return nil, err
	}

	parseOpts := core.ParseOptions{
		BaseTypeKey: opts.BaseType,
		StrictFlags: opts.StrictFlags,
	}
	parser := core.NewEntityParser(core.NewReferenceResolver(externalTypes), parseOpts)
	merger := core.NewDependencyMerger(source, parser)
	if opts.ReadConcurrency > 0 {
		merger.ReadConcurrency = opts.ReadConcurrency
	}

	registry, err := merger.Merge(ctx, root, schemaPath, searchPathsFor(schemaPath, opts.SearchPaths))
	if err != nil {
		return nil, err
	}
	return core.Assemble(ctx, registry, opts.BaseType), nil
}

// searchPathsFor defaults to the root schema's own directory.
func searchPathsFor(schemaPath string, searchPaths []string) []string {
	var cleaned []string
	for _, path := range searchPaths {
		if strings.TrimSpace(path) != "" {
			cleaned = append(cleaned, path)
		}
	}
	if len(cleaned) == 0 {
		return []string{filepath.Dir(schemaPath)}
	}
	return cleaned
}

func buildModelDocument(model *core.ApiModel, schemaPath string) (types.ModelDocument, error) {
	doc := types.ModelDocument{
		Schema:   schemaPath,
		BaseType: model.BaseTypeKey(),
	}
	for _, enumeration := range model.Enumerations() {
		entry := types.EnumerationDoc{Key: enumeration.Key}
		for _, value := range enumeration.Values {
			entry.Values = append(entry.Values, types.EnumerationValueDoc{Key: value.Key, Value: value.Value})
		}
		doc.Enumerations = append(doc.Enumerations, entry)
	}
	for _, structure := range model.Structures() {
		entry := types.StructureDoc{Key: structure.Key}
		for _, member := range structure.Members {
			entry.Members = append(entry.Members, types.MemberDoc{Key: member.Key, Type: member.Type.TypeKey()})
		}
		doc.Structures = append(doc.Structures, entry)
	}
	for _, iface := range model.Interfaces() {
		offset, err := model.OffsetOf(iface)
		if err != nil {
			return types.ModelDocument{}, err
		}
		entry := types.InterfaceDoc{
			Key:          iface.Key,
			GUID:         iface.GUID.String(),
			Parent:       parentKey(iface),
			MethodOffset: offset,
		}
		for _, method := range iface.Methods {
			methodDoc := types.MethodDoc{
				Key:        method.Key,
				ReturnType: method.ReturnType.TypeKey(),
				Index:      method.Index,
				Slot:       offset + method.Index,
			}
			for _, param := range method.Parameters {
				methodDoc.Parameters = append(methodDoc.Parameters, types.ParameterDoc{
					Key:    param.Key,
					Type:   param.Type.TypeKey(),
					Output: param.IsOutput(),
				})
			}
			entry.Methods = append(entry.Methods, methodDoc)
		}
		doc.Interfaces = append(doc.Interfaces, entry)
	}
	for _, override := range model.Overrides() {
		doc.Overrides = append(doc.Overrides, types.OverrideDoc{
			Key:      override.Key,
			Previous: override.Previous,
			Current:  override.Current,
		})
	}
	return doc, nil
}

func parentKey(iface *types.InterfaceModel) string {
	parent := iface.Ancestry.Type()
	if parent == nil {
		return ""
	}
	return parent.TypeKey()
}
