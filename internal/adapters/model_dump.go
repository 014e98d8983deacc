package adapters

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"slimdx-generator/internal/ports"
	"slimdx-generator/internal/types"
)

// ModelDumpAdapter writes resolved model documents as YAML.  Collections
// are written in model order, which is schema declaration order.
type ModelDumpAdapter struct{}

func NewModelDumpAdapter() ModelDumpAdapter {
	return ModelDumpAdapter{}
}

func (a ModelDumpAdapter) WriteModel(path string, doc types.ModelDocument) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("model output path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode model document").
			WithCause(err)
	}
	if err := encoder.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode model document").
			WithCause(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write model document: " + path).
			WithCause(err)
	}
	return nil
}

// ReadModel decodes a document written by WriteModel.
func (a ModelDumpAdapter) ReadModel(path string) (types.ModelDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ModelDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("model document not found: " + path).
			WithCause(err)
	}
	var doc types.ModelDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return types.ModelDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse model document: " + path).
			WithCause(err)
	}
	return doc, nil
}

var _ ports.ModelWriterPort = ModelDumpAdapter{}
