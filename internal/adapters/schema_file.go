package adapters

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"

	"slimdx-generator/internal/ports"
	"slimdx-generator/internal/types"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SchemaFileAdapter reads schema documents from the local file system.
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.
type SchemaFileAdapter struct {
	// Strict rejects JSON members that are not part of the schema shape.
	Strict bool
}

func NewSchemaFileAdapter(strict bool) SchemaFileAdapter {
	return SchemaFileAdapter{Strict: strict}
}

// Locate returns the first searchPaths entry that contains relative.
// Absolute paths are checked as-is.
func (a SchemaFileAdapter) Locate(relative string, searchPaths []string) (string, bool, error) {
	relative = strings.TrimSpace(relative)
	if relative == "" {
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("dependency path is empty")
	}
	candidates := searchPaths
	if filepath.IsAbs(relative) {
		candidates = []string{""}
	}
	for _, dir := range candidates {
		candidate := filepath.Join(dir, relative)
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", false, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to stat schema file: " + candidate).
				WithCause(err)
		}
		if info.IsDir() {
			continue
		}
		return candidate, true, nil
	}
	return "", false, nil
}

func (a SchemaFileAdapter) Load(path string) (types.SchemaFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.SchemaFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read schema file: " + path).
			WithCause(err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	var schema types.SchemaFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = a.decodeYAML(data, &schema)
	default:
		err = json.Unmarshal(data, &schema, json.RejectUnknownMembers(a.Strict))
	}
	if err != nil {
		return types.SchemaFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse schema file: " + path).
			WithCause(err)
	}
	return schema, nil
}

func (a SchemaFileAdapter) decodeYAML(data []byte, schema *types.SchemaFile) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(a.Strict)
	err := decoder.Decode(schema)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

var _ ports.SchemaSourcePort = SchemaFileAdapter{}
