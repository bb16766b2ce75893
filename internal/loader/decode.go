package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// Format is a definition file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatCUE
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatCUE:
		return "cue"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format for path from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return 0, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported definition file extension %q", filepath.Ext(path)),
			File:    path,
		}
	}
}

// Decode parses data as a member mapping. filename is used for error
// positions only.
func Decode(data []byte, format Format, filename string) (map[string]any, error) {
	var (
		members map[string]any
		err     error
	)
	switch format {
	case FormatJSON:
		members, err = decodeJSON(data)
	case FormatYAML:
		members, err = decodeYAML(data)
	case FormatCUE:
		return decodeCUE(data, filename)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported format %s", format), File: filename}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDecode, Message: err.Error(), File: filename}
	}
	return members, nil
}

func decodeJSON(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decoding JSON: trailing data after top-level value")
	}
	return asMembers(raw)
}

func decodeYAML(data []byte) (map[string]any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}
	if raw == nil {
		// Empty document.
		return map[string]any{}, nil
	}
	return asMembers(raw)
}

func decodeCUE(data []byte, filename string) (map[string]any, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueLoadError(err, filename, "compiling CUE")
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(err, filename, "definitions must be concrete")
	}
	if v.Kind() != cue.StructKind {
		return nil, &LoadError{
			Code:    ErrCodeDecode,
			Message: fmt.Sprintf("top level must be a struct, got %s", v.Kind()),
			File:    filename,
			Pos:     v.Pos(),
		}
	}

	var members map[string]any
	if err := v.Decode(&members); err != nil {
		return nil, cueLoadError(err, filename, "decoding CUE")
	}
	if members == nil {
		members = map[string]any{}
	}
	return members, nil
}

// cueLoadError converts a CUE error to a LoadError positioned at its
// first reported location.
func cueLoadError(err error, filename, context string) *LoadError {
	le := &LoadError{
		Code:    ErrCodeDecode,
		Message: fmt.Sprintf("%s: %v", context, err),
		File:    filename,
	}
	for _, e := range cueerrors.Errors(err) {
		if pos := e.Position(); pos.IsValid() {
			le.Pos = pos
			break
		}
	}
	return le
}

// asMembers requires a top-level mapping with string keys. YAML may
// produce map[any]any for mappings with non-string keys.
func asMembers(raw any) (map[string]any, error) {
	switch m := raw.(type) {
	case map[string]any:
		return m, nil
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("member name %v is not a string", k)
			}
			out[ks] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("top level must be a mapping of member names, got %T", raw)
	}
}
