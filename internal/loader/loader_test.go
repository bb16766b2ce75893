package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shapespace/internal/space"
)

func loadErrorCodes(errs []error) []string {
	codes := make([]string, 0, len(errs))
	for _, err := range errs {
		var le *LoadError
		if errors.As(err, &le) {
			codes = append(codes, le.Code)
		}
	}
	return codes
}

func TestLoadFile_FormatsAgree(t *testing.T) {
	fromJSON, err := LoadFile(filepath.Join("testdata", "formats", "space.json"))
	require.NoError(t, err)
	fromYAML, err := LoadFile(filepath.Join("testdata", "formats", "space.yaml"))
	require.NoError(t, err)
	fromCUE, err := LoadFile(filepath.Join("testdata", "formats", "space.cue"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, fromJSON, fromCUE)
	assert.Equal(t, []any{"string", "number|null"}, fromCUE["pair"])
}

func TestBuildFile_EachFormat(t *testing.T) {
	for _, name := range []string{"space.json", "space.yaml", "space.cue"} {
		t.Run(name, func(t *testing.T) {
			s, err := BuildFile(filepath.Join("testdata", "formats", name))
			require.NoError(t, err)

			assert.Equal(t, []string{"category", "group", "pair", "user"}, s.Names())
			assert.NoError(t, s.Check([]any{"a", nil}, "pair"))
			assert.NoError(t, s.Check(map[string]any{
				"name":    "ann",
				"friends": []any{},
				"groups":  []any{map[string]any{"members": []any{}}},
			}, "user"))
			assert.Error(t, s.Check(map[string]any{"name": "ann"}, "user"))
		})
	}
}

func TestLoadDir_Merges(t *testing.T) {
	dir := filepath.Join("testdata", "dir")
	res, errs := LoadDir(dir, LoadModeCollectAll)
	require.Empty(t, errs)

	assert.Equal(t, []string{
		filepath.Join(dir, "nested", "categories.json"),
		filepath.Join(dir, "nested", "groups.cue"),
		filepath.Join(dir, "users.yaml"),
	}, res.Files)
	assert.Len(t, res.Members, 3)
	assert.Equal(t, filepath.Join(dir, "users.yaml"), res.Sources["user"])
	assert.Equal(t, filepath.Join(dir, "nested", "groups.cue"), res.Sources["group"])

	s, err := BuildDir(dir)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"category"}, {"group", "user"}}, s.Recursive())
}

func TestLoadDir_Duplicate(t *testing.T) {
	dir := filepath.Join("testdata", "dup")

	res, errs := LoadDir(dir, LoadModeCollectAll)
	require.Len(t, errs, 1)
	assert.Equal(t, []string{ErrCodeDuplicate}, loadErrorCodes(errs))
	assert.Contains(t, errs[0].Error(), `member "user" already defined in `+filepath.Join(dir, "a.json"))

	// The first definition wins; other members of the later file still load.
	assert.Equal(t, map[string]any{"name": "string"}, res.Members["user"])
	assert.Contains(t, res.Members, "team")

	_, err := BuildDir(dir)
	require.Error(t, err)
	assert.False(t, space.IsBuildError(err))
	var le *LoadError
	assert.ErrorAs(t, err, &le)
}

func TestLoadDir_Modes(t *testing.T) {
	dir := filepath.Join("testdata", "bad")

	_, errs := LoadDir(dir, LoadModeCollectAll)
	assert.Equal(t, []string{ErrCodeDecode, ErrCodeDecode, ErrCodeDecode, ErrCodeDecode}, loadErrorCodes(errs))

	_, errs = LoadDir(dir, LoadModeFailFast)
	assert.Len(t, errs, 1)
}

func TestLoadDir_Errors(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		code string
	}{
		{"missing", filepath.Join("testdata", "nope"), ErrCodeNotFound},
		{"file", filepath.Join("testdata", "dup", "a.json"), ErrCodeNotFound},
		{"no definition files", filepath.Join("testdata", "empty"), ErrCodeNoFiles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, errs := LoadDir(tt.dir, LoadModeCollectAll)
			assert.Nil(t, res)
			assert.Equal(t, []string{tt.code}, loadErrorCodes(errs))
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code string
	}{
		{"unsupported extension", filepath.Join("testdata", "empty", "notes.txt"), ErrCodeUnsupported},
		{"missing", filepath.Join("testdata", "nope.json"), ErrCodeNotFound},
		{"top-level list", filepath.Join("testdata", "bad", "list.json"), ErrCodeDecode},
		{"yaml syntax", filepath.Join("testdata", "bad", "invalid.yaml"), ErrCodeDecode},
		{"cue syntax", filepath.Join("testdata", "bad", "broken.cue"), ErrCodeDecode},
		{"cue not concrete", filepath.Join("testdata", "bad", "abstract.cue"), ErrCodeDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			var le *LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, tt.code, le.Code)
		})
	}
}

func TestLoadError_CUEPosition(t *testing.T) {
	path := filepath.Join("testdata", "bad", "broken.cue")
	_, err := LoadFile(path)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, le.Pos.IsValid())
	assert.Contains(t, err.Error(), "broken.cue:")
	assert.Contains(t, err.Error(), ErrCodeDecode)
}

func TestLoadError_Format(t *testing.T) {
	assert.Equal(t, "E003: nothing", (&LoadError{Code: ErrCodeNoFiles, Message: "nothing"}).Error())
	assert.Equal(t, "a.json: E004: bad", (&LoadError{Code: ErrCodeDecode, Message: "bad", File: "a.json"}).Error())
}

func TestDecode(t *testing.T) {
	members, err := Decode([]byte(`{"id": "number"}`), FormatJSON, "inline.json")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "number"}, members)

	_, err = Decode([]byte(`{"id": "number"} {}`), FormatJSON, "inline.json")
	assert.ErrorContains(t, err, "trailing data")

	members, err = Decode([]byte(""), FormatYAML, "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, members)

	members, err = Decode([]byte(`id: "number"`), FormatCUE, "inline.cue")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": "number"}, members)

	_, err = Decode([]byte(`"string"`), FormatCUE, "scalar.cue")
	assert.ErrorContains(t, err, "top level must be a struct")

	_, err = Decode([]byte(`{}`), Format(9), "x")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, ErrCodeUnsupported, le.Code)
}

func TestBuildFile_InvalidDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": "strng", "b": {"n": 7}}`), 0o644))

	_, err := BuildFile(path)
	require.Error(t, err)
	assert.True(t, space.IsBuildError(err))
	assert.Contains(t, err.Error(), "a: strng is not a valid expression.")
	assert.Contains(t, err.Error(), "b.n: Definitions must be strings or objects whose leaves are strings.")
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "cue", FormatCUE.String())
	assert.Equal(t, "Format(7)", Format(7).String())
}
