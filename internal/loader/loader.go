package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/roach88/shapespace/internal/space"
)

// LoadMode controls how errors are handled during directory loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Result contains the members loaded from a directory.
type Result struct {
	Members map[string]any
	Sources map[string]string // member name -> file it came from
	Files   []string
}

// LoadFile reads one definition file.
func LoadFile(path string) (map[string]any, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "definition file not found", File: path}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading file: %v", err), File: path}
	}
	return Decode(data, format, path)
}

// LoadDir loads every definition file under dir, in lexical path order,
// and merges their members.
// If mode is LoadModeFailFast, returns on first error.
// If mode is LoadModeCollectAll, collects all errors.
func LoadDir(dir string, mode LoadMode) (*Result, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("definitions directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing definitions directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	files, err := FindDefinitionFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(files) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no definition files found in %s", dir)}}
	}

	result := &Result{
		Members: make(map[string]any),
		Sources: make(map[string]string),
		Files:   files,
	}
	var errs []error
	for _, file := range files {
		members, err := LoadFile(file)
		if err != nil {
			errs = append(errs, err)
			if mode == LoadModeFailFast {
				return result, errs
			}
			continue
		}

		names := make([]string, 0, len(members))
		for name := range members {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if prev, dup := result.Sources[name]; dup {
				errs = append(errs, &LoadError{
					Code:    ErrCodeDuplicate,
					Message: fmt.Sprintf("member %q already defined in %s", name, prev),
					File:    file,
				})
				if mode == LoadModeFailFast {
					return result, errs
				}
				continue
			}
			result.Members[name] = members[name]
			result.Sources[name] = file
		}
	}
	return result, errs
}

// FindDefinitionFiles walks dir and returns every file with a supported
// extension, in lexical order.
func FindDefinitionFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ferr := FormatOf(path); ferr == nil {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// BuildFile loads path and builds a Space from it.
func BuildFile(path string, opts ...space.Option) (*space.Space, error) {
	members, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return space.Build(members, opts...)
}

// BuildDir loads every definition file under dir and builds one Space
// from the merged members. Load errors are joined; no Space is built
// unless every file loads cleanly.
func BuildDir(dir string, opts ...space.Option) (*space.Space, error) {
	res, errs := LoadDir(dir, LoadModeCollectAll)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return space.Build(res.Members, opts...)
}
