// Package modfile loads single-file modules from disk.
//
// Two formats are understood. A .go file is evaluated with the yaegi
// interpreter and must declare a top-level Export symbol; if Export is a
// function and the file also declares the configured dependency property
// (a slice of references), the module is marked as declaring its own
// dependencies. A .yaml/.yml file decodes into a plain value module.
// References without an extension probe each known extension in order.
package modfile

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"gopkg.in/yaml.v3"
)

// ExportName is the top-level symbol every .go module file must declare.
const ExportName = "Export"

var moduleExtensions = []string{".go", ".yaml", ".yml"}

// Module is one loaded module file.
type Module struct {
	// Path is the file the module was loaded from.
	Path string
	// Value is the module's exported value (for declaring modules, the
	// uninvoked function).
	Value any
	// Refs holds the module's dependency references when Declared is true.
	Refs []any
	// Declared reports that Value is a function carrying a dependency
	// declaration under the requested property.
	Declared bool
}

// Load reads the module file at path. property names the declaration
// symbol consulted in .go modules. Paths without a recognized extension
// try each known extension in order and report when none exists.
func Load(path, property string) (*Module, error) {
	switch filepath.Ext(path) {
	case ".go":
		return loadGoFile(path, property)
	case ".yaml", ".yml":
		return loadYAMLFile(path)
	}
	for _, ext := range moduleExtensions {
		candidate := path + ext
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return Load(candidate, property)
	}
	return nil, fmt.Errorf("modfile: no module file for %s (tried %s)", path, strings.Join(moduleExtensions, ", "))
}

func loadGoFile(path, property string) (*Module, error) {
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modfile: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(code))) == 0 {
		return nil, fmt.Errorf("modfile: %s is empty", path)
	}
	i := interp.New(interp.Options{})
	i.Use(stdlib.Symbols)
	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("modfile: interpret %s: %w", path, err)
	}
	exported, err := i.Eval(ExportName)
	if err != nil {
		return nil, fmt.Errorf("modfile: %s must declare a top-level %s symbol: %w", path, ExportName, err)
	}
	mod := &Module{Path: path, Value: exported.Interface()}
	if exported.Kind() != reflect.Func {
		return mod, nil
	}
	decl, err := i.Eval(property)
	if err != nil {
		// No declaration symbol: a plain function module.
		return mod, nil
	}
	refs, err := refSlice(decl)
	if err != nil {
		return nil, fmt.Errorf("modfile: %s: %s: %w", path, property, err)
	}
	mod.Refs = refs
	mod.Declared = true
	return mod, nil
}

func refSlice(value reflect.Value) ([]any, error) {
	if !value.IsValid() {
		return nil, fmt.Errorf("declaration is not a value")
	}
	if refs, ok := value.Interface().([]any); ok {
		return refs, nil
	}
	if value.Kind() != reflect.Slice {
		return nil, fmt.Errorf("declaration must be a slice, got %s", value.Type())
	}
	refs := make([]any, value.Len())
	for i := 0; i < value.Len(); i++ {
		refs[i] = value.Index(i).Interface()
	}
	return refs, nil
}

func loadYAMLFile(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modfile: read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("modfile: %s is empty", path)
	}
	var value any
	if err := yaml.Unmarshal(data, &value); err != nil {
		return nil, fmt.Errorf("modfile: parse %s: %w", path, err)
	}
	return &Module{Path: path, Value: value}, nil
}

// Discover lists the module references loadable from dirs, in ./name
// form, deduplicated and sorted. Missing directories are skipped.
func Discover(dirs []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, dir := range dirs {
		trimmed := strings.TrimSpace(dir)
		if trimmed == "" {
			continue
		}
		entries, err := os.ReadDir(trimmed)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("modfile: read %s: %w", trimmed, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := filepath.Ext(entry.Name())
			if !knownExtension(ext) {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ext)
			seen["./"+name] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, nil
	}
	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs, nil
}

func knownExtension(ext string) bool {
	for _, known := range moduleExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
