package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"rowconv/internal/scan"
)

// Config holds configuration for registration file generation.
type Config struct {
	// Filename is the name of the generated file in each package.
	Filename string
	// RegistryImport is the import path of the registry package.
	RegistryImport string
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{
		Filename:       "immutables.gen.go",
		RegistryImport: "rowconv/registry",
	}
}

// File is a rendered registration file.
type File struct {
	// Dir is the directory of the package the file belongs in.
	Dir string
	// Filename is the file name within Dir.
	Filename string
	// Content is the formatted Go source.
	Content []byte
}

var registrationTemplate = template.Must(template.New("registration").Parse(
	`// Code generated by rowconv-gen. DO NOT EDIT.

package {{.Package}}

import "{{.RegistryImport}}"

func init() {
{{- range .Pairs}}
	must(registry.Default().Register((*{{.Interface}})(nil), {{.Implementation}}{}))
{{- end}}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
`))

type templateData struct {
	Package        string
	RegistryImport string
	Pairs          []templatePair
}

type templatePair struct {
	Interface      string
	Implementation string
}

// Generate renders one registration file per pair-producing package.
// Output order is deterministic: packages by import path, pairs by
// interface name.
func Generate(result *scan.Result, cfg Config) ([]File, error) {
	paths := make([]string, 0, len(result.Packages))
	for path := range result.Packages {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	var files []File

	for _, path := range paths {
		pkg := result.Packages[path]

		file, err := generatePackage(pkg, result.PairsIn(path), cfg)
		if err != nil {
			return nil, fmt.Errorf("generating for %s: %w", path, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func generatePackage(pkg scan.Package, pairs []scan.Pair, cfg Config) (*File, error) {
	data := templateData{
		Package:        pkg.Name,
		RegistryImport: cfg.RegistryImport,
	}

	for _, p := range pairs {
		data.Pairs = append(data.Pairs, templatePair{
			Interface:      p.Interface.Name,
			Implementation: p.Implementation.Name,
		})
	}

	var buf bytes.Buffer
	if err := registrationTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return &File{
		Dir:      pkg.Dir,
		Filename: cfg.Filename,
		Content:  formatted,
	}, nil
}
