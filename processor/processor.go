/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package processor

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/suparena/recordstore/registry"
)

var (
	inputPath  = flag.String("input", "shapes.yaml", "Path to the shape declaration file")
	outputPath = flag.String("output", "", "Output file for generated code (defaults to stdout)")
	pkgName    = flag.String("package", "shapes", "Package name for the generated file")
)

// declarationFile mirrors the YAML layout accepted by registry.LoadShapes.
type declarationFile struct {
	Shapes map[string]registry.Shape `yaml:"shapes"`
}

// kindIdents maps wire kinds to the registry identifiers emitted in
// generated code.
var kindIdents = map[registry.Kind]string{
	registry.KindAny:       "registry.KindAny",
	registry.KindString:    "registry.KindString",
	registry.KindNumber:    "registry.KindNumber",
	registry.KindBinary:    "registry.KindBinary",
	registry.KindBool:      "registry.KindBool",
	registry.KindNull:      "registry.KindNull",
	registry.KindList:      "registry.KindList",
	registry.KindMap:       "registry.KindMap",
	registry.KindStringSet: "registry.KindStringSet",
	registry.KindNumberSet: "registry.KindNumberSet",
	registry.KindBinarySet: "registry.KindBinarySet",
}

type fieldView struct {
	Name     string
	Kind     string
	Required bool
}

type shapeView struct {
	Name   string
	Fields []fieldView
}

type fileView struct {
	Source  string
	Package string
	Shapes  []shapeView
}

var codeTemplate = template.Must(template.New("shapes").Parse(`// Code generated by shapegen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "github.com/suparena/recordstore/registry"

func init() {
{{- range .Shapes}}
	registry.MustRegisterNamedShape({{printf "%q" .Name}}, registry.Shape{
{{- range .Fields}}
		{{printf "%q" .Name}}: {Kind: {{.Kind}}, Required: {{.Required}}},
{{- end}}
	})
{{- end}}
}
`))

// Generate turns a YAML shape declaration document into Go source that
// registers every declared shape at init time. Shapes and fields are
// emitted in sorted order so regeneration is deterministic.
func Generate(data []byte, pkg, source string) ([]byte, error) {
	var file declarationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse declarations: %w", err)
	}
	if len(file.Shapes) == 0 {
		return nil, fmt.Errorf("no shapes declared in %s", source)
	}

	view := fileView{Source: source, Package: pkg}

	shapeNames := make([]string, 0, len(file.Shapes))
	for name := range file.Shapes {
		shapeNames = append(shapeNames, name)
	}
	sort.Strings(shapeNames)

	for _, shapeName := range shapeNames {
		shape := file.Shapes[shapeName]
		sv := shapeView{Name: shapeName}

		fieldNames := make([]string, 0, len(shape))
		for name := range shape {
			fieldNames = append(fieldNames, name)
		}
		sort.Strings(fieldNames)

		for _, fieldName := range fieldNames {
			spec := shape[fieldName]
			ident, ok := kindIdents[spec.Kind]
			if !ok {
				return nil, fmt.Errorf("shape %s: field %s: unknown kind %q", shapeName, fieldName, spec.Kind)
			}
			sv.Fields = append(sv.Fields, fieldView{
				Name:     fieldName,
				Kind:     ident,
				Required: spec.Required,
			})
		}
		view.Shapes = append(view.Shapes, sv)
	}

	var buf bytes.Buffer
	if err := codeTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	code, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return code, nil
}

// Run reads a declaration file and writes the generated registration code
// to the output path, or to stdout when the output path is empty.
func Run(input, output, pkg string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	code, err := Generate(data, pkg, filepath.Base(input))
	if err != nil {
		return err
	}

	if output == "" {
		_, err = os.Stdout.Write(code)
		return err
	}
	return os.WriteFile(output, code, 0o644)
}

// Main runs the generator with the package-level flags. The shapegen
// command calls this after handling its own flags.
func Main() {
	if !flag.Parsed() {
		flag.Parse()
	}

	if err := Run(*inputPath, *outputPath, *pkgName); err != nil {
		fmt.Fprintf(os.Stderr, "shapegen: %v\n", err)
		os.Exit(1)
	}
}
