// barygen emits raster.Barycentric implementations for a user-defined
// varying struct, the idiomatic-Go stand-in for a proc-macro derive: given a
// struct name and the source file that defines it, it writes
// Interpolated/LineInterpolated methods that recursively delegate to each
// field's own implementation of those methods.
//
// Usage:
//
//	barygen -type Varying -file shader.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var (
	typeName = flag.String("type", "", "name of the struct to generate Barycentric methods for")
	srcFile  = flag.String("file", "", "Go source file defining the struct")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "barygen - emit raster.Barycentric methods for a struct\n\n")
		fmt.Fprintf(os.Stderr, "Usage: barygen -type <StructName> -file <source.go>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *typeName == "" || *srcFile == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*typeName, *srcFile); err != nil {
		fmt.Fprintf(os.Stderr, "barygen: %v\n", err)
		os.Exit(1)
	}
}

// field is one struct field, as handed to the code template.
type field struct {
	Name string
}

// genData is the data handed to bodyTemplate.
type genData struct {
	Package string
	Type    string
	Fields  []field
}

var bodyTemplate = template.Must(template.New("barycentric").Parse(`// Code generated by barygen. DO NOT EDIT.

package {{.Package}}

import "github.com/taigrr/softraster/pkg/math3d"

// Interpolated implements raster.Barycentric by interpolating each field
// with its own Interpolated method, weighted by lambda.
func (a {{.Type}}) Interpolated(lambda math3d.Vec3, b, c {{.Type}}) {{.Type}} {
	return {{.Type}}{
{{- range .Fields}}
		{{.Name}}: a.{{.Name}}.Interpolated(lambda, b.{{.Name}}, c.{{.Name}}),
{{- end}}
	}
}

// LineInterpolated implements raster.Barycentric for the two-point line
// case, weighted by mu.
func (a {{.Type}}) LineInterpolated(mu math3d.Vec2, b {{.Type}}) {{.Type}} {
	return {{.Type}}{
{{- range .Fields}}
		{{.Name}}: a.{{.Name}}.LineInterpolated(mu, b.{{.Name}}),
{{- end}}
	}
}
`))

func run(typeName, srcFile string) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, srcFile, nil, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parse %s: %w", srcFile, err)
	}

	st, err := findStruct(f, typeName)
	if err != nil {
		return err
	}

	data := genData{
		Package: f.Name.Name,
		Type:    typeName,
	}
	for _, fld := range st.Fields.List {
		if len(fld.Names) == 0 {
			return fmt.Errorf("embedded field in %s is not supported", typeName)
		}
		for _, n := range fld.Names {
			data.Fields = append(data.Fields, field{Name: n.Name})
		}
	}
	if len(data.Fields) == 0 {
		return fmt.Errorf("struct %s has no fields to interpolate", typeName)
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}

	outPath := outputPath(srcFile, typeName)
	if err := os.WriteFile(outPath, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

// findStruct locates typeName's struct declaration in f.
func findStruct(f *ast.File, typeName string) (*ast.StructType, error) {
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok || ts.Name.Name != typeName {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("%s is not a struct", typeName)
			}
			return st, nil
		}
	}
	return nil, fmt.Errorf("struct %s not found", typeName)
}

func outputPath(srcFile, typeName string) string {
	dir := filepath.Dir(srcFile)
	base := strings.ToLower(typeName)
	return filepath.Join(dir, base+"_generated.go")
}
