package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

// writeFile generates the *_props.go file for the props types of a source
// file.
func (g *Generator) writeFile(sourceFile, pkgName string, deps []string, types []*PropsInfo) error {
	baseName := strings.TrimSuffix(filepath.Base(sourceFile), ".go")
	outputFile := filepath.Join(filepath.Dir(sourceFile), baseName+Suffix)

	fmt.Printf("generating %s\n", outputFile)

	code, err := Render(outputFile, pkgName, deps, types)
	if err != nil {
		return err
	}

	if g.opts.DryRun {
		fmt.Printf("%s\n", code)
		return nil
	}

	return os.WriteFile(outputFile, code, 0o644)
}

// Render returns the formatted source of a generated file. deps are the
// import specs of the source file, so field types such as hxinject.Markup
// resolve; the unused ones are dropped.
func Render(filename, pkgName string, deps []string, types []*PropsInfo) ([]byte, error) {
	tmpl, err := template.New("props").Funcs(template.FuncMap{
		"present": presentExpr,
		"value":   valueExpr,
		"convert": convertFunc,
		"assign":  assignExpr,
		"quote":   func(s string) string { return fmt.Sprintf("%q", s) },
	}).Parse(propsTemplate)
	if err != nil {
		return nil, err
	}

	data := struct {
		Header  string
		Package string
		Imports []string
		Types   []*PropsInfo
	}{
		Header:  Header,
		Package: pkgName,
		Imports: deps,
		Types:   types,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	// imports.Process drops the imports a file does not use and formats it.
	formatted, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format source: %w\n%s", err, buf.Bytes())
	}
	return formatted, nil
}

// presentExpr reports whether the field holds a non-zero value. Zero values
// are left out of the record so they never override a fixed prop.
func presentExpr(f PropField) string {
	switch f.Kind {
	case KindString:
		return fmt.Sprintf("p.%s != \"\"", f.Name)
	case KindBool:
		return "p." + f.Name
	case KindTime:
		return fmt.Sprintf("!p.%s.IsZero()", f.Name)
	default:
		return fmt.Sprintf("p.%s != 0", f.Name)
	}
}

// valueExpr normalizes the field to the type the reflection codec would
// produce for it.
func valueExpr(f PropField) string {
	switch f.Kind {
	case KindString:
		return fmt.Sprintf("string(p.%s)", f.Name)
	case KindInt:
		return fmt.Sprintf("int64(p.%s)", f.Name)
	case KindUint:
		return fmt.Sprintf("props.Uint(uint64(p.%s))", f.Name)
	case KindFloat:
		return fmt.Sprintf("float64(p.%s)", f.Name)
	default:
		return "p." + f.Name
	}
}

func convertFunc(f PropField) string {
	switch f.Kind {
	case KindString:
		return "props.String"
	case KindInt:
		return "props.Int64"
	case KindUint:
		return "props.Uint64"
	case KindFloat:
		return "props.Float64"
	case KindBool:
		return "props.Bool"
	default:
		return "props.Time"
	}
}

func assignExpr(f PropField) string {
	switch f.Kind {
	case KindBool, KindTime:
		return fmt.Sprintf("p.%s = x", f.Name)
	default:
		return fmt.Sprintf("p.%s = %s(x)", f.Name, f.Type)
	}
}

// propsPath is the import path generated files use for the props package.
const propsPath = "github.com/pthm/hxinject/lib/props"

const propsTemplate = `{{.Header}}

package {{.Package}}

import (
	"fmt"

	"github.com/pthm/hxinject/lib/props"
{{- range .Imports}}
	{{.}}
{{- end}}
)
{{range $t := .Types}}
// PropsEncode returns the non-zero fields of p as a props record.
func (p {{$t.TypeName}}) PropsEncode() props.Record {
	fields := make([]props.Field, 0, {{len $t.Fields}})
{{- range $t.Fields}}
	if {{present .}} {
		fields = append(fields, props.Field{Name: {{quote .Key}}, Value: {{value .}}})
	}
{{- end}}
	return props.NewRecord(fields...)
}

// PropsDecode sets the fields of p named in r.
func (p *{{$t.TypeName}}) PropsDecode(r props.Record) error {
{{- range $t.Fields}}
	if v, ok := r.Get({{quote .Key}}); ok {
		x, err := {{convert .}}(v)
		if err != nil {
			return fmt.Errorf("%s: %w", {{quote .Key}}, err)
		}
		{{assign .}}
	}
{{- end}}
	return nil
}

// RequiredProps returns the names of the required props of {{$t.TypeName}}.
func ({{$t.TypeName}}) RequiredProps() []string {
{{- with $t.Required}}
	return []string{ {{- range $i, $k := .}}{{if $i}}, {{end}}{{quote $k}}{{end -}} }
{{- else}}
	return nil
{{- end}}
}
{{end}}`
