package generator

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const source = `
package components

import (
	"time"

	"github.com/pthm/hxinject"
)

// HeaderProps are the props of the header.
//
//hxinject:props
type HeaderProps struct {
	WelcomeMessage hxinject.Markup ` + "`prop:\"welcomeMessage,required\"`" + `
	Lang           string
	Hidden         bool     ` + "`prop:\"-\"`" + `
	internal       string
}

//hxinject:props
type FooterProps struct {
	Year    int       ` + "`prop:\"year,required\"`" + `
	Ratio   float64   ` + "`prop:\"ratio\"`" + `
	Visits  uint32    ` + "`msgpack:\"visits\" prop:\"count\"`" + `
	Updated time.Time ` + "`prop:\"updated\"`" + `
	Dark    bool      ` + "`prop:\"dark\"`" + `
}

type Unmarked struct {
	Name string
}
`

func parseSource(t *testing.T, src string) ([]*PropsInfo, []string) {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "page.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	types, err := FindProps(file)
	if err != nil {
		t.Fatalf("FindProps() error = %v", err)
	}
	return types, Imports(file)
}

func TestFindProps(t *testing.T) {
	types, _ := parseSource(t, source)

	if len(types) != 2 {
		t.Fatalf("found %d props types, want 2", len(types))
	}

	header := types[0]
	if header.TypeName != "HeaderProps" {
		t.Errorf("TypeName = %q, want HeaderProps", header.TypeName)
	}
	wantHeader := []PropField{
		{Name: "WelcomeMessage", Key: "welcomeMessage", Type: "hxinject.Markup", Kind: KindString, Required: true},
		{Name: "Lang", Key: "Lang", Type: "string", Kind: KindString},
	}
	if !reflect.DeepEqual(header.Fields, wantHeader) {
		t.Errorf("HeaderProps fields = %+v, want %+v", header.Fields, wantHeader)
	}

	footer := types[1]
	wantKinds := map[string]Kind{
		"year":    KindInt,
		"ratio":   KindFloat,
		"visits":  KindUint,
		"updated": KindTime,
		"dark":    KindBool,
	}
	if len(footer.Fields) != len(wantKinds) {
		t.Fatalf("FooterProps has %d fields, want %d", len(footer.Fields), len(wantKinds))
	}
	for _, f := range footer.Fields {
		if want, ok := wantKinds[f.Key]; !ok || f.Kind != want {
			t.Errorf("field %s key %q kind %v, want %v", f.Name, f.Key, f.Kind, want)
		}
	}
	if got, want := footer.Required(), []string{"year"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Required() = %v, want %v", got, want)
	}
}

func TestFindPropsRejectsUnsupportedTypes(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "slice field",
			src: `package p
//hxinject:props
type P struct { Items []string }`,
		},
		{
			name: "embedded field",
			src: `package p
type Base struct{ ID int }
//hxinject:props
type P struct { Base }`,
		},
		{
			name: "markup from another package",
			src: `package p
import "example.com/html"
//hxinject:props
type P struct { Body html.Markup }`,
		},
		{
			name: "local markup outside hxinject",
			src: `package p
type Markup []byte
//hxinject:props
type P struct { Body Markup }`,
		},
		{
			name: "not a struct",
			src: `package p
//hxinject:props
type P string`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := parser.ParseFile(token.NewFileSet(), "p.go", tt.src, parser.ParseComments)
			if err != nil {
				t.Fatalf("ParseFile() error = %v", err)
			}
			if _, err := FindProps(file); err == nil {
				t.Error("FindProps() expected error")
			}
		})
	}
}

func TestFindPropsKeysFollowMsgpack(t *testing.T) {
	types, _ := parseSource(t, `package p

import hx "github.com/pthm/hxinject"

//hxinject:props
type P struct {
	Title   string   `+"`msgpack:\",omitempty\" prop:\"title,required\"`"+`
	Body    hx.Markup `+"`msgpack:\"body\" prop:\"content\"`"+`
	Skipped string   `+"`msgpack:\"-\" prop:\"skipped\"`"+`
	Kept    string   `+"`msgpack:\"kept\" prop:\"-\"`"+`
}`)

	want := []PropField{
		{Name: "Title", Key: "Title", Type: "string", Kind: KindString, Required: true},
		{Name: "Body", Key: "body", Type: "hx.Markup", Kind: KindString},
		{Name: "Kept", Key: "kept", Type: "string", Kind: KindString},
	}
	if !reflect.DeepEqual(types[0].Fields, want) {
		t.Errorf("fields = %+v, want %+v", types[0].Fields, want)
	}
	if got := types[0].Required(); !reflect.DeepEqual(got, []string{"Title"}) {
		t.Errorf("Required() = %v, want [Title]", got)
	}
}

func TestFindPropsMarkupInsideRootPackage(t *testing.T) {
	types, _ := parseSource(t, `package hxinject

//hxinject:props
type P struct {
	Body Markup
}`)
	if len(types) != 1 || types[0].Fields[0].Kind != KindString {
		t.Errorf("FindProps() = %+v, want Body as a string field", types)
	}
}

func TestRender(t *testing.T) {
	types, deps := parseSource(t, source)

	code, err := Render("page_props.go", "components", deps, types)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := string(code)

	if !strings.HasPrefix(out, Header) {
		t.Errorf("output does not start with the generated header")
	}
	if _, err := parser.ParseFile(token.NewFileSet(), "page_props.go", code, 0); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, out)
	}

	for _, want := range []string{
		`"github.com/pthm/hxinject"`,
		"func (p HeaderProps) PropsEncode() props.Record",
		"func (p *HeaderProps) PropsDecode(r props.Record) error",
		`return []string{"welcomeMessage"}`,
		`props.Field{Name: "welcomeMessage", Value: string(p.WelcomeMessage)}`,
		"p.WelcomeMessage = hxinject.Markup(x)",
		`props.Field{Name: "visits", Value: props.Uint(uint64(p.Visits))}`,
		"x, err := props.Time(v)",
		"if !p.Updated.IsZero() {",
		`return []string{"year"}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, `"time"`) {
		t.Errorf("output keeps an unused import\n%s", out)
	}
	if strings.Contains(out, "Hidden") || strings.Contains(out, "internal") {
		t.Errorf("output mentions excluded fields\n%s", out)
	}
}

func TestRenderWithoutRequiredProps(t *testing.T) {
	types, deps := parseSource(t, `package p

//hxinject:props
type P struct {
	Name string `+"`prop:\"name\"`"+`
}`)

	code, err := Render("p_props.go", "p", deps, types)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(code), "return nil") {
		t.Errorf("RequiredProps does not return nil\n%s", code)
	}
}

func TestGenerateAndClean(t *testing.T) {
	dir := t.TempDir()
	src := `package p

//hxinject:props
type P struct {
	Name string ` + "`prop:\"name,required\"`" + `
}
`
	if err := os.WriteFile(filepath.Join(dir, "p.go"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	handWritten := filepath.Join(dir, "extra_props.go")
	if err := os.WriteFile(handWritten, []byte("package p\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := New(Options{DryRun: true}).Generate(dir); err != nil {
		t.Fatalf("Generate(dry run) error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "p_props.go")); !os.IsNotExist(err) {
		t.Fatalf("dry run wrote a file: %v", err)
	}

	g := New(Options{})
	if err := g.Generate(dir); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	generated := filepath.Join(dir, "p_props.go")
	code, err := os.ReadFile(generated)
	if err != nil {
		t.Fatalf("generated file not written: %v", err)
	}
	if !strings.Contains(string(code), "func (p *P) PropsDecode") {
		t.Errorf("generated file missing PropsDecode\n%s", code)
	}

	// generating again ignores the generated file
	if err := g.Generate(dir); err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}

	if err := g.Clean(dir); err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if _, err := os.Stat(generated); !os.IsNotExist(err) {
		t.Errorf("Clean() left %s", generated)
	}
	if _, err := os.Stat(handWritten); err != nil {
		t.Errorf("Clean() removed a hand written file: %v", err)
	}
}

func TestFindPackages(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"a", "a/b", ".hidden", "_skip", "testdata", "empty"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
		if dir == "empty" {
			continue
		}
		if err := os.WriteFile(filepath.Join(root, dir, "x.go"), []byte("package x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := New(Options{}).findPackages([]string{root + "/..."})
	if err != nil {
		t.Fatalf("findPackages() error = %v", err)
	}
	want := []string{filepath.Join(root, "a"), filepath.Join(root, "a/b")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("findPackages() = %v, want %v", got, want)
	}
}
