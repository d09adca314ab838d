package generator

import (
	"bufio"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/vmihailenco/tagparser/v2"
)

// Directive marks a struct type for code generation. It goes in the type's
// doc comment.
const Directive = "//hxinject:props"

// Suffix is appended to the source file name to name the generated file.
const Suffix = "_props.go"

// Header starts every generated file. Clean only removes files that begin
// with it.
const Header = "// Code generated by hxinject. DO NOT EDIT."

// Options configures the generator.
type Options struct {
	DryRun bool
}

// Generator writes props codecs for structs marked with Directive.
type Generator struct {
	opts Options
	fset *token.FileSet
}

// New creates a new generator.
func New(opts Options) *Generator {
	return &Generator{
		opts: opts,
		fset: token.NewFileSet(),
	}
}

// Generate generates code for the given package patterns.
func (g *Generator) Generate(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.generatePackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

// Clean removes generated files for the given package patterns.
func (g *Generator) Clean(patterns ...string) error {
	packages, err := g.findPackages(patterns)
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		if err := g.cleanPackage(pkg); err != nil {
			return fmt.Errorf("package %s: %w", pkg, err)
		}
	}

	return nil
}

// findPackages resolves package patterns to directory paths. A pattern
// ending in /... walks every directory below its root.
func (g *Generator) findPackages(patterns []string) ([]string, error) {
	var packages []string

	for _, pattern := range patterns {
		if !strings.HasSuffix(pattern, "/...") {
			packages = append(packages, pattern)
			continue
		}

		root := strings.TrimSuffix(pattern, "/...")
		if root == "" {
			root = "."
		}

		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			base := d.Name()
			if path != root && (strings.HasPrefix(base, ".") || strings.HasPrefix(base, "_") ||
				base == "vendor" || base == "testdata") {
				return filepath.SkipDir
			}
			if hasGoFiles(path) {
				packages = append(packages, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return packages, nil
}

func hasGoFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasSuffix(name, ".go") && !strings.HasSuffix(name, "_test.go") {
			return true
		}
	}
	return false
}

// generatePackage writes one file per source file that declares marked
// structs.
func (g *Generator) generatePackage(pkgPath string) error {
	pkgs, err := parser.ParseDir(g.fset, pkgPath, func(info os.FileInfo) bool {
		name := info.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, Suffix)
	}, parser.ParseComments)
	if err != nil {
		return err
	}

	for pkgName, pkg := range pkgs {
		files := make([]string, 0, len(pkg.Files))
		for filename := range pkg.Files {
			files = append(files, filename)
		}
		sort.Strings(files)

		for _, filename := range files {
			types, err := FindProps(pkg.Files[filename])
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(filename), err)
			}
			if len(types) == 0 {
				continue
			}
			if err := g.writeFile(filename, pkgName, Imports(pkg.Files[filename]), types); err != nil {
				return err
			}
		}
	}

	return nil
}

// cleanPackage removes generated files from a package.
func (g *Generator) cleanPackage(pkgPath string) error {
	entries, err := os.ReadDir(pkgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Suffix) {
			continue
		}
		path := filepath.Join(pkgPath, entry.Name())
		generated, err := isGenerated(path)
		if err != nil {
			return err
		}
		if !generated {
			continue
		}
		fmt.Printf("removing %s\n", path)
		if !g.opts.DryRun {
			if err := os.Remove(path); err != nil {
				return err
			}
		}
	}

	return nil
}

func isGenerated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return strings.TrimSpace(scanner.Text()) == Header, nil
}

// PropsInfo describes a marked props struct.
type PropsInfo struct {
	TypeName string
	Fields   []PropField
}

// Required returns the names of the required fields, in declaration order.
func (p *PropsInfo) Required() []string {
	var names []string
	for _, f := range p.Fields {
		if f.Required {
			names = append(names, f.Key)
		}
	}
	return names
}

// PropField is a field of a props struct.
type PropField struct {
	Name     string // Go field name
	Key      string // prop name in the record
	Type     string // type as written in the source
	Kind     Kind
	Required bool
}

// Kind classifies the field types the generator can encode.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindUint
	KindFloat
	KindBool
	KindTime
)

// rootPath is the import path of the package declaring Markup.
const rootPath = "github.com/pthm/hxinject"

// stringTypes returns the type names file can use for a string field:
// string itself and Markup, as named from file.
func stringTypes(file *ast.File) map[string]bool {
	types := map[string]bool{"string": true}
	if file.Name.Name == "hxinject" {
		types["Markup"] = true
	}
	for _, imp := range file.Imports {
		if strings.Trim(imp.Path.Value, `"`) != rootPath {
			continue
		}
		name := "hxinject"
		if imp.Name != nil {
			name = imp.Name.Name
		}
		types[name+".Markup"] = true
	}
	return types
}

func kindOf(typeName string, strs map[string]bool) Kind {
	if strs[typeName] {
		return KindString
	}
	switch typeName {
	case "int", "int8", "int16", "int32", "int64":
		return KindInt
	case "uint", "uint8", "uint16", "uint32", "uint64":
		return KindUint
	case "float32", "float64":
		return KindFloat
	case "bool":
		return KindBool
	case "time.Time":
		return KindTime
	}
	return KindInvalid
}

// FindProps returns the structs in file whose doc comment holds Directive,
// in declaration order.
func FindProps(file *ast.File) ([]*PropsInfo, error) {
	var found []*PropsInfo
	strs := stringTypes(file)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			// A lone type declaration carries its doc on the GenDecl.
			doc := typeSpec.Doc
			if doc == nil && len(genDecl.Specs) == 1 {
				doc = genDecl.Doc
			}
			if !hasDirective(doc) {
				continue
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				return nil, fmt.Errorf("%s: %s applies only to struct types", typeSpec.Name.Name, Directive)
			}
			if typeSpec.TypeParams != nil {
				return nil, fmt.Errorf("%s: generic props types are not supported", typeSpec.Name.Name)
			}

			fields, err := findFields(structType, strs)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", typeSpec.Name.Name, err)
			}
			found = append(found, &PropsInfo{
				TypeName: typeSpec.Name.Name,
				Fields:   fields,
			})
		}
	}

	return found, nil
}

// Imports returns the import specs of file, as they would be written in an
// import block, leaving out the ones every generated file already has.
func Imports(file *ast.File) []string {
	var specs []string
	for _, imp := range file.Imports {
		path := strings.Trim(imp.Path.Value, `"`)
		if path == "fmt" || path == propsPath {
			continue
		}
		spec := imp.Path.Value
		if imp.Name != nil {
			spec = imp.Name.Name + " " + spec
		}
		specs = append(specs, spec)
	}
	return specs
}

func hasDirective(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == Directive {
			return true
		}
	}
	return false
}

// findFields reads the exported fields of a props struct. Names follow the
// runtime codec: a set msgpack tag wins over the prop tag name, and the Go
// field name fills in when the winning tag has no name.
func findFields(structType *ast.StructType, strs map[string]bool) ([]PropField, error) {
	var fields []PropField

	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			return nil, fmt.Errorf("embedded field %s is not supported", typeToString(field.Type))
		}

		var tag reflect.StructTag
		if field.Tag != nil {
			tag = reflect.StructTag(strings.Trim(field.Tag.Value, "`"))
		}

		for _, name := range field.Names {
			if !name.IsExported() {
				continue
			}

			key, required, exclude := parsePropTag(tag)
			if exclude {
				continue
			}
			if key == "" {
				key = name.Name
			}

			pf := PropField{
				Name:     name.Name,
				Key:      key,
				Type:     typeToString(field.Type),
				Required: required,
			}
			pf.Kind = kindOf(pf.Type, strs)
			if pf.Kind == KindInvalid {
				return nil, fmt.Errorf("field %s: type %s is not supported; drop %s to use the reflection codec",
					name.Name, pf.Type, Directive)
			}
			fields = append(fields, pf)
		}
	}

	return fields, nil
}

// parsePropTag reads the prop and msgpack tags of a field. As in the runtime
// codec, a set msgpack tag decides the key even without a name; the prop
// tag then only contributes its options.
func parsePropTag(tag reflect.StructTag) (key string, required bool, exclude bool) {
	if raw, ok := tag.Lookup("prop"); ok {
		parsed := tagparser.Parse(raw)
		key = parsed.Name
		required = parsed.HasOption("required")
	}
	if raw := tag.Get("msgpack"); raw != "" {
		key = tagparser.Parse(raw).Name
	}
	return key, required, key == "-"
}

// typeToString converts an AST type to a string representation.
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeToString(t.X)
	case *ast.SelectorExpr:
		return typeToString(t.X) + "." + t.Sel.Name
	case *ast.ArrayType:
		if t.Len == nil {
			return "[]" + typeToString(t.Elt)
		}
		return "[...]" + typeToString(t.Elt)
	case *ast.MapType:
		return "map[" + typeToString(t.Key) + "]" + typeToString(t.Value)
	case *ast.IndexExpr:
		return typeToString(t.X) + "[" + typeToString(t.Index) + "]"
	case *ast.FuncType:
		return "func"
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.StructType:
		return "struct{}"
	default:
		return fmt.Sprintf("%T", expr)
	}
}
