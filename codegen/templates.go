package codegen

import (
	"bytes"
	"embed"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	ParseFS(templateFS, "templates/*.tmpl"))

// executeTemplate executes a template by name and returns gofmt-formatted source.
func executeTemplate(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return imports.Process("features.go", buf.Bytes(), nil)
}
