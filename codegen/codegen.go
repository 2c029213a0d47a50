package codegen

import (
	"go/token"
	"strings"

	"github.com/erraggy/featdesc"
	"github.com/erraggy/featdesc/extractor"
	"github.com/erraggy/featdesc/featerrors"
)

// DefaultPackageName is the package clause used when none is configured.
const DefaultPackageName = "features"

// Option is a function that configures code generation
type Option func(*generateConfig) error

type generateConfig struct {
	packageName string
	typeName    string
	source      string
}

// feature is the template view of one mapping entry.
type feature struct {
	Name        string
	Description string
	Comment     []string
}

// templateData is the root value passed to the constants template.
type templateData struct {
	Version         string
	Source          string
	Package         string
	TypeName        string
	ElemType        string
	NamesVar        string
	DescriptionsVar string
	Features        []feature
}

// Generate renders descs as a Go source file declaring one string constant per
// feature, a slice of every feature in mapping order, and a map from feature
// to description. Normalized feature names are always valid Go identifiers,
// so they are used verbatim as constant names.
func Generate(descs *extractor.Descriptions, opts ...Option) ([]byte, error) {
	cfg := &generateConfig{packageName: DefaultPackageName}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	data := templateData{
		Version:         featdesc.Version(),
		Source:          cfg.source,
		Package:         cfg.packageName,
		TypeName:        cfg.typeName,
		ElemType:        "string",
		NamesVar:        "FeatureNames",
		DescriptionsVar: "FeatureDescriptions",
	}
	if cfg.typeName != "" {
		data.ElemType = cfg.typeName
		data.NamesVar = cfg.typeName + "Names"
		data.DescriptionsVar = cfg.typeName + "Descriptions"
	}

	declared := map[string]bool{data.NamesVar: true, data.DescriptionsVar: true}
	if cfg.typeName != "" {
		declared[cfg.typeName] = true
	}
	for _, e := range descs.Entries() {
		if !token.IsIdentifier(e.Name) || e.Name == "_" || e.Name == "init" {
			return nil, &featerrors.GenerateError{Message: "feature name " + e.Name + " is not a Go identifier"}
		}
		if declared[e.Name] {
			return nil, &featerrors.GenerateError{Message: "feature name " + e.Name + " collides with a generated declaration"}
		}
		data.Features = append(data.Features, feature{
			Name:        e.Name,
			Description: e.Description,
			Comment:     commentLines(e.Name, e.Description),
		})
	}

	src, err := executeTemplate("constants.go.tmpl", data)
	if err != nil {
		return nil, &featerrors.GenerateError{Message: "rendering constants", Cause: err}
	}
	return src, nil
}

// commentLines builds the doc comment for a feature constant.
func commentLines(name, description string) []string {
	description = strings.TrimSpace(description)
	if description == "" {
		return []string{name + " has no description."}
	}
	lines := strings.Split(strings.ReplaceAll(description, "\r\n", "\n"), "\n")
	lines[0] = name + ": " + lines[0]
	return lines
}

// WithPackageName sets the package clause of the generated file.
// Default: "features"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if !token.IsIdentifier(name) || name == "_" {
			return &featerrors.ConfigError{Option: "package", Value: name, Message: "must be a valid Go package name"}
		}
		cfg.packageName = name
		return nil
	}
}

// WithTypeName declares a named string type for the feature constants.
// The slice and map variables are then named <type>Names and <type>Descriptions.
// Default: untyped constants with FeatureNames and FeatureDescriptions
func WithTypeName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			cfg.typeName = ""
			return nil
		}
		if !token.IsIdentifier(name) || name == "_" {
			return &featerrors.ConfigError{Option: "type", Value: name, Message: "must be a valid Go identifier"}
		}
		cfg.typeName = name
		return nil
	}
}

// WithSource records the description file the constants were generated from
// in the file header.
func WithSource(source string) Option {
	return func(cfg *generateConfig) error {
		cfg.source = source
		return nil
	}
}
