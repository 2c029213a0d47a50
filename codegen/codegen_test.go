package codegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/featdesc/extractor"
	"github.com/erraggy/featdesc/featerrors"
	"github.com/erraggy/featdesc/internal/testutil"
)

func sampleDescriptions(t *testing.T) *extractor.Descriptions {
	t.Helper()
	descs, err := extractor.New().ExtractBytes([]byte(testutil.HousingDescription))
	require.NoError(t, err)
	return descs
}

// parseGenerated parses src and returns the file and the names of all
// declared constants in source order.
func parseGenerated(t *testing.T, src []byte) (*ast.File, []string) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "features.go", src, parser.ParseComments)
	require.NoError(t, err, "generated source should parse:\n%s", src)

	var consts []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			for _, name := range spec.(*ast.ValueSpec).Names {
				consts = append(consts, name.Name)
			}
		}
	}
	return file, consts
}

func TestGenerate_Untyped(t *testing.T) {
	descs := sampleDescriptions(t)

	src, err := Generate(descs, WithSource("data_description.txt"))
	require.NoError(t, err)

	file, consts := parseGenerated(t, src)
	assert.Equal(t, DefaultPackageName, file.Name.Name)
	assert.Equal(t, descs.Keys(), consts)

	out := string(src)
	assert.Contains(t, out, "// Code generated by featdesc")
	assert.Contains(t, out, "DO NOT EDIT.")
	assert.Contains(t, out, "// Source: data_description.txt")
	assert.Contains(t, out, "// MS_SUB_CLASS: Identifies the type of dwelling involved in the sale.")
	assert.Regexp(t, `_1ST_FLR_SF\s+=\s+"_1ST_FLR_SF"`, out)
	assert.Contains(t, out, "var FeatureNames = []string{")
	assert.Contains(t, out, "var FeatureDescriptions = map[string]string{")
	assert.Regexp(t, `SALE_CONDITION:\s+"Condition of sale: normal, abnormal, or family",`, out)
	assert.NotContains(t, out, "type ")
}

func TestGenerate_Typed(t *testing.T) {
	descs := sampleDescriptions(t)

	src, err := Generate(descs, WithPackageName("housing"), WithTypeName("Column"))
	require.NoError(t, err)

	file, consts := parseGenerated(t, src)
	assert.Equal(t, "housing", file.Name.Name)
	assert.Equal(t, descs.Keys(), consts)

	out := string(src)
	assert.Contains(t, out, "type Column string")
	assert.Regexp(t, `MS_ZONING\s+Column\s+=\s+"MS_ZONING"`, out)
	assert.Contains(t, out, "var ColumnNames = []Column{")
	assert.Contains(t, out, "var ColumnDescriptions = map[Column]string{")
	assert.NotContains(t, out, "// Source:")
}

func TestGenerate_EmptyMapping(t *testing.T) {
	src, err := Generate(extractor.NewDescriptions())
	require.NoError(t, err)

	_, consts := parseGenerated(t, src)
	assert.Empty(t, consts)
}

func TestGenerate_DescriptionComments(t *testing.T) {
	descs := extractor.NewDescriptions()
	descs.Set("EMPTY", "")
	descs.Set("MULTI", "first line\nsecond line")
	descs.Set("QUOTED", `says "hi" and uses a \ backslash`)

	src, err := Generate(descs)
	require.NoError(t, err)
	parseGenerated(t, src)

	out := string(src)
	assert.Contains(t, out, "// EMPTY has no description.")
	assert.Contains(t, out, "// MULTI: first line\n\t// second line")
	assert.Contains(t, out, `"says \"hi\" and uses a \\ backslash",`)
}

func TestGenerate_InvalidFeatureName(t *testing.T) {
	descs := extractor.NewDescriptions()
	descs.Set("not valid", "spaces cannot be identifiers")

	src, err := Generate(descs)
	require.Error(t, err)
	assert.Nil(t, src)
	assert.ErrorIs(t, err, featerrors.ErrGenerate)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{name: "empty package", opt: WithPackageName("")},
		{name: "keyword package", opt: WithPackageName("func")},
		{name: "blank package", opt: WithPackageName("_")},
		{name: "hyphenated package", opt: WithPackageName("my-pkg")},
		{name: "type with space", opt: WithTypeName("My Type")},
		{name: "keyword type", opt: WithTypeName("type")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := Generate(extractor.NewDescriptions(), tt.opt)
			require.Error(t, err)
			assert.Nil(t, src)
			assert.ErrorIs(t, err, featerrors.ErrConfig)
		})
	}
}

func TestGenerate_NameCollisions(t *testing.T) {
	tests := []struct {
		name    string
		feature string
		opts    []Option
	}{
		{name: "type name equals feature", feature: "USER_ID", opts: []Option{WithTypeName("USER_ID")}},
		{name: "feature equals names slice", feature: "FeatureNames"},
		{name: "feature equals descriptions map", feature: "FeatureDescriptions"},
		{name: "feature equals typed names slice", feature: "ColumnNames", opts: []Option{WithTypeName("Column")}},
		{name: "blank feature", feature: "_"},
		{name: "init feature", feature: "init"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descs := extractor.NewDescriptions()
			descs.Set("SIGN_UP_DATE", "Date the user registered")
			descs.Set(tt.feature, "colliding feature")

			src, err := Generate(descs, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, src)
			assert.ErrorIs(t, err, featerrors.ErrGenerate)
		})
	}
}

func TestGenerate_TypeNameDistinctFromFeatures(t *testing.T) {
	descs := extractor.NewDescriptions()
	descs.Set("USER_ID", "Unique identifier for each user")

	src, err := Generate(descs, WithTypeName("UserColumn"))
	require.NoError(t, err)
	_, consts := parseGenerated(t, src)
	assert.Equal(t, []string{"USER_ID"}, consts)
}

func TestGenerate_EmptyTypeNameResets(t *testing.T) {
	src, err := Generate(extractor.NewDescriptions(), WithTypeName("Column"), WithTypeName(""))
	require.NoError(t, err)
	assert.NotContains(t, string(src), "type Column")
}
