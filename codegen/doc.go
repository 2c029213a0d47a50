// Package codegen renders a feature-description mapping as Go source.
//
// Each normalized feature name becomes a string constant documented with its
// description, alongside a slice of every feature and a map from feature to
// description:
//
//	descs, _ := extractor.Extract("data_description.txt")
//	src, err := codegen.Generate(descs,
//	    codegen.WithPackageName("housing"),
//	    codegen.WithTypeName("Column"),
//	)
//
// produces
//
//	// Column names a feature from a data description file.
//	type Column string
//
//	const (
//	    // MS_SUB_CLASS: Identifies the type of dwelling involved in the sale.
//	    MS_SUB_CLASS Column = "MS_SUB_CLASS"
//	)
//
// The output is formatted with golang.org/x/tools/imports.
package codegen
