// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"
)

// SampleDescription is a small description file mixing accepted and
// rejected lines.
const SampleDescription = `Header line with no colon
userId: Unique identifier for each user

signUpDate:Date the user registered
not a valid: token: extra colon
`

// HousingDescription resembles a real data description file: feature lines
// followed by indented value listings that must be skipped.
const HousingDescription = `MSSubClass: Identifies the type of dwelling involved in the sale.

        20	1-STORY 1946 & NEWER ALL STYLES
        30	1-STORY 1945 & OLDER

MSZoning: Identifies the general zoning classification of the sale.

       A	Agriculture
       C	Commercial

LotFrontage: Linear feet of street connected to property
1stFlrSF: First Floor square feet
2ndFlrSF: Second floor square feet
SaleCondition: Condition of sale: normal, abnormal, or family
`

// WriteTempDescription writes content to a description file in a temporary
// directory and returns its path.
func WriteTempDescription(t *testing.T, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "data_description.txt")
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary description file: %v", err)
	}

	return tmpFile
}

// YAMLMappingKeys decodes a top-level YAML mapping and returns its keys in
// document order.
func YAMLMappingKeys(t *testing.T, data []byte) []string {
	t.Helper()

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		t.Fatalf("expected a YAML mapping, got kind %v", root.Kind)
	}

	keys := make([]string, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	return keys
}

// JSONObjectKeys decodes a top-level JSON object and returns its keys in
// document order.
func JSONObjectKeys(t *testing.T, data []byte) []string {
	t.Helper()

	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		t.Fatalf("expected a JSON object, got %v (err: %v)", tok, err)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			t.Fatalf("Failed to read JSON key: %v", err)
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatalf("Failed to read JSON value: %v", err)
		}
	}
	return keys
}
