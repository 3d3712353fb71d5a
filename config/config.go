// Package config loads the document-level Configuration consulted by the
// "config.*" placeholder provider. Configuration content itself is an
// external collaborator (spec.md §1); this package only defines its
// interface to the tree.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jschaf/snekdown/ast"
)

// Load reads a YAML configuration file into an *ast.Configuration. A
// missing file is not an error: it yields an empty configuration, since
// most documents have none.
func Load(path string) (*ast.Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ast.Configuration{Values: map[string]string{}}, nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config content into an *ast.Configuration.
func Parse(data []byte) (*ast.Configuration, error) {
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		values[k] = toString(v)
	}
	return &ast.Configuration{Values: values}, nil
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		out, err := yaml.Marshal(v)
		if err != nil {
			return ""
		}
		return string(out)
	}
}
