package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing config files. Editors can use
// it to validate YAML and JSON configs.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	s := r.Reflect(&Config{})
	s.Title = "chunkkit configuration"
	s.Description = "Model capability selection and chunking parameters."
	return json.MarshalIndent(s, "", "  ")
}
