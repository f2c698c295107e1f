package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the configuration file.
func Schema() (string, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	r := &jsonschema.Reflector{
		DoNotReference: true,
		FieldNameTag:   "yaml",
	}

	schema := r.Reflect(&Config{})

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
