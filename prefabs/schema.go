package prefabs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const sceneSchemaPath = "schemas/scene.schema.json"

var (
	sceneSchemaOnce sync.Once
	sceneSchema     *jsonschema.Schema
	sceneSchemaErr  error
)

func compiledSceneSchema() (*jsonschema.Schema, error) {
	sceneSchemaOnce.Do(func() {
		raw, err := SchemasFS.ReadFile(sceneSchemaPath)
		if err != nil {
			sceneSchemaErr = fmt.Errorf("prefabs: read %s: %w", sceneSchemaPath, err)
			return
		}
		sceneSchema, sceneSchemaErr = jsonschema.CompileString(sceneSchemaPath, string(raw))
	})
	return sceneSchema, sceneSchemaErr
}

// ValidateScene checks YAML scene bytes against the embedded scene schema.
func ValidateScene(data []byte) error {
	schema, err := compiledSceneSchema()
	if err != nil {
		return err
	}
	doc, err := yamlToJSONValue(data)
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}

// yamlToJSONValue decodes YAML into the plain JSON value shapes the validator
// expects.
func yamlToJSONValue(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return doc, nil
}
