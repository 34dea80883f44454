package scene

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML scene file.
func Load(path string) (Scene, error) {
	d, err := LoadDocument(path)
	if err != nil {
		return Scene{}, err
	}
	return Map(path, d)
}

// LoadDocument reads a YAML scene file without applying defaults, so callers
// can overlay flags before mapping.
func LoadDocument(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, &OpError{
			Op:   "scene.load",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var d Document
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Document{}, &OpError{
			Op:   "scene.load",
			Kind: KindInvalid,
			Path: path,
			Err:  err,
		}
	}
	return d, nil
}

// DecodeJSON maps a JSON scene document, as sent to the render server.
func DecodeJSON(b []byte) (Scene, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return Scene{}, &OpError{Op: "scene.decode", Kind: KindInvalid, Err: err}
	}
	return Map("", d)
}
