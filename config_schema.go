package main

import (
	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/xerrors"
)

// configSchema describes the shape of pytrans.json. A language is either a
// plain name or a {name, filename, locale} object.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["mainLanguage", "inputFolder"],
  "definitions": {
    "language": {
      "oneOf": [
        {"type": "string", "minLength": 1},
        {
          "type": "object",
          "required": ["name"],
          "additionalProperties": false,
          "properties": {
            "name": {"type": "string", "minLength": 1},
            "filename": {"type": "string"},
            "locale": {"type": "string"}
          }
        }
      ]
    }
  },
  "properties": {
    "mainLanguage": {"$ref": "#/definitions/language"},
    "translatedTo": {
      "type": "array",
      "items": {"$ref": "#/definitions/language"}
    },
    "inputFolder": {"type": "string"},
    "output": {"type": "string"},
    "outputFolder": {"type": "string"},
    "moduleName": {
      "type": "string",
      "pattern": "^[A-Z][A-Za-z0-9_]*(\\.[A-Z][A-Za-z0-9_]*)*$"
    },
    "extension": {"type": "string"},
    "scripts": {
      "type": "object",
      "additionalProperties": {
        "type": "array",
        "items": {"type": "string"}
      }
    }
  }
}`

var configSchemaLoader = gojsonschema.NewStringLoader(configSchema)

// validateConfigSchema checks a JSON document against configSchema and
// reports every violation at once.
func validateConfigSchema(data []byte) error {
	result, err := gojsonschema.Validate(configSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return xerrors.Errorf("malformed configuration: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var merr *multierror.Error
	for _, desc := range result.Errors() {
		merr = multierror.Append(merr, xerrors.New(desc.String()))
	}
	return merr.ErrorOrNil()
}
