package manifest

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://polygraph-rules/manifest.schema.json"

// packageSchema describes the minimal structure a manifest needs for the
// version rules: a top-level object with an object-valued dependencies field.
// Other fields are not constrained since no rule reads them.
const packageSchema = `{
  "type": "object",
  "required": ["dependencies"],
  "properties": {
    "dependencies": {"type": "object"}
  }
}`

var compiledSchema = jsonschema.MustCompileString(schemaURL, packageSchema)
