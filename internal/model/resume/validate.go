package resume

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed partial.schema.json
var partialSchema string

// ValidatePartial checks an engine-supplied partial update against the
// document schema before it is merged. Unknown keys are allowed; known keys
// must carry the right shape.
func ValidatePartial(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(partialSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("updated section rejected: %s", strings.Join(msgs, "; "))
}
