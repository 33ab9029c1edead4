package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/planclip/planclip/internal/common"
	"github.com/planclip/planclip/internal/geom"
)

// On-disk form: {"label": [x0, y0, x1, y1], ...} in page points, two-decimal
// precision, origin top-left. The schema catches malformed files before any
// rectangle is interpreted.
const schemaJSON = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"minProperties": 1,
	"propertyNames": {"minLength": 1},
	"additionalProperties": {
		"type": "array",
		"items": {"type": "number"},
		"minItems": 4,
		"maxItems": 4
	}
}`

var schema = jsonschema.MustCompileString("template.schema.json", schemaJSON)

// Save writes the template to path. Saving an empty template is refused so a
// capture session that produced nothing cannot clobber a real template.
func (t *Template) Save(path string) error {
	if t.Len() == 0 {
		return common.NewAppError(common.ErrCodeTemplate, "refusing to save", common.ErrEmptyTemplate)
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, label := range t.labels {
		r := t.rects[label]
		name, err := json.Marshal(label)
		if err != nil {
			return common.WrapError(err, "encode label")
		}
		fmt.Fprintf(&buf, "  %s: [%g, %g, %g, %g]", name,
			round2(r.X0), round2(r.Y0), round2(r.X1), round2(r.Y1))
		if i < len(t.labels)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return common.WrapError(err, "write template")
	}
	return nil
}

// Load reads and validates a template file. Label order follows the order of
// keys in the file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeTemplate, "read template", err)
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, common.NewAppError(common.ErrCodeTemplate, "parse template", err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, common.NewAppError(common.ErrCodeTemplate, "invalid template", err)
	}

	labels, rects, err := decodeOrdered(data)
	if err != nil {
		return nil, common.NewAppError(common.ErrCodeTemplate, "parse template", err)
	}

	t := New()
	for _, label := range labels {
		r := rects[label]
		if err := t.Put(label, r); err != nil {
			return nil, err
		}
		// Put canonicalizes; a template file must already be canonical.
		if got, _ := t.Get(label); got != r {
			return nil, common.NewAppError(common.ErrCodeTemplate,
				fmt.Sprintf("rectangle for %q is not in (x0,y0,x1,y1) order", label), nil)
		}
	}
	return t, nil
}

// decodeOrdered walks the JSON object token by token to preserve the label
// order of the file, which encoding/json map decoding would discard.
func decodeOrdered(data []byte) ([]string, map[string]geom.Rect, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if _, err := dec.Token(); err != nil { // opening brace
		return nil, nil, err
	}

	var labels []string
	rects := make(map[string]geom.Rect)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		label := tok.(string)

		var coords [4]float64
		if err := dec.Decode(&coords); err != nil {
			return nil, nil, fmt.Errorf("rectangle for %q: %w", label, err)
		}
		if _, seen := rects[label]; !seen {
			labels = append(labels, label)
		}
		rects[label] = geom.Rect{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}
	}
	return labels, rects, nil
}
