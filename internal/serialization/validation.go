package serialization

import (
	"github.com/google/uuid"

	"github.com/born-ml/mlp/internal/nn"
)

// ValidateDocument checks a decoded document before any matrix is built.
//
// Validation checks:
//   - Supported format version
//   - Well-formed id, when present
//   - Name length and layer count limits
//   - Non-empty rectangular weight and bias matrices, one bias per weight
//   - Bias i shaped (1, cols of weight i) and weight i cols == weight i+1 rows
//   - Widths consistent with the matrices
func ValidateDocument(doc *Document) error {
	if doc.FormatVersion != FormatVersion {
		return invalid("unsupported_version", -1, ErrUnsupportedVersion,
			"got %d, expected %d", doc.FormatVersion, FormatVersion)
	}
	if doc.ID != "" {
		if _, err := uuid.Parse(doc.ID); err != nil {
			return invalid("bad_id", -1, ErrMalformed, "id %q: %v", doc.ID, err)
		}
	}
	if len(doc.Name) > MaxNameLen {
		return invalid("name_too_long", -1, ErrMalformed,
			"name is %d bytes, maximum is %d", len(doc.Name), MaxNameLen)
	}
	if len(doc.Weights) > MaxLayers {
		return invalid("layer_count", -1, ErrMalformed,
			"%d layers exceeds maximum of %d", len(doc.Weights), MaxLayers)
	}
	if len(doc.Weights) < 2 {
		return invalid("layer_count", -1, nn.ErrShapeChain,
			"need at least 2 layers, got %d", len(doc.Weights))
	}
	if len(doc.Weights) != len(doc.Biases) {
		return invalid("layer_count", -1, nn.ErrShapeChain,
			"%d weight matrices but %d bias matrices", len(doc.Weights), len(doc.Biases))
	}

	for i := range doc.Weights {
		wr, wc, err := rectangular(doc.Weights[i], i, "weight")
		if err != nil {
			return err
		}
		br, bc, err := rectangular(doc.Biases[i], i, "bias")
		if err != nil {
			return err
		}
		if br != 1 || bc != wc {
			return invalid("bias_shape", i, nn.ErrShapeChain,
				"bias is [%d,%d], want [1,%d]", br, bc, wc)
		}
		if i > 0 {
			if prev := len(doc.Weights[i-1][0]); prev != wr {
				return invalid("shape_chain", i, nn.ErrShapeChain,
					"previous layer outputs %d values but weight has %d rows", prev, wr)
			}
		}
	}

	return validateWidths(doc)
}

// rectangular returns the shape of m or a ValidationError if it is empty or ragged.
func rectangular(m [][]float64, layer int, kind string) (rows, cols int, err error) {
	if len(m) == 0 || len(m[0]) == 0 {
		return 0, 0, invalid("empty_matrix", layer, ErrMalformed, "%s matrix has no elements", kind)
	}
	cols = len(m[0])
	for r, row := range m {
		if len(row) != cols {
			return 0, 0, invalid("ragged_matrix", layer, ErrMalformed,
				"%s row %d has %d values, want %d", kind, r, len(row), cols)
		}
	}
	return len(m), cols, nil
}

func validateWidths(doc *Document) error {
	if len(doc.Widths) != len(doc.Weights)+1 {
		return invalid("widths", -1, ErrMalformed,
			"%d widths for %d layers", len(doc.Widths), len(doc.Weights))
	}
	if doc.Widths[0] != len(doc.Weights[0]) {
		return invalid("widths", 0, ErrMalformed,
			"input width %d but weight has %d rows", doc.Widths[0], len(doc.Weights[0]))
	}
	for i, w := range doc.Weights {
		if doc.Widths[i+1] != len(w[0]) {
			return invalid("widths", i, ErrMalformed,
				"width %d but weight has %d columns", doc.Widths[i+1], len(w[0]))
		}
	}
	return nil
}
