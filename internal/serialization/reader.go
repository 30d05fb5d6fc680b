package serialization

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Decode reads a JSON document from r and rebuilds the network it describes.
//
// Unknown fields are rejected. The document is validated and its checksum
// verified before any matrix is built.
func Decode(r io.Reader) (*nn.Network, error) {
	dec := json.NewDecoder(io.LimitReader(r, MaxDocumentSize))
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc.Network()
}

// Load reads the document at path and rebuilds its network.
func Load(path string) (*nn.Network, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	net, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return net, nil
}

// Network validates the document and builds a network from its parameters.
func (d *Document) Network() (*nn.Network, error) {
	if err := ValidateDocument(d); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := ValidateChecksum(d); err != nil {
		return nil, err
	}

	weights, err := fromRowArrays(d.Weights)
	if err != nil {
		return nil, fmt.Errorf("weights: %w", err)
	}
	biases, err := fromRowArrays(d.Biases)
	if err != nil {
		return nil, fmt.Errorf("biases: %w", err)
	}
	return nn.FromParameters(d.Name, weights, biases)
}

func fromRowArrays(arrays [][][]float64) ([]*matrix.Matrix, error) {
	out := make([]*matrix.Matrix, len(arrays))
	for i, rows := range arrays {
		m, err := matrix.FromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}
