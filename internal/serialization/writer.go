package serialization

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// NewDocument snapshots the parameters of net into a Document.
func NewDocument(net *nn.Network) *Document {
	doc := &Document{
		FormatVersion: FormatVersion,
		MLPVersion:    MLPVersion,
		ID:            uuid.NewString(),
		Name:          net.Name(),
		CreatedAt:     time.Now().UTC(),
		Widths:        net.Widths(),
		Weights:       toRowArrays(net.Weights()),
		Biases:        toRowArrays(net.Biases()),
	}
	sum := ComputeChecksum(doc.Weights, doc.Biases)
	doc.Checksum = hex.EncodeToString(sum[:])
	return doc
}

// Encode writes net to w as an indented JSON document.
//
// Networks holding NaN or infinite parameters cannot be encoded.
func Encode(w io.Writer, net *nn.Network) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(net)); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

// Save writes net to the file at path, replacing any existing file.
func Save(path string, net *nn.Network) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", cerr)
		}
	}()
	return Encode(file, net)
}

func toRowArrays(ms []*matrix.Matrix) [][][]float64 {
	out := make([][][]float64, len(ms))
	for i, m := range ms {
		out[i] = m.ToRows()
	}
	return out
}
