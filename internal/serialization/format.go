package serialization

import "time"

// Format constants.
const (
	FormatVersion = 1       // Current document version
	MLPVersion    = "0.1.0" // Version recorded in documents written by this package

	MaxLayers       = 1024              // Upper bound on weight matrices per document
	MaxNameLen      = 256               // Upper bound on the network name, in bytes
	MaxDocumentSize = 256 * 1024 * 1024 // Decode reads at most this many bytes
)

// Document is the on-disk representation of a network.
type Document struct {
	FormatVersion int           `json:"format_version"` // Version of the document format
	MLPVersion    string        `json:"mlp_version"`    // Version of the writer
	ID            string        `json:"id"`             // Random UUID assigned on write (optional on read)
	Name          string        `json:"name"`           // Network display name
	CreatedAt     time.Time     `json:"created_at"`     // When the document was written
	Widths        []int         `json:"widths"`         // Input, hidden..., output widths
	Checksum      string        `json:"checksum"`       // Hex SHA-256 of the parameters (optional on read)
	Weights       [][][]float64 `json:"weights"`        // Weight matrices as row arrays
	Biases        [][][]float64 `json:"biases"`         // Bias matrices as row arrays
}
