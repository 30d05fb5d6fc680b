package serialization

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

type RoundTripSuite struct {
	suite.Suite
	net    *nn.Network
	inputs []*matrix.Matrix
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, new(RoundTripSuite))
}

func (s *RoundTripSuite) SetupTest() {
	net, err := nn.NewNetwork(nn.Config{
		Name:   "roundtrip",
		Input:  3,
		Inner:  []int{5, 4},
		Output: 2,
		Rand:   nn.NewRand(7),
	})
	s.Require().NoError(err)
	s.net = net

	s.inputs = nil
	for _, vals := range [][]float64{{0, 0, 0}, {1, 0.5, -0.25}, {0.1, 0.2, 0.3}} {
		in, err := matrix.FromRows([][]float64{vals})
		s.Require().NoError(err)
		s.inputs = append(s.inputs, in)
	}
}

func (s *RoundTripSuite) assertSameOutputs(loaded *nn.Network) {
	s.Equal(s.net.Name(), loaded.Name())
	s.Equal(s.net.Widths(), loaded.Widths())
	for _, in := range s.inputs {
		want, err := s.net.Infer(in)
		s.Require().NoError(err)
		got, err := loaded.Infer(in)
		s.Require().NoError(err)
		s.True(want.Equal(got), "outputs differ: %v vs %v", want, got)
	}
}

func (s *RoundTripSuite) TestEncodeDecode() {
	var buf bytes.Buffer
	s.Require().NoError(Encode(&buf, s.net))

	loaded, err := Decode(&buf)
	s.Require().NoError(err)
	s.assertSameOutputs(loaded)

	for i := 0; i < s.net.NumLayers(); i++ {
		s.True(s.net.Weight(i).Equal(loaded.Weight(i)), "weight %d", i)
		s.True(s.net.Bias(i).Equal(loaded.Bias(i)), "bias %d", i)
	}
}

func (s *RoundTripSuite) TestSaveLoad() {
	path := filepath.Join(s.T().TempDir(), "model.json")
	s.Require().NoError(Save(path, s.net))

	loaded, err := Load(path)
	s.Require().NoError(err)
	s.assertSameOutputs(loaded)
}

func (s *RoundTripSuite) TestDocumentFields() {
	doc := NewDocument(s.net)
	s.Equal(FormatVersion, doc.FormatVersion)
	s.Equal(MLPVersion, doc.MLPVersion)
	s.Equal([]int{3, 5, 4, 2}, doc.Widths)
	s.Len(doc.Weights, 3)
	s.Len(doc.Biases, 3)
	s.Len(doc.Checksum, 64)
	s.False(doc.CreatedAt.IsZero())

	_, err := uuid.Parse(doc.ID)
	s.NoError(err)
	s.NotEqual(doc.ID, NewDocument(s.net).ID)
}

func (s *RoundTripSuite) TestTamperedValueDetected() {
	var buf bytes.Buffer
	s.Require().NoError(Encode(&buf, s.net))

	var doc Document
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &doc))
	doc.Weights[1][0][0] += 1e-9

	_, err := doc.Network()
	s.ErrorIs(err, ErrChecksumMismatch)
}

func (s *RoundTripSuite) TestMissingChecksumAccepted() {
	doc := NewDocument(s.net)
	doc.Checksum = ""

	loaded, err := doc.Network()
	s.Require().NoError(err)
	s.assertSameOutputs(loaded)
}

func (s *RoundTripSuite) TestLoadedNetworkIsIndependent() {
	doc := NewDocument(s.net)
	loaded, err := doc.Network()
	s.Require().NoError(err)

	doc.Weights[0][0][0] = 42
	s.NotEqual(42.0, loaded.Weight(0).At(0, 0))
}

// validDoc returns a minimal well-formed 2→2→1 document.
func validDoc() *Document {
	return &Document{
		FormatVersion: FormatVersion,
		MLPVersion:    MLPVersion,
		Name:          "tiny",
		Widths:        []int{2, 2, 1},
		Weights: [][][]float64{
			{{0.1, 0.2}, {0.3, 0.4}},
			{{0.5}, {0.6}},
		},
		Biases: [][][]float64{
			{{0.01, 0.02}},
			{{0.03}},
		},
	}
}

func TestValidateDocument_Valid(t *testing.T) {
	require.NoError(t, ValidateDocument(validDoc()))

	net, err := validDoc().Network()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, net.Widths())
	assert.Equal(t, 0.6, net.Weight(1).At(1, 0))
}

func TestValidateDocument_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *Document)
		wantType string
		wantErr  error
	}{
		{
			name:     "future version",
			mutate:   func(d *Document) { d.FormatVersion = 2 },
			wantType: "unsupported_version",
			wantErr:  ErrUnsupportedVersion,
		},
		{
			name:     "bad id",
			mutate:   func(d *Document) { d.ID = "not-a-uuid" },
			wantType: "bad_id",
			wantErr:  ErrMalformed,
		},
		{
			name:     "long name",
			mutate:   func(d *Document) { d.Name = strings.Repeat("x", MaxNameLen+1) },
			wantType: "name_too_long",
			wantErr:  ErrMalformed,
		},
		{
			name: "single layer",
			mutate: func(d *Document) {
				d.Weights = d.Weights[:1]
				d.Biases = d.Biases[:1]
				d.Widths = d.Widths[:2]
			},
			wantType: "layer_count",
			wantErr:  nn.ErrShapeChain,
		},
		{
			name:     "missing bias",
			mutate:   func(d *Document) { d.Biases = d.Biases[:1] },
			wantType: "layer_count",
			wantErr:  nn.ErrShapeChain,
		},
		{
			name:     "empty weight",
			mutate:   func(d *Document) { d.Weights[0] = [][]float64{} },
			wantType: "empty_matrix",
			wantErr:  ErrMalformed,
		},
		{
			name:     "ragged weight",
			mutate:   func(d *Document) { d.Weights[0][1] = []float64{0.3} },
			wantType: "ragged_matrix",
			wantErr:  ErrMalformed,
		},
		{
			name:     "bias width",
			mutate:   func(d *Document) { d.Biases[0] = [][]float64{{0.01}} },
			wantType: "bias_shape",
			wantErr:  nn.ErrShapeChain,
		},
		{
			name:     "bias rows",
			mutate:   func(d *Document) { d.Biases[1] = [][]float64{{0.03}, {0.04}} },
			wantType: "bias_shape",
			wantErr:  nn.ErrShapeChain,
		},
		{
			name: "broken chain",
			mutate: func(d *Document) {
				d.Weights[1] = [][]float64{{0.5}, {0.6}, {0.7}}
				d.Widths = []int{2, 2, 1}
			},
			wantType: "shape_chain",
			wantErr:  nn.ErrShapeChain,
		},
		{
			name:     "widths count",
			mutate:   func(d *Document) { d.Widths = []int{2, 1} },
			wantType: "widths",
			wantErr:  ErrMalformed,
		},
		{
			name:     "widths value",
			mutate:   func(d *Document) { d.Widths = []int{2, 3, 1} },
			wantType: "widths",
			wantErr:  ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(doc)

			err := ValidateDocument(doc)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.wantType, verr.Type)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = doc.Network()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := invalid("shape_chain", 3, nn.ErrShapeChain, "got %d", 7)
	assert.Equal(t, "shape_chain: layer 3: got 7", err.Error())

	err = invalid("widths", -1, ErrMalformed, "bad")
	assert.Equal(t, "widths: bad", err.Error())
}

func TestComputeChecksum(t *testing.T) {
	doc := validDoc()
	a := ComputeChecksum(doc.Weights, doc.Biases)
	b := ComputeChecksum(doc.Weights, doc.Biases)
	assert.Equal(t, a, b)

	// Swapping weights and biases changes the digest.
	c := ComputeChecksum(doc.Biases, doc.Weights)
	assert.NotEqual(t, a, c)

	// Negative zero has different bits than zero.
	doc.Biases[0][0][0] = 0
	zero := ComputeChecksum(doc.Weights, doc.Biases)
	doc.Biases[0][0][0] = negZero()
	assert.NotEqual(t, zero, ComputeChecksum(doc.Weights, doc.Biases))
}

func negZero() float64 {
	z := 0.0
	return -z
}

func TestValidateChecksum_BadHex(t *testing.T) {
	doc := validDoc()
	doc.Checksum = "not-hex"
	assert.ErrorIs(t, ValidateChecksum(doc), ErrChecksumMismatch)

	doc.Checksum = "abcd"
	assert.ErrorIs(t, ValidateChecksum(doc), ErrChecksumMismatch)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"format_version":1,"layers":3}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse document")
}

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestDecode_RejectsChainViolation(t *testing.T) {
	doc := validDoc()
	doc.Weights[1] = [][]float64{{0.5}, {0.6}, {0.7}}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = Decode(bytes.NewReader(data))
	assert.ErrorIs(t, err, nn.ErrShapeChain)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
