// Package serialization saves and loads trained networks as JSON documents.
//
// A document records the layer widths and every weight and bias matrix as nested
// row arrays, together with a SHA-256 checksum of the parameter values:
//
//	{
//	  "format_version": 1,
//	  "mlp_version": "0.1.0",
//	  "id": "5b0e2f52-...",
//	  "name": "xor",
//	  "created_at": "2025-01-01T00:00:00Z",
//	  "widths": [2, 4, 1],
//	  "checksum": "<hex sha256>",
//	  "weights": [[[...], [...]], [[...], ...]],
//	  "biases": [[[...]], [[...]]]
//	}
//
// Floats are written in their shortest round-trip form, so a loaded network
// produces bit-identical outputs. Forward caches and optimizer moments are not stored.
//
// Example usage:
//
//	if err := serialization.Save("xor.json", net); err != nil {
//	    log.Fatal(err)
//	}
//
//	net, err := serialization.Load("xor.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
package serialization
