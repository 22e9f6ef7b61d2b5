// Package preprocess turns wire-level inputs into the map[string][]byte
// shape the model runner expects, borrowing the request's byte slices
// rather than copying them.
package preprocess

import "chassisml.io/coreservice/internal/inferenceserver/protowire"

// ModelInput is one prediction's keyed input set.
type ModelInput map[string][]byte

// V2 flattens a typed Predict request's inputs into a ModelInput, reusing
// each data input's backing bytes without copying; text inputs are
// converted from string to bytes, which copies them. It returns the input map
// and the total input size in bytes, the latter feeding the
// data_processed_size_in_bytes counter.
func V2(inputs []*protowire.InputItem) (ModelInput, int) {
	out := make(ModelInput, len(inputs))
	total := 0
	for _, in := range inputs {
		var val []byte
		switch in.Source {
		case protowire.InputSourceText:
			val = []byte(in.Text)
		case protowire.InputSourceData:
			val = in.Data
		default:
			continue
		}
		total += len(val)
		out[in.Key] = val
	}
	return out, total
}

// V1 flattens a legacy batched Run request into one ModelInput per batch
// element, preserving request order.
func V1(sets []*protowire.InputSetV1) ([]ModelInput, int) {
	total := 0
	out := make([]ModelInput, len(sets))
	for i, set := range sets {
		m := make(ModelInput, len(set.Input))
		for _, kv := range set.Input {
			total += len(kv.Data)
			m[kv.Key] = kv.Data
		}
		out[i] = m
	}
	return out, total
}
