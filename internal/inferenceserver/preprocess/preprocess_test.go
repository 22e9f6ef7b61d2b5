package preprocess

import (
	"testing"

	"chassisml.io/coreservice/internal/inferenceserver/protowire"
)

func TestV2FlattensTextAndDataInputs(t *testing.T) {
	inputs := []*protowire.InputItem{
		{Key: "a", Source: protowire.InputSourceText, Text: "hello"},
		{Key: "b", Source: protowire.InputSourceData, Data: []byte{1, 2, 3}},
	}

	out, total := V2(inputs)

	if string(out["a"]) != "hello" {
		t.Errorf("out[a] = %q, want %q", out["a"], "hello")
	}
	if len(out["b"]) != 3 {
		t.Errorf("out[b] len = %d, want 3", len(out["b"]))
	}
	if total != len("hello")+3 {
		t.Errorf("total = %d, want %d", total, len("hello")+3)
	}
}

func TestV1FlattensBatchedInputs(t *testing.T) {
	sets := []*protowire.InputSetV1{
		{Input: []*protowire.KeyedInputV1{{Key: "x", Data: []byte("one")}}},
		{Input: []*protowire.KeyedInputV1{{Key: "x", Data: []byte("two")}}},
	}

	out, total := V1(sets)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(out))
	}
	if string(out[0]["x"]) != "one" || string(out[1]["x"]) != "two" {
		t.Errorf("batch elements out of order: %v", out)
	}
	if total != 6 {
		t.Errorf("total = %d, want 6", total)
	}
}
