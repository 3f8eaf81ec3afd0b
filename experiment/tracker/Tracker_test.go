package tracker

import (
	"testing"
)

func TestFileStore(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("newFileStore: %v", err)
	}

	data, err := store.Load("missing")
	if err != nil || data != nil {
		t.Errorf("load missing: want(nil, nil) have(%v, %v)", data, err)
	}

	want := []float64{1.5, -1, 0.25}
	if err := Encode(store, "returns", want); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var have []float64
	if err := Decode(store, "returns", &have); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(have) != len(want) {
		t.Fatalf("decoded length: want(%v) have(%v)", len(want), len(have))
	}
	for i := range want {
		if have[i] != want[i] {
			t.Errorf("decoded[%d]: want(%v) have(%v)", i, want[i], have[i])
		}
	}

	if err := Decode(store, "missing", &have); err == nil {
		t.Error("expected error decoding missing key")
	}
}
