package repository

import (
	"reflect"
	"testing"
)

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"valid list", `["jazz","music"]`, []string{"jazz", "music"}},
		{"empty array", `[]`, []string{}},
		{"empty string", "", nil},
		{"json null", "null", nil},
		// Stored garbage fails open: the fragment is dropped, nothing aborts.
		{"malformed json", `["jazz",`, nil},
		{"wrong type", `{"a":1}`, nil},
		{"plain text", "Monday, Friday", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeList(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEncodeList(t *testing.T) {
	t.Run("nil encodes as empty array", func(t *testing.T) {
		got, err := encodeList(nil)
		if err != nil {
			t.Fatalf("encodeList(nil) error = %v", err)
		}
		if got != "[]" {
			t.Errorf("encodeList(nil) = %q, want %q", got, "[]")
		}
	})

	t.Run("round trip", func(t *testing.T) {
		in := []string{"foodie trails", "wine appreciation"}
		encoded, err := encodeList(in)
		if err != nil {
			t.Fatalf("encodeList() error = %v", err)
		}
		if got := decodeList(encoded); !reflect.DeepEqual(got, in) {
			t.Errorf("round trip = %v, want %v", got, in)
		}
	})
}
