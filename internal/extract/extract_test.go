package extract

import (
	"bytes"
	"testing"
)

func TestFromBytesUnreadableInput(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"plain text", []byte("Diagnosis: hypertension")},
		{"truncated header", []byte("%PDF-1.4")},
		{"binary garbage", bytes.Repeat([]byte{0x00, 0xff, 0x13}, 200)},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.FromBytes(tt.data); got != "" {
				t.Errorf("FromBytes() = %q, want empty string", got)
			}
		})
	}
}
