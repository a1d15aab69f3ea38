package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"Nil", nil, 0},
		{"Int", 7, 7},
		{"Float", float64(6), 6},
		{"JSONNumber", json.Number("5"), 5},
		{"JSONNumberFloat", json.Number("4.0"), 4},
		{"String", " 3 ", 3},
		{"Bytes", []byte("2"), 2},
		{"Garbage", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in))
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "03306", "03306"},
		{"JSONNumber", json.Number("418320"), "418320"},
		{"LargeFloat", float64(12345678), "12345678"},
		{"Int", 42, "42"},
		{"Bytes", []byte("x"), "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}
