package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexibleStringValue(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"string", `"Marmara Depremi"`, "Marmara Depremi"},
		{"integer", `1999`, "1999"},
		{"float", `3.5`, "3.5"},
		{"bool", `true`, "true"},
		{"null", `null`, ""},
		{"empty", ``, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FlexibleStringValue(json.RawMessage(tc.raw)))
		})
	}
}

func TestFlexibleIntValue(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		want   int
		wantOK bool
	}{
		{"integer", `4`, 4, true},
		{"float truncates", `4.7`, 4, true},
		{"quoted integer", `"4"`, 4, true},
		{"quoted with spaces", `" 4 "`, 4, true},
		{"non-numeric string", `"çok önemli"`, 0, false},
		{"null", `null`, 0, false},
		{"empty", ``, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FlexibleIntValue(json.RawMessage(tc.raw))
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
