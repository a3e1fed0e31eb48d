package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "local zero prefix", input: "0912345678", want: "+84912345678"},
		{name: "bare country code", input: "84912345678", want: "+84912345678"},
		{name: "already international", input: "+84912345678", want: "+84912345678"},
		{name: "spaces and dashes", input: "091 234-5678", want: "+84912345678"},
		{name: "prefix 3", input: "0323456789", want: "+84323456789"},
		{name: "prefix 5", input: "0523456789", want: "+84523456789"},
		{name: "prefix 7", input: "0723456789", want: "+84723456789"},
		{name: "too short", input: "091234567", wantErr: true},
		{name: "too long", input: "09123456789", wantErr: true},
		{name: "landline prefix", input: "0212345678", wantErr: true},
		{name: "foreign country code", input: "+628123456789", wantErr: true},
		{name: "letters", input: "09abc45678", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "*********678", MaskPhone("+84912345678"))
	assert.Equal(t, "678", MaskPhone("678"))
	assert.Equal(t, "", MaskPhone(""))
}
