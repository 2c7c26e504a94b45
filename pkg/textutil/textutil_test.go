package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Met with <b>Jane</b>", "Met with Jane"},
		{"<script>alert(1)</script>", ""},
		{"rent & utilities", "rent & utilities"},
		{"  line one\nline two  ", "line one\nline two"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PlainText(tt.in), tt.in)
	}
}

func TestPlainTextPtr(t *testing.T) {
	assert.Nil(t, PlainTextPtr(nil))

	blank := "<p></p>"
	assert.Nil(t, PlainTextPtr(&blank))

	note := "<i>called</i>"
	got := PlainTextPtr(&note)
	if assert.NotNil(t, got) {
		assert.Equal(t, "called", *got)
	}
}
