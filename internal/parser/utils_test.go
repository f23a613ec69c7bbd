package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"  Catégorie ", "CATÉGORIE"},
		{"categorie", "CATEGORIE"},
		{"ID\nTag", "ID TAG"},
		{"ID\r\nTag", "ID TAG"},
		{"\tdescription\n", "DESCRIPTION"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeHeader(tt.in), "input %q", tt.in)
	}
}
