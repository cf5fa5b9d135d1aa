package typename_test

import (
	"reflect"
	"testing"

	"github.com/leap-fish/ntype/typename"
	"github.com/stretchr/testify/assert"
)

func TestExtractor_Extract(t *testing.T) {
	cases := []struct {
		name      string
		extractor typename.Extractor
		signature string
		expected  string
	}{
		{"plain", typename.Default, "func(int)", "int"},
		{"nested parens", typename.Default, "func(func(int) string)", "func(int) string"},
		{"leading spaces skipped", typename.Default, "func(   int)", "int"},
		{"missing prefix", typename.Default, "int)", ""},
		{"missing suffix", typename.Default, "func(int", ""},
		{"empty signature", typename.Default, "", ""},
		{"empty name", typename.Default, "func()", ""},
		{"whitespace only", typename.Extractor{Prefix: "<", Suffix: "!"}, "< \t!", "\t"},
		{"gcc style", typename.Extractor{Prefix: "=", Suffix: "]"},
			"auto stripped_type_name() [with Type = int]", "int"},
		{"clang style", typename.Extractor{Prefix: "=", Suffix: "]"},
			"auto stripped_type_name() [Type = std::vector<int>]", "std::vector<int>"},
		{"inverted bounds", typename.Extractor{Prefix: "[", Suffix: "]"}, "a]b[c", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, c.extractor.Extract(c.signature))
		})
	}
}

type Position struct {
	X, Y float64
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "func(int)", typename.Signature(reflect.TypeOf(0)))
	assert.Equal(t, "func(*typename_test.Position)", typename.Signature(reflect.TypeOf(&Position{})))
	assert.Equal(t, "", typename.Signature(nil))
}
