package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Python", "python"},
		{"  Big-Data  ", "bigdata"},
		{"big_data", "bigdata"},
		{"Big Data", "bigdata"},
		{"NLP-BigData-Engineering", "nlpbigdataengineering"},
		{"C++", "c++"},
		{"big data|nlp", "bigdata|nlp"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "Big-Data", "big_data", " Machine  Learning ", "A-_-B", "ÄÖÜ-x"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}
