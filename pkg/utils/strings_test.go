package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"http://es1:9200", []string{"http://es1:9200"}},
		{"http://es1:9200, http://es2:9200 ,", []string{"http://es1:9200", "http://es2:9200"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitList(tt.in), tt.in)
	}
}
