package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeCityNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		shop   []string
		manual []string
		want   []string
	}{
		{
			name:   "dedupes and sorts",
			shop:   []string{"Mumbai", "Delhi"},
			manual: []string{"Delhi", "Pune"},
			want:   []string{"Delhi", "Mumbai", "Pune"},
		},
		{
			name:   "drops empty names",
			shop:   []string{"", "Delhi"},
			manual: []string{""},
			want:   []string{"Delhi"},
		},
		{
			name: "falls back to defaults when empty",
			want: []string{"Bareilly", "Bengaluru", "Chennai", "Delhi", "Kolkata", "Mumbai"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeCityNames(tt.shop, tt.manual))
		})
	}
}
