package types_test

import (
	"testing"

	"github.com/arthur-debert/dotbind/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestBasePatternLine(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		dir       string
		line      string
	}{
		{"single", []string{"home"}, "home", "/home/**"},
		{"nested", []string{"hosts", "laptop"}, "hosts/laptop", "/hosts/laptop/**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := types.BasePattern{Fragments: tt.fragments}
			assert.Equal(t, tt.dir, b.Dir())
			assert.Equal(t, tt.line, b.Line())
		})
	}
}

func TestIsAncestorOf(t *testing.T) {
	home := types.BasePattern{Fragments: []string{"home"}}

	tests := []struct {
		name      string
		fragments []string
		want      bool
	}{
		{"direct_child", []string{"home", ".bashrc"}, true},
		{"deep_descendant", []string{"home", ".config", "nvim"}, true},
		{"itself", []string{"home"}, false},
		{"string_prefix_sibling", []string{"home2", ".bashrc"}, false},
		{"unrelated", []string{"etc", "hosts"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, home.IsAncestorOf(tt.fragments))
		})
	}
}
