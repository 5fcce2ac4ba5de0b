package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		record string
		want   string
	}{
		{"abc123\trefs/heads/topic/hez/foo-keep", "topic/hez/foo-keep"},
		{"0f0f0f0f refs/heads/topic/hez/bar", "topic/hez/bar"},
		// Cutset strip eats leading characters from the branch name too.
		{"0f0f0f0f refs/heads/hez-fix", "z-fix"},
		{"  0f0f   refs/heads/topic/x  ", "topic/x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.record, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractName(tt.record))
		})
	}
}

func TestNewBranch_Display(t *testing.T) {
	b := NewBranch("abc123\trefs/heads/topic/hez/foo", "-keep")

	assert.Equal(t, "topic/hez/foo", b.Name())
	assert.Equal(t, "topic/hez/foo bc123", b.Display())
	assert.Equal(t, "[ ] topic/hez/foo bc123", b.String())
	assert.False(t, b.Protected())
}

func TestBranch_Toggle(t *testing.T) {
	b := NewBranch("abc123\trefs/heads/topic/hez/foo", "-keep")

	assert.True(t, b.Toggle())
	assert.True(t, b.Selected())
	assert.Equal(t, "[x]", b.Mark())

	assert.False(t, b.Toggle())
	assert.False(t, b.Selected())
}

func TestBranch_ToggleProtected(t *testing.T) {
	b := NewBranch("abc123\trefs/heads/topic/hez/foo-keep", "-keep")
	assert.True(t, b.Protected())

	for i := 0; i < 5; i++ {
		assert.False(t, b.Toggle())
		assert.False(t, b.Selected())
	}
}

func TestBranch_EmptyKeepSuffixProtectsNothing(t *testing.T) {
	b := NewBranch("abc123\trefs/heads/topic/hez/foo-keep", "")

	assert.False(t, b.Protected())
	assert.True(t, b.Toggle())
}
