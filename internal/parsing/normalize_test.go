package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkillToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"lowercases", "Python", "python"},
		{"trims whitespace", "  aws  ", "aws"},
		{"collapses inner whitespace", "machine   learning", "machine learning"},
		{"golang alias", "Golang", "go"},
		{"js alias", "JS", "javascript"},
		{"k8s alias", "k8s", "kubernetes"},
		{"reactjs alias", "ReactJS", "react"},
		{"node alias", "Node", "node.js"},
		{"postgres alias", "Postgres", "postgresql"},
		{"unknown skill passes through", "terraform", "terraform"},
		{"c++ preserved", "C++", "c++"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillToken(tt.input))
		})
	}
}

func TestNormalizeSkillTokens_DeduplicatesPreservingOrder(t *testing.T) {
	out := NormalizeSkillTokens([]string{"Python", "AWS", "python", "Golang", "go", ""})
	assert.Equal(t, []string{"python", "aws", "go"}, out)
}

func TestNormalizeSkillTokens_Empty(t *testing.T) {
	assert.Nil(t, NormalizeSkillTokens(nil))
	assert.Nil(t, NormalizeSkillTokens([]string{}))
}

func TestSkillSet(t *testing.T) {
	set := SkillSet([]string{"Python", "k8s", ""})
	assert.True(t, set["python"])
	assert.True(t, set["kubernetes"])
	assert.False(t, set[""])
	assert.Len(t, set, 2)
}
