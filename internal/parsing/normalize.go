// Package parsing provides the shared skill-token normalization and text
// tokenization used by both the compatibility scorer and the resume optimizer.
// Both components must tokenize identically so their scores stay comparable.
package parsing

import "strings"

// skillAliases maps common skill name variants to canonical lowercase tokens
var skillAliases = map[string]string{
	"golang":        "go",
	"go lang":       "go",
	"js":            "javascript",
	"ts":            "typescript",
	"k8s":           "kubernetes",
	"react.js":      "react",
	"reactjs":       "react",
	"vue.js":        "vue",
	"vuejs":         "vue",
	"nodejs":        "node.js",
	"node":          "node.js",
	"postgre":       "postgresql",
	"postgres":      "postgresql",
	"amazon web services": "aws",
	"ml":            "machine learning",
	"tf":            "terraform",
}

// NormalizeSkillToken normalizes a skill name to its canonical lowercase form.
// Returns the empty string for blank input.
func NormalizeSkillToken(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if normalized == "" {
		return ""
	}

	// Collapse internal runs of whitespace
	normalized = strings.Join(strings.Fields(normalized), " ")

	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSkillTokens normalizes and deduplicates a list of skill names,
// preserving first-seen order. Blank entries are dropped.
func NormalizeSkillTokens(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		normalized := NormalizeSkillToken(skill)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// SkillSet returns the normalized skills as a set for membership checks
func SkillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		normalized := NormalizeSkillToken(skill)
		if normalized != "" {
			set[normalized] = true
		}
	}
	return set
}
