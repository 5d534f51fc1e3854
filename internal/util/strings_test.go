package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOrNone(t *testing.T) {
	assert.Equal(t, "(none)", JoinOrNone(nil))
	assert.Equal(t, "(none)", JoinOrNone([]string{}))
	assert.Equal(t, "a", JoinOrNone([]string{"a"}))
	assert.Equal(t, "a, b", JoinOrNone([]string{"a", "b"}))
}

func TestJoinOrDefault(t *testing.T) {
	assert.Equal(t, "-", JoinOrDefault(nil, "-"))
	assert.Equal(t, "in, out", JoinOrDefault([]string{"in", "out"}, "-"))
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "points"},
		{1, "point"},
		{2, "points"},
		{-1, "points"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Pluralize(tt.count, "point", "points"), "count=%d", tt.count)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"test", "tset", 2},      // transposition (2 edits)
		{"test", "tests", 1},     // insertion
		{"tests", "test", 1},     // deletion
		{"test", "Test", 1},      // case difference
		{"kitten", "sitting", 3}, // classic example
		{"flaw", "lawn", 2},      // substitution + deletion
	}

	for _, tt := range tests {
		t.Run(tt.a+"->"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevenshteinDistance(tt.a, tt.b))
		})
	}
}

func TestSuggestSimilar(t *testing.T) {
	candidates := []string{"clientsConnected", "topicSubscriptions", "mqttSessions", "messagesInOut"}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "missing letter",
			input:    "mqttSesions",
			expected: []string{"mqttSessions"},
		},
		{
			name:     "case insensitive",
			input:    "MESSAGESINOUTT",
			expected: []string{"messagesInOut"},
		},
		{
			name:     "exact match returns it",
			input:    "clientsConnected",
			expected: []string{"clientsConnected"},
		},
		{
			name:     "no close match returns nil",
			input:    "retained",
			expected: nil,
		},
		{
			name:     "empty input returns nil",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestSimilar(tt.input, candidates, 3))
		})
	}
}

func TestSuggestSimilar_OrderByDistance(t *testing.T) {
	got := SuggestSimilar("tes", []string{"tests", "test", "best"}, 2)
	assert.Equal(t, []string{"test", "best", "tests"}, got)
}

func TestSuggestSimilar_EmptyCandidates(t *testing.T) {
	assert.Nil(t, SuggestSimilar("test", nil, 3))
	assert.Nil(t, SuggestSimilar("test", []string{}, 3))
}
