// File path: internal/intent/classifier_test.go
package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadClassifier(t *testing.T) *Classifier {
	t.Helper()
	classifier, err := Load()
	require.NoError(t, err)
	return classifier
}

func TestClassifyGreetingWords(t *testing.T) {
	classifier := loadClassifier(t)
	for _, query := range []string{"hi", "hello", "hey", "greetings", "  Hi  ", "HELLO"} {
		got := classifier.Classify(query)
		assert.Equal(t, Greeting, got.Intent, "query %q", query)
		assert.Equal(t, 0.95, got.Confidence, "query %q", query)
		assert.Equal(t, []string{"greeting"}, got.Entities, "query %q", query)
	}
}

func TestClassifyProjectInfo(t *testing.T) {
	classifier := loadClassifier(t)
	got := classifier.Classify("What is VendorVault?")
	assert.Equal(t, ProjectInfo, got.Intent)
	assert.Contains(t, got.Entities, "vendorvault")
	assert.LessOrEqual(t, got.Confidence, 1.0)
	assert.Greater(t, got.Confidence, defaultConfidence)
}

func TestClassifyThanks(t *testing.T) {
	classifier := loadClassifier(t)
	got := classifier.Classify("thanks!")
	assert.Equal(t, ThanksPositive, got.Intent)
}

func TestClassifyFallsBackToGeneral(t *testing.T) {
	classifier := loadClassifier(t)
	got := classifier.Classify("zxqv wibble")
	assert.Equal(t, General, got.Intent)
	assert.Equal(t, defaultConfidence, got.Confidence)
	assert.Empty(t, got.Entities)
}

func TestClassifyEmptyQuery(t *testing.T) {
	classifier := loadClassifier(t)
	got := classifier.Classify("")
	assert.Equal(t, General, got.Intent)
	assert.Equal(t, defaultConfidence, got.Confidence)
}

func TestClassifyConfidenceClamped(t *testing.T) {
	classifier := loadClassifier(t)
	// Stacks several compliance patterns and entities in one query.
	got := classifier.Classify("compliance document certificate renewal tracking")
	assert.LessOrEqual(t, got.Confidence, 1.0)
	assert.GreaterOrEqual(t, got.Confidence, 0.0)
}

func TestClassifyTieKeepsDefinitionOrder(t *testing.T) {
	classifier := &Classifier{intents: []Intent{
		{Name: "first", Patterns: []string{"widget"}},
		{Name: "second", Patterns: []string{"widget"}},
	}}
	got := classifier.Classify("a widget question")
	assert.Equal(t, "first", got.Intent)
}

func TestSuggestionsPerIntent(t *testing.T) {
	classifier := loadClassifier(t)
	for _, in := range classifier.Intents() {
		suggestions := classifier.Suggestions(in.Name)
		assert.GreaterOrEqual(t, len(suggestions), 2, "intent %s", in.Name)
		assert.LessOrEqual(t, len(suggestions), 4, "intent %s", in.Name)
	}
}

func TestSuggestionsUnknownIntentFallsBack(t *testing.T) {
	classifier := loadClassifier(t)
	assert.Equal(t, classifier.Suggestions(General), classifier.Suggestions("no-such-intent"))
}

func TestLoadRejectsMissingGeneral(t *testing.T) {
	_, err := parseIntents([]byte("intents:\n  - name: greeting\n    base_confidence: 0.95\n"))
	assert.Error(t, err)
}
