package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCompanyHint_LabeledLine(t *testing.T) {
	hint := ExtractCompanyHint("Company: Centene Corporation")
	assert.Equal(t, "Centene", hint)
}

func TestExtractCompanyHint_AboutPhrase(t *testing.T) {
	hint := ExtractCompanyHint("About Acme Widgets")
	assert.Equal(t, "Acme Widgets", hint)
}

func TestExtractCompanyHint_SeekingPhrase(t *testing.T) {
	hint := ExtractCompanyHint("Globex is seeking a program director.")
	assert.Equal(t, "Globex", hint)
}

func TestExtractCompanyHint_StripsSuffix(t *testing.T) {
	hint := ExtractCompanyHint("Employer: Initech Corp.")
	assert.Equal(t, "Initech", hint)
}

func TestExtractCompanyHint_NoMatch(t *testing.T) {
	assert.Equal(t, "", ExtractCompanyHint("no identifiable employer here"))
}

func TestExtractPositionHint_LabeledLine(t *testing.T) {
	hint := ExtractPositionHint("Position: Vice President of Operations")
	assert.Equal(t, "Vice President of Operations", hint)
}

func TestExtractPositionHint_FirstLine(t *testing.T) {
	hint := ExtractPositionHint("Senior Program Director\nAcme is hiring.")
	assert.Equal(t, "Senior Program Director", hint)
}

func TestExtractPositionHint_RejectsTooShort(t *testing.T) {
	assert.Equal(t, "", ExtractPositionHint("VP\n"))
}

func TestExtractPositionHint_NoMatch(t *testing.T) {
	assert.Equal(t, "", ExtractPositionHint("42 7 %%"))
}
