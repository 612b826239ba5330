package profile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/nworkman/resume-retool/internal/types"
)

//go:embed default_policy.json
var defaultPolicyJSON []byte

// DefaultPolicy returns the built-in curated policy tables. The tables are
// parsed fresh on every call so callers cannot alias shared state.
func DefaultPolicy() *types.PolicyTables {
	tables, err := ParsePolicy(defaultPolicyJSON)
	if err != nil {
		// The embedded file is validated by tests; a parse failure here is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded default policy is invalid: %v", err))
	}
	return tables
}

// LoadPolicy loads policy tables from a JSON file on disk.
func LoadPolicy(path string) (*types.PolicyTables, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParsePolicy(content)
}

// ParsePolicy parses policy tables from JSON bytes. Missing tables default to
// empty, never nil, so lookups degrade to no-matches rather than panics.
func ParsePolicy(content []byte) (*types.PolicyTables, error) {
	var tables types.PolicyTables
	if err := json.Unmarshal(content, &tables); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal policy tables JSON",
			Cause:   err,
		}
	}

	if tables.VerifiedDomains == nil {
		tables.VerifiedDomains = map[string][]string{}
	}
	if tables.Forbidden == nil {
		tables.Forbidden = map[string][]string{}
	}
	if tables.Synonyms == nil {
		tables.Synonyms = map[string][]string{}
	}

	return &tables, nil
}
