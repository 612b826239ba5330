package profile

import (
	"strings"

	"github.com/nworkman/resume-retool/internal/types"
)

// Vocabulary is the flattened, lowercased set of words and phrases derived
// from an experience record. It is the evidence base for exact matching.
type Vocabulary map[string]struct{}

// BuildVocabulary flattens a record's bullet text into individual words and
// adds each skill line as a whole phrase, all lowercased.
func BuildVocabulary(record *types.ExperienceRecord) Vocabulary {
	vocab := make(Vocabulary)
	if record == nil {
		return vocab
	}

	for _, role := range record.Roles {
		for _, bullet := range role.Bullets {
			for _, word := range strings.Fields(strings.ToLower(bullet)) {
				vocab[word] = struct{}{}
			}
		}
	}

	for _, skill := range record.Skills {
		vocab[strings.ToLower(skill)] = struct{}{}
	}

	return vocab
}

// Contains reports whether the lowercased form of s is in the vocabulary.
func (v Vocabulary) Contains(s string) bool {
	_, ok := v[strings.ToLower(s)]
	return ok
}
