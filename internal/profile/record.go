package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nworkman/resume-retool/internal/types"
)

// recordShape mirrors types.ExperienceRecord with validation tags. Kept
// separate so the shared types package stays free of validator concerns.
type recordShape struct {
	FullName string   `json:"full_name" validate:"required"`
	Skills   []string `json:"skills" validate:"required,min=1,dive,required"`
	Roles    []struct {
		Organization string   `json:"company" validate:"required"`
		Bullets      []string `json:"bullets" validate:"required,min=1"`
	} `json:"experience" validate:"required,min=1,dive"`
}

// LoadRecord loads an experience record from a JSON file and validates its
// required structure. The returned record must be treated as immutable.
func LoadRecord(path string) (*types.ExperienceRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseRecord(content)
}

// ParseRecord parses and validates an experience record from JSON bytes.
func ParseRecord(content []byte) (*types.ExperienceRecord, error) {
	var shape recordShape
	if err := json.Unmarshal(content, &shape); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal experience record JSON",
			Cause:   err,
		}
	}

	if err := validator.New().Struct(&shape); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			return nil, &ValidationError{
				Field:   strings.TrimPrefix(errs[0].Namespace(), "recordShape."),
				Message: fmt.Sprintf("failed %q constraint", errs[0].Tag()),
			}
		}
		return nil, &LoadError{Message: "record validation failed", Cause: err}
	}

	var record types.ExperienceRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal experience record JSON",
			Cause:   err,
		}
	}
	return &record, nil
}
