package insults

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a single validation finding
type ValidationError struct {
	Word     string
	Message  string
	Severity string // "error" or "warning"
}

func (e ValidationError) Error() string {
	if e.Word == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Word, e.Message)
}

// ValidationResult contains all validation findings grouped by type
type ValidationResult struct {
	DuplicateErrors []ValidationError
	RecordErrors    []ValidationError
	Warnings        []ValidationError
}

func (r *ValidationResult) HasErrors() bool {
	return len(r.DuplicateErrors) > 0 || len(r.RecordErrors) > 0
}

func (r *ValidationResult) addDuplicateError(err ValidationError) {
	err.Severity = "error"
	r.DuplicateErrors = append(r.DuplicateErrors, err)
}

func (r *ValidationResult) addRecordError(err ValidationError) {
	err.Severity = "error"
	r.RecordErrors = append(r.RecordErrors, err)
}

func (r *ValidationResult) addWarning(err ValidationError) {
	err.Severity = "warning"
	r.Warnings = append(r.Warnings, err)
}

// Validator performs consistency checks over a whole collection
type Validator struct {
	collection *Collection
}

// NewValidator creates a new validator for a collection
func NewValidator(collection *Collection) *Validator {
	return &Validator{collection: collection}
}

// Validate performs all validations. Duplicate headwords and empty required
// fields are errors; a missing attribution or an empty tag is a warning.
func (v *Validator) Validate() *ValidationResult {
	result := &ValidationResult{}

	seen := make(map[string]string, len(v.collection.Insults))
	for _, insult := range v.collection.Insults {
		key := strings.ToLower(insult.Paraula)
		if first, ok := seen[key]; ok {
			result.addDuplicateError(ValidationError{
				Word:    insult.Paraula,
				Message: fmt.Sprintf("duplicate of %q under case-insensitive comparison", first),
			})
		} else {
			seen[key] = insult.Paraula
		}

		v.validateRecord(insult, result)
	}

	return result
}

func (v *Validator) validateRecord(insult Insult, result *ValidationResult) {
	if strings.TrimSpace(insult.Paraula) == "" {
		result.addRecordError(ValidationError{Message: "record without a headword"})
	}
	if strings.TrimSpace(insult.Definicio) == "" {
		result.addRecordError(ValidationError{Word: insult.Paraula, Message: "record without a definition"})
	}

	if insult.Font.Nom == "" && insult.Font.URL == "" {
		result.addWarning(ValidationError{Word: insult.Paraula, Message: "record without a source attribution"})
	} else if insult.Font.URL != "" {
		parsed, err := url.Parse(insult.Font.URL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			result.addRecordError(ValidationError{
				Word:    insult.Paraula,
				Message: fmt.Sprintf("source url %q is not an absolute URL", insult.Font.URL),
			})
		}
	}

	for _, tag := range insult.Tags {
		if strings.TrimSpace(tag) == "" {
			result.addWarning(ValidationError{Word: insult.Paraula, Message: "empty tag"})
		}
	}
}
