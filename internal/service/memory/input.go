package memory

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// MaxContentLength is the maximum memory text length in characters.
const MaxContentLength = 2000

// DefaultImportance is used when a save does not specify one.
const DefaultImportance = 0.5

// MaxRecentLimit caps a recent listing.
const MaxRecentLimit = 100

// SaveInput holds parameters for the save operation.
type SaveInput struct {
	Content    string
	Type       domain.MemoryType
	Importance *float64
	MemoryDate *time.Time
	Metadata   map[string]any
}

// Validate validates the save input.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(i.Content) > MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid memory type"})
	}

	if i.Importance != nil && (*i.Importance < 0 || *i.Importance > 1) {
		errs = append(errs, domain.FieldError{Field: "importance", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchInput holds parameters for the search operation.
// Zero Limit and nil MinSimilarity fall back to configured defaults.
type SearchInput struct {
	Query         string
	Limit         int
	Type          *domain.MemoryType
	MinSimilarity *float64
}

// Validate validates the search input against the maximum page size.
func (i SearchInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "query", Message: "required"})
	} else if utf8.RuneCountInString(i.Query) > MaxContentLength {
		errs = append(errs, domain.FieldError{Field: "query", Message: "too long"})
	}

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	} else if i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "too large"})
	}

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid memory type"})
	}

	if i.MinSimilarity != nil && (*i.MinSimilarity < -1 || *i.MinSimilarity > 1) {
		errs = append(errs, domain.FieldError{Field: "min_similarity", Message: "must be between -1 and 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
