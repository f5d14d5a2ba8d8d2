package briefing

import (
	"fmt"

	"github.com/heartmarshall/assistant-core/internal/domain"
)

// MaxGoalLength is the maximum account goal length in bytes.
const MaxGoalLength = 500

// ComposeInput holds the raw content and the account's stated goal.
type ComposeInput struct {
	Items []domain.ContentItem
	// Goal is optional. When set it is used to retrieve related memories.
	Goal string
}

// Validate validates the compose input.
func (i ComposeInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item required"})
	}

	seen := make(map[string]struct{}, len(i.Items))
	for idx, item := range i.Items {
		field := fmt.Sprintf("items[%d]", idx)
		if item.ID == "" {
			errs = append(errs, domain.FieldError{Field: field + ".id", Message: "required"})
			continue
		}
		if _, dup := seen[item.ID]; dup {
			errs = append(errs, domain.FieldError{Field: field + ".id", Message: "duplicate"})
		}
		seen[item.ID] = struct{}{}
		if item.Title == "" {
			errs = append(errs, domain.FieldError{Field: field + ".title", Message: "required"})
		}
	}

	if len(i.Goal) > MaxGoalLength {
		errs = append(errs, domain.FieldError{Field: "goal", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
