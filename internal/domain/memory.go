package domain

import (
	"time"

	"github.com/google/uuid"
)

// Memory is a single semantic fact about an account. It is read-only after
// creation except for explicit deletion by its owner.
type Memory struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Type       MemoryType
	Content    string
	Embedding  []float32
	Importance float64
	MemoryDate *time.Time
	Metadata   map[string]any
	CreatedAt  time.Time
}

// ScoredMemory is a search hit with its cosine similarity to the query.
type ScoredMemory struct {
	Memory     Memory
	Similarity float64
}

// MemorySearchFilter restricts a similarity search. All results belong to
// the searching account.
type MemorySearchFilter struct {
	Limit         int
	Type          *MemoryType
	MinSimilarity float64
}

// ConversationTurn is one message of a conversation window.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
