package domain

import "time"

// ContentItem is one raw article or post handed to the briefing composer.
type ContentItem struct {
	ID          string
	Title       string
	Summary     string
	Source      string
	URL         string
	PublishedAt *time.Time
}

// BriefingItem is a content item ranked by the reasoning service.
type BriefingItem struct {
	Item       ContentItem
	Importance ImportanceTier
	Relevance  float64
	Reason     string
}

// Briefing is the tiered result of a compose call. Each bucket is sorted
// by Relevance descending.
type Briefing struct {
	Summary      string
	Critical     []BriefingItem
	Important    []BriefingItem
	Normal       []BriefingItem
	MemoriesUsed int
	GeneratedAt  time.Time
}
