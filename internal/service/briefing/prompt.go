package briefing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/pkg/llmtext"
)

const systemPrompt = `You rank news and content items for one user.
Return ONLY a JSON object of the form:
{"summary": "<two or three sentence overview>", "items": [{"id": "<item id>", "importance": "critical|important|normal|fyi", "relevance": <0.0-1.0>, "reason": "<why it matters to the user>"}]}
Use only ids from the input. Judge importance against the user's goal and context when given.`

func buildPrompt(items []domain.ContentItem, goal string, memories []domain.ScoredMemory) string {
	var sb strings.Builder

	if goal = strings.TrimSpace(goal); goal != "" {
		fmt.Fprintf(&sb, "User goal: %s\n\n", goal)
	}

	if len(memories) > 0 {
		sb.WriteString("What we know about the user:\n")
		for _, m := range memories {
			fmt.Fprintf(&sb, "- %s\n", m.Memory.Content)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Items:\n")
	for _, it := range items {
		fmt.Fprintf(&sb, "- id: %s\n  title: %s\n", it.ID, it.Title)
		if it.Source != "" {
			fmt.Fprintf(&sb, "  source: %s\n", it.Source)
		}
		if it.Summary != "" {
			fmt.Fprintf(&sb, "  summary: %s\n", it.Summary)
		}
		if it.PublishedAt != nil {
			fmt.Fprintf(&sb, "  published: %s\n", it.PublishedAt.UTC().Format("2006-01-02T15:04Z"))
		}
	}
	return sb.String()
}

type reply struct {
	Summary string       `json:"summary"`
	Items   *[]replyItem `json:"items"`
}

type replyItem struct {
	ID         string  `json:"id"`
	Importance string  `json:"importance"`
	Relevance  float64 `json:"relevance"`
	Reason     string  `json:"reason"`
}

// parseReply turns the reasoning reply into a Briefing. Items with unknown
// or repeated ids are dropped; a reply without an items array is malformed.
func parseReply(text string, items []domain.ContentItem) (*domain.Briefing, error) {
	r, err := llmtext.Decode[reply](text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedUpstreamResponse, err)
	}
	if r.Items == nil {
		return nil, fmt.Errorf("%w: missing items", domain.ErrMalformedUpstreamResponse)
	}

	byID := make(map[string]domain.ContentItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	b := &domain.Briefing{Summary: strings.TrimSpace(r.Summary)}
	used := make(map[string]struct{}, len(*r.Items))
	for _, ri := range *r.Items {
		item, ok := byID[ri.ID]
		if !ok {
			continue
		}
		if _, dup := used[ri.ID]; dup {
			continue
		}
		used[ri.ID] = struct{}{}

		tier := domain.ImportanceTier(strings.ToLower(strings.TrimSpace(ri.Importance))).Bucket()
		bi := domain.BriefingItem{
			Item:       item,
			Importance: tier,
			Relevance:  min(max(ri.Relevance, 0), 1),
			Reason:     strings.TrimSpace(ri.Reason),
		}
		switch tier {
		case domain.ImportanceCritical:
			b.Critical = append(b.Critical, bi)
		case domain.ImportanceImportant:
			b.Important = append(b.Important, bi)
		default:
			b.Normal = append(b.Normal, bi)
		}
	}

	for _, bucket := range [][]domain.BriefingItem{b.Critical, b.Important, b.Normal} {
		slices.SortStableFunc(bucket, func(a, b domain.BriefingItem) int {
			return cmp.Compare(b.Relevance, a.Relevance)
		})
	}
	return b, nil
}
