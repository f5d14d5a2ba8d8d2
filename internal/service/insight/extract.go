package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/assistant-core/internal/domain"
	"github.com/heartmarshall/assistant-core/internal/service/memory"
	"github.com/heartmarshall/assistant-core/pkg/ctxutil"
	"github.com/heartmarshall/assistant-core/pkg/llmtext"
)

const systemPrompt = `You extract durable facts about the user from a conversation.
Return ONLY a JSON object of the form:
{"memories": [{"content": "<one short fact>", "type": "<conversation|memo|insight|preference|achievement|schedule_pattern>", "importance": <0.0-1.0>}]}
Only include facts worth remembering across conversations. Return {"memories": []} when there are none.`

// extraction is the structured reply of the reasoning service.
type extraction struct {
	Memories []candidate `json:"memories"`
}

type candidate struct {
	Content    string  `json:"content"`
	Type       string  `json:"type"`
	Importance float64 `json:"importance"`
}

// ExtractAndSave asks the reasoning service for facts in the latest turns of
// the conversation and saves the acceptable ones as memories of the account
// in ctx. It returns how many memories were saved. Every failure, including
// a panic, is logged and absorbed.
func (s *Service) ExtractAndSave(ctx context.Context, turns []domain.ConversationTurn) (saved int) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "insight extraction panicked", slog.Any("panic", r))
			saved = 0
		}
	}()

	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		s.log.WarnContext(ctx, "insight extraction skipped: no account")
		return 0
	}
	log := s.log.With(slog.String("account_id", accountID.String()))

	window := s.window(turns)
	if !hasUserTurn(window) {
		return 0
	}

	if !s.gate.CanUseFeature(ctx, accountID, domain.FeatureMemory) {
		log.DebugContext(ctx, "insight extraction skipped: memory feature disabled")
		return 0
	}

	if !s.gate.TryConsumeCall(ctx, accountID, CallType).Allowed {
		log.WarnContext(ctx, "insight extraction skipped: quota exhausted")
		return 0
	}

	reply, err := s.llm.Complete(ctx, systemPrompt, buildPrompt(window))
	if err != nil {
		log.WarnContext(ctx, "insight extraction failed", slog.String("error", err.Error()))
		return 0
	}

	parsed, err := llmtext.Decode[extraction](reply)
	if err != nil {
		log.WarnContext(ctx, "insight extraction returned malformed output", slog.String("error", err.Error()))
		return 0
	}

	for _, in := range s.accept(parsed.Memories) {
		if _, err := s.memories.Save(ctx, in); err != nil {
			log.WarnContext(ctx, "insight save failed",
				slog.String("type", in.Type.String()),
				slog.String("error", err.Error()))
			continue
		}
		saved++
	}

	log.InfoContext(ctx, "insight extraction finished",
		slog.Int("candidates", len(parsed.Memories)),
		slog.Int("saved", saved))
	return saved
}

// window keeps the last WindowSize turns that have content.
func (s *Service) window(turns []domain.ConversationTurn) []domain.ConversationTurn {
	kept := make([]domain.ConversationTurn, 0, len(turns))
	for _, t := range turns {
		if strings.TrimSpace(t.Content) != "" {
			kept = append(kept, t)
		}
	}
	if n := s.cfg.WindowSize; n > 0 && len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return kept
}

// accept filters candidates into save inputs, preserving reply order.
func (s *Service) accept(candidates []candidate) []memory.SaveInput {
	var out []memory.SaveInput
	for _, c := range candidates {
		if len(out) >= s.cfg.MaxCandidates {
			break
		}

		content := strings.TrimSpace(c.Content)
		memType := domain.MemoryType(strings.ToLower(strings.TrimSpace(c.Type)))
		if content == "" || !memType.IsValid() {
			continue
		}

		importance := min(max(c.Importance, 0), 1)
		if importance < s.cfg.MinImportance {
			continue
		}

		out = append(out, memory.SaveInput{
			Content:    truncate(content, memory.MaxContentLength),
			Type:       memType,
			Importance: &importance,
			Metadata:   map[string]any{"source": "conversation_insight"},
		})
	}
	return out
}

func hasUserTurn(turns []domain.ConversationTurn) bool {
	for _, t := range turns {
		if t.Role == domain.RoleUser {
			return true
		}
	}
	return false
}

func buildPrompt(turns []domain.ConversationTurn) string {
	var sb strings.Builder
	sb.WriteString("Conversation:\n")
	for _, t := range turns {
		fmt.Fprintf(&sb, "%s: %s\n", t.Role, t.Content)
	}
	return sb.String()
}

func truncate(s string, maxRunes int) string {
	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	return string(r[:maxRunes])
}
