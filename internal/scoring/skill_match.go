package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/opportunity-matcher/internal/llm"
	"github.com/jonathan/opportunity-matcher/internal/parsing"
	"github.com/jonathan/opportunity-matcher/internal/prompts"
	"github.com/jonathan/opportunity-matcher/internal/types"
)

const (
	defaultAITimeout = 10 * time.Second

	// Constant boost the fallback grants users who are willing to learn.
	fallbackLearnBoost = 0.1

	// Summary text sent to the model is capped to keep prompts small.
	maxPromptSummaryLen = 400
)

// SkillMatcher computes the skill_match factor. The primary path asks an LLM
// for an alignment score; any failure there (timeout, transport error,
// malformed payload) falls back to a deterministic token-overlap score for
// that single opportunity. Callers receive the same [0,1] contract from both
// paths; the source tag exists for observability only.
type SkillMatcher struct {
	client  llm.Client
	timeout time.Duration
	log     *zap.Logger
}

// NewSkillMatcher creates a matcher. A nil client disables the AI path
// entirely, which leaves the matcher fully deterministic.
func NewSkillMatcher(client llm.Client, timeout time.Duration, log *zap.Logger) *SkillMatcher {
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SkillMatcher{client: client, timeout: timeout, log: log}
}

// alignmentResponse is the expected JSON shape from the model. The score is
// a pointer so an unrelated JSON object is detected as malformed rather than
// silently read as 0.
type alignmentResponse struct {
	AlignmentScore *float64 `json:"alignment_score"`
}

// Match returns the skill_match score for one opportunity and the path that
// produced it.
func (m *SkillMatcher) Match(ctx context.Context, p *types.UserProfile, o *types.BusinessOpportunity, useAI bool) (float64, types.SkillMatchSource) {
	if useAI && m.client != nil {
		score, err := m.judgeAlignment(ctx, p, o)
		if err == nil {
			return score, types.SkillMatchAI
		}
		m.log.Debug("skill alignment call failed, using fallback",
			zap.String("opportunity_id", o.ID.String()),
			zap.Error(err))
	}
	return FallbackSkillScore(p, o), types.SkillMatchFallback
}

// judgeAlignment performs a single bounded inference call. One attempt only;
// retries would multiply cost and latency with catalog size.
func (m *SkillMatcher) judgeAlignment(ctx context.Context, p *types.UserProfile, o *types.BusinessOpportunity) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	jsonResp, err := m.client.GenerateJSON(ctx, buildAlignmentPrompt(p, o), llm.TierLite)
	if err != nil {
		return 0, fmt.Errorf("LLM generation failed: %w", err)
	}

	var resp alignmentResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(jsonResp)), &resp); err != nil {
		return 0, fmt.Errorf("failed to parse LLM response: %w (content: %s)", err, jsonResp)
	}
	if resp.AlignmentScore == nil {
		return 0, fmt.Errorf("LLM response missing alignment_score (content: %s)", jsonResp)
	}

	return clamp01(*resp.AlignmentScore), nil
}

// FallbackSkillScore is the deterministic skill-match path: the fraction of
// the opportunity's required skills with at least one token appearing in the
// user's skill tags or background text, plus a small boost for users willing
// to learn. It is pure and reproducible, so a pass with the AI path disabled
// is bit-identical across runs.
func FallbackSkillScore(p *types.UserProfile, o *types.BusinessOpportunity) float64 {
	if len(o.RequiredSkills) == 0 {
		return neutralScore
	}

	userTokens := parsing.TokenSet(strings.Join(p.Skills, " "), p.Background)

	matched := 0
	for _, skill := range o.RequiredSkills {
		for _, tok := range parsing.Tokenize(skill) {
			if userTokens[tok] {
				matched++
				break
			}
		}
	}

	score := float64(matched) / float64(len(o.RequiredSkills))
	if p.WillingToLearn == "yes" {
		score += fallbackLearnBoost
	}
	return clamp01(score)
}

// buildAlignmentPrompt constructs the skill-alignment prompt for one
// user/opportunity pair.
func buildAlignmentPrompt(p *types.UserProfile, o *types.BusinessOpportunity) string {
	background := p.Background
	if background == "" {
		background = "Not specified"
	}
	skills := strings.Join(p.Skills, ", ")
	if skills == "" {
		skills = "None specified"
	}
	required := strings.Join(o.RequiredSkills, ", ")
	if required == "" {
		required = "Not specified"
	}
	summary := o.Summary
	if len(summary) > maxPromptSummaryLen {
		summary = summary[:maxPromptSummaryLen]
	}
	if summary == "" {
		summary = "No description available"
	}

	template := prompts.MustGet("scoring.json", "skill-alignment")
	return prompts.Format(template, map[string]string{
		"Background":     background,
		"Skills":         skills,
		"WillingToLearn": p.WillingToLearn,
		"Title":          o.Title,
		"RequiredSkills": required,
		"Summary":        summary,
	})
}
