package matching

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/placemate/placemate/internal/ai"
	"github.com/placemate/placemate/internal/placement"
	"github.com/placemate/placemate/internal/utils"
	"go.uber.org/zap"
)

//go:embed prompt.md
var semanticPromptTemplate string

const (
	// neutralSemanticScore is the fallback whenever the text-completion
	// service fails or answers something unparsable.
	neutralSemanticScore = 0.5

	defaultSemanticTimeout = 20 * time.Second
	defaultMaxLogLength    = 200
)

// SemanticScorer estimates compatibility from free-text profile and placement
// fields via an external text-completion service. Its output is untrusted:
// every response is clamped to [0,1] and every failure degrades to the
// neutral score. Score never returns an error.
type SemanticScorer struct {
	generator ai.TextGenerator
	timeout   time.Duration
	maxLogLen int
	logger    *zap.Logger
}

func NewSemanticScorer(generator ai.TextGenerator, timeout time.Duration, maxLogLength int, logger *zap.Logger) *SemanticScorer {
	if timeout <= 0 {
		timeout = defaultSemanticTimeout
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SemanticScorer{
		generator: generator,
		timeout:   timeout,
		maxLogLen: maxLogLength,
		logger:    logger,
	}
}

// Score returns a compatibility estimate in [0,1] for the pair.
func (s *SemanticScorer) Score(ctx context.Context, student *placement.Student, p *placement.Placement) float64 {
	prompt := buildSemanticPrompt(student, p)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.Debug("semantic scoring request",
		zap.String("placement_id", p.ID.String()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, s.maxLogLen)),
	)

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("semantic scoring failed, using neutral score",
			zap.String("placement_id", p.ID.String()),
			zap.Error(err),
		)
		return neutralSemanticScore
	}

	score, err := parseScore(raw)
	if err != nil {
		s.logger.Warn("unparsable semantic score, using neutral score",
			zap.String("placement_id", p.ID.String()),
			zap.String("response_preview", utils.TruncateForLog(raw, s.maxLogLen)),
			zap.Error(err),
		)
		return neutralSemanticScore
	}

	return clamp01(score)
}

func buildSemanticPrompt(student *placement.Student, p *placement.Placement) string {
	bio := student.Bio
	if bio == "" {
		bio = "No bio provided"
	}

	studentBlock := fmt.Sprintf(
		"- Department: %s\n- Level: %d\n- Skills: %s\n- Bio: %s\n- Desired Skills: %s",
		student.Department,
		student.Level,
		strings.Join(student.Skills, ", "),
		bio,
		strings.Join(student.DesiredSkills, ", "),
	)

	placementBlock := fmt.Sprintf(
		"- Title: %s\n- Department: %s\n- Description: %s\n- Required Skills: %s\n- Skills to Learn: %s\n- Requirements: %s",
		p.Title,
		p.Department,
		p.Description,
		strings.Join(p.RequiredSkills, ", "),
		strings.Join(p.SkillsToLearn, ", "),
		p.Requirements,
	)

	prompt := strings.ReplaceAll(semanticPromptTemplate, "{{STUDENT}}", studentBlock)
	return strings.ReplaceAll(prompt, "{{PLACEMENT}}", placementBlock)
}

// parseScore extracts a finite float from the model response, tolerating
// markdown code fences and surrounding prose.
func parseScore(raw string) (float64, error) {
	cleaned := stripCodeFence(raw)

	if score, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return validateScore(score)
	}

	for _, field := range strings.Fields(cleaned) {
		field = strings.Trim(field, ",;:()")
		if score, err := strconv.ParseFloat(field, 64); err == nil {
			return validateScore(score)
		}
	}

	return 0, fmt.Errorf("no numeric score in response")
}

func validateScore(score float64) (float64, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("non-finite score")
	}
	return score, nil
}

func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}
