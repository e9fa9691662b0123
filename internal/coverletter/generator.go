// Package coverletter produces application cover letters, AI-generated when
// a text generator is available and deterministically templated otherwise.
package coverletter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "embed"

	"github.com/placemate/placemate/internal/ai"
	"github.com/placemate/placemate/internal/placement"
	"github.com/placemate/placemate/internal/utils"
	"go.uber.org/zap"
)

//go:embed prompt.md
var promptTemplate string

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxLogLength = 200
)

// Generator writes cover letters. When the AI path fails for any reason it
// falls back to the deterministic template, mirroring the semantic scorer's
// failure contract: the caller always gets a letter.
type Generator struct {
	generator ai.TextGenerator
	timeout   time.Duration
	maxLogLen int
	logger    *zap.Logger
}

// New creates a Generator. A nil text generator means template-only mode.
func New(generator ai.TextGenerator, timeout time.Duration, maxLogLength int, logger *zap.Logger) *Generator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		generator: generator,
		timeout:   timeout,
		maxLogLen: maxLogLength,
		logger:    logger,
	}
}

// Generate returns a cover letter for the application.
func (g *Generator) Generate(ctx context.Context, student *placement.Student, p *placement.Placement, company *placement.Company) string {
	if g.generator == nil {
		return fallbackLetter(student, p, company)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := buildPrompt(student, p, company)

	g.logger.Debug("cover letter request",
		zap.String("placement_id", p.ID.String()),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, g.maxLogLen)),
	)

	text, err := g.generator.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.Warn("cover letter generation failed, using template",
			zap.String("placement_id", p.ID.String()),
			zap.Error(err),
		)
		return fallbackLetter(student, p, company)
	}

	return strings.TrimSpace(text)
}

func buildPrompt(student *placement.Student, p *placement.Placement, company *placement.Company) string {
	replacer := strings.NewReplacer(
		"{{STUDENT_NAME}}", student.FullName(),
		"{{UNIVERSITY}}", student.University,
		"{{STUDENT_DEPARTMENT}}", student.Department,
		"{{LEVEL}}", strconv.Itoa(student.Level),
		"{{SKILLS}}", strings.Join(student.Skills, ", "),
		"{{BIO}}", student.Bio,
		"{{TITLE}}", p.Title,
		"{{COMPANY}}", company.Name,
		"{{PLACEMENT_DEPARTMENT}}", p.Department,
		"{{REQUIRED_SKILLS}}", strings.Join(p.RequiredSkills, ", "),
		"{{SKILLS_TO_LEARN}}", strings.Join(p.SkillsToLearn, ", "),
	)
	return replacer.Replace(promptTemplate)
}

// fallbackLetter interpolates a fixed paragraph structure: name, university,
// department, level, top 3 skills and up to 2 target skills-to-learn.
func fallbackLetter(student *placement.Student, p *placement.Placement, company *placement.Company) string {
	skills := student.Skills
	if len(skills) > 3 {
		skills = skills[:3]
	}

	toLearn := p.SkillsToLearn
	if len(toLearn) > 2 {
		toLearn = toLearn[:2]
	}

	return fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my strong interest in the %s position at %s. As a %d-level %s student at %s, I am excited about the opportunity to contribute to your team and gain valuable industry experience.

My technical skills in %s align well with your requirements, and I am particularly eager to learn %s during this placement.

I am confident that my academic background, combined with my passion for %s, makes me a strong candidate for this position. I look forward to the opportunity to discuss how I can contribute to your team.

Thank you for your consideration.

Best regards,
%s`,
		p.Title,
		company.Name,
		student.Level,
		student.Department,
		student.University,
		strings.Join(skills, ", "),
		strings.Join(toLearn, " and "),
		strings.ToLower(student.Department),
		student.FullName(),
	)
}
