package coverletter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/placemate/placemate/internal/placement"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string { return "stub-model" }

func testStudent() *placement.Student {
	return &placement.Student{
		ID:         uuid.New(),
		FirstName:  "Amina",
		LastName:   "Bello",
		University: "University of Lagos",
		Department: "Computer Engineering",
		Level:      300,
		Skills:     []string{"JavaScript", "React", "SQL", "Git"},
	}
}

func testPlacement() (*placement.Placement, *placement.Company) {
	company := &placement.Company{ID: uuid.New(), Name: "Acme Energy"}
	return &placement.Placement{
		ID:             uuid.New(),
		CompanyID:      company.ID,
		Title:          "Software Intern",
		Department:     "Engineering",
		RequiredSkills: []string{"JavaScript"},
		SkillsToLearn:  []string{"Docker", "Kubernetes", "Terraform"},
		Company:        company,
	}, company
}

func TestGenerateUsesAIResponse(t *testing.T) {
	stub := &stubGenerator{response: "  Dear Hiring Manager,\n\nGenerated letter.  "}
	g := New(stub, time.Second, 0, zap.NewNop())

	p, company := testPlacement()
	letter := g.Generate(context.Background(), testStudent(), p, company)

	if letter != "Dear Hiring Manager,\n\nGenerated letter." {
		t.Fatalf("unexpected letter: %q", letter)
	}

	if !strings.Contains(stub.lastPrompt, "Amina Bello") {
		t.Fatalf("prompt missing student name: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "Acme Energy") {
		t.Fatalf("prompt missing company name: %s", stub.lastPrompt)
	}
	if !strings.Contains(stub.lastPrompt, "200-300 words") {
		t.Fatalf("prompt missing length constraint: %s", stub.lastPrompt)
	}
}

func TestGenerateFallsBackOnError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("upstream unavailable")}
	g := New(stub, time.Second, 0, zap.NewNop())

	p, company := testPlacement()
	letter := g.Generate(context.Background(), testStudent(), p, company)

	assertFallbackLetter(t, letter)
}

func TestGenerateWithoutGeneratorUsesTemplate(t *testing.T) {
	g := New(nil, 0, 0, zap.NewNop())

	p, company := testPlacement()
	letter := g.Generate(context.Background(), testStudent(), p, company)

	assertFallbackLetter(t, letter)
}

func assertFallbackLetter(t *testing.T, letter string) {
	t.Helper()

	for _, expected := range []string{
		"Software Intern position at Acme Energy",
		"300-level Computer Engineering student at University of Lagos",
		"JavaScript, React, SQL",
		"Docker and Kubernetes",
		"Best regards,\nAmina Bello",
	} {
		if !strings.Contains(letter, expected) {
			t.Fatalf("fallback letter missing %q:\n%s", expected, letter)
		}
	}

	if strings.Contains(letter, "Git") {
		t.Fatalf("fallback letter must name at most 3 skills:\n%s", letter)
	}
	if strings.Contains(letter, "Terraform") {
		t.Fatalf("fallback letter must name at most 2 skills to learn:\n%s", letter)
	}
}
