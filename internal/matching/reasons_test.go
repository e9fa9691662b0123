package matching

import (
	"strings"
	"testing"

	"github.com/placemate/placemate/internal/placement"
)

func TestReasonsHighScores(t *testing.T) {
	student := &placement.Student{Skills: []string{"javascript"}}
	p := &placement.Placement{}
	score := MatchScore{Breakdown: map[string]int{
		ComponentSkills:   85,
		ComponentLocation: 95,
		ComponentIndustry: 90,
		ComponentLevel:    100,
	}}

	reasons := Reasons(student, p, score)

	expected := []string{
		"Strong skills match (85%)",
		"Perfect location match",
		"Excellent industry alignment",
		"Well suited to your academic level",
	}
	if len(reasons) != len(expected) {
		t.Fatalf("expected %d reasons, got %d: %v", len(expected), len(reasons), reasons)
	}
	for i, reason := range expected {
		if reasons[i] != reason {
			t.Fatalf("reason %d: expected %q, got %q", i, reason, reasons[i])
		}
	}
}

func TestReasonsCappedAtFour(t *testing.T) {
	student := &placement.Student{}
	p := &placement.Placement{SkillsToLearn: []string{"Docker", "Kubernetes"}}
	score := MatchScore{Breakdown: map[string]int{
		ComponentSkills:   85,
		ComponentLocation: 95,
		ComponentIndustry: 90,
		ComponentLevel:    100,
		ComponentSemantic: 80,
	}}

	reasons := Reasons(student, p, score)
	if len(reasons) != maxReasons {
		t.Fatalf("expected cap at %d reasons, got %d: %v", maxReasons, len(reasons), reasons)
	}
}

func TestReasonsNeverEmpty(t *testing.T) {
	student := &placement.Student{}
	p := &placement.Placement{}
	score := MatchScore{Breakdown: map[string]int{
		ComponentSkills:   10,
		ComponentLocation: 30,
		ComponentIndustry: 40,
		ComponentLevel:    60,
	}}

	reasons := Reasons(student, p, score)
	if len(reasons) != 1 || reasons[0] != fallbackReason {
		t.Fatalf("expected the fallback reason, got %v", reasons)
	}
}

func TestReasonsLearningOpportunities(t *testing.T) {
	student := &placement.Student{Skills: []string{"Docker"}}
	p := &placement.Placement{SkillsToLearn: []string{"Docker", "Kubernetes", "Terraform", "Helm"}}
	score := MatchScore{Breakdown: map[string]int{}}

	reasons := Reasons(student, p, score)
	if len(reasons) != 1 {
		t.Fatalf("expected a single learning reason, got %v", reasons)
	}
	if reasons[0] != "Learn Kubernetes, Terraform and more" {
		t.Fatalf("unexpected learning reason: %q", reasons[0])
	}
}

func TestReasonsGoodAlignmentTier(t *testing.T) {
	student := &placement.Student{}
	p := &placement.Placement{}
	score := MatchScore{Breakdown: map[string]int{
		ComponentSkills:   65,
		ComponentLocation: 75,
	}}

	reasons := Reasons(student, p, score)
	joined := strings.Join(reasons, "; ")
	if !strings.Contains(joined, "Good skills alignment (65%)") {
		t.Fatalf("missing skills tier reason: %v", reasons)
	}
	if !strings.Contains(joined, "Good location fit") {
		t.Fatalf("missing location tier reason: %v", reasons)
	}
}

func TestReasonsSemanticTier(t *testing.T) {
	student := &placement.Student{}
	p := &placement.Placement{}
	score := MatchScore{Breakdown: map[string]int{ComponentSemantic: 72}}

	reasons := Reasons(student, p, score)
	if len(reasons) != 1 || reasons[0] != "Strong AI-assessed compatibility" {
		t.Fatalf("expected the semantic reason, got %v", reasons)
	}
}
