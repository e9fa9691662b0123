package matching

import (
	"math"
	"testing"
)

func TestComposeTraditionalWeights(t *testing.T) {
	score := ComponentScores{
		Skills:   0.75,
		Location: 0.8,
		Industry: 1.0,
		Level:    1.0,
	}.Compose()

	// 0.75*0.40 + 0.8*0.25 + 1.0*0.20 + 1.0*0.15 = 0.85.
	if score.Overall != 0.85 {
		t.Fatalf("expected overall 0.85, got %v", score.Overall)
	}

	expected := map[string]int{
		ComponentSkills:   75,
		ComponentLocation: 80,
		ComponentIndustry: 100,
		ComponentLevel:    100,
	}
	assertBreakdown(t, score.Breakdown, expected)
}

func TestComposeSemanticWeights(t *testing.T) {
	semantic := 0.0
	score := ComponentScores{
		Skills:   1.0,
		Location: 1.0,
		Industry: 1.0,
		Level:    1.0,
		Semantic: &semantic,
	}.Compose()

	// The semantic component carries 0.15 of the weight.
	if score.Overall != 0.85 {
		t.Fatalf("expected overall 0.85, got %v", score.Overall)
	}
	if got := score.Breakdown[ComponentSemantic]; got != 0 {
		t.Fatalf("expected semantic 0 in breakdown, got %d", got)
	}
}

func TestComposeClampsSemantic(t *testing.T) {
	semantic := 1.5
	score := ComponentScores{
		Skills:   1.0,
		Location: 1.0,
		Industry: 1.0,
		Level:    1.0,
		Semantic: &semantic,
	}.Compose()

	if score.Overall != 1.0 {
		t.Fatalf("expected overall 1.0 after clamping, got %v", score.Overall)
	}
	if got := score.Breakdown[ComponentSemantic]; got != 100 {
		t.Fatalf("expected semantic clamped to 100, got %d", got)
	}
}

func TestComposeRounding(t *testing.T) {
	score := ComponentScores{
		Skills:   1.0,
		Location: 0.33,
	}.Compose()

	// 0.40 + 0.0825 = 0.4825 rounds to 0.48.
	if score.Overall != 0.48 {
		t.Fatalf("expected overall 0.48, got %v", score.Overall)
	}
}

func TestComposeOmitsSemanticWhenAbsent(t *testing.T) {
	score := ComponentScores{Skills: 1.0}.Compose()
	if _, ok := score.Breakdown[ComponentSemantic]; ok {
		t.Fatal("breakdown must not contain semantic without the semantic scorer")
	}
}

func TestClamp01(t *testing.T) {
	cases := []struct {
		in       float64
		expected float64
	}{
		{in: -0.5, expected: 0},
		{in: 0, expected: 0},
		{in: 0.5, expected: 0.5},
		{in: 1, expected: 1},
		{in: 1.5, expected: 1},
		{in: math.NaN(), expected: 0},
	}
	for _, tc := range cases {
		if got := clamp01(tc.in); got != tc.expected {
			t.Fatalf("clamp01(%v): expected %v, got %v", tc.in, tc.expected, got)
		}
	}
}

func assertBreakdown(t *testing.T, got, expected map[string]int) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected %d breakdown components, got %d", len(expected), len(got))
	}
	for component, value := range expected {
		if got[component] != value {
			t.Fatalf("component %s: expected %d, got %d", component, value, got[component])
		}
	}
}
