package matching

import "testing"

func TestLevelScore(t *testing.T) {
	cases := []struct {
		name     string
		level    int
		title    string
		expected float64
	}{
		{name: "junior student intern title", level: 250, title: "Software Intern", expected: 1.0},
		{name: "junior student senior title", level: 250, title: "Senior Backend Engineer", expected: 0.6},
		{name: "junior student trainee title", level: 100, title: "Graduate Trainee", expected: 1.0},
		{name: "junior student plain title", level: 200, title: "Backend Engineer", expected: 0.6},
		{name: "upper student senior title", level: 400, title: "Senior Developer", expected: 0.9},
		{name: "upper student lead title", level: 300, title: "Lead Engineer", expected: 0.9},
		{name: "upper student developer title", level: 400, title: "Backend Developer", expected: 1.0},
		{name: "upper student plain title", level: 500, title: "Data Analyst", expected: 0.8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LevelScore(tc.level, tc.title)
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
