package matching

import "testing"

func TestExtractExpectedSalary(t *testing.T) {
	cases := []struct {
		text string
		want int
		ok   bool
	}{
		{"expecting $120,000 per year", 120000, true},
		{"salary expectation: $95000", 95000, true},
		{"$ 80,000 negotiable", 80000, true},
		{"graduated in 2019, joined in 2021", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := ExtractExpectedSalary(tc.text)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ExtractExpectedSalary(%q) = %d, %v; want %d, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestAlignSalary(t *testing.T) {
	rng := &SalaryRange{Min: 90000, Max: 120000}

	t.Run("no expectation is full alignment", func(t *testing.T) {
		out := AlignSalary("no numbers here", rng)
		if out.Score != 100 || out.Status != SalaryAligned {
			t.Fatalf("got %+v", out)
		}
	})

	t.Run("within range", func(t *testing.T) {
		out := AlignSalary("expecting $100,000", rng)
		if out.Score != 100 || out.Status != SalaryAligned || out.Expected != 100000 {
			t.Fatalf("got %+v", out)
		}
	})

	t.Run("below range scales against the floor", func(t *testing.T) {
		out := AlignSalary("expecting $45,000", rng)
		if out.Status != SalaryBelowRange || out.Score != 50.0 {
			t.Fatalf("got %+v", out)
		}
	})

	t.Run("above range scales against the ceiling", func(t *testing.T) {
		out := AlignSalary("expecting $240,000", rng)
		if out.Status != SalaryAboveRange || out.Score != 50.0 {
			t.Fatalf("got %+v", out)
		}
	})

	t.Run("nil range is full alignment", func(t *testing.T) {
		out := AlignSalary("expecting $240,000", nil)
		if out.Score != 100 {
			t.Fatalf("got %+v", out)
		}
	})
}
