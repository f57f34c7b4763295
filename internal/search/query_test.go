package search

import (
	"testing"
)

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Backend Engineer ", "backend engineer"},
		{"C++ / Go!!", "c go"},
		{"react\t\tnative", "react native"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := NormalizeQuery(c.in); got != c.want {
			t.Fatalf("NormalizeQuery(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExpandQuery_SkillAlias(t *testing.T) {
	variants := ExpandQuery("golang")
	if variants[0] != "golang" {
		t.Fatalf("expected original first, got %v", variants)
	}
	found := false
	for _, v := range variants {
		if v == "go" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected skill alias variant, got %v", variants)
	}
}

func TestExpandQuery_RoleSynonyms(t *testing.T) {
	variants := ExpandQuery("devops")
	want := map[string]bool{"devops": false, "kubernetes": false, "sre": false}
	for _, v := range variants {
		if _, ok := want[v]; ok {
			want[v] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Fatalf("missing variant %q in %v", k, variants)
		}
	}
}

func TestExpandQuery_CompactForm(t *testing.T) {
	variants := ExpandQuery("fullstack")
	found := false
	for _, v := range variants {
		if v == "full stack" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected compact role expanded to spaced form, got %v", variants)
	}

	variants = ExpandQuery("frontend fintech")
	found = false
	for _, v := range variants {
		if v == "react fintech" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected prefix expansion with rest attached, got %v", variants)
	}
}

func TestProcessQuery_Empty(t *testing.T) {
	q := ProcessQuery("  !!  ")
	if q.Normalized != "" {
		t.Fatalf("expected empty normalized, got %q", q.Normalized)
	}
	if len(q.Variants) != 0 {
		t.Fatalf("expected no variants, got %v", q.Variants)
	}
}
