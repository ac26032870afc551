package analyzer

import "testing"

func TestEvaluate_PerTextPresence(t *testing.T) {
	// Three occurrences in one text still count as one matching text.
	results := evaluate([]Candidate{
		{Strategy: "s", Pattern: "a"},
	}, []string{"a a a", "b"}, false)

	if len(results) != 1 {
		t.Fatalf("results: got %d, want 1", len(results))
	}
	if results[0].Matches != "1/2" {
		t.Errorf("matches: got %q, want '1/2'", results[0].Matches)
	}
	if results[0].Rating != "50.00%" {
		t.Errorf("rating: got %q, want '50.00%%'", results[0].Rating)
	}
}

func TestEvaluate_DedupKeepsFirstLabel(t *testing.T) {
	results := evaluate([]Candidate{
		{Strategy: "first", Pattern: "abc"},
		{Strategy: "second", Pattern: "abc"},
	}, []string{"abc"}, false)

	if len(results) != 1 {
		t.Fatalf("results: got %d, want 1 (%+v)", len(results), results)
	}
	if results[0].Strategy != "first" {
		t.Errorf("strategy: got %q, want 'first'", results[0].Strategy)
	}
}

func TestEvaluate_CaseSensitivityDistinguishesPatterns(t *testing.T) {
	// The same raw pattern under different flags yields two distinct entries.
	results := evaluate([]Candidate{
		{Strategy: "loose", Pattern: "abc"},
		{Strategy: "exact", Pattern: "abc", CaseSensitive: true},
	}, []string{"ABC"}, false)

	if len(results) != 2 {
		t.Fatalf("results: got %d, want 2 (%+v)", len(results), results)
	}
	if results[0].Regex != "(?i)abc" || results[0].Rating != "100.00%" {
		t.Errorf("loose entry: %+v", results[0])
	}
	if results[1].Regex != "abc" || results[1].Rating != "0.00%" {
		t.Errorf("exact entry: %+v", results[1])
	}
}

func TestEvaluate_SkipsUncompilablePattern(t *testing.T) {
	results := evaluate([]Candidate{
		{Strategy: "broken", Pattern: "(["},
		{Strategy: "ok", Pattern: "abc"},
	}, []string{"abc"}, false)

	if len(results) != 1 {
		t.Fatalf("results: got %d, want 1 (%+v)", len(results), results)
	}
	if results[0].Strategy != "ok" {
		t.Errorf("strategy: got %q", results[0].Strategy)
	}
}

func TestEvaluate_SortOrder(t *testing.T) {
	results := evaluate([]Candidate{
		{Strategy: "never", Pattern: "zzz"},
		{Strategy: "always", Pattern: "x"},
		{Strategy: "half", Pattern: "y"},
	}, []string{"x y", "x"}, false)

	if len(results) != 3 {
		t.Fatalf("results: got %d", len(results))
	}
	wantOrder := []string{"always", "half", "never"}
	for i, w := range wantOrder {
		if results[i].Strategy != w {
			t.Errorf("order[%d]: got %q, want %q", i, results[i].Strategy, w)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Rate() > results[i-1].Rate() {
			t.Errorf("rates not descending at %d: %f > %f", i, results[i].Rate(), results[i-1].Rate())
		}
	}
}

func TestEvaluate_StableOnTies(t *testing.T) {
	results := evaluate([]Candidate{
		{Strategy: "gen1", Pattern: "x"},
		{Strategy: "gen2", Pattern: "x "},
		{Strategy: "gen3", Pattern: "x y"},
	}, []string{"x y"}, false)

	wantOrder := []string{"gen1", "gen2", "gen3"}
	if len(results) != len(wantOrder) {
		t.Fatalf("results: got %d", len(results))
	}
	for i, w := range wantOrder {
		if results[i].Strategy != w {
			t.Errorf("order[%d]: got %q, want %q", i, results[i].Strategy, w)
		}
	}
}

func TestEvaluate_TemplateFlags(t *testing.T) {
	// Template mode compiles with dot-matches-newline, so a capture spans lines.
	results := evaluate([]Candidate{
		{Strategy: "full", Pattern: `inicio\s*(.+?)\s*fim`},
	}, []string{"INICIO linha1\nlinha2 FIM"}, true)

	if len(results) != 1 {
		t.Fatalf("results: got %d", len(results))
	}
	if results[0].Regex != `(?is)inicio\s*(.+?)\s*fim` {
		t.Errorf("regex: got %q", results[0].Regex)
	}
	if results[0].Rating != "100.00%" {
		t.Errorf("rating: got %q, want '100.00%%'", results[0].Rating)
	}
}

func TestEvaluate_NoCandidates(t *testing.T) {
	results := evaluate(nil, []string{"x"}, false)
	if results == nil || len(results) != 0 {
		t.Fatalf("results: got %v, want empty non-nil slice", results)
	}
}

func TestFlaggedPattern(t *testing.T) {
	tests := []struct {
		name         string
		cand         Candidate
		templateMode bool
		want         string
	}{
		{"template", Candidate{Pattern: "p"}, true, "(?is)p"},
		{"word insensitive", Candidate{Pattern: "p"}, false, "(?i)p"},
		{"word sensitive", Candidate{Pattern: "p", CaseSensitive: true}, false, "p"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flaggedPattern(tt.cand, tt.templateMode); got != tt.want {
				t.Errorf("flaggedPattern: got %q, want %q", got, tt.want)
			}
		})
	}
}
