package analyzer

import (
	"errors"
	"regexp"
	"testing"
)

func TestDecomposeTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []Segment
		wantErr  error
	}{
		{
			name:     "literal then marker",
			template: "Processo nº [numero]",
			want: []Segment{
				{Text: "Processo nº "},
				{Text: "[numero]", Placeholder: true},
			},
		},
		{
			name:     "marker surrounded by literals",
			template: "total de [valor] reais",
			want: []Segment{
				{Text: "total de "},
				{Text: "[valor]", Placeholder: true},
				{Text: " reais"},
			},
		},
		{
			name:     "adjacent markers",
			template: "[a][b]",
			want: []Segment{
				{Text: "[a]", Placeholder: true},
				{Text: "[b]", Placeholder: true},
			},
		},
		{
			name:     "bare marker has no context",
			template: "[x]",
			wantErr:  ErrInvalidTemplate,
		},
		{
			name:     "no marker",
			template: "sem marcadores aqui",
			wantErr:  ErrInvalidTemplate,
		},
		{
			name:     "empty",
			template: "",
			wantErr:  ErrInvalidTemplate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs, err := DecomposeTemplate(tt.template)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error: got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(segs) != len(tt.want) {
				t.Fatalf("segments: got %d, want %d (%+v)", len(segs), len(tt.want), segs)
			}
			for i, w := range tt.want {
				if segs[i] != w {
					t.Errorf("segment[%d]: got %+v, want %+v", i, segs[i], w)
				}
			}
		})
	}
}

func TestNewTemplateAnalyzer_Errors(t *testing.T) {
	if _, err := NewTemplateAnalyzer("", []string{"x"}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty template: got %v", err)
	}
	if _, err := NewTemplateAnalyzer("a [b]", nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty corpus: got %v", err)
	}
	if _, err := NewTemplateAnalyzer("[x]", []string{"x"}); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("bare marker: got %v", err)
	}
}

func TestTemplateCandidates_BothAnchors(t *testing.T) {
	segs, err := DecomposeTemplate("Nome: [nome].")
	if err != nil {
		t.Fatal(err)
	}
	cands := templateCandidates(segs)

	want := []Candidate{
		{Strategy: "Contexto Completo", Pattern: `Nome:\s*(.+?)\s*\.`},
		{Strategy: "Ancorado no Início", Pattern: `Nome:\s*(.+?)`},
		{Strategy: "Ancorado no Fim", Pattern: `(.+?)\s*\.`},
	}
	if len(cands) != len(want) {
		t.Fatalf("candidates: got %d, want %d (%+v)", len(cands), len(want), cands)
	}
	for i, w := range want {
		if cands[i] != w {
			t.Errorf("candidate[%d]: got %+v, want %+v", i, cands[i], w)
		}
	}
}

func TestTemplateCandidates_TrailingMarker(t *testing.T) {
	segs, err := DecomposeTemplate("Data: [dia] de [mes] de [ano]")
	if err != nil {
		t.Fatal(err)
	}
	cands := templateCandidates(segs)

	// A trailing placeholder leaves nothing to drop for the start-anchored
	// variant, so only full, end-anchored and minimal-span survive.
	want := []Candidate{
		{Strategy: "Contexto Completo", Pattern: `Data:\s*(.+?)\s*de\s*(.+?)\s*de\s*(.+?)`},
		{Strategy: "Ancorado no Fim", Pattern: `(.+?)\s*de\s*(.+?)\s*de\s*(.+?)`},
		{Strategy: "Contexto Mínimo (entre marcadores)", Pattern: `(.+?)\s*de\s*(.+?)\s*de\s*(.+?)`},
	}
	if len(cands) != len(want) {
		t.Fatalf("candidates: got %d, want %d (%+v)", len(cands), len(want), cands)
	}
	for i, w := range want {
		if cands[i] != w {
			t.Errorf("candidate[%d]: got %+v, want %+v", i, cands[i], w)
		}
	}
}

func TestTemplateCandidates_AdjacentMarkersSkipMinimal(t *testing.T) {
	segs, err := DecomposeTemplate("[a][b]")
	if err != nil {
		t.Fatal(err)
	}
	cands := templateCandidates(segs)
	if len(cands) != 1 {
		t.Fatalf("candidates: got %d, want 1 (%+v)", len(cands), cands)
	}
	if cands[0].Strategy != "Contexto Completo" {
		t.Errorf("strategy: got %q", cands[0].Strategy)
	}
}

func TestTemplateAnalyzer_Rank(t *testing.T) {
	a, err := NewTemplateAnalyzer("Processo nº [numero]", []string{
		"Processo nº 123-45 referente",
		"Sem processo aqui",
	})
	if err != nil {
		t.Fatal(err)
	}

	ranked := a.Rank()
	if len(ranked) != 1 {
		t.Fatalf("results: got %d, want 1 (%+v)", len(ranked), ranked)
	}
	r := ranked[0]
	if r.Strategy != "Contexto Completo" {
		t.Errorf("strategy: got %q", r.Strategy)
	}
	if r.Regex != `(?is)Processo nº\s*(.+?)` {
		t.Errorf("regex: got %q", r.Regex)
	}
	if r.Rating != "50.00%" {
		t.Errorf("rating: got %q, want '50.00%%'", r.Rating)
	}
	if r.Matches != "1/2" {
		t.Errorf("matches: got %q, want '1/2'", r.Matches)
	}
}

func TestTemplateAnalyzer_BestPatternExtracts(t *testing.T) {
	a, err := NewTemplateAnalyzer("nº [num] emitido", []string{
		"Despacho nº 123 emitido hoje",
		"despacho  nº  456  emitido ontem",
	})
	if err != nil {
		t.Fatal(err)
	}

	best := a.BestPattern()
	if best == "" {
		t.Fatal("best pattern empty")
	}
	if again := a.BestPattern(); again != best {
		t.Fatalf("memoized pattern changed: %q vs %q", best, again)
	}

	re, err := regexp.Compile(best)
	if err != nil {
		t.Fatalf("best pattern does not compile: %v", err)
	}
	m := re.FindStringSubmatch("Despacho nº 123 emitido hoje")
	if len(m) < 2 || m[1] != "123" {
		t.Fatalf("capture: got %v, want group '123'", m)
	}
}
