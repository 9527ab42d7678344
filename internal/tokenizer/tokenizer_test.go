package tokenizer

import (
	"reflect"
	"testing"

	"github.com/snipmux/snipmux/internal/models"
)

func TestDetectMentionsBasic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.Mention
	}{
		{
			name: "plain mention",
			text: "check out //review please",
			want: []models.Mention{{Name: "review"}},
		},
		{
			name: "forced mention",
			text: "again //review!",
			want: []models.Mention{{Name: "review", Forced: true}},
		},
		{
			name: "multiple in order",
			text: "//alpha then //beta",
			want: []models.Mention{{Name: "alpha"}, {Name: "beta"}},
		},
		{
			name: "dedup by name first wins",
			text: "//review! and //review again",
			want: []models.Mention{{Name: "review", Forced: true}},
		},
		{
			name: "hyphen and underscore in name",
			text: "//5-approaches and //my_plan",
			want: []models.Mention{{Name: "5-approaches"}, {Name: "my_plan"}},
		},
		{
			name: "no mentions",
			text: "nothing here",
			want: nil,
		},
		{
			name: "name must start with letter or digit",
			text: "//-nope //_nope //yes",
			want: []models.Mention{{Name: "yes"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectMentions(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectMentions(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectMentionsSkipsURLs(t *testing.T) {
	tests := []string{
		"see https://example.com//review for details",
		"protocol-relative //example.com is fine but x://review is not",
		"path/a//review stays put",
		"word//review is glued to a word",
	}

	for _, text := range tests {
		for _, m := range DetectMentions(text) {
			if m.Name == "review" {
				t.Errorf("DetectMentions(%q) picked up %q from a URL/path", text, m.Name)
			}
		}
	}
}

func TestDetectMentionsSkipsCodeRegions(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.Mention
	}{
		{
			name: "inline code",
			text: "use `//review` but also //plan",
			want: []models.Mention{{Name: "plan"}},
		},
		{
			name: "fenced code",
			text: "```\n//review\n```\nthen //plan",
			want: []models.Mention{{Name: "plan"}},
		},
		{
			name: "already expanded block",
			text: "<snippet name=\"review\" id=\"ab12\">\ncontent //inner here\n</snippet>\nand //outer",
			want: []models.Mention{{Name: "outer"}},
		},
		{
			name: "nested expanded blocks",
			text: "<snippet name=\"a\" id=\"1\">\n<snippet name=\"b\" id=\"2\">\n//x\n</snippet>\n//y\n</snippet> //z",
			want: []models.Mention{{Name: "z"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectMentions(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectMentions(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectMentionsArgs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.Mention
	}{
		{
			name: "positional arg",
			text: "//greet(world)",
			want: models.Mention{Name: "greet", Args: map[string]string{models.PositionalArgKey: "world"}},
		},
		{
			name: "quoted positional arg",
			text: `//greet("hello, world")`,
			want: models.Mention{Name: "greet", Args: map[string]string{models.PositionalArgKey: "hello, world"}},
		},
		{
			name: "named args",
			text: "//deploy(env=prod, region=eu)",
			want: models.Mention{Name: "deploy", Args: map[string]string{"env": "prod", "region": "eu"}},
		},
		{
			name: "quoted named value with comma",
			text: `//deploy(note="a, b", env=prod)`,
			want: models.Mention{Name: "deploy", Args: map[string]string{"note": "a, b", "env": "prod"}},
		},
		{
			name: "args then force",
			text: "//deploy(env=prod)!",
			want: models.Mention{Name: "deploy", Forced: true, Args: map[string]string{"env": "prod"}},
		},
		{
			name: "unterminated args degrade to none",
			text: "//deploy(env=prod and nothing closes",
			want: models.Mention{Name: "deploy"},
		},
		{
			name: "unbalanced quote degrades to none",
			text: `//deploy(note="oops)`,
			want: models.Mention{Name: "deploy"},
		},
		{
			name: "empty args",
			text: "//deploy()",
			want: models.Mention{Name: "deploy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectMentions(tt.text)
			if len(got) != 1 {
				t.Fatalf("DetectMentions(%q) = %+v, want exactly one mention", tt.text, got)
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("DetectMentions(%q) = %+v, want %+v", tt.text, got[0], tt.want)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	text := "a //x b //x!"
	occs := Scan(text)
	if len(occs) != 2 {
		t.Fatalf("Scan returned %d occurrences, want 2", len(occs))
	}
	if occs[0].Literal != "//x" || text[occs[0].Start:occs[0].End] != "//x" {
		t.Errorf("first occurrence literal = %q at [%d,%d)", occs[0].Literal, occs[0].Start, occs[0].End)
	}
	if occs[1].Literal != "//x!" || !occs[1].Mention.Forced {
		t.Errorf("second occurrence = %+v, want forced //x!", occs[1])
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		input string
		want  map[string]string
	}{
		{"", nil},
		{"  ", nil},
		{"world", map[string]string{models.PositionalArgKey: "world"}},
		{"'quoted'", map[string]string{models.PositionalArgKey: "quoted"}},
		{"a=1,b=2", map[string]string{"a": "1", "b": "2"}},
		{"a=1, junk, b=2", map[string]string{"a": "1", "b": "2"}},
		{"not a pair, just text", map[string]string{models.PositionalArgKey: "not a pair, just text"}},
		{`msg="x=y"`, map[string]string{"msg": "x=y"}},
	}

	for _, tt := range tests {
		got := ParseArgs(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseArgs(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
