package tags

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Tag
	}{
		{"debug", Word{Text: "debug"}},
		{"Fix|Repair", Word{Text: "fix|repair"}},
		{"(fix|repair)", OrGroup{Alternatives: []string{"fix", "repair"}}},
		{"[inspect, changes]", AndGroup{Items: []string{"inspect", "changes"}}},
		{"follow->instruction", Sequence{Steps: []Step{
			{Kind: StepWord, Words: []string{"follow"}},
			{Kind: StepWord, Words: []string{"instruction"}},
		}}},
		{"(follow|execute|do)->instruction", Sequence{Steps: []Step{
			{Kind: StepOr, Words: []string{"follow", "execute", "do"}},
			{Kind: StepWord, Words: []string{"instruction"}},
		}}},
		{"inspect->[changes,staged]", Sequence{Steps: []Step{
			{Kind: StepWord, Words: []string{"inspect"}},
			{Kind: StepAnd, Words: []string{"changes", "staged"}},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Parse(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsGroup(t *testing.T) {
	if IsGroup(Parse("debug")) {
		t.Error("Word should not count as a group")
	}
	if IsGroup(Parse("(a|b)")) {
		t.Error("OrGroup should not count as a group")
	}
	if !IsGroup(Parse("[a,b]")) {
		t.Error("AndGroup should count as a group")
	}
	if !IsGroup(Parse("a->b")) {
		t.Error("Sequence should count as a group")
	}
}
