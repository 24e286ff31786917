package gemini

import (
	"reflect"
	"testing"
)

func TestCleanQuestionListStripsMarkers(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"numbered with parenthesis",
			"2) What is a hash map?",
			[]string{"What is a hash map?"},
		},
		{
			"numbered with dot",
			"1. Explain the CAP theorem.",
			[]string{"Explain the CAP theorem."},
		},
		{
			"bare bullet",
			"- Explain recursion",
			[]string{"Explain recursion"},
		},
		{
			"asterisk bullet",
			"* Describe a binary search tree.",
			[]string{"Describe a binary search tree."},
		},
		{
			"number with trailing dash",
			"3 - What does REST stand for?",
			[]string{"What does REST stand for?"},
		},
		{
			"full model output",
			"1) What is Go?\n2) Explain goroutines.\n\n3) What is a channel?\n",
			[]string{"What is Go?", "Explain goroutines.", "What is a channel?"},
		},
		{
			"whitespace around lines",
			"   4.   Describe indexing.   ",
			[]string{"Describe indexing."},
		},
		{
			"unmarked line passes through",
			"Tell me about yourself.",
			[]string{"Tell me about yourself."},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := CleanQuestionList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("unexpected output: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestCleanQuestionListDropsBlankOutput(t *testing.T) {
	for _, in := range []string{"", "\n\n\n", "  \n\t\n", "1)\n2)  "} {
		if got := CleanQuestionList(in); len(got) != 0 {
			t.Fatalf("expected no questions for %q, got %v", in, got)
		}
	}
}
