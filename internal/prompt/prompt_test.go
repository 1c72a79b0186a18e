package prompt

import (
	"strings"
	"testing"
)

func TestTurnAppendsQuestion(t *testing.T) {
	got := Turn("What is 2+2?")
	if !strings.HasSuffix(got, "Q: What is 2+2?") {
		t.Fatalf("turn prompt must end with the question, got %q", got)
	}
	if !strings.Contains(got, "Answer questions to the point") {
		t.Fatalf("turn prompt missing instructional preamble")
	}
}

func TestSummaryAppendsQuestion(t *testing.T) {
	got := Summary("Why does ice float on water?")
	if !strings.HasSuffix(got, "Q: Why does ice float on water?") {
		t.Fatalf("summary prompt must end with the question, got %q", got)
	}
	if !strings.Contains(got, "Summarize the conversation") {
		t.Fatalf("summary prompt missing summarization preamble")
	}
}

func TestComposersAreDistinct(t *testing.T) {
	if Turn("x") == Summary("x") {
		t.Fatalf("turn and summary prompts must use different preambles")
	}
}

func TestComposersAreDeterministic(t *testing.T) {
	if Turn("same") != Turn("same") || Summary("same") != Summary("same") {
		t.Fatalf("composers must be pure functions of their input")
	}
}
