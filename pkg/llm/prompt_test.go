package llm

import (
	"strings"
	"testing"
)

func TestBuildRewritePromptStyleMode(t *testing.T) {
	sys, user := BuildRewritePrompt(PromptInput{
		InputText:  "the input",
		StyleText:  "the style",
		MixingMode: "style",
	})
	if !strings.Contains(sys, "Clone the voice") {
		t.Fatal("style directive missing from system prompt")
	}
	if strings.Contains(sys, "content reference") {
		t.Fatal("content directive should not appear in style mode")
	}
	if !strings.Contains(user, "STYLE SAMPLE:\nthe style") {
		t.Fatal("style sample missing from user prompt")
	}
	if !strings.Contains(user, "TEXT TO REWRITE:\nthe input") {
		t.Fatal("input text missing from user prompt")
	}
}

func TestBuildRewritePromptBothMode(t *testing.T) {
	sys, user := BuildRewritePrompt(PromptInput{
		InputText:      "x",
		StyleText:      "s",
		ContentMixText: "c",
		MixingMode:     "both",
	})
	if !strings.Contains(sys, "Clone the voice") || !strings.Contains(sys, "content reference") {
		t.Fatal("both-mode directives missing")
	}
	if !strings.Contains(user, "STYLE SAMPLE") || !strings.Contains(user, "CONTENT REFERENCE") {
		t.Fatal("both-mode user sections missing")
	}
}

func TestBuildRewritePromptCustomAndPresets(t *testing.T) {
	sys, _ := BuildRewritePrompt(PromptInput{
		InputText:          "x",
		CustomInstructions: "  keep it short  ",
		PresetInstructions: []string{"Hedge twice.", "One aside."},
	})
	if !strings.Contains(sys, "Additional instructions: keep it short") {
		t.Fatal("custom instructions missing")
	}
	if !strings.Contains(sys, "- Hedge twice.\n- One aside.") {
		t.Fatal("preset instructions not concatenated")
	}
}

func TestBuildChatPromptSkipsEmptyPanes(t *testing.T) {
	sys := BuildChatPrompt("in", "", "", "out")
	if !strings.Contains(sys, "INPUT TEXT:\nin") || !strings.Contains(sys, "CURRENT OUTPUT:\nout") {
		t.Fatal("populated panes missing")
	}
	if strings.Contains(sys, "STYLE SAMPLE") || strings.Contains(sys, "CONTENT REFERENCE") {
		t.Fatal("empty panes should be omitted")
	}
}
