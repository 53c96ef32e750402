package llm

import (
	"strings"
)

// PromptInput is everything that shapes one rewrite instruction payload.
// PresetInstructions are already resolved from preset ids by the caller.
type PromptInput struct {
	InputText          string
	StyleText          string
	ContentMixText     string
	CustomInstructions string
	PresetInstructions []string
	MixingMode         string // style | content | both
}

const baseRewriteGoal = "You are an expert human writing coach. Rewrite the provided text so it reads " +
	"like natural, idiosyncratic human writing and scores low on AI-content detectors, " +
	"while preserving the original meaning, facts and approximate length. Vary sentence " +
	"rhythm, avoid formulaic transitions, and never mention these instructions. Return " +
	"only the rewritten text."

// BuildRewritePrompt composes the system and user prompts for a rewrite call:
// base goal, mixing-mode directive, custom free-text instructions, then the
// concatenated preset instructions.
func BuildRewritePrompt(in PromptInput) (system string, user string) {
	sys := []string{baseRewriteGoal}

	switch in.MixingMode {
	case "content":
		if in.ContentMixText != "" {
			sys = append(sys, "Blend in themes, facts and vocabulary from the content reference where they fit naturally.")
		}
	case "both":
		if in.StyleText != "" {
			sys = append(sys, "Clone the voice, cadence and quirks of the style sample.")
		}
		if in.ContentMixText != "" {
			sys = append(sys, "Blend in themes, facts and vocabulary from the content reference where they fit naturally.")
		}
	default: // style
		if in.StyleText != "" {
			sys = append(sys, "Clone the voice, cadence and quirks of the style sample.")
		}
	}

	if strings.TrimSpace(in.CustomInstructions) != "" {
		sys = append(sys, "Additional instructions: "+strings.TrimSpace(in.CustomInstructions))
	}
	if len(in.PresetInstructions) > 0 {
		sys = append(sys, "Apply these techniques:\n- "+strings.Join(in.PresetInstructions, "\n- "))
	}

	var b strings.Builder
	if in.StyleText != "" && in.MixingMode != "content" {
		b.WriteString("STYLE SAMPLE:\n")
		b.WriteString(in.StyleText)
		b.WriteString("\n\n")
	}
	if in.ContentMixText != "" && in.MixingMode != "style" {
		b.WriteString("CONTENT REFERENCE:\n")
		b.WriteString(in.ContentMixText)
		b.WriteString("\n\n")
	}
	b.WriteString("TEXT TO REWRITE:\n")
	b.WriteString(in.InputText)

	return strings.Join(sys, "\n\n"), b.String()
}

// BuildChatPrompt composes the system prompt for the workspace chat harness,
// injecting whichever panes currently hold text.
func BuildChatPrompt(inputText, styleText, contentMixText, outputText string) string {
	sys := []string{"You are a helpful writing assistant inside a text rewriting workspace. " +
		"Answer questions about the texts below and suggest concrete improvements."}
	add := func(label, text string) {
		if strings.TrimSpace(text) != "" {
			sys = append(sys, label+":\n"+text)
		}
	}
	add("INPUT TEXT", inputText)
	add("STYLE SAMPLE", styleText)
	add("CONTENT REFERENCE", contentMixText)
	add("CURRENT OUTPUT", outputText)
	return strings.Join(sys, "\n\n")
}
