// Package presets holds the static reference catalogs: instruction presets,
// writing samples and pricing tiers. Read-only, loaded at init.
package presets

// InstructionPreset is a named, reusable instruction fragment merged into the
// rewrite prompt when selected.
type InstructionPreset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Instruction string `json:"instruction"`
}

type WritingSample struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Preview  string `json:"preview"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

type PricingTier struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PriceUSD int64  `json:"priceUsd"`
	Credits  int64  `json:"credits"`
}

var instructionPresets = []InstructionPreset{
	// Advanced Techniques
	{ID: "mixed-cadence-sprawl", Name: "Mixed cadence + clause sprawl", Description: "Alternate short and long sentences; allow some long sentences to wander with extra clauses.", Category: "Advanced Techniques", Instruction: "Alternate short and long sentences; allow some long sentences to wander with extra clauses."},
	{ID: "asymmetric-emphasis", Name: "Asymmetric emphasis", Description: "Over-elaborate one point; compress or skate past another.", Category: "Advanced Techniques", Instruction: "Over-elaborate one point; compress or skate past another."},
	{ID: "one-aside", Name: "One aside", Description: "Add a quick parenthetical or em-dash remark — factual, not jokey.", Category: "Advanced Techniques", Instruction: "Add a quick parenthetical or em-dash remark — factual, not jokey."},
	{ID: "hedge-twice", Name: "Hedge twice", Description: "Use two mild uncertainty markers (\"probably,\" \"seems,\" \"roughly,\" \"I think\").", Category: "Advanced Techniques", Instruction: "Use two mild uncertainty markers (\"probably,\" \"seems,\" \"roughly,\" \"I think\")."},
	{ID: "local-disfluency", Name: "Local disfluency", Description: "Keep one redundant or slightly awkward phrase that still makes sense.", Category: "Advanced Techniques", Instruction: "Keep one redundant or slightly awkward phrase that still makes sense."},
	{ID: "analogy-injection", Name: "Analogy injection", Description: "Insert a short, concrete comparison to something unrelated but illustrative.", Category: "Advanced Techniques", Instruction: "Insert a short, concrete comparison to something unrelated but illustrative."},
	{ID: "topic-snap", Name: "Topic snap", Description: "Abruptly shift focus once, then return.", Category: "Advanced Techniques", Instruction: "Abruptly shift focus once, then return."},
	{ID: "friction-detail", Name: "Friction detail", Description: "Drop in a small, seemingly unnecessary but real-world-plausible detail.", Category: "Advanced Techniques", Instruction: "Drop in a small, seemingly unnecessary but real-world-plausible detail."},

	// Structure & Cadence
	{ID: "compression-light", Name: "Compression — light (-15%)", Description: "Cut filler; merge short clauses; keep meaning.", Category: "Structure & Cadence", Instruction: "Cut filler; merge short clauses; keep meaning."},
	{ID: "compression-medium", Name: "Compression — medium (-30%)", Description: "Trim hard; delete throat-clearing; tighten syntax.", Category: "Structure & Cadence", Instruction: "Trim hard; delete throat-clearing; tighten syntax."},
	{ID: "compression-heavy", Name: "Compression — heavy (-45%)", Description: "Sever redundancies; collapse repeats; keep core claims.", Category: "Structure & Cadence", Instruction: "Sever redundancies; collapse repeats; keep core claims."},
	{ID: "decrease-50", Name: "Decrease by 50%", Description: "Reduce the text length by half while preserving meaning.", Category: "Structure & Cadence", Instruction: "Decrease by 50%."},
	{ID: "increase-150", Name: "Increase by 150%", Description: "Expand the text to 150% longer with additional detail and elaboration.", Category: "Structure & Cadence", Instruction: "Increase by 150%."},
	{ID: "mixed-cadence", Name: "Mixed cadence", Description: "Alternate 5–35-word sentences; no uniform rhythm.", Category: "Structure & Cadence", Instruction: "Alternate 5–35-word sentences; no uniform rhythm."},
	{ID: "clause-surgery", Name: "Clause surgery", Description: "Reorder main/subordinate clauses in 30% of sentences.", Category: "Structure & Cadence", Instruction: "Reorder main/subordinate clauses in 30% of sentences."},
	{ID: "front-load", Name: "Front-load claim", Description: "Put the main conclusion in sentence 1; support follows.", Category: "Structure & Cadence", Instruction: "Put the main conclusion in sentence 1; support follows."},
	{ID: "back-load", Name: "Back-load claim", Description: "Delay the conclusion to the final 2–3 sentences.", Category: "Structure & Cadence", Instruction: "Delay the conclusion to the final 2–3 sentences."},
	{ID: "seam-pivot", Name: "Seam/pivot", Description: "Drop smooth connectors once; abrupt turn is fine.", Category: "Structure & Cadence", Instruction: "Drop smooth connectors once; abrupt turn is fine."},

	// Framing & Inference
	{ID: "imply-step", Name: "Imply one step", Description: "Omit an obvious inferential step; leave it implicit.", Category: "Framing & Inference", Instruction: "Omit an obvious inferential step; leave it implicit."},
	{ID: "conditional-framing", Name: "Conditional framing", Description: "Recast one key sentence as \"If/Unless …, then …\".", Category: "Framing & Inference", Instruction: "Recast one key sentence as \"If/Unless …, then …\"."},
	{ID: "local-contrast", Name: "Local contrast", Description: "Use \"but/except/aside\" once to mark a boundary—no new facts.", Category: "Framing & Inference", Instruction: "Use \"but/except/aside\" once to mark a boundary—no new facts."},
	{ID: "scope-check", Name: "Scope check", Description: "Replace one absolute with a bounded form (\"in cases like these\").", Category: "Framing & Inference", Instruction: "Replace one absolute with a bounded form (\"in cases like these\")."},

	// Diction & Tone
	{ID: "deflate-jargon", Name: "Deflate jargon", Description: "Swap nominalizations for verbs where safe (e.g., \"utilization\" → \"use\").", Category: "Diction & Tone", Instruction: "Swap nominalizations for verbs where safe (e.g., \"utilization\" → \"use\")."},
	{ID: "kill-transitions", Name: "Kill stock transitions", Description: "Delete \"Moreover/Furthermore/In conclusion\" everywhere.", Category: "Diction & Tone", Instruction: "Delete \"Moreover/Furthermore/In conclusion\" everywhere."},
	{ID: "hedge-once", Name: "Hedge once", Description: "Use exactly one: \"probably/roughly/more or less.\"", Category: "Diction & Tone", Instruction: "Use exactly one: \"probably/roughly/more or less.\""},
	{ID: "drop-intensifiers", Name: "Drop intensifiers", Description: "Remove \"very/clearly/obviously/significantly.\"", Category: "Diction & Tone", Instruction: "Remove \"very/clearly/obviously/significantly.\""},
	{ID: "low-heat-voice", Name: "Low-heat voice", Description: "Prefer plain verbs; avoid showy synonyms.", Category: "Diction & Tone", Instruction: "Prefer plain verbs; avoid showy synonyms."},

	// Concreteness & Benchmarks
	{ID: "concrete-benchmark", Name: "Concrete benchmark", Description: "Replace one vague scale with a testable one (e.g., \"enough to X\").", Category: "Concreteness & Benchmarks", Instruction: "Replace one vague scale with a testable one (e.g., \"enough to X\")."},
	{ID: "swap-example", Name: "Swap generic example", Description: "If the source has an example, make it slightly more specific; else skip.", Category: "Concreteness & Benchmarks", Instruction: "If the source has an example, make it slightly more specific; else skip."},
	{ID: "metric-nudge", Name: "Metric nudge", Description: "Replace \"more/better\" with a minimal, source-safe comparator (\"more than last case\").", Category: "Concreteness & Benchmarks", Instruction: "Replace \"more/better\" with a minimal, source-safe comparator (\"more than last case\")."},

	// Asymmetry & Focus
	{ID: "cull-repeats", Name: "Cull repeats", Description: "Delete duplicated sentences/ideas; keep the strongest instance.", Category: "Asymmetry & Focus", Instruction: "Delete duplicated sentences/ideas; keep the strongest instance."},

	// Formatting & Output Hygiene
	{ID: "no-lists", Name: "No lists", Description: "Force continuous prose; remove bullets/numbering.", Category: "Formatting & Output Hygiene", Instruction: "Force continuous prose; remove bullets/numbering."},
	{ID: "no-meta", Name: "No meta", Description: "No prefaces, apologies, or \"as requested\" scaffolding.", Category: "Formatting & Output Hygiene", Instruction: "No prefaces, apologies, or \"as requested\" scaffolding."},
	{ID: "exact-nouns", Name: "Exact nouns", Description: "Replace vague pronouns where antecedent is ambiguous.", Category: "Formatting & Output Hygiene", Instruction: "Replace vague pronouns where antecedent is ambiguous."},
	{ID: "quote-once", Name: "Quote once", Description: "If the source contains a strong phrase, quote it once; else skip.", Category: "Formatting & Output Hygiene", Instruction: "If the source contains a strong phrase, quote it once; else skip."},

	// Safety / Guardrails
	{ID: "claim-lock", Name: "Claim lock", Description: "Do not add examples, scenarios, or data not present in the source.", Category: "Safety / Guardrails", Instruction: "Do not add examples, scenarios, or data not present in the source."},
	{ID: "entity-lock", Name: "Entity lock", Description: "Keep names, counts, and attributions exactly as given.", Category: "Safety / Guardrails", Instruction: "Keep names, counts, and attributions exactly as given."},
}

var presetIndex = func() map[string]InstructionPreset {
	m := make(map[string]InstructionPreset, len(instructionPresets))
	for _, p := range instructionPresets {
		m[p.ID] = p
	}
	return m
}()

// All returns the full instruction preset catalog.
func All() []InstructionPreset {
	return instructionPresets
}

// Resolve maps preset ids to instruction strings. Unknown ids are skipped,
// not fatal.
func Resolve(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := presetIndex[id]; ok {
			out = append(out, p.Instruction)
		}
	}
	return out
}
