package domain

// LLM provider identifiers as sent by the client.
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderDeepSeek   = "deepseek"
	ProviderPerplexity = "perplexity"
)

// Providers lists every rewrite provider in display order.
var Providers = []string{ProviderOpenAI, ProviderAnthropic, ProviderDeepSeek, ProviderPerplexity}

func ValidProvider(p string) bool {
	for _, v := range Providers {
		if v == p {
			return true
		}
	}
	return false
}

// Mixing mode controls how style/content references feed the prompt.
const (
	MixStyle   = "style"
	MixContent = "content"
	MixBoth    = "both"
)

// RewriteJob lifecycle.
const (
	JobPending   = "pending"
	JobCompleted = "completed"
	JobFailed    = "failed"
)

// Payment lifecycle (mirrors Stripe intent statuses we care about).
const (
	PaymentPending   = "pending"
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
)
