package service

import (
	"context"
	"errors"
	"log"

	"rescribe/config"
	"rescribe/internal/domain"
	"rescribe/internal/models"
	"rescribe/internal/presets"
	"rescribe/internal/repository"
	"rescribe/pkg/keystore"
	"rescribe/pkg/llm"
	"rescribe/pkg/textchunk"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyInput = errors.New("input text is required")
)

// Detector scores text 0..100 for AI likelihood.
type Detector interface {
	Score(ctx context.Context, apiKey, text string) (int, error)
}

// CompleterFactory builds an LLM client for a provider/key pair. Tests swap
// it for a fake; production uses llm.New.
type CompleterFactory func(provider, apiKey string) (llm.Completer, error)

type RewriteRequest struct {
	InputText          string            `json:"inputText"`
	StyleText          string            `json:"styleText"`
	ContentMixText     string            `json:"contentMixText"`
	CustomInstructions string            `json:"customInstructions"`
	SelectedPresets    []string          `json:"selectedPresets"`
	Provider           string            `json:"provider"`
	Chunks             []textchunk.Chunk `json:"chunks"`
	SelectedChunkIDs   []string          `json:"selectedChunkIds"`
	MixingMode         string            `json:"mixingMode"`
}

type RewriteResult struct {
	RewrittenText string `json:"rewrittenText"`
	InputAIScore  *int   `json:"inputAiScore"`
	OutputAIScore *int   `json:"outputAiScore"`
	JobID         string `json:"jobId"`
}

type ReRewriteOverrides struct {
	Provider           string   `json:"provider"`
	CustomInstructions *string  `json:"customInstructions"`
	SelectedPresets    []string `json:"selectedPresets"`
}

type AnalyzeResult struct {
	AIScore       *int              `json:"aiScore"`
	WordCount     int               `json:"wordCount"`
	NeedsChunking bool              `json:"needsChunking"`
	Chunks        []textchunk.Chunk `json:"chunks"`
}

type RewriteService struct {
	cfg          *config.Config
	users        *repository.UserRepository
	jobs         *repository.JobRepository
	keys         keystore.Store
	detector     Detector
	newCompleter CompleterFactory
}

func NewRewriteService(cfg *config.Config, users *repository.UserRepository, jobs *repository.JobRepository, keys keystore.Store, detector Detector) *RewriteService {
	return &RewriteService{
		cfg:          cfg,
		users:        users,
		jobs:         jobs,
		keys:         keys,
		detector:     detector,
		newCompleter: llm.New,
	}
}

// resolveKey prefers a session-stored key for the scope, then the process
// environment.
func (s *RewriteService) resolveKey(ctx context.Context, scope, name string) string {
	if k, err := s.keys.Get(ctx, scope, name); err == nil && k != "" {
		return k
	}
	switch name {
	case domain.ProviderOpenAI:
		return s.cfg.Providers.OpenAIKey
	case domain.ProviderAnthropic:
		return s.cfg.Providers.AnthropicKey
	case domain.ProviderDeepSeek:
		return s.cfg.Providers.DeepSeekKey
	case domain.ProviderPerplexity:
		return s.cfg.Providers.PerplexityKey
	case "gptzero":
		return s.cfg.Detection.GPTZeroKey
	}
	return ""
}

// effectiveInput is what actually gets rewritten and charged for: the
// selected chunks in original order when a chunk selection is present,
// otherwise the full input.
func effectiveInput(input string, chunks []textchunk.Chunk, selectedIDs []string) string {
	if len(chunks) > 0 && len(selectedIDs) > 0 {
		if joined := textchunk.Reassemble(chunks, selectedIDs); joined != "" {
			return joined
		}
	}
	return input
}

func (s *RewriteService) score(ctx context.Context, scope, text string) *int {
	key := s.resolveKey(ctx, scope, "gptzero")
	if key == "" || text == "" {
		return nil
	}
	n, err := s.detector.Score(ctx, key, text)
	if err != nil {
		log.Printf("[rewrite] detection failed: %v", err)
		return nil
	}
	return &n
}

// complete calls the provider, retrying once on a transient failure.
func (s *RewriteService) complete(ctx context.Context, provider, apiKey, system, user string) (string, error) {
	client, err := s.newCompleter(provider, apiKey)
	if err != nil {
		return "", err
	}
	out, err := client.Complete(ctx, system, user)
	var transient *llm.TransientError
	if errors.As(err, &transient) {
		log.Printf("[rewrite] transient %s failure, retrying once: %v", provider, err)
		out, err = client.Complete(ctx, system, user)
	}
	return out, err
}

func (s *RewriteService) Generate(ctx context.Context, userID *uint, scope string, req RewriteRequest) (*RewriteResult, error) {
	if req.InputText == "" {
		return nil, ErrEmptyInput
	}
	provider := req.Provider
	if provider == "" {
		provider = domain.ProviderAnthropic
	}
	if !domain.ValidProvider(provider) {
		return nil, llm.ErrUnknownProvider
	}
	apiKey := s.resolveKey(ctx, scope, provider)
	if apiKey == "" {
		return nil, llm.ErrNoAPIKey
	}
	mode := req.MixingMode
	switch mode {
	case domain.MixStyle, domain.MixContent, domain.MixBoth:
	default:
		mode = domain.MixStyle
	}

	input := effectiveInput(req.InputText, req.Chunks, req.SelectedChunkIDs)
	cost := int64(textchunk.WordCount(input)) * s.cfg.Rewrite.CreditsPerWord

	// Fail fast before burning a provider call; the authoritative debit
	// happens atomically at completion.
	if userID != nil {
		u, err := s.users.GetByID(*userID)
		if err != nil {
			return nil, err
		}
		if !u.Unlimited && u.Credits < cost {
			return nil, repository.ErrInsufficientCredits
		}
	}

	job := &models.RewriteJob{
		ID:               uuid.NewString(),
		UserID:           userID,
		InputText:        req.InputText,
		Provider:         provider,
		SelectedPresets:  req.SelectedPresets,
		Chunks:           req.Chunks,
		SelectedChunkIDs: req.SelectedChunkIDs,
		MixingMode:       mode,
		Status:           domain.JobPending,
	}
	if req.StyleText != "" {
		job.StyleText = &req.StyleText
	}
	if req.ContentMixText != "" {
		job.ContentMixText = &req.ContentMixText
	}
	if req.CustomInstructions != "" {
		job.CustomInstructions = &req.CustomInstructions
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, err
	}

	res, err := s.run(ctx, scope, job, input, cost, apiKey)
	if err != nil {
		s.markFailed(job)
		return nil, err
	}
	return res, nil
}

func (s *RewriteService) markFailed(job *models.RewriteJob) {
	job.Status = domain.JobFailed
	job.OutputText = nil
	job.OutputAIScore = nil
	if err := s.jobs.Update(job); err != nil {
		log.Printf("[rewrite] failed to mark job %s failed: %v", job.ID, err)
	}
}

// run executes the scored rewrite for a job and commits output, scores and
// status in one transaction with the credit debit. On error nothing is
// persisted; the caller decides what the stored row should say. Shared by
// Generate and ReRewrite.
func (s *RewriteService) run(ctx context.Context, scope string, job *models.RewriteJob, input string, cost int64, apiKey string) (*RewriteResult, error) {
	inputScore := s.score(ctx, scope, input)
	job.InputAIScore = inputScore

	style := ""
	if job.StyleText != nil {
		style = *job.StyleText
	} else if sample, ok := presets.SampleByID(presets.DefaultSampleID); ok {
		style = sample.Content
	}
	contentMix := ""
	if job.ContentMixText != nil {
		contentMix = *job.ContentMixText
	}
	custom := ""
	if job.CustomInstructions != nil {
		custom = *job.CustomInstructions
	}

	system, user := llm.BuildRewritePrompt(llm.PromptInput{
		InputText:          input,
		StyleText:          style,
		ContentMixText:     contentMix,
		CustomInstructions: custom,
		PresetInstructions: presets.Resolve(job.SelectedPresets),
		MixingMode:         job.MixingMode,
	})

	output, err := s.complete(ctx, job.Provider, apiKey, system, user)
	if err != nil {
		return nil, err
	}

	outputScore := s.score(ctx, scope, output)

	job.OutputText = &output
	job.OutputAIScore = outputScore
	job.Status = domain.JobCompleted

	err = s.jobs.DB().Transaction(func(tx *gorm.DB) error {
		if job.UserID != nil {
			if err := s.users.Debit(tx, *job.UserID, cost); err != nil {
				return err
			}
		}
		return s.jobs.UpdateTx(tx, job)
	})
	if err != nil {
		return nil, err
	}

	return &RewriteResult{
		RewrittenText: output,
		InputAIScore:  inputScore,
		OutputAIScore: outputScore,
		JobID:         job.ID,
	}, nil
}

// ReRewrite reruns a stored job from its original input, never from the
// previous output. Overrides replace provider, custom instructions and
// preset selection; the row is updated in place.
func (s *RewriteService) ReRewrite(ctx context.Context, scope, jobID string, ov ReRewriteOverrides) (*RewriteResult, error) {
	job, err := s.jobs.GetByID(jobID)
	if err != nil {
		return nil, err
	}
	if ov.Provider != "" {
		if !domain.ValidProvider(ov.Provider) {
			return nil, llm.ErrUnknownProvider
		}
		job.Provider = ov.Provider
	}
	if ov.CustomInstructions != nil {
		job.CustomInstructions = ov.CustomInstructions
	}
	if ov.SelectedPresets != nil {
		job.SelectedPresets = ov.SelectedPresets
	}
	apiKey := s.resolveKey(ctx, scope, job.Provider)
	if apiKey == "" {
		return nil, llm.ErrNoAPIKey
	}

	input := effectiveInput(job.InputText, job.Chunks, job.SelectedChunkIDs)
	cost := int64(textchunk.WordCount(input)) * s.cfg.Rewrite.CreditsPerWord
	if job.UserID != nil {
		u, err := s.users.GetByID(*job.UserID)
		if err != nil {
			return nil, err
		}
		if !u.Unlimited && u.Credits < cost {
			return nil, repository.ErrInsufficientCredits
		}
	}

	// The stored row keeps its prior output and status until the re-run
	// commits a replacement; a failed re-run must not destroy a completed
	// rewrite. Other readers never observe an intermediate pending state.
	return s.run(ctx, scope, job, input, cost, apiKey)
}

// Analyze scores a text and lays out the chunk plan without persisting
// anything. Detection is best-effort; a missing key or provider failure
// yields a nil score, not an error.
func (s *RewriteService) Analyze(ctx context.Context, scope, text string) (*AnalyzeResult, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}
	chunks := textchunk.Split(text, s.cfg.Rewrite.ChunkWords, s.cfg.Rewrite.ChunkThreshold)
	res := &AnalyzeResult{
		WordCount:     textchunk.WordCount(text),
		NeedsChunking: chunks != nil,
		Chunks:        chunks,
	}
	res.AIScore = s.score(ctx, scope, text)
	if res.AIScore != nil && chunks != nil {
		for i := range res.Chunks {
			res.Chunks[i].AIScore = s.score(ctx, scope, res.Chunks[i].Content)
		}
	}
	return res, nil
}

// Chat is the workbench assistant: a single-turn exchange with the chosen
// provider, with the current workspace panes injected as context.
func (s *RewriteService) Chat(ctx context.Context, scope, provider, message, inputText, styleText, contentMixText, outputText string) (string, error) {
	if message == "" {
		return "", ErrEmptyInput
	}
	if provider == "" {
		provider = domain.ProviderAnthropic
	}
	if !domain.ValidProvider(provider) {
		return "", llm.ErrUnknownProvider
	}
	apiKey := s.resolveKey(ctx, scope, provider)
	if apiKey == "" {
		return "", llm.ErrNoAPIKey
	}
	system := llm.BuildChatPrompt(inputText, styleText, contentMixText, outputText)
	return s.complete(ctx, provider, apiKey, system, message)
}
