package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rescribe/config"
	"rescribe/internal/domain"
	"rescribe/internal/models"
	"rescribe/internal/repository"
	"rescribe/pkg/keystore"
	"rescribe/pkg/llm"
	"rescribe/pkg/textchunk"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeCompleter struct {
	calls      int
	failures   int
	output     string
	lastSystem string
	lastUser   string
}

func (f *fakeCompleter) Complete(_ context.Context, system, user string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	if f.calls <= f.failures {
		return "", &llm.TransientError{Provider: "fake", Err: errors.New("connection reset")}
	}
	return f.output, nil
}

type fakeDetector struct {
	score int
	err   error
}

func (f *fakeDetector) Score(_ context.Context, _, _ string) (int, error) {
	return f.score, f.err
}

func testService(t *testing.T, completer *fakeCompleter, detector Detector) (*RewriteService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.RewriteJob{}, &models.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cfg := &config.Config{}
	cfg.Providers.AnthropicKey = "sk-env"
	cfg.Detection.GPTZeroKey = "gz-env"
	cfg.Rewrite.ChunkWords = 500
	cfg.Rewrite.ChunkThreshold = 500
	cfg.Rewrite.CreditsPerWord = 1

	svc := NewRewriteService(cfg, repository.NewUserRepository(db), repository.NewJobRepository(db), keystore.NewMemoryStore(), detector)
	svc.newCompleter = func(provider, apiKey string) (llm.Completer, error) {
		if apiKey == "" {
			return nil, llm.ErrNoAPIKey
		}
		return completer, nil
	}
	return svc, db
}

func TestGenerateCompletesJobAndDebits(t *testing.T) {
	completer := &fakeCompleter{output: "a humanized version"}
	svc, db := testService(t, completer, &fakeDetector{score: 12})

	u := &models.User{Username: "alice", Credits: 100}
	if err := db.Create(u).Error; err != nil {
		t.Fatal(err)
	}

	res, err := svc.Generate(context.Background(), &u.ID, "user:1", RewriteRequest{
		InputText: "one two three four five",
		Provider:  domain.ProviderAnthropic,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.RewrittenText != "a humanized version" {
		t.Fatalf("output = %q", res.RewrittenText)
	}
	if res.JobID == "" {
		t.Fatal("missing job id")
	}
	if res.InputAIScore == nil || *res.InputAIScore != 12 {
		t.Fatalf("input score = %v", res.InputAIScore)
	}

	var job models.RewriteJob
	if err := db.Where("id = ?", res.JobID).First(&job).Error; err != nil {
		t.Fatalf("job not persisted: %v", err)
	}
	if job.Status != domain.JobCompleted {
		t.Fatalf("status = %s", job.Status)
	}

	var after models.User
	db.First(&after, u.ID)
	if after.Credits != 95 { // 5 words at 1 credit per word
		t.Fatalf("credits = %d, want 95", after.Credits)
	}
}

func TestGenerateInsufficientCreditsFailsBeforeProviderCall(t *testing.T) {
	completer := &fakeCompleter{output: "never"}
	svc, db := testService(t, completer, &fakeDetector{score: 50})

	u := &models.User{Username: "poor", Credits: 2}
	if err := db.Create(u).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.Generate(context.Background(), &u.ID, "user:1", RewriteRequest{
		InputText: "one two three four five",
		Provider:  domain.ProviderAnthropic,
	})
	if !errors.Is(err, repository.ErrInsufficientCredits) {
		t.Fatalf("err = %v, want ErrInsufficientCredits", err)
	}
	if completer.calls != 0 {
		t.Fatalf("provider called %d times despite empty balance", completer.calls)
	}
}

func TestGenerateAnonymousSkipsLedger(t *testing.T) {
	completer := &fakeCompleter{output: "rewritten"}
	svc, _ := testService(t, completer, &fakeDetector{err: errors.New("gptzero down")})

	res, err := svc.Generate(context.Background(), nil, "anon", RewriteRequest{
		InputText: "hello world",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.InputAIScore != nil {
		t.Fatalf("score = %v, want nil when detection fails", res.InputAIScore)
	}
}

func TestGenerateRetriesTransientOnce(t *testing.T) {
	completer := &fakeCompleter{output: "second try", failures: 1}
	svc, _ := testService(t, completer, &fakeDetector{score: 1})

	res, err := svc.Generate(context.Background(), nil, "anon", RewriteRequest{InputText: "hi there"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.RewrittenText != "second try" || completer.calls != 2 {
		t.Fatalf("output = %q after %d calls", res.RewrittenText, completer.calls)
	}
}

func TestGenerateMarksJobFailedOnProviderError(t *testing.T) {
	completer := &fakeCompleter{failures: 10}
	svc, db := testService(t, completer, &fakeDetector{score: 1})

	_, err := svc.Generate(context.Background(), nil, "anon", RewriteRequest{InputText: "hi"})
	var transient *llm.TransientError
	if !errors.As(err, &transient) {
		t.Fatalf("err = %v, want TransientError", err)
	}

	var job models.RewriteJob
	if err := db.First(&job).Error; err != nil {
		t.Fatalf("job row missing: %v", err)
	}
	if job.Status != domain.JobFailed {
		t.Fatalf("status = %s, want failed", job.Status)
	}
}

func TestGenerateUsesSelectedChunks(t *testing.T) {
	completer := &fakeCompleter{output: "ok"}
	svc, db := testService(t, completer, &fakeDetector{score: 1})

	u := &models.User{Username: "chunky", Credits: 10}
	if err := db.Create(u).Error; err != nil {
		t.Fatal(err)
	}

	req := RewriteRequest{
		InputText: "alpha beta gamma delta epsilon zeta",
		Chunks: []textchunk.Chunk{
			{ID: "chunk-0", Content: "alpha beta gamma", StartWord: 0, EndWord: 3},
			{ID: "chunk-1", Content: "delta epsilon zeta", StartWord: 3, EndWord: 6},
		},
		SelectedChunkIDs: []string{"chunk-1"},
	}
	_, err := svc.Generate(context.Background(), &u.ID, "user:1", req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(completer.lastUser, "delta epsilon zeta") || strings.Contains(completer.lastUser, "alpha beta") {
		t.Fatalf("prompt did not use selected chunk: %q", completer.lastUser)
	}

	var after models.User
	db.First(&after, u.ID)
	if after.Credits != 7 { // only the 3 selected words are charged
		t.Fatalf("credits = %d, want 7", after.Credits)
	}
}

func TestReRewriteUsesOriginalInput(t *testing.T) {
	completer := &fakeCompleter{output: "first output"}
	svc, db := testService(t, completer, &fakeDetector{score: 1})

	res, err := svc.Generate(context.Background(), nil, "anon", RewriteRequest{
		InputText: "the original words",
		Provider:  domain.ProviderAnthropic,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	completer.output = "second output"
	newProvider := domain.ProviderAnthropic
	res2, err := svc.ReRewrite(context.Background(), "anon", res.JobID, ReRewriteOverrides{Provider: newProvider})
	if err != nil {
		t.Fatalf("re-rewrite: %v", err)
	}
	if res2.JobID != res.JobID {
		t.Fatalf("re-rewrite created a new job: %s vs %s", res2.JobID, res.JobID)
	}
	if !strings.Contains(completer.lastUser, "the original words") {
		t.Fatalf("re-rewrite prompt not built from original input: %q", completer.lastUser)
	}
	if strings.Contains(completer.lastUser, "first output") {
		t.Fatal("re-rewrite fed previous output back in")
	}

	var job models.RewriteJob
	db.Where("id = ?", res.JobID).First(&job)
	if job.OutputText == nil || *job.OutputText != "second output" {
		t.Fatalf("job output not overwritten: %v", job.OutputText)
	}
}

func TestReRewriteFailureKeepsCompletedRow(t *testing.T) {
	completer := &fakeCompleter{output: "keep me"}
	svc, db := testService(t, completer, &fakeDetector{score: 1})

	res, err := svc.Generate(context.Background(), nil, "anon", RewriteRequest{
		InputText: "original words",
		Provider:  domain.ProviderAnthropic,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	completer.failures = 100 // every subsequent provider call fails
	if _, err := svc.ReRewrite(context.Background(), "anon", res.JobID, ReRewriteOverrides{}); err == nil {
		t.Fatal("re-rewrite succeeded despite provider failures")
	}

	var job models.RewriteJob
	if err := db.Where("id = ?", res.JobID).First(&job).Error; err != nil {
		t.Fatalf("job row missing: %v", err)
	}
	if job.Status != domain.JobCompleted {
		t.Fatalf("status = %s, want completed after failed re-run", job.Status)
	}
	if job.OutputText == nil || *job.OutputText != "keep me" {
		t.Fatalf("prior output lost: %v", job.OutputText)
	}
}

func TestReRewriteUnknownJob(t *testing.T) {
	svc, _ := testService(t, &fakeCompleter{}, &fakeDetector{})
	_, err := svc.ReRewrite(context.Background(), "anon", "nope", ReRewriteOverrides{})
	if !errors.Is(err, repository.ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
}

func TestAnalyzeChunksLongText(t *testing.T) {
	svc, _ := testService(t, &fakeCompleter{}, &fakeDetector{score: 80})

	words := make([]string, 600)
	for i := range words {
		words[i] = "word"
	}
	res, err := svc.Analyze(context.Background(), "anon", strings.Join(words, " "))
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !res.NeedsChunking || len(res.Chunks) != 2 {
		t.Fatalf("needsChunking=%v chunks=%d", res.NeedsChunking, len(res.Chunks))
	}
	if res.AIScore == nil || *res.AIScore != 80 {
		t.Fatalf("score = %v", res.AIScore)
	}
}

func TestChatRequiresKnownProvider(t *testing.T) {
	svc, _ := testService(t, &fakeCompleter{output: "hi"}, &fakeDetector{})
	if _, err := svc.Chat(context.Background(), "anon", "zhi5", "hello", "", "", "", ""); !errors.Is(err, llm.ErrUnknownProvider) {
		t.Fatalf("err = %v, want ErrUnknownProvider", err)
	}
	out, err := svc.Chat(context.Background(), "anon", domain.ProviderAnthropic, "hello", "draft", "", "", "")
	if err != nil || out != "hi" {
		t.Fatalf("chat = %q, %v", out, err)
	}
}
