package repository

import (
	"errors"
	"testing"

	"rescribe/internal/domain"
	"rescribe/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Document{}, &models.RewriteJob{}, &models.Payment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, credits int64, unlimited bool) *models.User {
	t.Helper()
	u := &models.User{Username: "u-" + uuid.NewString()[:8], Credits: credits, Unlimited: unlimited}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestDebitSubtracts(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	u := seedUser(t, db, 100, false)

	if err := repo.Debit(nil, u.ID, 40); err != nil {
		t.Fatalf("debit: %v", err)
	}
	got, err := repo.GetByID(u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Credits != 60 {
		t.Fatalf("credits = %d, want 60", got.Credits)
	}
}

func TestDebitInsufficientFailsClosed(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	u := seedUser(t, db, 30, false)

	err := repo.Debit(nil, u.ID, 31)
	if !errors.Is(err, ErrInsufficientCredits) {
		t.Fatalf("err = %v, want ErrInsufficientCredits", err)
	}
	got, _ := repo.GetByID(u.ID)
	if got.Credits != 30 {
		t.Fatalf("balance changed on failed debit: %d", got.Credits)
	}
}

func TestDebitUnlimitedBypassesBalance(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	u := seedUser(t, db, 0, true)

	if err := repo.Debit(nil, u.ID, 1_000_000); err != nil {
		t.Fatalf("debit unlimited: %v", err)
	}
	got, _ := repo.GetByID(u.ID)
	if got.Credits != 0 {
		t.Fatalf("unlimited balance changed: %d", got.Credits)
	}
}

func TestCreditFromPaymentIdempotent(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepository(db)
	u := seedUser(t, db, 0, false)

	p := func() *models.Payment {
		return &models.Payment{
			StripePaymentIntentID: "pi_test_123",
			UserID:                u.ID,
			Credits:               4275000,
			AmountCents:           500,
			Status:                domain.PaymentSucceeded,
		}
	}

	if err := repo.CreditFromPayment(p()); err != nil {
		t.Fatalf("first credit: %v", err)
	}
	if err := repo.CreditFromPayment(p()); !errors.Is(err, ErrDuplicatePayment) {
		t.Fatalf("second credit err = %v, want ErrDuplicatePayment", err)
	}

	got, _ := repo.GetByID(u.ID)
	if got.Credits != 4275000 {
		t.Fatalf("credits = %d, want 4275000 (credited once)", got.Credits)
	}

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	if count != 1 {
		t.Fatalf("payment rows = %d, want 1", count)
	}
}

func TestJobNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewJobRepository(db)

	_, err := repo.GetByID(uuid.NewString())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("err = %v, want ErrJobNotFound", err)
	}
}

func TestJobRoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewJobRepository(db)
	u := seedUser(t, db, 0, false)

	j := &models.RewriteJob{
		ID:              uuid.NewString(),
		UserID:          &u.ID,
		InputText:       "some input",
		Provider:        domain.ProviderAnthropic,
		SelectedPresets: []string{"hedge-twice", "no-lists"},
		Status:          domain.JobPending,
	}
	if err := repo.Create(j); err != nil {
		t.Fatalf("create: %v", err)
	}

	out := "rewritten"
	j.OutputText = &out
	j.Status = domain.JobCompleted
	if err := repo.Update(j); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(j.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != domain.JobCompleted || got.OutputText == nil || *got.OutputText != "rewritten" {
		t.Fatalf("unexpected job after update: %+v", got)
	}
	if len(got.SelectedPresets) != 2 || got.SelectedPresets[0] != "hedge-twice" {
		t.Fatalf("presets did not round-trip: %v", got.SelectedPresets)
	}
}

func TestJobListAll(t *testing.T) {
	db := testDB(t)
	repo := NewJobRepository(db)
	u := seedUser(t, db, 0, false)

	for _, in := range []string{"first", "second"} {
		j := &models.RewriteJob{
			ID:        uuid.NewString(),
			UserID:    &u.ID,
			InputText: in,
			Provider:  domain.ProviderAnthropic,
			Status:    domain.JobCompleted,
		}
		if err := repo.Create(j); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	anon := &models.RewriteJob{
		ID:        uuid.NewString(),
		InputText: "anonymous",
		Provider:  domain.ProviderOpenAI,
		Status:    domain.JobCompleted,
	}
	if err := repo.Create(anon); err != nil {
		t.Fatalf("create anon: %v", err)
	}

	jobs, err := repo.ListAll(0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(jobs) != 3 {
		t.Fatalf("len = %d, want 3", len(jobs))
	}

	jobs, err = repo.ListAll(2)
	if err != nil {
		t.Fatalf("list all limited: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("limited len = %d, want 2", len(jobs))
	}
}

func TestDocumentListByUser(t *testing.T) {
	db := testDB(t)
	repo := NewDocumentRepository(db)
	u := seedUser(t, db, 0, false)

	for _, name := range []string{"a.txt", "b.txt"} {
		d := &models.Document{ID: uuid.NewString(), UserID: &u.ID, Filename: name, Content: "x", WordCount: 1}
		if err := repo.Create(d); err != nil {
			t.Fatalf("create doc: %v", err)
		}
	}
	anon := &models.Document{ID: uuid.NewString(), Filename: "anon.txt", Content: "y", WordCount: 1}
	if err := repo.Create(anon); err != nil {
		t.Fatalf("create anon doc: %v", err)
	}

	docs, err := repo.ListByUser(u.ID, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("len = %d, want 2", len(docs))
	}
}
