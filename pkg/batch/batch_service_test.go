package batch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"gorm.io/gorm"
)

type memBatchRepo struct {
	batches map[string]*entities.Batch
	scores  map[string]float64
}

func newMemBatchRepo() *memBatchRepo {
	return &memBatchRepo{
		batches: make(map[string]*entities.Batch),
		scores:  make(map[string]float64),
	}
}

func (r *memBatchRepo) CreateBatch(_ context.Context, b *entities.Batch) error {
	cp := *b
	r.batches[b.ID.String()] = &cp
	return nil
}

func (r *memBatchRepo) GetBatchByID(_ context.Context, id string) (*entities.Batch, error) {
	b, ok := r.batches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memBatchRepo) UpdateBatch(_ context.Context, b *entities.Batch) error {
	cp := *b
	r.batches[b.ID.String()] = &cp
	return nil
}

func (r *memBatchRepo) DeleteBatch(_ context.Context, id string) error {
	delete(r.batches, id)
	return nil
}

func (r *memBatchRepo) GetBatches(_ context.Context, status string, _, _ int) ([]*entities.Batch, int64, error) {
	var out []*entities.Batch
	for _, b := range r.batches {
		if status == "all" || status == "" || b.Status == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memBatchRepo) CountBatchCodesWithPrefix(_ context.Context, prefix string) (int64, error) {
	var n int64
	for _, b := range r.batches {
		if strings.HasPrefix(b.BatchCode, prefix) {
			n++
		}
	}
	return n, nil
}

func (r *memBatchRepo) GetDashboardStats(_ context.Context) (domain.BatchDashboardResponse, error) {
	var stats domain.BatchDashboardResponse
	for _, b := range r.batches {
		stats.TotalBatches++
		switch b.Status {
		case domain.BatchStatusActive:
			stats.ActiveBatches++
		case domain.BatchStatusInProgress:
			stats.InProgressBatches++
		case domain.BatchStatusCompleted:
			stats.CompletedBatches++
		case domain.BatchStatusPaused:
			stats.PausedBatches++
		case domain.BatchStatusCancelled:
			stats.CancelledBatches++
		}
	}
	return stats, nil
}

func (r *memBatchRepo) QualityScore(_ context.Context, batchID string) (float64, error) {
	return r.scores[batchID], nil
}

var _ BatchRepository = (*memBatchRepo)(nil)

type memJourneyRepo struct {
	events []entities.BatchEvent
}

func (r *memJourneyRepo) AppendEvent(_ context.Context, ev *entities.BatchEvent) error {
	r.events = append(r.events, *ev)
	return nil
}

func (r *memJourneyRepo) GetEventsByBatch(_ context.Context, batchID string) ([]entities.BatchEvent, error) {
	var out []entities.BatchEvent
	for _, ev := range r.events {
		if ev.BatchID.String() == batchID {
			out = append(out, ev)
		}
	}
	return out, nil
}

type capturePublisher struct {
	updates []domain.BatchUpdateEvent
}

func (p *capturePublisher) PublishBatchUpdate(update domain.BatchUpdateEvent) {
	p.updates = append(p.updates, update)
}

func newTestService() (BatchService, *memBatchRepo, *memJourneyRepo, *capturePublisher) {
	repo := newMemBatchRepo()
	journeyRepo := &memJourneyRepo{}
	pub := &capturePublisher{}
	return NewBatchService(repo, journeyRepo, pub), repo, journeyRepo, pub
}

func createRequest() domain.CreateBatchRequest {
	return domain.CreateBatchRequest{
		Name:        "Autumn apple pressing",
		FruitType:   "apple",
		ProcessType: "fresh",
		Quantity:    1200,
		Unit:        "kg",
		StartDate:   "2024-03-21",
	}
}

func TestCreateBatch(t *testing.T) {
	svc, _, journeyRepo, pub := newTestService()
	ctx := context.Background()

	res, err := svc.CreateBatch(ctx, createRequest())
	if err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}
	if want := "240321-AP-FR-001"; res.BatchCode != want {
		t.Errorf("BatchCode = %q, want %q", res.BatchCode, want)
	}
	if res.Status != domain.BatchStatusActive {
		t.Errorf("Status = %q, want %q", res.Status, domain.BatchStatusActive)
	}
	if res.CurrentStage != "arrival" {
		t.Errorf("CurrentStage = %q, want %q", res.CurrentStage, "arrival")
	}
	if res.Progress != 0 {
		t.Errorf("Progress = %v, want 0", res.Progress)
	}

	if len(journeyRepo.events) != 1 || journeyRepo.events[0].Stage != "arrival" {
		t.Errorf("journey events = %+v, want one arrival event", journeyRepo.events)
	}
	if len(pub.updates) != 1 {
		t.Fatalf("published updates = %d, want 1", len(pub.updates))
	}
	if pub.updates[0].BatchID != res.ID {
		t.Errorf("published BatchID = %q, want %q", pub.updates[0].BatchID, res.ID)
	}

	// Same day, fruit and process gets the next sequence number.
	second, err := svc.CreateBatch(ctx, createRequest())
	if err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}
	if want := "240321-AP-FR-002"; second.BatchCode != want {
		t.Errorf("second BatchCode = %q, want %q", second.BatchCode, want)
	}
}

func TestCreateBatchValidation(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	req := createRequest()
	req.Quantity = 0
	if _, err := svc.CreateBatch(ctx, req); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Errorf("zero quantity err = %v, want ErrInvalidQuantity", err)
	}

	req = createRequest()
	req.StartDate = "21-03-2024"
	if _, err := svc.CreateBatch(ctx, req); !errors.Is(err, domain.ErrInvalidStartDate) {
		t.Errorf("bad date err = %v, want ErrInvalidStartDate", err)
	}
}

func TestAdvanceStage(t *testing.T) {
	svc, _, journeyRepo, _ := newTestService()
	ctx := context.Background()

	res, err := svc.CreateBatch(ctx, createRequest())
	if err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}

	wantStages := []string{"prep", "heat", "ferment", "distill"}
	wantProgress := []float64{25, 50, 75, 100}
	for i, stage := range wantStages {
		advanced, err := svc.AdvanceStage(ctx, res.ID)
		if err != nil {
			t.Fatalf("AdvanceStage #%d returned error: %v", i+1, err)
		}
		if advanced.CurrentStage != stage {
			t.Errorf("stage #%d = %q, want %q", i+1, advanced.CurrentStage, stage)
		}
		if advanced.Progress != wantProgress[i] {
			t.Errorf("progress #%d = %v, want %v", i+1, advanced.Progress, wantProgress[i])
		}
	}

	if _, err := svc.AdvanceStage(ctx, res.ID); !errors.Is(err, domain.ErrJourneyFinished) {
		t.Errorf("advance past distill err = %v, want ErrJourneyFinished", err)
	}

	// One arrival event plus one per advance.
	if len(journeyRepo.events) != 5 {
		t.Errorf("journey events = %d, want 5", len(journeyRepo.events))
	}
}

func TestUpdateStatusTerminal(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	res, err := svc.CreateBatch(ctx, createRequest())
	if err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}

	completed, err := svc.UpdateStatus(ctx, res.ID, domain.UpdateBatchStatusRequest{Status: domain.BatchStatusCompleted})
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if completed.Progress != 100 {
		t.Errorf("completed progress = %v, want 100", completed.Progress)
	}

	if _, err := svc.UpdateStatus(ctx, res.ID, domain.UpdateBatchStatusRequest{Status: domain.BatchStatusActive}); !errors.Is(err, domain.ErrBatchCompleted) {
		t.Errorf("status change on completed batch err = %v, want ErrBatchCompleted", err)
	}
}

func TestGetBatchNotFound(t *testing.T) {
	svc, _, _, _ := newTestService()

	if _, err := svc.GetBatch(context.Background(), "89c7f4ff-2a44-4c90-9a9e-5417ec5c1c9b"); !errors.Is(err, domain.ErrBatchNotFound) {
		t.Errorf("err = %v, want ErrBatchNotFound", err)
	}
}

func TestPublishIncludesQualityScore(t *testing.T) {
	svc, repo, _, pub := newTestService()
	ctx := context.Background()

	res, err := svc.CreateBatch(ctx, createRequest())
	if err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}
	repo.scores[res.ID] = 75

	if _, err := svc.UpdateStatus(ctx, res.ID, domain.UpdateBatchStatusRequest{Status: domain.BatchStatusInProgress}); err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}

	last := pub.updates[len(pub.updates)-1]
	if last.QualityScore != 75 {
		t.Errorf("QualityScore = %v, want 75", last.QualityScore)
	}
	if last.Status != domain.BatchStatusInProgress {
		t.Errorf("Status = %q, want %q", last.Status, domain.BatchStatusInProgress)
	}
}
