package upscale

import (
	"context"
	"errors"
	"sort"
	"testing"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"
	"Distillery-Tracker/pkg/trial"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeTrialRepo struct {
	trials map[string]*entities.FermentationTrial
}

func newFakeTrialRepo() *fakeTrialRepo {
	return &fakeTrialRepo{trials: make(map[string]*entities.FermentationTrial)}
}

func (r *fakeTrialRepo) CreateTrial(_ context.Context, t *entities.FermentationTrial) error {
	cp := *t
	r.trials[t.ID.String()] = &cp
	return nil
}

func (r *fakeTrialRepo) GetTrialByID(_ context.Context, id string) (*entities.FermentationTrial, error) {
	t, ok := r.trials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTrialRepo) UpdateTrial(_ context.Context, t *entities.FermentationTrial) error {
	cp := *t
	r.trials[t.ID.String()] = &cp
	return nil
}

func (r *fakeTrialRepo) DeleteTrial(_ context.Context, id string) error {
	delete(r.trials, id)
	return nil
}

func (r *fakeTrialRepo) GetTrialsByBatch(_ context.Context, batchID string) ([]*entities.FermentationTrial, error) {
	var out []*entities.FermentationTrial
	for _, t := range r.trials {
		if t.BatchID.String() == batchID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTrialRepo) CountTrialsByBatch(_ context.Context, batchID string) (int64, error) {
	var n int64
	for _, t := range r.trials {
		if t.BatchID.String() == batchID {
			n++
		}
	}
	return n, nil
}

func (r *fakeTrialRepo) AddReading(_ context.Context, _ *entities.TrialReading) error { return nil }

func (r *fakeTrialRepo) GetReadingsByTrial(_ context.Context, _ string) ([]entities.TrialReading, error) {
	return nil, nil
}

type fakeUpscaleRepo struct {
	runs map[string]*entities.UpscaleRun
}

func newFakeUpscaleRepo() *fakeUpscaleRepo {
	return &fakeUpscaleRepo{runs: make(map[string]*entities.UpscaleRun)}
}

func (r *fakeUpscaleRepo) CreateUpscale(_ context.Context, run *entities.UpscaleRun) error {
	cp := *run
	r.runs[run.ID.String()] = &cp
	return nil
}

func (r *fakeUpscaleRepo) GetUpscaleByID(_ context.Context, id string) (*entities.UpscaleRun, error) {
	run, ok := r.runs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *run
	return &cp, nil
}

func (r *fakeUpscaleRepo) UpdateUpscale(_ context.Context, run *entities.UpscaleRun) error {
	cp := *run
	r.runs[run.ID.String()] = &cp
	return nil
}

func (r *fakeUpscaleRepo) GetUpscalesByTrial(_ context.Context, trialID string) ([]entities.UpscaleRun, error) {
	var out []entities.UpscaleRun
	for _, run := range r.runs {
		if run.TrialID.String() == trialID {
			out = append(out, *run)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StageIndex < out[j].StageIndex })
	return out, nil
}

var _ trial.TrialRepository = (*fakeTrialRepo)(nil)
var _ UpscaleRepository = (*fakeUpscaleRepo)(nil)

func seedTrial(repo *fakeTrialRepo, path string) *entities.FermentationTrial {
	t := &entities.FermentationTrial{
		ID:        uuid.New(),
		TrialCode: "T-001-01",
		BatchID:   uuid.New(),
		PathTaken: path,
		Status:    domain.TrialStatusBranching,
	}
	repo.trials[t.ID.String()] = t
	return t
}

func newService(trialRepo *fakeTrialRepo, runRepo *fakeUpscaleRepo) UpscaleService {
	return NewUpscaleService(runRepo, trialRepo, DefaultLadder())
}

func TestStartNextUpscale(t *testing.T) {
	trialRepo := newFakeTrialRepo()
	runRepo := newFakeUpscaleRepo()
	svc := newService(trialRepo, runRepo)
	tr := seedTrial(trialRepo, domain.PathDistillation)
	ctx := context.Background()

	res, err := svc.StartNextUpscale(ctx, tr.ID.String())
	if err != nil {
		t.Fatalf("StartNextUpscale returned error: %v", err)
	}
	if res.StageIndex != 0 {
		t.Errorf("StageIndex = %d, want 0", res.StageIndex)
	}
	if res.TargetVolume != 1 {
		t.Errorf("TargetVolume = %v, want 1", res.TargetVolume)
	}
	if res.Stage != "1L" {
		t.Errorf("Stage = %q, want %q", res.Stage, "1L")
	}
	if want := "U-001-01-1L"; res.UpscaleCode != want {
		t.Errorf("UpscaleCode = %q, want %q", res.UpscaleCode, want)
	}
	if res.Status != domain.UpscaleStatusPending {
		t.Errorf("Status = %q, want pending", res.Status)
	}

	// A second start while the first run is pending is refused.
	if _, err := svc.StartNextUpscale(ctx, tr.ID.String()); !errors.Is(err, domain.ErrUpscaleActive) {
		t.Errorf("second start err = %v, want ErrUpscaleActive", err)
	}
}

func TestStartNextUpscaleRequiresDistillationPath(t *testing.T) {
	trialRepo := newFakeTrialRepo()
	svc := newService(trialRepo, newFakeUpscaleRepo())
	tr := seedTrial(trialRepo, domain.PathVinegar)

	if _, err := svc.StartNextUpscale(context.Background(), tr.ID.String()); !errors.Is(err, domain.ErrNotDistillationPath) {
		t.Errorf("err = %v, want ErrNotDistillationPath", err)
	}
}

func TestCompleteUpscaleRequiresResults(t *testing.T) {
	trialRepo := newFakeTrialRepo()
	runRepo := newFakeUpscaleRepo()
	svc := newService(trialRepo, runRepo)
	tr := seedTrial(trialRepo, domain.PathDistillation)
	ctx := context.Background()

	run, err := svc.StartNextUpscale(ctx, tr.ID.String())
	if err != nil {
		t.Fatalf("StartNextUpscale returned error: %v", err)
	}

	if _, err := svc.CompleteUpscale(ctx, run.ID); !errors.Is(err, domain.ErrResultsNotRecorded) {
		t.Fatalf("complete before results err = %v, want ErrResultsNotRecorded", err)
	}

	if _, err := svc.RecordResults(ctx, run.ID, domain.RecordUpscaleResultsRequest{YieldAmount: 0.8, ABVResult: 41.5}); err != nil {
		t.Fatalf("RecordResults returned error: %v", err)
	}

	completed, err := svc.CompleteUpscale(ctx, run.ID)
	if err != nil {
		t.Fatalf("CompleteUpscale returned error: %v", err)
	}
	if completed.Status != domain.UpscaleStatusComplete {
		t.Errorf("Status = %q, want complete", completed.Status)
	}
}

func TestRecordResultsValidation(t *testing.T) {
	trialRepo := newFakeTrialRepo()
	runRepo := newFakeUpscaleRepo()
	svc := newService(trialRepo, runRepo)
	tr := seedTrial(trialRepo, domain.PathDistillation)
	ctx := context.Background()

	run, err := svc.StartNextUpscale(ctx, tr.ID.String())
	if err != nil {
		t.Fatalf("StartNextUpscale returned error: %v", err)
	}

	if _, err := svc.RecordResults(ctx, run.ID, domain.RecordUpscaleResultsRequest{YieldAmount: 0, ABVResult: 40}); !errors.Is(err, domain.ErrInvalidYield) {
		t.Errorf("zero yield err = %v, want ErrInvalidYield", err)
	}
	if _, err := svc.RecordResults(ctx, run.ID, domain.RecordUpscaleResultsRequest{YieldAmount: 1, ABVResult: 120}); !errors.Is(err, domain.ErrInvalidABVResult) {
		t.Errorf("abv 120 err = %v, want ErrInvalidABVResult", err)
	}
}

func TestFailedRunBlocksLadder(t *testing.T) {
	trialRepo := newFakeTrialRepo()
	runRepo := newFakeUpscaleRepo()
	svc := newService(trialRepo, runRepo)
	tr := seedTrial(trialRepo, domain.PathDistillation)
	ctx := context.Background()

	run, err := svc.StartNextUpscale(ctx, tr.ID.String())
	if err != nil {
		t.Fatalf("StartNextUpscale returned error: %v", err)
	}
	failed, err := svc.FailUpscale(ctx, run.ID)
	if err != nil {
		t.Fatalf("FailUpscale returned error: %v", err)
	}
	if failed.Status != domain.UpscaleStatusFailed {
		t.Fatalf("Status = %q, want failed", failed.Status)
	}

	if _, err := svc.StartNextUpscale(ctx, tr.ID.String()); !errors.Is(err, domain.ErrUpscaleBlocked) {
		t.Errorf("start after failure err = %v, want ErrUpscaleBlocked", err)
	}

	list, err := svc.GetUpscalesByTrial(ctx, tr.ID.String())
	if err != nil {
		t.Fatalf("GetUpscalesByTrial returned error: %v", err)
	}
	if list.CanStartNext {
		t.Error("CanStartNext = true after failed run, want false")
	}
	if list.NextVolume != nil {
		t.Errorf("NextVolume = %v, want nil", *list.NextVolume)
	}
}

func TestFullLadderCompletesTrial(t *testing.T) {
	trialRepo := newFakeTrialRepo()
	runRepo := newFakeUpscaleRepo()
	svc := newService(trialRepo, runRepo)
	tr := seedTrial(trialRepo, domain.PathDistillation)
	ctx := context.Background()

	volumes := []float64{1, 5, 30, 100}
	for i, vol := range volumes {
		run, err := svc.StartNextUpscale(ctx, tr.ID.String())
		if err != nil {
			t.Fatalf("rung %d: StartNextUpscale returned error: %v", i, err)
		}
		if run.TargetVolume != vol {
			t.Errorf("rung %d: TargetVolume = %v, want %v", i, run.TargetVolume, vol)
		}
		if _, err := svc.RecordResults(ctx, run.ID, domain.RecordUpscaleResultsRequest{YieldAmount: vol * 0.8, ABVResult: 40}); err != nil {
			t.Fatalf("rung %d: RecordResults returned error: %v", i, err)
		}
		if _, err := svc.CompleteUpscale(ctx, run.ID); err != nil {
			t.Fatalf("rung %d: CompleteUpscale returned error: %v", i, err)
		}
	}

	if _, err := svc.StartNextUpscale(ctx, tr.ID.String()); !errors.Is(err, domain.ErrLadderExhausted) {
		t.Errorf("start past last rung err = %v, want ErrLadderExhausted", err)
	}

	stored, err := trialRepo.GetTrialByID(ctx, tr.ID.String())
	if err != nil {
		t.Fatalf("GetTrialByID returned error: %v", err)
	}
	if stored.Status != domain.TrialStatusComplete {
		t.Errorf("trial status = %q, want %q", stored.Status, domain.TrialStatusComplete)
	}
}
