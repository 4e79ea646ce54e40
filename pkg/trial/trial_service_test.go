package trial

import (
	"context"
	"errors"
	"testing"

	"Distillery-Tracker/domain"
	"Distillery-Tracker/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type memTrialRepo struct {
	trials   map[string]*entities.FermentationTrial
	readings map[string][]entities.TrialReading
}

func newMemTrialRepo() *memTrialRepo {
	return &memTrialRepo{
		trials:   make(map[string]*entities.FermentationTrial),
		readings: make(map[string][]entities.TrialReading),
	}
}

func (r *memTrialRepo) CreateTrial(_ context.Context, t *entities.FermentationTrial) error {
	cp := *t
	r.trials[t.ID.String()] = &cp
	return nil
}

func (r *memTrialRepo) GetTrialByID(_ context.Context, id string) (*entities.FermentationTrial, error) {
	t, ok := r.trials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTrialRepo) UpdateTrial(_ context.Context, t *entities.FermentationTrial) error {
	cp := *t
	r.trials[t.ID.String()] = &cp
	return nil
}

func (r *memTrialRepo) DeleteTrial(_ context.Context, id string) error {
	delete(r.trials, id)
	return nil
}

func (r *memTrialRepo) GetTrialsByBatch(_ context.Context, batchID string) ([]*entities.FermentationTrial, error) {
	var out []*entities.FermentationTrial
	for _, t := range r.trials {
		if t.BatchID.String() == batchID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTrialRepo) CountTrialsByBatch(_ context.Context, batchID string) (int64, error) {
	var n int64
	for _, t := range r.trials {
		if t.BatchID.String() == batchID {
			n++
		}
	}
	return n, nil
}

func (r *memTrialRepo) AddReading(_ context.Context, reading *entities.TrialReading) error {
	id := reading.TrialID.String()
	r.readings[id] = append(r.readings[id], *reading)
	return nil
}

func (r *memTrialRepo) GetReadingsByTrial(_ context.Context, trialID string) ([]entities.TrialReading, error) {
	return r.readings[trialID], nil
}

var _ TrialRepository = (*memTrialRepo)(nil)

type memBatchSource struct {
	batches map[string]*entities.Batch
}

func (s *memBatchSource) GetBatchByID(_ context.Context, id string) (*entities.Batch, error) {
	b, ok := s.batches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func fixtureBatch() (*memBatchSource, *entities.Batch) {
	b := &entities.Batch{
		ID:        uuid.New(),
		BatchCode: "240321-AP-FR-042",
	}
	return &memBatchSource{batches: map[string]*entities.Batch{b.ID.String(): b}}, b
}

func TestCreateTrialCodes(t *testing.T) {
	repo := newMemTrialRepo()
	batches, b := fixtureBatch()
	svc := NewTrialService(repo, batches)
	ctx := context.Background()

	first, err := svc.CreateTrial(ctx, domain.CreateTrialRequest{
		BatchID:      b.ID.String(),
		JuiceVariant: "JP2",
		YeastStrain:  "EC-1118",
		InitialSG:    1.050,
		TargetSG:     0.998,
	})
	if err != nil {
		t.Fatalf("CreateTrial returned error: %v", err)
	}
	if want := "T-042-01"; first.TrialCode != want {
		t.Errorf("first TrialCode = %q, want %q", first.TrialCode, want)
	}
	if first.Status != domain.TrialStatusFermenting {
		t.Errorf("Status = %q, want %q", first.Status, domain.TrialStatusFermenting)
	}
	if first.CurrentSG != 1.050 {
		t.Errorf("CurrentSG = %v, want the initial gravity", first.CurrentSG)
	}

	second, err := svc.CreateTrial(ctx, domain.CreateTrialRequest{
		BatchID:      b.ID.String(),
		JuiceVariant: "JP3",
		YeastStrain:  "EC-1118",
		InitialSG:    1.048,
		TargetSG:     0.996,
	})
	if err != nil {
		t.Fatalf("CreateTrial returned error: %v", err)
	}
	if want := "T-042-02"; second.TrialCode != want {
		t.Errorf("second TrialCode = %q, want %q", second.TrialCode, want)
	}
}

func TestCreateTrialFlatGravityRange(t *testing.T) {
	repo := newMemTrialRepo()
	batches, b := fixtureBatch()
	svc := NewTrialService(repo, batches)

	_, err := svc.CreateTrial(context.Background(), domain.CreateTrialRequest{
		BatchID:      b.ID.String(),
		JuiceVariant: "JP2",
		YeastStrain:  "EC-1118",
		InitialSG:    1.050,
		TargetSG:     1.050,
	})
	if !errors.Is(err, domain.ErrFlatGravityRange) {
		t.Fatalf("err = %v, want ErrFlatGravityRange", err)
	}
	if n := len(repo.trials); n != 0 {
		t.Errorf("trials stored = %d, want 0", n)
	}
}

func TestCreateTrialUnknownBatch(t *testing.T) {
	repo := newMemTrialRepo()
	batches, _ := fixtureBatch()
	svc := NewTrialService(repo, batches)

	_, err := svc.CreateTrial(context.Background(), domain.CreateTrialRequest{
		BatchID:   uuid.NewString(),
		InitialSG: 1.050,
		TargetSG:  0.998,
	})
	if !errors.Is(err, domain.ErrBatchNotFound) {
		t.Errorf("err = %v, want ErrBatchNotFound", err)
	}
}

func TestAddReadingBranchingThreshold(t *testing.T) {
	repo := newMemTrialRepo()
	batches, b := fixtureBatch()
	svc := NewTrialService(repo, batches)
	ctx := context.Background()

	tr, err := svc.CreateTrial(ctx, domain.CreateTrialRequest{
		BatchID:      b.ID.String(),
		JuiceVariant: "JP1",
		YeastStrain:  "EC-1118",
		InitialSG:    1.060,
		TargetSG:     1.000,
	})
	if err != nil {
		t.Fatalf("CreateTrial returned error: %v", err)
	}

	// Below the threshold the trial keeps fermenting.
	if _, err := svc.AddReading(ctx, tr.ID, domain.AddReadingRequest{SG: 1.030, ABV: 4.0}); err != nil {
		t.Fatalf("AddReading returned error: %v", err)
	}
	got, err := svc.GetTrial(ctx, tr.ID)
	if err != nil {
		t.Fatalf("GetTrial returned error: %v", err)
	}
	if got.Status != domain.TrialStatusFermenting {
		t.Errorf("status after 4.0%% = %q, want %q", got.Status, domain.TrialStatusFermenting)
	}

	// Crossing 8.0% flips the trial to ready-for-branching.
	if _, err := svc.AddReading(ctx, tr.ID, domain.AddReadingRequest{SG: 1.005, ABV: 8.2}); err != nil {
		t.Fatalf("AddReading returned error: %v", err)
	}
	got, err = svc.GetTrial(ctx, tr.ID)
	if err != nil {
		t.Fatalf("GetTrial returned error: %v", err)
	}
	if got.Status != domain.TrialStatusBranching {
		t.Errorf("status after 8.2%% = %q, want %q", got.Status, domain.TrialStatusBranching)
	}
	if got.CurrentSG != 1.005 || got.CurrentABV != 8.2 {
		t.Errorf("current readings = (%v, %v), want (1.005, 8.2)", got.CurrentSG, got.CurrentABV)
	}
	if len(got.Readings) != 2 {
		t.Errorf("readings = %d, want 2", len(got.Readings))
	}
}

func TestSetPath(t *testing.T) {
	repo := newMemTrialRepo()
	batches, b := fixtureBatch()
	svc := NewTrialService(repo, batches)
	ctx := context.Background()

	tr, err := svc.CreateTrial(ctx, domain.CreateTrialRequest{
		BatchID:      b.ID.String(),
		JuiceVariant: "JP4",
		YeastStrain:  "EC-1118",
		InitialSG:    1.060,
		TargetSG:     1.000,
	})
	if err != nil {
		t.Fatalf("CreateTrial returned error: %v", err)
	}

	res, err := svc.SetPath(ctx, tr.ID, domain.SetPathRequest{Path: domain.PathDistillation})
	if err != nil {
		t.Fatalf("SetPath returned error: %v", err)
	}
	if res.PathTaken != domain.PathDistillation {
		t.Errorf("PathTaken = %q, want %q", res.PathTaken, domain.PathDistillation)
	}
	if want := "Distillation Path"; res.Status != want {
		t.Errorf("Status = %q, want %q", res.Status, want)
	}
}

func TestArchivedTrialIsTerminal(t *testing.T) {
	repo := newMemTrialRepo()
	batches, b := fixtureBatch()
	svc := NewTrialService(repo, batches)
	ctx := context.Background()

	tr, err := svc.CreateTrial(ctx, domain.CreateTrialRequest{
		BatchID:      b.ID.String(),
		JuiceVariant: "JP5",
		YeastStrain:  "EC-1118",
		InitialSG:    1.060,
		TargetSG:     1.000,
	})
	if err != nil {
		t.Fatalf("CreateTrial returned error: %v", err)
	}

	res, err := svc.SetPath(ctx, tr.ID, domain.SetPathRequest{Path: domain.PathArchived})
	if err != nil {
		t.Fatalf("SetPath returned error: %v", err)
	}
	if res.Status != domain.TrialStatusArchived {
		t.Errorf("Status = %q, want %q", res.Status, domain.TrialStatusArchived)
	}

	if _, err := svc.AddReading(ctx, tr.ID, domain.AddReadingRequest{SG: 1.010, ABV: 6.0}); !errors.Is(err, domain.ErrTrialArchived) {
		t.Errorf("reading on archived trial err = %v, want ErrTrialArchived", err)
	}
	if _, err := svc.SetPath(ctx, tr.ID, domain.SetPathRequest{Path: domain.PathVinegar}); !errors.Is(err, domain.ErrTrialArchived) {
		t.Errorf("re-path archived trial err = %v, want ErrTrialArchived", err)
	}
}
