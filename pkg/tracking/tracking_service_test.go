package tracking

import (
	"errors"
	"testing"

	"Distillery-Tracker/domain"
)

func validRequest() domain.TrackingIDRequest {
	return domain.TrackingIDRequest{
		GrowerID:     "HV",
		FruitID:      "AP",
		VarietalID:   "GD",
		BatchID:      "042",
		ProcessStage: "FERM",
		ProcessDate:  "2024-03-21",
	}
}

func TestBuildTrackingID(t *testing.T) {
	svc := NewTrackingService()

	res, err := svc.BuildTrackingID(validRequest())
	if err != nil {
		t.Fatalf("BuildTrackingID returned error: %v", err)
	}
	if want := "HV.AP.GD.042.FERM.240321"; res.TrackingID != want {
		t.Errorf("TrackingID = %q, want %q", res.TrackingID, want)
	}
	if res.Status != "success" {
		t.Errorf("Status = %q, want %q", res.Status, "success")
	}
}

func TestBuildTrackingIDMissingFields(t *testing.T) {
	svc := NewTrackingService()

	mutations := map[string]func(*domain.TrackingIDRequest){
		"grower":  func(r *domain.TrackingIDRequest) { r.GrowerID = "" },
		"fruit":   func(r *domain.TrackingIDRequest) { r.FruitID = "" },
		"varietal": func(r *domain.TrackingIDRequest) { r.VarietalID = "" },
		"batch":   func(r *domain.TrackingIDRequest) { r.BatchID = "" },
		"stage":   func(r *domain.TrackingIDRequest) { r.ProcessStage = "" },
		"date":    func(r *domain.TrackingIDRequest) { r.ProcessDate = "" },
	}

	for name, mutate := range mutations {
		req := validRequest()
		mutate(&req)
		if _, err := svc.BuildTrackingID(req); !errors.Is(err, domain.ErrMissingField) {
			t.Errorf("%s missing: err = %v, want ErrMissingField", name, err)
		}
	}
}

func TestBuildTrackingIDInvalidDate(t *testing.T) {
	svc := NewTrackingService()

	req := validRequest()
	req.ProcessDate = "21/03/2024"
	if _, err := svc.BuildTrackingID(req); !errors.Is(err, domain.ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestBuildTrackingIDRFC3339UTCConversion(t *testing.T) {
	svc := NewTrackingService()

	// Late evening east of UTC lands on the previous UTC day.
	req := validRequest()
	req.ProcessDate = "2024-03-22T05:00:00+10:00"
	res, err := svc.BuildTrackingID(req)
	if err != nil {
		t.Fatalf("BuildTrackingID returned error: %v", err)
	}
	if want := "HV.AP.GD.042.FERM.240321"; res.TrackingID != want {
		t.Errorf("TrackingID = %q, want %q", res.TrackingID, want)
	}
}
