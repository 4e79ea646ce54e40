package tracking

import (
	"strings"
	"time"

	"Distillery-Tracker/domain"
)

// dateLayouts are accepted process_date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

type (
	TrackingService interface {
		BuildTrackingID(req domain.TrackingIDRequest) (domain.TrackingIDResponse, error)
	}

	trackingService struct{}
)

func NewTrackingService() TrackingService {
	return &trackingService{}
}

// BuildTrackingID assembles GROWER.FRUIT.VARIETAL.BATCH.STAGE.YYMMDD.
// Field presence is checked before the date is parsed; a missing field
// reports one generic error regardless of which field is absent. The
// YYMMDD part is derived from the date's UTC calendar representation.
func (s *trackingService) BuildTrackingID(req domain.TrackingIDRequest) (domain.TrackingIDResponse, error) {
	fields := []string{
		req.GrowerID,
		req.FruitID,
		req.VarietalID,
		req.BatchID,
		req.ProcessStage,
		req.ProcessDate,
	}
	for _, f := range fields {
		if f == "" {
			return domain.TrackingIDResponse{}, domain.ErrMissingField
		}
	}

	date, err := parseDate(req.ProcessDate)
	if err != nil {
		return domain.TrackingIDResponse{}, domain.ErrInvalidDate
	}

	yymmdd := date.UTC().Format("060102")
	trackingID := strings.Join([]string{
		req.GrowerID,
		req.FruitID,
		req.VarietalID,
		req.BatchID,
		req.ProcessStage,
		yymmdd,
	}, ".")

	return domain.TrackingIDResponse{
		TrackingID: trackingID,
		Status:     "success",
	}, nil
}

func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
