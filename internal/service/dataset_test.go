package service

import (
	"context"
	"errors"
	"testing"

	"github.com/persistorai/degrees/internal/models"
	"github.com/persistorai/degrees/internal/search"
)

func TestDatasetService_Stats(t *testing.T) {
	report := &models.LoadReport{Source: "csv:small", SkippedCredits: 2}
	svc := NewDatasetService(testDataset(t), report, quietLogger())

	res, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := models.DatasetStats{People: 6, Movies: 2, Credits: 4}
	if res.Dataset != want {
		t.Errorf("expected %+v, got %+v", want, res.Dataset)
	}
	if res.Load != report {
		t.Error("expected load report to be passed through")
	}
}

func TestNewEngine_RejectsNegativeDepth(t *testing.T) {
	_, err := NewEngine(testDataset(t), -1, quietLogger())
	if !errors.Is(err, search.ErrOptionViolation) {
		t.Errorf("expected ErrOptionViolation, got %v", err)
	}
}
