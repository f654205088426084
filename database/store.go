package database

import (
	"context"
	"log"
	"makkanya_dashboard/model"
	"sync/atomic"
	"time"
)

type snapshot struct {
	dataset *model.Dataset
	report  *model.LoadReport
}

var current atomic.Pointer[snapshot]

// Current returns the loaded dataset. Callers must treat it as read only.
func Current() (*model.Dataset, error) {
	s := current.Load()
	if s == nil {
		return nil, ErrNoDataset
	}
	return s.dataset, nil
}

// Snapshot returns the loaded dataset together with the report of the same
// load.
func Snapshot() (*model.Dataset, *model.LoadReport, error) {
	s := current.Load()
	if s == nil {
		return nil, nil, ErrNoDataset
	}
	return s.dataset, s.report, nil
}

// Report describes the load behind Current, or nil.
func Report() *model.LoadReport {
	s := current.Load()
	if s == nil {
		return nil
	}
	return s.report
}

// Version identifies the loaded dataset, empty when none is loaded.
func Version() string {
	if r := Report(); r != nil {
		return r.Version
	}
	return ""
}

// Replace swaps the dataset wholesale.
func Replace(ds *model.Dataset, report *model.LoadReport) {
	current.Store(&snapshot{dataset: ds, report: report})
}

// Reset forgets the loaded dataset.
func Reset() {
	current.Store(nil)
}

// Reload loads source and swaps it in. On failure the previous dataset
// stays in place. The outcome is published either way.
func Reload(ctx context.Context, source string) (*model.LoadReport, error) {
	ds, report, err := LoadDataset(ctx, source)
	if err != nil {
		log.Printf("[DATASET] load %s failed: %v", source, err)
		PublishStatus(ctx, model.DatasetStatus{
			Loaded: Report() != nil,
			Event:  "failed",
			Report: Report(),
			Error:  err.Error(),
			At:     time.Now(),
		})
		return nil, err
	}
	Install(ctx, ds, report)
	return report, nil
}

// Install replaces the dataset and publishes the load.
func Install(ctx context.Context, ds *model.Dataset, report *model.LoadReport) {
	Replace(ds, report)
	log.Printf("[DATASET] loaded %s version %s", report.Source, report.Version)
	PublishStatus(ctx, model.DatasetStatus{
		Loaded: true,
		Event:  "loaded",
		Report: report,
		At:     time.Now(),
	})
}
