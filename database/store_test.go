package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestCurrentBeforeLoad(t *testing.T) {
	Reset()
	if _, err := Current(); !errors.Is(err, ErrNoDataset) {
		t.Errorf("Current() error = %v, want ErrNoDataset", err)
	}
	if Version() != "" || Report() != nil {
		t.Error("version and report should be empty before a load")
	}
}

func TestReloadKeepsPreviousOnFailure(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	ctx := context.Background()

	if _, err := Reload(ctx, SampleSource); err != nil {
		t.Fatalf("Reload(sample): %v", err)
	}
	before, _ := Current()
	version := Version()

	missing := filepath.Join(t.TempDir(), "missing.json")
	if _, err := Reload(ctx, missing); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	after, err := Current()
	if err != nil {
		t.Fatalf("Current after failed reload: %v", err)
	}
	if after != before || Version() != version {
		t.Error("a failed reload replaced the dataset")
	}
	last := LastStatus()
	if last.Event != "failed" || !last.Loaded || last.Error == "" {
		t.Errorf("last status = %+v", last)
	}
}

func TestSnapshotPairsDatasetAndReport(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	if _, _, err := Snapshot(); !errors.Is(err, ErrNoDataset) {
		t.Errorf("Snapshot() error = %v, want ErrNoDataset", err)
	}

	first, firstReport := LoadSample()
	Install(context.Background(), first, firstReport)
	ds, report, err := Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	second, secondReport := LoadSample()
	Install(context.Background(), second, secondReport)

	if ds != first || report.Version != firstReport.Version {
		t.Error("snapshot should keep the dataset and version of one load")
	}
	key := CacheKey(report.Version, "kpi", "all", "30days", "all")
	if key != "kpi:"+firstReport.Version+":kpi:all:30days:all" {
		t.Errorf("CacheKey = %q", key)
	}
	if key == CacheKey(Version(), "kpi", "all", "30days", "all") {
		t.Error("a new load should change the cache key")
	}
}

func TestCacheDisabledWithoutRedis(t *testing.T) {
	if Redis != nil {
		t.Skip("redis configured")
	}
	CacheSet(context.Background(), "k", []byte("v"), time.Minute)
	if _, ok := CacheGet(context.Background(), "k"); ok {
		t.Error("CacheGet should miss without redis")
	}
}

func TestSubscribeStatusLocal(t *testing.T) {
	if Redis != nil {
		t.Skip("redis configured")
	}
	Reset()
	t.Cleanup(Reset)
	_, events, cancel := SubscribeStatus(context.Background())
	defer cancel()

	ds, report := LoadSample()
	Install(context.Background(), ds, report)
	select {
	case ev := <-events:
		if ev.Event != "loaded" || !ev.Loaded || ev.Report == nil {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no status event received")
	}

	cancel()
	cancel()
	if _, ok := <-events; ok {
		t.Error("channel should be closed after cancel")
	}
}
