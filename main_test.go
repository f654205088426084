package main

import (
	"makkanya_dashboard/database"
	"makkanya_dashboard/utils"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteExportFile(t *testing.T) {
	now := time.Date(2025, time.February, 1, 8, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), utils.ExportFileName(now))
	if err := writeExportFile(database.SampleDataset(), path, now); err != nil {
		t.Fatalf("writeExportFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	wb, err := utils.ReadWorkbook(f)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}
	if len(wb.Sheets) != len(utils.SheetNames()) {
		t.Errorf("sheets = %v", wb.Sheets)
	}
}

func TestWriteExportFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "export.xlsx")
	if err := writeExportFile(database.SampleDataset(), path, time.Now()); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
