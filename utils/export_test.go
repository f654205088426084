package utils

import (
	"bytes"
	"makkanya_dashboard/database"
	"makkanya_dashboard/model"
	"testing"
	"time"
)

var exportTime = time.Date(2025, time.February, 1, 9, 30, 15, 0, time.UTC)

func TestExportFileName(t *testing.T) {
	want := "Makkanya_Express_Data_Export_2025-02-01.xlsx"
	if got := ExportFileName(exportTime); got != want {
		t.Errorf("ExportFileName = %q, want %q", got, want)
	}
}

func TestSheetNames(t *testing.T) {
	names := SheetNames()
	if len(names) != 14 {
		t.Fatalf("sheets = %d, want 14", len(names))
	}
	if names[0] != "Ringkasan" || names[13] != "Demografi Kembangan" {
		t.Errorf("sheet order = %v", names)
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	ds := database.SampleDataset()
	var buf bytes.Buffer
	if err := WriteWorkbook(ds, &buf, exportTime); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}
	wb, err := ReadWorkbook(&buf)
	if err != nil {
		t.Fatalf("ReadWorkbook: %v", err)
	}

	want := SheetNames()
	if len(wb.Sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", wb.Sheets, want)
	}
	for i := range want {
		if wb.Sheets[i] != want[i] {
			t.Errorf("sheet %d = %q, want %q", i, wb.Sheets[i], want[i])
		}
	}

	for _, sheet := range ExportSheets {
		rows := wb.Rows[sheet.Name]
		if len(rows) != sheet.Count(ds)+1 {
			t.Errorf("%s rows = %d, want %d", sheet.Name, len(rows), sheet.Count(ds)+1)
			continue
		}
		for i, h := range sheet.Headers {
			if i >= len(rows[0]) || rows[0][i] != h {
				t.Errorf("%s header %d = %v, want %q", sheet.Name, i, rows[0], h)
				break
			}
		}
	}

	summary := wb.Rows["Ringkasan"]
	if summary[0][0] != "RINGKASAN DASHBOARD MAKKANYA EXPRESS" {
		t.Errorf("summary title = %q", summary[0][0])
	}
	if summary[2][1] != "1/2/2025" || summary[3][1] != "09.30.15" {
		t.Errorf("export stamp = %v %v", summary[2], summary[3])
	}
	found := false
	for _, row := range summary {
		if len(row) == 2 && row[0] == "Jumlah Lokasi" {
			found = true
			if row[1] != "10" {
				t.Errorf("Jumlah Lokasi = %q, want 10", row[1])
			}
		}
		if len(row) == 2 && row[0] == "Total Footfall Harian" && row[1] != "104.000" {
			t.Errorf("Total Footfall Harian = %q, want 104.000", row[1])
		}
	}
	if !found {
		t.Error("summary has no Jumlah Lokasi row")
	}
}

func TestBuildWorkbookSheetWithoutColumns(t *testing.T) {
	sheets := append([]ExportSheet{}, ExportSheets[0], ExportSheet{
		Name:  "Kosong",
		Rows:  func(*model.Dataset) [][]any { return nil },
		Count: func(*model.Dataset) int { return 0 },
	})
	f, err := buildWorkbook(database.SampleDataset(), exportTime, sheets)
	if err == nil {
		f.Close()
		t.Fatal("a sheet without columns should fail the build")
	}
}

func TestOrDash(t *testing.T) {
	empty := ""
	value := "Tinggi"
	if orDash(nil) != "-" || orDash(&empty) != "-" || orDash(&value) != "Tinggi" {
		t.Error("orDash should replace nil and empty values with a dash")
	}
	if yesNo(true) != "Ya" || yesNo(false) != "Tidak" {
		t.Error("yesNo mismatch")
	}
}
