package usecase

import (
	"context"
	"encoding/csv"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/persondex/persondex"
	"github.com/persondex/persondex/internal/domain"
)

func readCSV(t *testing.T, persons []persondex.PersonResponse) [][]string {
	t.Helper()

	stream, err := EncodePersonsCSV(persons)
	if err != nil {
		t.Fatalf("csv encode failed: %v", err)
	}

	rows, err := csv.NewReader(stream).ReadAll()
	if err != nil {
		t.Fatalf("csv parse failed: %v", err)
	}
	return rows
}

func readSheet(t *testing.T, persons []persondex.PersonResponse) [][]string {
	t.Helper()

	stream, err := EncodePersonsSheet(persons)
	if err != nil {
		t.Fatalf("sheet encode failed: %v", err)
	}

	file, err := excelize.OpenReader(stream)
	if err != nil {
		t.Fatalf("workbook open failed: %v", err)
	}
	defer file.Close()

	rows, err := file.GetRows(SheetName)
	if err != nil {
		t.Fatalf("reading %s failed: %v", SheetName, err)
	}
	return rows
}

// cellAt tolerates the trailing empty cells excelize trims from rows.
func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func TestCSVHeaderOmitsGender(t *testing.T) {
	rows := readCSV(t, nil)

	want := []string{"PersonName", "Email", "DateOfBirth", "Age", "Country", "Address", "ReceiveNewsLetters"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Fatalf("unexpected header: %v", rows[0])
	}
}

func TestSheetHeaderIncludesGender(t *testing.T) {
	rows := readSheet(t, nil)

	want := []string{"Person Name", "Email", "Date of Birth", "Age", "Gender", "Country", "Address", "Receive News Letters"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Fatalf("unexpected header: %v", rows[0])
	}
}

// The full pipeline scenario: filter "al" keeps Alice, sorting a single
// element changes nothing, and the CSV row reflects the fixed clock.
func TestFilterSortExportScenario(t *testing.T) {
	repo := &mockPersonRepo{persons: []domain.Person{
		{ID: uuid.New(), PersonName: "Alice", DateOfBirth: date(1990, time.January, 1)},
		{ID: uuid.New(), PersonName: "bob", DateOfBirth: date(1985, time.May, 5)},
	}}
	uc := newTestPersonUsecase(repo)

	persons, err := uc.GetAllPersons(context.Background())
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}

	filtered := FilterPersons(persons, "PersonName", "al")
	if len(filtered) != 1 || filtered[0].PersonName != "Alice" {
		t.Fatalf("expected Alice only, got %v", names(filtered))
	}

	sorted := SortPersons(filtered, "PersonName", persondex.ASC)
	if !reflect.DeepEqual(names(sorted), names(filtered)) {
		t.Fatalf("expected a single-element list unchanged, got %v", names(sorted))
	}

	rows := readCSV(t, sorted)
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}

	want := []string{"Alice", "", "1990-01-01", "35", "", "", "false"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Fatalf("expected %v, got %v", want, rows[1])
	}
}

// The shared columns of both exports must carry identical text in
// identical row order.
func TestExportsCrossFormatConsistent(t *testing.T) {
	persons := queryFixture()

	csvRows := readCSV(t, persons)
	sheetRows := readSheet(t, persons)

	if len(csvRows) != len(sheetRows) {
		t.Fatalf("row counts differ: csv %d, sheet %d", len(csvRows), len(sheetRows))
	}

	// csv column index -> sheet column index; the sheet inserts Gender
	// at position 4.
	shared := map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 5, 5: 6, 6: 7}

	for row := 1; row < len(csvRows); row++ {
		for csvCol, sheetCol := range shared {
			got := cellAt(sheetRows[row], sheetCol)
			want := cellAt(csvRows[row], csvCol)
			if got != want {
				t.Fatalf("row %d column %d: csv %q, sheet %q", row, csvCol, want, got)
			}
		}
	}
}

func TestSheetMissingDateRendersEmpty(t *testing.T) {
	persons := []persondex.PersonResponse{{PersonName: "Carol"}}

	rows := readSheet(t, persons)
	if cellAt(rows[1], 2) != "" {
		t.Fatalf("expected an empty date cell, got %q", cellAt(rows[1], 2))
	}
	if cellAt(rows[1], 3) != "" {
		t.Fatalf("expected an empty age cell, got %q", cellAt(rows[1], 3))
	}
}

func TestCSVStreamStartsAtZero(t *testing.T) {
	stream, err := EncodePersonsCSV(queryFixture())
	if err != nil {
		t.Fatalf("csv encode failed: %v", err)
	}
	if pos, _ := stream.Seek(0, 1); pos != 0 {
		t.Fatalf("expected the stream positioned at its start, got offset %d", pos)
	}
}
