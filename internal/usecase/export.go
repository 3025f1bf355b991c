package usecase

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/persondex/persondex"
)

// SheetName is the single worksheet written by the spreadsheet export.
const SheetName = "PersonsSheet"

const exportDateLayout = "2006-01-02"

// csvHeader mirrors the legacy CSV export, which never carried a gender
// column. The spreadsheet export does; the mismatch is kept on purpose.
var csvHeader = []string{
	"PersonName",
	"Email",
	"DateOfBirth",
	"Age",
	"Country",
	"Address",
	"ReceiveNewsLetters",
}

var sheetHeader = []string{
	"Person Name",
	"Email",
	"Date of Birth",
	"Age",
	"Gender",
	"Country",
	"Address",
	"Receive News Letters",
}

// EncodePersonsCSV serializes persons to CSV. The returned reader is
// fully buffered and positioned at its start.
func EncodePersonsCSV(persons []persondex.PersonResponse) (*bytes.Reader, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "writing csv header")
	}

	for _, person := range persons {
		row := []string{
			person.PersonName,
			person.Email,
			formatDateCell(person.DateOfBirth),
			formatAgeCell(person.Age),
			person.Country,
			person.Address,
			formatBoolCell(person.ReceiveNewsLetters),
		}
		if err := writer.Write(row); err != nil {
			return nil, errors.Wrap(err, "writing csv row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, errors.Wrap(err, "flushing csv")
	}

	return bytes.NewReader(buf.Bytes()), nil
}

// EncodePersonsSheet serializes persons to a single-sheet workbook with
// a bold, light-gray header row and auto-sized columns. The returned
// reader is fully buffered and positioned at its start.
func EncodePersonsSheet(persons []persondex.PersonResponse) (*bytes.Reader, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(SheetName)
	if err != nil {
		return nil, errors.Wrap(err, "creating worksheet")
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "removing default worksheet")
	}

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D3D3D3"}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating header style")
	}

	widths := make([]int, len(sheetHeader))
	for col, title := range sheetHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(SheetName, cell, title); err != nil {
			return nil, errors.Wrap(err, "writing header cell")
		}
		widths[col] = max(widths[col], len(title))
	}
	if err := file.SetCellStyle(SheetName, "A1", "H1", headerStyle); err != nil {
		return nil, errors.Wrap(err, "styling header row")
	}

	for i, person := range persons {
		cells := sheetCells(person)
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(SheetName, cell, value); err != nil {
				return nil, errors.Wrap(err, "writing data cell")
			}
			widths[col] = max(widths[col], len(value))
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetColWidth(SheetName, name, name, float64(width)+2); err != nil {
			return nil, errors.Wrap(err, "sizing column")
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "writing workbook")
	}
	return bytes.NewReader(buf.Bytes()), nil
}

func sheetCells(person persondex.PersonResponse) []string {
	return []string{
		person.PersonName,
		person.Email,
		formatDateCell(person.DateOfBirth),
		formatAgeCell(person.Age),
		person.Gender,
		person.Country,
		person.Address,
		formatBoolCell(person.ReceiveNewsLetters),
	}
}

func formatDateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportDateLayout)
}

func formatAgeCell(age *int) string {
	if age == nil {
		return ""
	}
	return strconv.Itoa(*age)
}

func formatBoolCell(b bool) string {
	return strconv.FormatBool(b)
}
