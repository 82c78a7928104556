package spreadsheet

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

// Record maps a header name to the trimmed cell text of one row.
type Record map[string]string

type Sheet struct {
	Headers []string
	Records []Record
}

// Read parses the first sheet of an xlsx workbook. The first row is the header;
// rows whose cells are all blank are omitted.
func Read(r io.Reader) (*Sheet, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, formatError("unreadable upload", err)
	}

	if len(content) == 0 {
		return nil, formatError("", ErrEmptyFile)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, formatError("not a workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, formatError("no sheets found", nil)
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, formatError("failed to read rows", err)
	}

	if len(rows) == 0 {
		return nil, formatError("no header row", nil)
	}

	headers := headerNames(rows[0], rowWidth(rows))
	if len(headers) == 0 {
		return nil, formatError("no header columns", nil)
	}

	c := cellReader{file: f, sheet: sheetName}
	sheet := &Sheet{Headers: headers}

	for i, row := range rows[1:] {
		record := make(Record, len(headers))
		blank := true

		for col, header := range headers {
			value := ""
			if col < len(row) {
				value = c.render(col+1, i+2, strings.TrimSpace(row[col]))
			}

			if value != "" {
				blank = false
			}
			record[header] = value
		}

		if blank {
			continue
		}

		sheet.Records = append(sheet.Records, record)
	}

	return sheet, nil
}

// rowWidth is the widest row of the sheet, so data under a blank header cell is kept.
func rowWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		last := -1
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				last = i
			}
		}
		width = max(width, last+1)
	}
	return width
}

func headerNames(row []string, width int) []string {
	headers := make([]string, 0, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(row) {
			name = strings.TrimSpace(row[i])
		}
		if name == "" {
			name = "Column" + strconv.Itoa(i)
		}
		headers = append(headers, name)
	}

	return headers
}

type cellReader struct {
	file  *excelize.File
	sheet string
}

// render turns a raw cell value into display text: booleans become true or false,
// date-formatted serials become yyyy-MM-dd and other numbers are written without an exponent.
func (c cellReader) render(col, row int, raw string) string {
	if raw == "" {
		return raw
	}

	switch c.cellType(col, row) {
	case excelize.CellTypeBool:
		return strconv.FormatBool(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
	default:
		return raw
	}

	number, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}

	if c.isDate(col, row) {
		if t, err := excelize.ExcelDateToTime(number, false); err == nil {
			return t.Format(dateLayout)
		}
	}

	return strconv.FormatFloat(number, 'f', -1, 64)
}

func (c cellReader) cellType(col, row int) excelize.CellType {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return excelize.CellTypeInlineString
	}

	cellType, err := c.file.GetCellType(c.sheet, cell)
	if err != nil {
		return excelize.CellTypeInlineString
	}

	return cellType
}

func (c cellReader) isDate(col, row int) bool {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return false
	}

	styleID, err := c.file.GetCellStyle(c.sheet, cell)
	if err != nil || styleID == 0 {
		return false
	}

	style, err := c.file.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}

	if isBuiltInDateFormat(style.NumFmt) {
		return true
	}

	if style.CustomNumFmt != nil {
		format := strings.ToLower(*style.CustomNumFmt)
		return strings.Contains(format, "yy") || (strings.Contains(format, "d") && strings.Contains(format, "m"))
	}

	return false
}

func isBuiltInDateFormat(id int) bool {
	return (id >= 14 && id <= 17) || id == 22 || (id >= 27 && id <= 36) || (id >= 50 && id <= 58)
}
