package csv

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/sisense/compose-sdk-charts/pkg/loggers"
	"github.com/sisense/compose-sdk-charts/pkg/table"
	"github.com/sisense/compose-sdk-charts/pkg/util"
	"go.uber.org/zap"
)

var (
	zaplog *zap.Logger = loggers.ZapLogger()
)

const (
	CsvProcessorName string = "csv"

	// a header of "Revenue:number" names the column Revenue and types it as a number
	typeSeparator = ":"
)

type CsvProcessor struct {
	delimiter rune
	data      []byte
	dataMutex sync.RWMutex
	dataHash  []byte
	table     *table.DataTable
}

func NewCsvProcessor() *CsvProcessor {
	return &CsvProcessor{delimiter: ','}
}

// Init accepts an optional single character "delimiter"
func (p *CsvProcessor) Init(params map[string]string) error {
	if d, ok := params["delimiter"]; ok {
		runes := []rune(d)
		if len(runes) != 1 {
			return fmt.Errorf("invalid csv delimiter '%s'", d)
		}
		p.delimiter = runes[0]
	}
	return nil
}

func (p *CsvProcessor) OnData(data []byte) ([]byte, error) {
	p.dataMutex.Lock()
	defer p.dataMutex.Unlock()

	newDataHash, err := util.ComputeNewHash(p.data, p.dataHash, data)
	if err != nil {
		return nil, fmt.Errorf("error computing new data hash in csv processor: %w", err)
	}

	if newDataHash != nil {
		// Only update data if new
		p.data = data
		p.dataHash = newDataHash
		p.table = nil
	}

	return data, nil
}

// GetTable decodes the last data received. Unchanged data is decoded once.
func (p *CsvProcessor) GetTable() (table.DataTable, error) {
	p.dataMutex.Lock()
	defer p.dataMutex.Unlock()

	if p.table != nil {
		return *p.table, nil
	}
	if p.data == nil {
		return table.DataTable{}, errors.New("no data")
	}

	t, err := p.getTable(bytes.NewReader(p.data))
	if err != nil {
		return table.DataTable{}, fmt.Errorf("failed to process csv: %w", err)
	}

	p.table = &t
	return t, nil
}

func (p *CsvProcessor) getTable(reader io.Reader) (table.DataTable, error) {
	headers, lines, err := p.getCsvHeaderAndLines(reader)
	if err != nil {
		return table.DataTable{}, err
	}

	return RecordsToTable(headers, lines)
}

// RecordsToTable types the columns from the headers and fields, then decodes each line into a row.
// Lines whose width differs from the header are skipped.
func RecordsToTable(headers []string, lines [][]string) (table.DataTable, error) {
	columns := getColumns(headers, lines)
	zaplog.Sugar().Debugf("Read headers of %v", headers)

	rows := make([]table.Row, 0, len(lines))
	for line, record := range lines {
		if len(record) != len(columns) {
			zaplog.Sugar().Debugf("ignoring line %d with %d fields, expected %d", line+1, len(record), len(columns))
			continue
		}
		row := make(table.Row, len(record))
		for col, field := range record {
			row[col] = newCell(field, columns[col].Type)
		}
		rows = append(rows, row)
	}

	return table.NewTable(columns, rows)
}

func (p *CsvProcessor) getCsvHeaderAndLines(input io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(input)
	reader.Comma = p.delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, errors.New("failed to read header")
	}

	lines, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return headers, lines, nil
}

// getColumns uses the type annotation of a header, otherwise a column whose non empty fields all
// parse as numbers is a number column
func getColumns(headers []string, lines [][]string) []table.Column {
	columns := make([]table.Column, len(headers))
	for i, header := range headers {
		name, columnType := header, ""
		if idx := strings.LastIndex(header, typeSeparator); idx > 0 {
			name, columnType = header[:idx], strings.ToLower(strings.TrimSpace(header[idx+1:]))
		}
		if columnType == "" {
			columnType = inferType(lines, i)
		}
		columns[i] = table.Column{Name: strings.TrimSpace(name), Type: columnType}
	}
	return columns
}

func inferType(lines [][]string, col int) string {
	seen := false
	for _, record := range lines {
		if col >= len(record) || record[col] == "" {
			continue
		}
		if _, err := strconv.ParseFloat(record[col], 64); err != nil {
			return table.TypeString
		}
		seen = true
	}
	if !seen {
		return table.TypeString
	}
	return table.TypeNumber
}

// newCell leaves empty fields absent. Number columns hold numbers, fields that do not parse stay text.
func newCell(field string, columnType string) table.ComparableData {
	if field == "" {
		return table.ComparableData{}
	}
	if table.IsNumberType(columnType) {
		if f, err := strconv.ParseFloat(field, 64); err == nil {
			return table.NewCell(table.NumberValue(f))
		}
	}
	return table.NewCell(table.StringValue(field))
}
