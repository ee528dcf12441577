package xlsx

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/sisense/compose-sdk-charts/pkg/dataprocessors/csv"
	"github.com/sisense/compose-sdk-charts/pkg/table"
	"github.com/sisense/compose-sdk-charts/pkg/util"
	"github.com/xuri/excelize/v2"
)

const (
	XlsxProcessorName string = "xlsx"
)

// XlsxProcessor reads one sheet of a workbook. The first row holds the headers, typed the same way
// as csv headers.
type XlsxProcessor struct {
	sheet     string
	data      []byte
	dataMutex sync.RWMutex
	dataHash  []byte
	table     *table.DataTable
}

func NewXlsxProcessor() *XlsxProcessor {
	return &XlsxProcessor{}
}

// Init accepts an optional "sheet", the first sheet of the workbook otherwise
func (p *XlsxProcessor) Init(params map[string]string) error {
	p.sheet = params["sheet"]
	return nil
}

func (p *XlsxProcessor) OnData(data []byte) ([]byte, error) {
	p.dataMutex.Lock()
	defer p.dataMutex.Unlock()

	newDataHash, err := util.ComputeNewHash(p.data, p.dataHash, data)
	if err != nil {
		return nil, fmt.Errorf("error computing new data hash in xlsx processor: %w", err)
	}

	if newDataHash != nil {
		p.data = data
		p.dataHash = newDataHash
		p.table = nil
	}

	return data, nil
}

func (p *XlsxProcessor) GetTable() (table.DataTable, error) {
	p.dataMutex.Lock()
	defer p.dataMutex.Unlock()

	if p.table != nil {
		return *p.table, nil
	}
	if p.data == nil {
		return table.DataTable{}, errors.New("no data")
	}

	t, err := p.getTable()
	if err != nil {
		return table.DataTable{}, fmt.Errorf("failed to process xlsx: %w", err)
	}

	p.table = &t
	return t, nil
}

func (p *XlsxProcessor) getTable() (table.DataTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(p.data))
	if err != nil {
		return table.DataTable{}, err
	}

	sheet := p.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return table.DataTable{}, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return table.DataTable{}, fmt.Errorf("failed to read sheet '%s': %w", sheet, err)
	}
	if len(rows) == 0 {
		return table.DataTable{}, fmt.Errorf("sheet '%s' has no header row", sheet)
	}

	headers := rows[0]
	lines := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		// trailing empty cells are not returned
		for len(row) < len(headers) {
			row = append(row, "")
		}
		lines = append(lines, row)
	}

	return csv.RecordsToTable(headers, lines)
}
