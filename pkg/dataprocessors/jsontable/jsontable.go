package jsontable

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/sisense/compose-sdk-charts/pkg/table"
	"github.com/sisense/compose-sdk-charts/pkg/util"
)

const (
	JsonTableProcessorName string = "json"
)

// jsonTable is a query result as {"columns":[{"name":"Food","type":"string"}],"rows":[["Pies",100]]}.
// Row values are numbers, strings or null.
type jsonTable struct {
	Columns []jsonColumn       `json:"columns"`
	Rows    [][]table.RawValue `json:"rows"`
}

type jsonColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type JsonTableProcessor struct {
	data      []byte
	dataMutex sync.RWMutex
	dataHash  []byte
	table     *table.DataTable
}

func NewJsonTableProcessor() *JsonTableProcessor {
	return &JsonTableProcessor{}
}

func (p *JsonTableProcessor) Init(params map[string]string) error {
	return nil
}

func (p *JsonTableProcessor) OnData(data []byte) ([]byte, error) {
	p.dataMutex.Lock()
	defer p.dataMutex.Unlock()

	newDataHash, err := util.ComputeNewHash(p.data, p.dataHash, data)
	if err != nil {
		return nil, fmt.Errorf("error computing new data hash in json processor: %w", err)
	}

	if newDataHash != nil {
		p.data = data
		p.dataHash = newDataHash
		p.table = nil
	}

	return data, nil
}

func (p *JsonTableProcessor) GetTable() (table.DataTable, error) {
	p.dataMutex.Lock()
	defer p.dataMutex.Unlock()

	if p.table != nil {
		return *p.table, nil
	}
	if p.data == nil {
		return table.DataTable{}, errors.New("no data")
	}

	var decoded jsonTable
	if err := json.Unmarshal(p.data, &decoded); err != nil {
		return table.DataTable{}, fmt.Errorf("failed to process json table: %w", err)
	}
	if len(decoded.Columns) == 0 {
		return table.DataTable{}, errors.New("failed to process json table: no columns")
	}

	columns := make([]table.Column, len(decoded.Columns))
	for i, c := range decoded.Columns {
		columnType := c.Type
		if columnType == "" {
			columnType = table.TypeString
		}
		columns[i] = table.Column{Name: c.Name, Type: columnType}
	}

	rows := make([]table.Row, len(decoded.Rows))
	for r, values := range decoded.Rows {
		row := make(table.Row, len(values))
		for i, raw := range values {
			if !raw.IsAbsent() {
				row[i] = table.NewCell(raw)
			}
		}
		rows[r] = row
	}

	t, err := table.NewTable(columns, rows)
	if err != nil {
		return table.DataTable{}, fmt.Errorf("failed to process json table: %w", err)
	}

	p.table = &t
	return t, nil
}
