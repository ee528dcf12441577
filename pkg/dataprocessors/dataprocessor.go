package dataprocessors

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sisense/compose-sdk-charts/pkg/dataprocessors/csv"
	"github.com/sisense/compose-sdk-charts/pkg/dataprocessors/jsontable"
	"github.com/sisense/compose-sdk-charts/pkg/dataprocessors/xlsx"
	"github.com/sisense/compose-sdk-charts/pkg/table"
)

type DataProcessor interface {
	Init(params map[string]string) error
	OnData(data []byte) ([]byte, error)
	GetTable() (table.DataTable, error)
}

func NewDataProcessor(name string) (DataProcessor, error) {
	switch name {
	case csv.CsvProcessorName:
		return csv.NewCsvProcessor(), nil
	case jsontable.JsonTableProcessorName:
		return jsontable.NewJsonTableProcessor(), nil
	case xlsx.XlsxProcessorName:
		return xlsx.NewXlsxProcessor(), nil
	}

	return nil, fmt.Errorf("unknown processor '%s'", name)
}

// ProcessorNameForPath picks a processor from the file extension
func ProcessorNameForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csv.CsvProcessorName, nil
	case ".json":
		return jsontable.JsonTableProcessorName, nil
	case ".xlsx":
		return xlsx.XlsxProcessorName, nil
	}
	return "", fmt.Errorf("no processor for '%s'", filepath.Base(path))
}
