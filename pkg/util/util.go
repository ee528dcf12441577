package util

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/olekukonko/tablewriter"
)

// MarshalAndPrintTable prints a slice of csv tagged structs as a borderless table
func MarshalAndPrintTable(writer io.Writer, in interface{}) error {
	csvContent, err := gocsv.MarshalString(in)
	if err != nil {
		return err
	}

	records, err := csv.NewReader(strings.NewReader(csvContent)).ReadAll()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowLine(false)
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetColumnSeparator("")

	for i, record := range records {
		if i == 0 {
			table.SetHeader(record)
			continue
		}
		table.Append(record)
	}

	table.Render()
	return nil
}
