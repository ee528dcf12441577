package dataconnectors

import (
	"context"
	"fmt"

	"github.com/sisense/compose-sdk-charts/pkg/dataconnectors/file"
)

type DataConnector interface {
	Init(params map[string]string) error
	FetchData() ([]byte, error)
	Watch(ctx context.Context, onData func([]byte)) error
}

func NewDataConnector(name string) (DataConnector, error) {
	switch name {
	case file.FileConnectorName:
		return file.NewFileConnector(), nil
	}

	return nil, fmt.Errorf("unknown data connector '%s'", name)
}
