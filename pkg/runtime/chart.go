package runtime

import (
	"fmt"

	"github.com/sisense/compose-sdk-charts/pkg/dataconnectors"
	"github.com/sisense/compose-sdk-charts/pkg/dataconnectors/file"
	"github.com/sisense/compose-sdk-charts/pkg/dataprocessors"
	"github.com/sisense/compose-sdk-charts/pkg/spec"
)

// Chart is a manifest with its data connector and processor initialized
type Chart struct {
	manifest  *spec.ChartManifest
	connector dataconnectors.DataConnector
	processor dataprocessors.DataProcessor
}

// LoadChart defaults to the file connector and picks the processor from the data file extension
func LoadChart(manifest *spec.ChartManifest) (*Chart, error) {
	connectorName := manifest.Data.Connector.Name
	if connectorName == "" {
		connectorName = file.FileConnectorName
	}
	connector, err := dataconnectors.NewDataConnector(connectorName)
	if err != nil {
		return nil, err
	}

	connectorParams := make(map[string]string, len(manifest.Data.Connector.Params)+1)
	for k, v := range manifest.Data.Connector.Params {
		connectorParams[k] = v
	}
	if path := manifest.DataPath(); path != "" {
		connectorParams["path"] = path
	}
	if err := connector.Init(connectorParams); err != nil {
		return nil, fmt.Errorf("error initializing data connector '%s': %w", connectorName, err)
	}

	processorName := manifest.Data.Processor.Name
	if processorName == "" {
		processorName, err = dataprocessors.ProcessorNameForPath(connectorParams["path"])
		if err != nil {
			return nil, err
		}
	}
	processor, err := dataprocessors.NewDataProcessor(processorName)
	if err != nil {
		return nil, err
	}
	if err := processor.Init(manifest.Data.Processor.Params); err != nil {
		return nil, fmt.Errorf("error initializing data processor '%s': %w", processorName, err)
	}

	return &Chart{
		manifest:  manifest,
		connector: connector,
		processor: processor,
	}, nil
}

func (c *Chart) Manifest() *spec.ChartManifest {
	return c.manifest
}
