package spec

type DataConnectorSpec struct {
	Name   string            `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name,omitempty"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty" mapstructure:"params,omitempty"`
}

type DataProcessorSpec struct {
	Name   string            `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name,omitempty"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty" mapstructure:"params,omitempty"`
}

// DataSpec locates a query result. Path is shorthand for a file connector.
type DataSpec struct {
	Path      string            `json:"path,omitempty" yaml:"path,omitempty" mapstructure:"path,omitempty"`
	Connector DataConnectorSpec `json:"connector,omitempty" yaml:"connector,omitempty" mapstructure:"connector,omitempty"`
	Processor DataProcessorSpec `json:"processor,omitempty" yaml:"processor,omitempty" mapstructure:"processor,omitempty"`
}
