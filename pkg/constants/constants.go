package constants

const (
	DotCompose             = ".compose"
	ComposeEnvVarPrefix    = "COMPOSE_"
	ChartManifestExtension = ".chart.yaml"
)
