package testutils

import (
	"encoding/json"

	"github.com/bradleyjkemp/cupaloy/v2"
)

type Snapshotter struct {
	config *cupaloy.Config
}

// NewSnapshotter records missing snapshots on first run instead of failing
func NewSnapshotter(subdirectory string) *Snapshotter {
	return &Snapshotter{
		config: cupaloy.New(
			cupaloy.SnapshotSubdirectory(subdirectory),
			cupaloy.FailOnUpdate(false),
		),
	}
}

// SnapshotTJson snapshots the indented JSON encoding of i
func (s Snapshotter) SnapshotTJson(t cupaloy.TestingT, i interface{}) {
	json, err := getJson(i)
	if err != nil {
		t.Fatal(err)
	}
	s.config.SnapshotT(t, json)
}

func getJson(data interface{}) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}
