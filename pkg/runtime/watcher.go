package runtime

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/logrusorgru/aurora"
	"github.com/sisense/compose-sdk-charts/pkg/config"
	"github.com/sisense/compose-sdk-charts/pkg/spec"
	"github.com/sisense/compose-sdk-charts/pkg/util"
)

type RenderFunc func(*Rendered, error)

// Watch renders the chart once, then again each time its data file changes, until ctx is done
func (r *ComposeRuntime) Watch(ctx context.Context, manifest *spec.ChartManifest, onRender RenderFunc) error {
	chart, err := LoadChart(manifest)
	if err != nil {
		return err
	}

	data, err := chart.connector.FetchData()
	if err != nil {
		onRender(nil, err)
	} else {
		onRender(r.render(chart, data))
	}

	return chart.connector.Watch(ctx, func(data []byte) {
		onRender(r.render(chart, data))
	})
}

// WatchManifests renders every chart manifest created or changed in dir, until ctx is done
func (r *ComposeRuntime) WatchManifests(ctx context.Context, dir string, onRender RenderFunc) error {
	if _, err := os.Stat(dir); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error starting '%s' watcher: %w", dir, err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("error starting '%s' watcher: %w", dir, err)
	}

	log.Println(aurora.Gray(12, fmt.Sprintf("watching '%s' for chart manifests", config.GetAppRelativePath(dir))))

	hashes := make(map[string]string)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			r.processNotifyEvent(event, hashes, onRender)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println(aurora.Yellow(fmt.Sprintf("error from '%s' watcher: %v", dir, err)))
		}
	}
}

// processNotifyEvent renders a created or written manifest unless its content is unchanged
func (r *ComposeRuntime) processNotifyEvent(event fsnotify.Event, hashes map[string]string, onRender RenderFunc) {
	manifestPath := event.Name
	if !isManifestPath(manifestPath) {
		return
	}

	switch {
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		hash, err := util.ComputeFileHash(manifestPath)
		if err != nil {
			onRender(nil, err)
			return
		}
		if hashes[manifestPath] == hash {
			// Nothing changed, ignore
			return
		}
		hashes[manifestPath] = hash

		manifest, err := spec.LoadChartManifest(manifestPath)
		if err != nil {
			onRender(nil, err)
			return
		}
		onRender(r.Render(manifest))
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		delete(hashes, manifestPath)
	}
}

func isManifestPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
