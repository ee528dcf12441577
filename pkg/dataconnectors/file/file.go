package file

import (
	"context"
	"fmt"
	"io/fs"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/logrusorgru/aurora"
	"github.com/sisense/compose-sdk-charts/pkg/config"
	"github.com/sisense/compose-sdk-charts/pkg/loggers"
	"go.uber.org/zap"
)

var (
	zaplog *zap.Logger = loggers.ZapLogger()
)

const (
	FileConnectorName string = "file"
)

type FileConnector struct {
	path      string
	fileInfo  fs.FileInfo
	data      []byte
	dataMutex sync.RWMutex
}

func NewFileConnector() *FileConnector {
	return &FileConnector{}
}

// Init takes the "path" of the file, relative paths are resolved against the app directory
func (c *FileConnector) Init(params map[string]string) error {
	path := params["path"]
	if path == "" {
		return fmt.Errorf("file connector requires a 'path'")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(config.AppPath(), path)
	}
	c.path = filepath.Clean(path)

	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	newFileInfo, err := os.Stat(c.path)
	if err == nil {
		_, err := c.loadFileData(newFileInfo)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *FileConnector) Path() string {
	return c.path
}

func (c *FileConnector) FetchData() ([]byte, error) {
	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	newFileInfo, err := os.Stat(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", c.path, err)
	}

	if c.fileInfo == nil || newFileInfo.ModTime().After(c.fileInfo.ModTime()) || newFileInfo.Size() != c.fileInfo.Size() {
		// Only load file if it's changed since last read
		return c.loadFileData(newFileInfo)
	}

	return c.data, nil
}

func (c *FileConnector) loadFileData(newFileInfo fs.FileInfo) ([]byte, error) {
	zaplog.Sugar().Debugf("loading file '%s' ...", c.path)

	loadStartTime := time.Now()

	fileData, err := ioutil.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", c.path, err)
	}

	c.data = fileData
	c.fileInfo = newFileInfo

	duration := time.Since(loadStartTime)
	zaplog.Debug("loaded file", zap.String("path", c.path), zap.Duration("duration", duration))

	return fileData, nil
}

// Watch calls onData with the file content each time it is written or recreated, until ctx is done.
// The parent directory is watched so editors that replace the file are followed.
func (c *FileConnector) Watch(ctx context.Context, onData func([]byte)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error starting '%s' watcher: %w", c.path, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(c.path)); err != nil {
		return fmt.Errorf("error starting '%s' watcher: %w", c.path, err)
	}

	log.Println(aurora.Gray(12, fmt.Sprintf("watching '%s' for updates", config.GetAppRelativePath(c.path))))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			data, changed, err := c.processWatchNotifyEvent(event)
			if err != nil {
				log.Println(aurora.Yellow(fmt.Sprintf("error processing '%s' event %s: %v", c.path, event, err)))
				continue
			}
			if changed {
				onData(data)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println(aurora.Yellow(fmt.Sprintf("error processing '%s': %v", c.path, err)))
		}
	}
}

func (c *FileConnector) processWatchNotifyEvent(event fsnotify.Event) ([]byte, bool, error) {
	if filepath.Clean(event.Name) != c.path {
		return nil, false, nil
	}

	c.dataMutex.Lock()
	defer c.dataMutex.Unlock()

	switch {
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		newFileInfo, err := os.Stat(c.path)
		if err != nil {
			return nil, false, fmt.Errorf("failed to open file '%s': %w", c.path, err)
		}
		data, err := c.loadFileData(newFileInfo)
		if err != nil {
			return nil, false, err
		}
		return data, true, nil
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		c.fileInfo = nil
		c.data = nil
	}

	return nil, false, nil
}
