// Package filesystem implements a connector that reads text files from a
// local directory and watches it for changes with fsnotify.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/timexy/internal/core/domain"
	"github.com/custodia-labs/timexy/internal/core/ports/driven"
	"github.com/custodia-labs/timexy/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Metadata keys set on every RawDocument.
const (
	MetaMIMEType = "mime_type"
	MetaSize     = "size"
	MetaModified = "modified"
)

// watchBuffer is the capacity of the change channel returned by Watch.
const watchBuffer = 100

// fallbackMIME covers text formats the mime package does not register.
var fallbackMIME = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".go":       "text/x-go",
	".py":       "text/x-python",
	".rs":       "text/x-rust",
	".ts":       "text/typescript",
	".tsx":      "text/typescript-jsx",
	".jsx":      "text/javascript-jsx",
	".yaml":     "text/yaml",
	".yml":      "text/yaml",
	".toml":     "text/toml",
	".sh":       "text/x-shellscript",
	".bash":     "text/x-shellscript",
	".sql":      "text/x-sql",
	".rst":      "text/x-rst",
	".csv":      "text/csv",
}

// Connector reads text files under a root path. The root may be a
// directory or a single file.
type Connector struct {
	rootPath string

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// New creates a filesystem connector rooted at rootPath.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// RootPath returns the path the connector reads from.
func (c *Connector) RootPath() string {
	return c.rootPath
}

// Validate checks that the root path exists.
func (c *Connector) Validate(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(c.rootPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("root path does not exist: %s", c.rootPath)
		}
		return fmt.Errorf("root path error: %w", err)
	}
	return nil
}

// FullSync walks the root path and sends one document per visible text file.
func (c *Connector) FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		if err := c.Validate(ctx); err != nil {
			errs <- err
			return
		}

		err := filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			if d.IsDir() {
				if path != c.rootPath && isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if (path != c.rootPath && isHidden(d.Name())) || !d.Type().IsRegular() {
				return nil
			}

			raw, err := c.read(path)
			if err != nil {
				logger.Warn("Skipping %s: %v", path, err)
				return nil
			}
			if raw == nil {
				return nil
			}

			select {
			case docs <- *raw:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if err != nil {
			errs <- err
		}
	}()

	return docs, errs
}

// Watch reports file changes under the root path until ctx is cancelled.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.RawDocumentChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, errors.New("connector is closed")
	}
	if _, err := os.Stat(c.rootPath); err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := addRecursive(watcher, c.rootPath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", c.rootPath, err)
	}
	c.watcher = watcher

	changes := make(chan domain.RawDocumentChange, watchBuffer)
	go c.watchLoop(ctx, watcher, changes)
	return changes, nil
}

// Close stops any active watch. It is safe to call more than once.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Close()
	c.watcher = nil
	return err
}

func (c *Connector) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- domain.RawDocumentChange) {
	defer close(changes)
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			change := c.handleFsEvent(event)
			if change == nil {
				continue
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Watch error: %v", err)
		}
	}
}

// handleFsEvent converts an fsnotify event into a document change.
// It returns nil for events that do not affect a visible text file.
func (c *Connector) handleFsEvent(event fsnotify.Event) *domain.RawDocumentChange {
	if c.hiddenPath(event.Name) {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.RawDocumentChange{
			Type:     domain.ChangeDeleted,
			Document: domain.RawDocument{URI: event.Name},
		}

	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if event.Has(fsnotify.Create) {
				c.addWatch(event.Name)
			}
			return nil
		}

		raw, err := c.read(event.Name)
		if err != nil {
			logger.Warn("Skipping %s: %v", event.Name, err)
			return nil
		}
		if raw == nil {
			return nil
		}

		changeType := domain.ChangeUpdated
		if event.Has(fsnotify.Create) {
			changeType = domain.ChangeCreated
		}
		return &domain.RawDocumentChange{Type: changeType, Document: *raw}
	}

	return nil
}

// read loads a text file. Non-text files yield nil without error.
func (c *Connector) read(path string) (*domain.RawDocument, error) {
	mimeType := detectMIMEType(path)
	if !isText(mimeType) {
		return nil, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &domain.RawDocument{
		URI:      path,
		MIMEType: mimeType,
		Content:  content,
		Metadata: map[string]any{
			MetaMIMEType: mimeType,
			MetaSize:     info.Size(),
			MetaModified: info.ModTime(),
		},
	}, nil
}

func (c *Connector) addWatch(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher == nil {
		return
	}
	if err := addRecursive(c.watcher, dir); err != nil {
		logger.Warn("Unable to watch %s: %v", dir, err)
	}
}

// hiddenPath reports whether path is hidden relative to the root.
func (c *Connector) hiddenPath(path string) bool {
	rel, err := filepath.Rel(c.rootPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return isHidden(path)
	}
	return isHidden(rel)
}

// addRecursive watches root and every visible directory below it.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if path == root {
				return watcher.Add(path)
			}
			return nil
		}
		if path != root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// detectMIMEType guesses a MIME type from the file extension.
func detectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "text/plain"
	}
	if m, ok := fallbackMIME[ext]; ok {
		return m
	}
	if m := mime.TypeByExtension(ext); m != "" {
		if i := strings.Index(m, ";"); i >= 0 {
			m = m[:i]
		}
		return strings.TrimSpace(m)
	}
	return "application/octet-stream"
}

func isText(mimeType string) bool {
	return strings.HasPrefix(mimeType, "text/")
}
