package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/osse101/GachaTrip_Go/internal/logger"
	"github.com/osse101/GachaTrip_Go/internal/utils"
)

// FileKV keeps all values in a single JSON document on disk.
// Every Set rewrites the document.
type FileKV struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileKV loads path if it exists. An unreadable document is logged and replaced on the next Set.
func NewFileKV(ctx context.Context, path string) (*FileKV, error) {
	if path == "" {
		return nil, errors.New(ErrMsgPathRequired)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	kv := &FileKV{path: path, data: make(map[string]string)}
	if err := utils.LoadJSON(path, &kv.data); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.FromContext(ctx).Warn(ErrMsgCorruptKVFile, "path", path, "error", err)
		}
		kv.data = make(map[string]string)
	}
	return kv, nil
}

func (f *FileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *FileKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data[key]
	f.data[key] = value
	if err := utils.SaveJSON(f.path, f.data); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return fmt.Errorf("%s %s: %w", ErrMsgSetFailed, key, err)
	}
	return nil
}

func (f *FileKV) Close() error {
	return nil
}
