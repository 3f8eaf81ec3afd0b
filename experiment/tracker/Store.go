package tracker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata"
)

// Store persists raw tracker data under string keys
type Store interface {
	Save(key string, data []byte) error

	// Load returns the data saved under key, or nil if no data exists
	Load(key string) ([]byte, error)
}

// FileStore saves data to files in a single directory, one file per
// key
type FileStore struct {
	dir string
}

// NewFileStore returns a new FileStore saving files in dir, creating
// dir if needed
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("newFileStore: could not create %v: %v",
			dir, err)
	}
	return &FileStore{dir}, nil
}

// Save saves data to the file named key
func (f *FileStore) Save(key string, data []byte) error {
	if err := os.WriteFile(f.path(key), data, 0644); err != nil {
		return fmt.Errorf("save: %v", err)
	}
	return nil
}

// Load loads the data in the file named key
func (f *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("load: %v", err)
	}
	return data, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".bin")
}

// GDataStore saves data in the per-user application data directory
// managed by gdata
type GDataStore struct {
	manager *gdata.Manager
}

// NewGDataStore opens the application data directory of appName
func NewGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("newGDataStore: %v", err)
	}
	return &GDataStore{m}, nil
}

// Save saves data as the item named key
func (g *GDataStore) Save(key string, data []byte) error {
	return g.manager.SaveItem(key, data)
}

// Load loads the item named key
func (g *GDataStore) Load(key string) ([]byte, error) {
	return g.manager.LoadItem(key)
}
