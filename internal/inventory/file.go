package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/c2platform/ssoctl/models"
)

// fileInventory is the on-disk snapshot document: the whole inventory in one
// YAML or JSON file.
type fileInventory struct {
	Accounts   []models.AccountRecord `json:"accounts" yaml:"accounts"`
	Parameters map[string]string      `json:"parameters" yaml:"parameters"`
}

// FileSource serves the inventory from a local snapshot file, for offline
// runs and tests. Account document order is preserved as written.
type FileSource struct {
	FS   afero.Fs
	Path string
}

var _ Source = (*FileSource)(nil)

func NewFileSource(fs afero.Fs, path string) *FileSource {
	return &FileSource{FS: fs, Path: path}
}

func (f *FileSource) Accounts(_ context.Context) ([]models.AccountRecord, error) {
	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	return doc.Accounts, nil
}

func (f *FileSource) Parameters(_ context.Context) (map[string]string, error) {
	doc, err := f.load()
	if err != nil {
		return nil, err
	}
	if doc.Parameters == nil {
		return map[string]string{}, nil
	}
	return doc.Parameters, nil
}

func (f *FileSource) load() (*fileInventory, error) {
	fileData, err := afero.ReadFile(f.FS, f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file %s: %w", f.Path, err)
	}

	var doc fileInventory
	if err := yaml.Unmarshal(fileData, &doc); err != nil {
		if jsonErr := json.Unmarshal(fileData, &doc); jsonErr != nil {
			return nil, fmt.Errorf("failed to parse inventory file %s: %w", f.Path, err)
		}
	}
	return &doc, nil
}
