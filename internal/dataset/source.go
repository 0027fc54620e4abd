package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Raw holds the three datasets exactly as stored, before schema mapping.
type Raw struct {
	Tiers    []map[string]any
	LevelOne []map[string]any
	LevelTwo []map[string]any
}

// Source supplies the raw datasets. Implementations must treat a missing or
// malformed dataset as a hard failure; lookup-time gaps are handled higher up.
type Source interface {
	Load(ctx context.Context) (*Raw, error)
}

const (
	tiersFile    = "responsibility_levels.json"
	levelOneFile = "level_one_questions.json"
	levelTwoFile = "level_two_questions.json"
)

// FileSource reads the datasets from JSON files in a directory.
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (f *FileSource) Load(ctx context.Context) (*Raw, error) {
	raw := &Raw{}
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return f.readJSON(tiersFile, &raw.Tiers) })
	g.Go(func() error { return f.readJSON(levelOneFile, &raw.LevelOne) })
	g.Go(func() error { return f.readJSON(levelTwoFile, &raw.LevelTwo) })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return raw, nil
}

func (f *FileSource) readJSON(name string, out *[]map[string]any) error {
	data, err := os.ReadFile(filepath.Join(f.Dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
