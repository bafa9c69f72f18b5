package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	snapshotFile = "latest.json"
	historyFile  = "history.jsonl"
)

// FileStore persists runs under a single output directory: a snapshot of the
// most recent run plus an append-only history log with one JSON object per
// line. The history log is unbounded; rotation is left to the caller.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// SnapshotPath returns the path of the snapshot written by SaveSnapshot.
func (s *FileStore) SnapshotPath() string {
	return filepath.Join(s.dir, snapshotFile)
}

// HistoryPath returns the path of the append-only history log.
func (s *FileStore) HistoryPath() string {
	return filepath.Join(s.dir, historyFile)
}

// SaveSnapshot writes the run to latest.json, replacing any previous snapshot.
func (s *FileStore) SaveSnapshot(run Run) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}
	return os.WriteFile(s.SnapshotPath(), data, 0644)
}

// AppendHistory appends the run as a single compact JSON line to history.jsonl.
func (s *FileStore) AppendHistory(run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	f, err := os.OpenFile(s.HistoryPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append to history log: %w", err)
	}
	return nil
}

// LoadSnapshot reads back the latest snapshot. It returns nil if no snapshot
// has been written yet.
func (s *FileStore) LoadSnapshot() (*Run, error) {
	data, err := os.ReadFile(s.SnapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &run, nil
}
