package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"HairJourneyCompanion/utils"
)

// fileState 状态文件的磁盘布局
type fileState struct {
	CompletedOn string `json:"completed_on,omitempty"`
	DismissedOn string `json:"dismissed_on,omitempty"`
}

// FileStore 基于单个 JSON 文件的 Store 实现，默认后端。
// 写入走临时文件 + rename，避免半写状态
type FileStore struct {
	path  string
	loc   *time.Location
	mu    sync.Mutex
	state fileState
	now   func() time.Time
}

func NewFileStore(path string, loc *time.Location) (*FileStore, error) {
	s := &FileStore{
		path: path,
		loc:  loc,
		now:  time.Now,
	}

	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&s.state); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func (s *FileStore) CompletedToday(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CompletedOn == s.today(), nil
}

func (s *FileStore) DismissedToday(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DismissedOn == s.today(), nil
}

func (s *FileStore) RecordCompleted(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CompletedOn = s.today()
	return s.save()
}

func (s *FileStore) RecordDismissed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.DismissedOn = s.today()
	return s.save()
}

func (s *FileStore) Days(ctx context.Context) (string, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CompletedOn, s.state.DismissedOn, nil
}

func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) today() string {
	return utils.DayKey(s.now(), s.loc)
}

// save 调用方必须持有 s.mu
func (s *FileStore) save() error {
	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.state); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, s.path)
}

var _ Store = (*FileStore)(nil)
