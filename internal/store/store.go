package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a requested document file does not exist.
var ErrNotFound = errors.New("document not found")

// Store persists one JSON document per file under a data directory. There is
// no locking and no write coalescing: every write is a full-document rewrite
// and concurrent writers to the same file are last-write-wins. Id allocation
// reads then writes a counter non-atomically. Acceptable for the intended
// low-concurrency deployment; do not use behind a busy multi-writer workload.
type Store struct {
	fs  afero.Fs
	dir string
	log *zap.Logger
}

func New(filesystem afero.Fs, dataDir string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{fs: filesystem, dir: dataDir, log: log}
}

// Index tracks the set of existing park ids and the last allocated numeric id.
type Index struct {
	Parks  []string `json:"parks"`
	LastID int      `json:"lastId"`
}

// Document paths, relative to the data directory.
func ParkPath(parkID string) string {
	return path.Join("parks", parkID+".json")
}

func CommentsPath(parkID string) string {
	return path.Join("comments", parkID+"_comments.json")
}

func BulletinsPath(parkID string) string {
	return path.Join("bulletins", parkID+"_bulletins.json")
}

func PhotoPath(parkID, filename string) string {
	return path.Join("photos", parkID, filename)
}

const (
	indexPath = "index.json"
	usersPath = "users.json"
)

func UsersPath() string { return usersPath }

// EnsureLayout creates the base directories and an empty index on first run.
func (s *Store) EnsureLayout() error {
	for _, d := range []string{"parks", "comments", "bulletins", "photos"} {
		if err := s.fs.MkdirAll(path.Join(s.dir, d), 0o755); err != nil {
			return err
		}
	}
	if _, err := s.fs.Stat(path.Join(s.dir, indexPath)); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := s.WriteJSON(indexPath, Index{Parks: []string{}}); err != nil {
			return err
		}
		s.log.Info("created park index", zap.String("dir", s.dir))
	}
	return nil
}

// ReadJSON loads one document into v. A missing file is ErrNotFound; callers
// that treat absence as an empty collection build their default from it.
func (s *Store) ReadJSON(name string, v any) error {
	data, err := afero.ReadFile(s.fs, path.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// WriteJSON overwrites one document, creating parent directories lazily.
func (s *Store) WriteJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	full := path.Join(s.dir, name)
	if err := s.fs.MkdirAll(path.Dir(full), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(s.fs, full, data, 0o644)
}

// Remove deletes one document file.
func (s *Store) Remove(name string) error {
	err := s.fs.Remove(path.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// ReadIndex returns the park index, or an empty one when it does not exist.
func (s *Store) ReadIndex() (Index, error) {
	idx := Index{Parks: []string{}}
	err := s.ReadJSON(indexPath, &idx)
	if errors.Is(err, ErrNotFound) {
		return idx, nil
	}
	return idx, err
}

func (s *Store) WriteIndex(idx Index) error {
	return s.WriteJSON(indexPath, idx)
}

// NextParkID derives the next sequential park id from the index counter.
// Zero-padded to 3 digits for compatibility with existing stored data.
func (s *Store) NextParkID() (string, error) {
	idx, err := s.ReadIndex()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("park_%03d", idx.LastID+1), nil
}

func FormatBulletinID(n int) string {
	return fmt.Sprintf("bulletin_%03d", n)
}

// SaveUpload streams an uploaded file into a park's photo directory.
func (s *Store) SaveUpload(parkID, filename string, r io.Reader) error {
	full := path.Join(s.dir, PhotoPath(parkID, filename))
	if err := s.fs.MkdirAll(path.Dir(full), 0o755); err != nil {
		return err
	}
	f, err := s.fs.Create(full)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// RemoveUpload deletes a stored photo file.
func (s *Store) RemoveUpload(parkID, filename string) error {
	err := s.fs.Remove(path.Join(s.dir, PhotoPath(parkID, filename)))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// PhotoFS exposes the photo tree for public static serving.
func (s *Store) PhotoFS() http.FileSystem {
	return afero.NewHttpFs(afero.NewBasePathFs(s.fs, path.Join(s.dir, "photos")))
}
