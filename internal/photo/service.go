package photo

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"backend-parkhub/internal/park"
	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxUploadBytes = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Service struct {
	store *store.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, log: log, now: time.Now}
}

type Upload struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// SaveMain stores the uploaded file and points the park's main photo at it.
// The file write and the park update are two sequential steps with no
// transaction between them: a crash in between can orphan a file.
func (s *Service) SaveMain(parkID string, file *multipart.FileHeader) (Upload, error) {
	p, err := s.getPark(parkID)
	if err != nil {
		return Upload{}, err
	}

	filename, err := s.storeFile(parkID, file)
	if err != nil {
		return Upload{}, err
	}

	p.Photos.Main = &filename
	p.UpdatedAt = s.now().UTC()
	if err := s.writePark(parkID, p); err != nil {
		return Upload{}, err
	}
	return Upload{Filename: filename, URL: publicURL(parkID, filename)}, nil
}

// SaveGallery stores the uploaded file and appends it to the park's gallery.
func (s *Service) SaveGallery(parkID string, file *multipart.FileHeader) (Upload, error) {
	p, err := s.getPark(parkID)
	if err != nil {
		return Upload{}, err
	}

	filename, err := s.storeFile(parkID, file)
	if err != nil {
		return Upload{}, err
	}

	if p.Photos.Gallery == nil {
		p.Photos.Gallery = []string{}
	}
	p.Photos.Gallery = append(p.Photos.Gallery, filename)
	p.UpdatedAt = s.now().UTC()
	if err := s.writePark(parkID, p); err != nil {
		return Upload{}, err
	}
	return Upload{Filename: filename, URL: publicURL(parkID, filename)}, nil
}

// DeleteGallery splices the photo out of the gallery and removes the file.
// A failing file removal is logged and ignored; the record is authoritative.
func (s *Service) DeleteGallery(parkID, filename string) error {
	p, err := s.getPark(parkID)
	if err != nil {
		return err
	}

	idx := -1
	for i, name := range p.Photos.Gallery {
		if name == filename {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperr.ErrPhotoNotFound
	}
	p.Photos.Gallery = append(p.Photos.Gallery[:idx], p.Photos.Gallery[idx+1:]...)
	p.UpdatedAt = s.now().UTC()

	if err := s.writePark(parkID, p); err != nil {
		return err
	}
	if err := s.store.RemoveUpload(parkID, filename); err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log.Warn("remove photo file", zap.String("parkId", parkID), zap.String("filename", filename), zap.Error(err))
	}
	return nil
}

// Gallery is the park's photo set as public URLs.
type Gallery struct {
	Main    *string  `json:"main"`
	Gallery []string `json:"gallery"`
}

func (s *Service) List(parkID string) (Gallery, error) {
	p, err := s.getPark(parkID)
	if err != nil {
		return Gallery{}, err
	}

	g := Gallery{Gallery: make([]string, 0, len(p.Photos.Gallery))}
	if p.Photos.Main != nil {
		url := publicURL(parkID, *p.Photos.Main)
		g.Main = &url
	}
	for _, name := range p.Photos.Gallery {
		g.Gallery = append(g.Gallery, publicURL(parkID, name))
	}
	return g, nil
}

// storeFile validates the upload and streams it to the park's photo dir
// under a fresh uuid name, keeping the original extension.
func (s *Service) storeFile(parkID string, file *multipart.FileHeader) (string, error) {
	if file.Size > maxUploadBytes {
		return "", apperr.Validation("photo exceeds the 5MB limit")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] || !allowedMimeTypes[file.Header.Get("Content-Type")] {
		return "", apperr.Validation("only JPEG, PNG, GIF and WebP images are allowed")
	}

	src, err := file.Open()
	if err != nil {
		return "", apperr.Validation("unreadable upload")
	}
	defer src.Close()

	filename := uuid.NewString() + ext
	if err := s.store.SaveUpload(parkID, filename, src); err != nil {
		s.log.Error("save upload", zap.String("parkId", parkID), zap.Error(err))
		return "", apperr.ErrStorage
	}
	return filename, nil
}

func (s *Service) getPark(parkID string) (park.Park, error) {
	var p park.Park
	if err := s.store.ReadJSON(store.ParkPath(parkID), &p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return park.Park{}, apperr.ErrParkNotFound
		}
		s.log.Error("read park", zap.String("id", parkID), zap.Error(err))
		return park.Park{}, apperr.ErrStorage
	}
	return p, nil
}

func (s *Service) writePark(parkID string, p park.Park) error {
	if err := s.store.WriteJSON(store.ParkPath(parkID), p); err != nil {
		s.log.Error("write park", zap.String("id", parkID), zap.Error(err))
		return apperr.ErrStorage
	}
	return nil
}

func publicURL(parkID, filename string) string {
	return "/photos/" + parkID + "/" + filename
}
