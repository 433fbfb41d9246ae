package park

import (
	"encoding/json"
	"errors"
	"time"

	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"go.uber.org/zap"
)

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

// List loads every indexed park from disk and runs the query pipeline.
func (s *Service) List(params QueryParams) (Result, error) {
	parks, err := s.loadAll()
	if err != nil {
		return Result{}, err
	}
	return Query(parks, params), nil
}

func (s *Service) Get(id string) (Park, error) {
	var p Park
	if err := s.store.ReadJSON(store.ParkPath(id), &p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Park{}, apperr.ErrParkNotFound
		}
		s.log.Error("read park", zap.String("id", id), zap.Error(err))
		return Park{}, apperr.ErrStorage
	}
	return p, nil
}

// Create allocates the next sequential id, fills defaults for any fields the
// caller omitted and appends the id to the index.
func (s *Service) Create(req CreateRequest, createdBy string) (Park, error) {
	id, err := s.store.NextParkID()
	if err != nil {
		s.log.Error("allocate park id", zap.Error(err))
		return Park{}, apperr.ErrStorage
	}

	now := s.now().UTC()
	p := Park{
		ID:             id,
		Name:           req.Name,
		Location:       req.Location,
		Description:    req.Description,
		Hours:          Hours{AlwaysOpen: true, Schedule: "24/7"},
		Rating:         Rating{},
		Photos:         Photos{Gallery: []string{}},
		Elements:       map[string]bool{},
		CustomElements: []string{},
		Amenities:      map[string]bool{},
		Policies:       map[string]bool{},
		Surface:        "unknown",
		Condition:      "good",
		WeatherNotes:   map[string]any{},
		AgeRange:       "0-12",
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      createdBy,
	}
	if req.Hours != nil {
		p.Hours = *req.Hours
	}
	if req.Photos != nil {
		p.Photos = *req.Photos
	}
	if req.Elements != nil {
		p.Elements = req.Elements
	}
	if req.CustomElements != nil {
		p.CustomElements = req.CustomElements
	}
	if req.Amenities != nil {
		p.Amenities = req.Amenities
	}
	if req.Policies != nil {
		p.Policies = req.Policies
	}
	if req.Surface != "" {
		p.Surface = req.Surface
	}
	if req.Condition != "" {
		p.Condition = req.Condition
	}
	if req.WeatherNotes != nil {
		p.WeatherNotes = req.WeatherNotes
	}
	if req.AgeRange != "" {
		p.AgeRange = req.AgeRange
	}

	if err := s.store.WriteJSON(store.ParkPath(id), p); err != nil {
		s.log.Error("write park", zap.String("id", id), zap.Error(err))
		return Park{}, apperr.ErrStorage
	}

	idx, err := s.store.ReadIndex()
	if err != nil {
		s.log.Error("read index", zap.Error(err))
		return Park{}, apperr.ErrStorage
	}
	idx.Parks = append(idx.Parks, id)
	idx.LastID++
	if err := s.store.WriteIndex(idx); err != nil {
		s.log.Error("write index", zap.Error(err))
		return Park{}, apperr.ErrStorage
	}

	return p, nil
}

// Update applies a shallow merge of the request body over the stored
// document: top-level fields in the patch replace the stored ones wholesale,
// with id and created_at pinned and updated_at refreshed.
func (s *Service) Update(id string, patch map[string]any) (Park, error) {
	existing, err := s.Get(id)
	if err != nil {
		return Park{}, err
	}

	raw, err := json.Marshal(existing)
	if err != nil {
		return Park{}, apperr.ErrStorage
	}
	doc := map[string]any{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Park{}, apperr.ErrStorage
	}
	for k, v := range patch {
		doc[k] = v
	}
	doc["id"] = existing.ID
	doc["created_at"] = existing.CreatedAt
	doc["updated_at"] = s.now().UTC()

	merged, err := json.Marshal(doc)
	if err != nil {
		return Park{}, apperr.ErrStorage
	}
	var updated Park
	if err := json.Unmarshal(merged, &updated); err != nil {
		return Park{}, apperr.Validation("park fields have the wrong shape")
	}

	if err := s.store.WriteJSON(store.ParkPath(id), updated); err != nil {
		s.log.Error("write park", zap.String("id", id), zap.Error(err))
		return Park{}, apperr.ErrStorage
	}
	return updated, nil
}

// Delete removes the park file and splices its id out of the index.
func (s *Service) Delete(id string) error {
	if err := s.store.Remove(store.ParkPath(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.ErrParkNotFound
		}
		s.log.Error("delete park", zap.String("id", id), zap.Error(err))
		return apperr.ErrStorage
	}

	idx, err := s.store.ReadIndex()
	if err != nil {
		s.log.Error("read index", zap.Error(err))
		return apperr.ErrStorage
	}
	kept := idx.Parks[:0]
	for _, pid := range idx.Parks {
		if pid != id {
			kept = append(kept, pid)
		}
	}
	idx.Parks = kept
	if err := s.store.WriteIndex(idx); err != nil {
		s.log.Error("write index", zap.Error(err))
		return apperr.ErrStorage
	}
	return nil
}

// loadAll reads every park named in the index, skipping unreadable files so
// one corrupt document does not take the whole listing down.
func (s *Service) loadAll() ([]Park, error) {
	idx, err := s.store.ReadIndex()
	if err != nil {
		s.log.Error("read index", zap.Error(err))
		return nil, apperr.ErrStorage
	}

	parks := make([]Park, 0, len(idx.Parks))
	for _, id := range idx.Parks {
		var p Park
		if err := s.store.ReadJSON(store.ParkPath(id), &p); err != nil {
			s.log.Warn("skipping unreadable park", zap.String("id", id), zap.Error(err))
			continue
		}
		parks = append(parks, p)
	}
	return parks, nil
}
