package bulletin

import (
	"errors"
	"time"

	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const defaultDaysToExpire = 30

type Service struct {
	store    *store.Store
	validate *validator.Validate
	log      *zap.Logger
	now      func() time.Time
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    st,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// List returns the park's non-expired bulletins. Expiry is evaluated against
// the current clock at read time; expired entries stay in storage.
func (s *Service) List(parkID string) ([]Bulletin, error) {
	board, err := s.readBoard(parkID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	active := make([]Bulletin, 0, len(board.Bulletins))
	for _, b := range board.Bulletins {
		if b.ExpiresAt.IsZero() || b.ExpiresAt.After(now) {
			active = append(active, b)
		}
	}
	return active, nil
}

func (s *Service) Create(parkID string, req CreateRequest, createdBy string) (Bulletin, error) {
	if err := s.validate.Struct(req); err != nil {
		return Bulletin{}, apperr.Validation("type, title and description are required")
	}

	board, err := s.readBoard(parkID)
	if err != nil {
		return Bulletin{}, err
	}

	days := req.DaysToExpire
	if days == 0 {
		days = defaultDaysToExpire
	}

	now := s.now().UTC()
	b := Bulletin{
		ID:          store.FormatBulletinID(board.LastID + 1),
		ParkID:      parkID,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		AgeRange:    req.AgeRange,
		TimeRange:   req.TimeRange,
		ContactInfo: req.ContactInfo,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		ExpiresAt:   now.AddDate(0, 0, days),
	}

	board.Bulletins = append(board.Bulletins, b)
	board.LastID++

	if err := s.writeBoard(parkID, board); err != nil {
		return Bulletin{}, err
	}
	return b, nil
}

// Update patches a bulletin's fields. Only the creator may edit; ownership is
// exact string equality on the authenticated email.
func (s *Service) Update(parkID, bulletinID, caller string, req UpdateRequest) (Bulletin, error) {
	board, err := s.readBoard(parkID)
	if err != nil {
		return Bulletin{}, err
	}

	idx := findBulletin(board.Bulletins, bulletinID)
	if idx < 0 {
		return Bulletin{}, apperr.ErrBulletinNotFound
	}
	b := &board.Bulletins[idx]
	if b.CreatedBy != caller {
		return Bulletin{}, apperr.ErrNotOwner
	}

	if req.Type != "" {
		b.Type = req.Type
	}
	if req.Title != "" {
		b.Title = req.Title
	}
	if req.Description != "" {
		b.Description = req.Description
	}
	if req.AgeRange != nil {
		b.AgeRange = req.AgeRange
	}
	if req.TimeRange != nil {
		b.TimeRange = req.TimeRange
	}
	if req.ContactInfo != nil {
		b.ContactInfo = req.ContactInfo
	}
	now := s.now().UTC()
	b.UpdatedAt = &now

	if err := s.writeBoard(parkID, board); err != nil {
		return Bulletin{}, err
	}
	return *b, nil
}

func (s *Service) Delete(parkID, bulletinID, caller string) error {
	board, err := s.readBoard(parkID)
	if err != nil {
		return err
	}

	idx := findBulletin(board.Bulletins, bulletinID)
	if idx < 0 {
		return apperr.ErrBulletinNotFound
	}
	if board.Bulletins[idx].CreatedBy != caller {
		return apperr.ErrNotOwner
	}
	board.Bulletins = append(board.Bulletins[:idx], board.Bulletins[idx+1:]...)

	return s.writeBoard(parkID, board)
}

func findBulletin(bulletins []Bulletin, id string) int {
	for i := range bulletins {
		if bulletins[i].ID == id {
			return i
		}
	}
	return -1
}

// readBoard returns an empty board when the park has no bulletins file yet.
func (s *Service) readBoard(parkID string) (Board, error) {
	board := Board{ParkID: parkID, Bulletins: []Bulletin{}}
	err := s.store.ReadJSON(store.BulletinsPath(parkID), &board)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log.Error("read bulletins", zap.String("parkId", parkID), zap.Error(err))
		return board, apperr.ErrStorage
	}
	return board, nil
}

func (s *Service) writeBoard(parkID string, board Board) error {
	if err := s.store.WriteJSON(store.BulletinsPath(parkID), board); err != nil {
		s.log.Error("write bulletins", zap.String("parkId", parkID), zap.Error(err))
		return apperr.ErrStorage
	}
	return nil
}
