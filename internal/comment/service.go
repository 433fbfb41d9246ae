package comment

import (
	"errors"
	"sort"
	"time"

	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"github.com/google/uuid"
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

// List returns the park's comments newest first. Ordering happens at read
// time; the stored document keeps insertion order.
func (s *Service) List(parkID string) (Listing, error) {
	thread, err := s.readThread(parkID)
	if err != nil {
		return Listing{}, err
	}

	sorted := make([]Comment, len(thread.Comments))
	copy(sorted, thread.Comments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return Listing{ParkID: parkID, Total: len(sorted), Comments: sorted}, nil
}

func (s *Service) Create(parkID string, req CreateRequest) (Comment, error) {
	if req.Author == "" || req.Text == "" {
		return Comment{}, apperr.Validation("author and text are required")
	}

	thread, err := s.readThread(parkID)
	if err != nil {
		return Comment{}, err
	}

	now := s.now().UTC()
	c := Comment{
		ID:        uuid.NewString(),
		Author:    req.Author,
		Text:      req.Text,
		Rating:    req.Rating,
		Likes:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	thread.Comments = append(thread.Comments, c)

	if err := s.writeThread(parkID, thread); err != nil {
		return Comment{}, err
	}
	return c, nil
}

func (s *Service) Update(parkID, commentID string, req UpdateRequest) (Comment, error) {
	return s.mutate(parkID, commentID, func(c *Comment) {
		if req.Text != "" {
			c.Text = req.Text
		}
		if req.Rating != nil {
			c.Rating = req.Rating
		}
		c.UpdatedAt = s.now().UTC()
	})
}

func (s *Service) Delete(parkID, commentID string) error {
	thread, err := s.readThread(parkID)
	if err != nil {
		return err
	}

	idx := findComment(thread.Comments, commentID)
	if idx < 0 {
		return apperr.ErrCommentNotFound
	}
	thread.Comments = append(thread.Comments[:idx], thread.Comments[idx+1:]...)

	return s.writeThread(parkID, thread)
}

func (s *Service) Like(parkID, commentID string) (Comment, error) {
	return s.mutate(parkID, commentID, func(c *Comment) {
		c.Likes++
	})
}

// Unlike decrements with a floor of zero; unliking an unliked comment is a
// no-op, not an error.
func (s *Service) Unlike(parkID, commentID string) (Comment, error) {
	return s.mutate(parkID, commentID, func(c *Comment) {
		if c.Likes > 0 {
			c.Likes--
		}
	})
}

func (s *Service) mutate(parkID, commentID string, apply func(*Comment)) (Comment, error) {
	thread, err := s.readThread(parkID)
	if err != nil {
		return Comment{}, err
	}

	idx := findComment(thread.Comments, commentID)
	if idx < 0 {
		return Comment{}, apperr.ErrCommentNotFound
	}
	apply(&thread.Comments[idx])

	if err := s.writeThread(parkID, thread); err != nil {
		return Comment{}, err
	}
	return thread.Comments[idx], nil
}

func findComment(comments []Comment, id string) int {
	for i := range comments {
		if comments[i].ID == id {
			return i
		}
	}
	return -1
}

// readThread returns an empty thread when the park has no comments file yet.
func (s *Service) readThread(parkID string) (Thread, error) {
	thread := Thread{ParkID: parkID, Comments: []Comment{}}
	err := s.store.ReadJSON(store.CommentsPath(parkID), &thread)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log.Error("read comments", zap.String("parkId", parkID), zap.Error(err))
		return thread, apperr.ErrStorage
	}
	return thread, nil
}

func (s *Service) writeThread(parkID string, thread Thread) error {
	if err := s.store.WriteJSON(store.CommentsPath(parkID), thread); err != nil {
		s.log.Error("write comments", zap.String("parkId", parkID), zap.Error(err))
		return apperr.ErrStorage
	}
	return nil
}
