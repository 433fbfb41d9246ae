package park

import (
	"math"

	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"go.uber.org/zap"
)

// Rate folds one new rating into the park's running average. The stored
// average stays the count-weighted mean of every rating ever submitted,
// rounded to one decimal.
func (s *Service) Rate(id string, rating float64) (Park, error) {
	if rating < 1 || rating > 5 {
		return Park{}, apperr.ErrInvalidRating
	}

	p, err := s.Get(id)
	if err != nil {
		return Park{}, err
	}

	total := p.Rating.Average * float64(p.Rating.Count)
	count := p.Rating.Count + 1
	p.Rating.Average = math.Round((total+rating)/float64(count)*10) / 10
	p.Rating.Count = count
	p.UpdatedAt = s.now().UTC()

	if err := s.store.WriteJSON(store.ParkPath(id), p); err != nil {
		s.log.Error("write park", zap.String("id", id), zap.Error(err))
		return Park{}, apperr.ErrStorage
	}
	return p, nil
}
