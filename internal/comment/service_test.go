package comment

import (
	"errors"
	"testing"
	"time"

	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"github.com/spf13/afero"
)

func newTestService() *Service {
	return NewService(store.New(afero.NewMemMapFs(), "data", nil), nil)
}

func TestCreateAndListNewestFirst(t *testing.T) {
	svc := newTestService()

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	if _, err := svc.Create("park_001", CreateRequest{Author: "Ana", Text: "first"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	clock = clock.Add(time.Hour)
	if _, err := svc.Create("park_001", CreateRequest{Author: "Ben", Text: "second"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	listing, err := svc.List("park_001")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if listing.Total != 2 {
		t.Fatalf("expected 2 comments, got %d", listing.Total)
	}
	if listing.Comments[0].Text != "second" || listing.Comments[1].Text != "first" {
		t.Fatalf("expected newest first, got %+v", listing.Comments)
	}
	if listing.Comments[0].Likes != 0 {
		t.Fatalf("expected zero likes on new comment")
	}
}

func TestListEmptyParkIsNotAnError(t *testing.T) {
	svc := newTestService()
	listing, err := svc.List("park_without_comments")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if listing.Total != 0 || listing.ParkID != "park_without_comments" {
		t.Fatalf("expected empty listing, got %+v", listing)
	}
}

func TestCreateRequiresAuthorAndText(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Create("park_001", CreateRequest{Author: "Ana"}); err == nil {
		t.Fatalf("expected validation error without text")
	}
	if _, err := svc.Create("park_001", CreateRequest{Text: "hi"}); err == nil {
		t.Fatalf("expected validation error without author")
	}
}

func TestLikeUnlikeFloor(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create("park_001", CreateRequest{Author: "Ana", Text: "nice park"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	liked, err := svc.Like("park_001", created.ID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if liked.Likes != 1 {
		t.Fatalf("expected 1 like, got %d", liked.Likes)
	}

	unliked, err := svc.Unlike("park_001", created.ID)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if unliked.Likes != 0 {
		t.Fatalf("expected 0 likes, got %d", unliked.Likes)
	}

	// unliking at zero stays at zero
	again, err := svc.Unlike("park_001", created.ID)
	if err != nil {
		t.Fatalf("unlike at zero: %v", err)
	}
	if again.Likes != 0 {
		t.Fatalf("expected likes to stay 0, got %d", again.Likes)
	}
}

func TestUpdatePatchesTextAndRating(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create("park_001", CreateRequest{Author: "Ana", Text: "ok"})

	rating := 4.0
	updated, err := svc.Update("park_001", created.ID, UpdateRequest{Text: "better", Rating: &rating})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Text != "better" || updated.Rating == nil || *updated.Rating != 4 {
		t.Fatalf("unexpected update: %+v", updated)
	}
	if updated.Author != "Ana" {
		t.Fatalf("author must not change")
	}

	// empty patch leaves text alone
	updated, err = svc.Update("park_001", created.ID, UpdateRequest{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Text != "better" {
		t.Fatalf("expected text preserved, got %q", updated.Text)
	}
}

func TestDeleteComment(t *testing.T) {
	svc := newTestService()
	created, _ := svc.Create("park_001", CreateRequest{Author: "Ana", Text: "bye"})

	if err := svc.Delete("park_001", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	listing, _ := svc.List("park_001")
	if listing.Total != 0 {
		t.Fatalf("expected empty thread after delete")
	}
	if err := svc.Delete("park_001", created.ID); !errors.Is(err, apperr.ErrCommentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMutateUnknownComment(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Like("park_001", "nope"); !errors.Is(err, apperr.ErrCommentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
