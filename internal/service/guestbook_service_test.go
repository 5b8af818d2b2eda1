package service

import (
	"errors"
	"testing"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
)

func newGuestbookFixture(t *testing.T) (*GuestbookService, *memEventStore, *memMediaStore, *memGuestStore) {
	t.Helper()
	events := newMemEventStore()
	media := newMemMediaStore()
	guests := newMemGuestStore()
	svc := NewGuestbookService(newMemGuestbookStore(), &memReactionStore{}, events, media, guests)
	return svc, events, media, guests
}

func TestAddAndListMessages(t *testing.T) {
	svc, events, _, _ := newGuestbookFixture(t)
	event, _ := events.Create(&models.Event{HostID: 1})

	_, err := svc.AddMessage(event.ID, nil, &models.GuestbookMessageRequest{
		GuestName: "Dana",
		Message:   "Congrats!",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	messages, err := svc.GetMessages(event.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 1 || messages[0].Message != "Congrats!" {
		t.Errorf("messages = %+v", messages)
	}

	// Olmayan etkinliğe mesaj bırakılamaz
	if _, err := svc.AddMessage(999, nil, &models.GuestbookMessageRequest{GuestName: "X", Message: "Y"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReactToMessage(t *testing.T) {
	svc, events, _, _ := newGuestbookFixture(t)
	event, _ := events.Create(&models.Event{HostID: 1})

	entry, _ := svc.AddMessage(event.ID, nil, &models.GuestbookMessageRequest{GuestName: "E", Message: "Hi"})

	updated, err := svc.ReactToMessage(entry.ID, "love")
	if err != nil {
		t.Fatalf("react: %v", err)
	}
	if updated.LoveCount != 1 {
		t.Errorf("love count = %d, want 1", updated.LoveCount)
	}

	if _, err := svc.ReactToMessage(entry.ID, "angry"); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestReactToMedia(t *testing.T) {
	svc, events, media, guests := newGuestbookFixture(t)
	event, _ := events.Create(&models.Event{HostID: 1})

	m := &models.Media{EventID: event.ID, BlobKey: "k"}
	media.Create(m)
	guest := &models.Guest{EventID: event.ID, GuestToken: "tok"}
	guests.Create(guest)

	reaction, err := svc.ReactToMedia(&models.ReactionRequest{
		MediaID: m.ID,
		GuestID: guest.ID,
		Type:    models.ReactionLike,
	})
	if err != nil {
		t.Fatalf("react: %v", err)
	}
	if reaction.Type != models.ReactionLike {
		t.Errorf("type = %q, want like", reaction.Type)
	}

	// Yorum metinsiz olamaz
	if _, err := svc.ReactToMedia(&models.ReactionRequest{
		MediaID: m.ID,
		GuestID: guest.ID,
		Type:    models.ReactionComment,
	}); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	// Başka etkinliğin misafiri tepki veremez
	stranger := &models.Guest{EventID: 999, GuestToken: "other"}
	guests.Create(stranger)
	if _, err := svc.ReactToMedia(&models.ReactionRequest{
		MediaID: m.ID,
		GuestID: stranger.ID,
		Type:    models.ReactionLike,
	}); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	reactions, err := svc.GetMediaReactions(m.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reactions) != 1 {
		t.Errorf("reactions = %d, want 1", len(reactions))
	}
}
