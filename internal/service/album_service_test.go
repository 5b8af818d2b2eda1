package service

import (
	"errors"
	"testing"
	"time"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
)

func TestBucketForMime(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/jpeg", models.AlbumGroupPhotos},
		{"image/png", models.AlbumGroupPhotos},
		{"video/mp4", models.AlbumVideos},
		{"video/quicktime", models.AlbumVideos},
		{"application/pdf", models.AlbumCandidMoments},
		{"", models.AlbumCandidMoments},
	}

	for _, tt := range tests {
		if got := bucketForMime(tt.mime); got != tt.want {
			t.Errorf("bucketForMime(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestSeedDefaultAlbums(t *testing.T) {
	events := newMemEventStore()
	albums := newMemAlbumStore()
	svc := NewAlbumService(albums, events, newMemMediaStore())

	event, _ := events.Create(&models.Event{HostID: 1, Name: "Party"})

	if err := svc.SeedDefaultAlbums(event.ID); err != nil {
		t.Fatalf("seed: %v", err)
	}

	seeded, _ := albums.GetByEventID(event.ID)
	if len(seeded) != len(models.DefaultAlbums) {
		t.Fatalf("seeded %d albums, want %d", len(seeded), len(models.DefaultAlbums))
	}
	for _, a := range seeded {
		if !a.IsAutoGenerated {
			t.Errorf("album %q should be marked auto-generated", a.Name)
		}
	}

	// Tekrar tohumlamak kopya üretmez
	if err := svc.SeedDefaultAlbums(event.ID); err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	seeded, _ = albums.GetByEventID(event.ID)
	if len(seeded) != len(models.DefaultAlbums) {
		t.Errorf("re-seed created duplicates: %d albums", len(seeded))
	}
}

func TestResolveForMimeIsIdempotent(t *testing.T) {
	events := newMemEventStore()
	albums := newMemAlbumStore()
	svc := NewAlbumService(albums, events, newMemMediaStore())

	event, _ := events.Create(&models.Event{HostID: 1})

	first, err := svc.ResolveForMime(event.ID, "image/jpeg")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	second, err := svc.ResolveForMime(event.ID, "image/png")
	if err != nil {
		t.Fatalf("resolve again: %v", err)
	}
	if first.ID != second.ID {
		t.Error("same bucket must resolve to the same album")
	}
}

func TestValidateAlbumRejectsForeignEvent(t *testing.T) {
	events := newMemEventStore()
	albums := newMemAlbumStore()
	svc := NewAlbumService(albums, events, newMemMediaStore())

	event, _ := events.Create(&models.Event{HostID: 1})
	other, _ := events.Create(&models.Event{HostID: 2})
	album, _ := albums.Create(&models.Album{EventID: other.ID, Name: "Other"})

	if _, err := svc.ValidateAlbum(event.ID, album.ID); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	ok, err := svc.ValidateAlbum(other.ID, album.ID)
	if err != nil {
		t.Fatalf("own album: %v", err)
	}
	if ok.ID != album.ID {
		t.Error("own album must validate")
	}
}

func TestAssignByEventDate(t *testing.T) {
	events := newMemEventStore()
	albums := newMemAlbumStore()
	media := newMemMediaStore()
	svc := NewAlbumService(albums, events, media)

	eventDate := time.Now()
	event, _ := events.Create(&models.Event{HostID: 1, Date: eventDate})

	setup := func(createdAt time.Time) *models.Media {
		m := &models.Media{
			EventID:   event.ID,
			Type:      models.MediaTypePhoto,
			FileName:  "x.jpg",
			MimeType:  "image/jpeg",
			BlobKey:   createdAt.String(),
			VisibleAt: createdAt,
		}
		media.Create(m)
		media.mu.Lock()
		media.media[m.ID].CreatedAt = createdAt
		media.mu.Unlock()
		return m
	}

	before := setup(eventDate.Add(-2 * time.Hour))
	after := setup(eventDate.Add(2 * time.Hour))

	moved, err := svc.AssignByEventDate(before.ID, 1)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	album, _ := albums.GetByID(*moved.AlbumID)
	if album.Name != models.AlbumBehindScenes {
		t.Errorf("pre-event media landed in %q, want %q", album.Name, models.AlbumBehindScenes)
	}

	moved, err = svc.AssignByEventDate(after.ID, 1)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	album, _ = albums.GetByID(*moved.AlbumID)
	if album.Name != models.AlbumMainEvent {
		t.Errorf("post-event media landed in %q, want %q", album.Name, models.AlbumMainEvent)
	}

	// Sadece host tetikleyebilir
	if _, err := svc.AssignByEventDate(before.ID, 42); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestAssignByEventDateAdjustsCounters(t *testing.T) {
	events := newMemEventStore()
	albums := newMemAlbumStore()
	media := newMemMediaStore()
	svc := NewAlbumService(albums, events, media)

	event, _ := events.Create(&models.Event{HostID: 1, Date: time.Now().Add(-time.Hour)})
	source, _ := albums.Create(&models.Album{EventID: event.ID, Name: "Source", MediaCount: 1})

	m := &models.Media{
		EventID: event.ID,
		AlbumID: &source.ID,
		BlobKey: "k",
	}
	media.Create(m)

	moved, err := svc.AssignByEventDate(m.ID, 1)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}

	oldAlbum, _ := albums.GetByID(source.ID)
	if oldAlbum.MediaCount != 0 {
		t.Errorf("source count = %d, want 0", oldAlbum.MediaCount)
	}
	newAlbum, _ := albums.GetByID(*moved.AlbumID)
	if newAlbum.MediaCount != 1 {
		t.Errorf("target count = %d, want 1", newAlbum.MediaCount)
	}
}

func TestGetAlbumMediaFiltersForGuests(t *testing.T) {
	events := newMemEventStore()
	albums := newMemAlbumStore()
	media := newMemMediaStore()
	svc := NewAlbumService(albums, events, media)

	event, _ := events.Create(&models.Event{HostID: 1, Visibility: models.VisibilityPublic})
	album, _ := albums.Create(&models.Album{EventID: event.ID, Name: "Shared"})

	addMedia := func(visibleAt time.Time) {
		media.Create(&models.Media{
			EventID:   event.ID,
			AlbumID:   &album.ID,
			BlobKey:   visibleAt.String(),
			VisibleAt: visibleAt,
		})
	}
	addMedia(time.Now().Add(-time.Hour))
	addMedia(time.Now().Add(48 * time.Hour))

	// Misafir planlanmış medyayı albüm listesinde de görmez
	guestView, err := svc.GetAlbumMedia(album.ID, 0)
	if err != nil {
		t.Fatalf("guest listing: %v", err)
	}
	if len(guestView) != 1 {
		t.Errorf("guest sees %d items, want 1", len(guestView))
	}

	// Host hepsini görür
	hostView, err := svc.GetAlbumMedia(album.ID, 1)
	if err != nil {
		t.Fatalf("host listing: %v", err)
	}
	if len(hostView) != 2 {
		t.Errorf("host sees %d items, want 2", len(hostView))
	}

	// Başka bir host misafir muamelesi görür
	otherView, err := svc.GetAlbumMedia(album.ID, 42)
	if err != nil {
		t.Fatalf("other host listing: %v", err)
	}
	if len(otherView) != 1 {
		t.Errorf("non-owner sees %d items, want 1", len(otherView))
	}
}

func TestGetAlbumMediaPrivateEvent(t *testing.T) {
	events := newMemEventStore()
	albums := newMemAlbumStore()
	media := newMemMediaStore()
	svc := NewAlbumService(albums, events, media)

	event, _ := events.Create(&models.Event{HostID: 1, Visibility: models.VisibilityPrivate})
	album, _ := albums.Create(&models.Album{EventID: event.ID, Name: "Hidden"})
	media.Create(&models.Media{
		EventID:   event.ID,
		AlbumID:   &album.ID,
		BlobKey:   "k",
		VisibleAt: time.Now().Add(-time.Hour),
	})

	if _, err := svc.GetAlbumMedia(album.ID, 0); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}

	// Host kendi private etkinliğinin albümünü görmeye devam eder
	hostView, err := svc.GetAlbumMedia(album.ID, 1)
	if err != nil {
		t.Fatalf("host listing: %v", err)
	}
	if len(hostView) != 1 {
		t.Errorf("host sees %d items, want 1", len(hostView))
	}
}

func TestCreateAlbumRequiresHost(t *testing.T) {
	events := newMemEventStore()
	albums := newMemAlbumStore()
	svc := NewAlbumService(albums, events, newMemMediaStore())

	event, _ := events.Create(&models.Event{HostID: 7})

	req := models.AlbumRequest{Name: "Mine"}
	if _, err := svc.CreateAlbum(event.ID, 8, req); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}

	album, err := svc.CreateAlbum(event.ID, 7, req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if album.Visibility != models.VisibilityPublic {
		t.Errorf("default visibility = %q, want public", album.Visibility)
	}
}
