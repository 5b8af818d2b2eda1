package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
)

// In-memory store'lar: testler gerçek veritabanı yerine bunlarla çalışır.
// Hata enjeksiyonu için err alanları set edilebilir.

type memEventStore struct {
	mu      sync.Mutex
	nextID  uint
	events  map[uint]*models.Event
	incErr  error
	incLog  []uint
	deleted []uint
}

func newMemEventStore() *memEventStore {
	return &memEventStore{nextID: 1, events: make(map[uint]*models.Event)}
}

func (s *memEventStore) Create(event *models.Event) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = s.nextID
	s.nextID++
	copied := *event
	s.events[event.ID] = &copied
	return event, nil
}

func (s *memEventStore) GetByID(id uint) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (s *memEventStore) GetByHostID(hostID uint) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Event
	for _, e := range s.events {
		if e.HostID == hostID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *memEventStore) Update(event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[event.ID]; !ok {
		return apperr.ErrNotFound
	}
	copied := *event
	s.events[event.ID] = &copied
	return nil
}

func (s *memEventStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.events, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *memEventStore) IncrementMediaCount(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.incErr != nil {
		return s.incErr
	}
	event, ok := s.events[id]
	if !ok {
		return apperr.ErrNotFound
	}
	event.MediaCount++
	s.incLog = append(s.incLog, id)
	return nil
}

func (s *memEventStore) FindExpired(currentTime time.Time) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Event
	for _, e := range s.events {
		if e.ExpiresAt.Before(currentTime) {
			out = append(out, *e)
		}
	}
	return out, nil
}

type memAlbumStore struct {
	mu        sync.Mutex
	nextID    uint
	albums    map[uint]*models.Album
	createErr error
	incErr    error
}

func newMemAlbumStore() *memAlbumStore {
	return &memAlbumStore{nextID: 1, albums: make(map[uint]*models.Album)}
}

func (s *memAlbumStore) Create(album *models.Album) (*models.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return nil, s.createErr
	}
	for _, a := range s.albums {
		if a.EventID == album.EventID && a.Name == album.Name {
			return nil, fmt.Errorf("duplicate album %q", album.Name)
		}
	}
	album.ID = s.nextID
	s.nextID++
	copied := *album
	s.albums[album.ID] = &copied
	return album, nil
}

func (s *memAlbumStore) GetByID(id uint) (*models.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	album, ok := s.albums[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *album
	return &copied, nil
}

func (s *memAlbumStore) GetByEventID(eventID uint) ([]models.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Album
	for _, a := range s.albums {
		if a.EventID == eventID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *memAlbumStore) GetByEventAndName(eventID uint, name string) (*models.Album, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.albums {
		if a.EventID == eventID && a.Name == name {
			copied := *a
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *memAlbumStore) GetOrCreate(eventID uint, name, description string, autoGenerated bool) (*models.Album, error) {
	if album, err := s.GetByEventAndName(eventID, name); err == nil {
		return album, nil
	}
	return s.Create(&models.Album{
		EventID:         eventID,
		Name:            name,
		Description:     description,
		IsAutoGenerated: autoGenerated,
	})
}

func (s *memAlbumStore) Update(album *models.Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.albums[album.ID]; !ok {
		return apperr.ErrNotFound
	}
	copied := *album
	s.albums[album.ID] = &copied
	return nil
}

func (s *memAlbumStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.albums, id)
	return nil
}

func (s *memAlbumStore) DeleteByEventID(eventID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.albums {
		if a.EventID == eventID {
			delete(s.albums, id)
		}
	}
	return nil
}

func (s *memAlbumStore) IncrementMediaCount(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.incErr != nil {
		return s.incErr
	}
	album, ok := s.albums[id]
	if !ok {
		return apperr.ErrNotFound
	}
	album.MediaCount++
	return nil
}

func (s *memAlbumStore) DecrementMediaCount(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	album, ok := s.albums[id]
	if !ok {
		return apperr.ErrNotFound
	}
	album.MediaCount--
	return nil
}

type memMediaStore struct {
	mu        sync.Mutex
	nextID    uint
	media     map[uint]*models.Media
	createErr error
}

func newMemMediaStore() *memMediaStore {
	return &memMediaStore{nextID: 1, media: make(map[uint]*models.Media)}
}

func (s *memMediaStore) Create(media *models.Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	media.ID = s.nextID
	s.nextID++
	copied := *media
	s.media[media.ID] = &copied
	return nil
}

func (s *memMediaStore) GetByID(id uint) (*models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	media, ok := s.media[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *media
	return &copied, nil
}

func (s *memMediaStore) GetByEventID(eventID uint) ([]models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Media
	for _, m := range s.media {
		if m.EventID == eventID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *memMediaStore) GetVisibleByEventID(eventID uint, now time.Time) ([]models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Media
	for _, m := range s.media {
		if m.EventID == eventID && !m.VisibleAt.After(now) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *memMediaStore) GetByAlbumID(albumID uint) ([]models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Media
	for _, m := range s.media {
		if m.AlbumID != nil && *m.AlbumID == albumID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *memMediaStore) GetVisibleByAlbumID(albumID uint, now time.Time) ([]models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Media
	for _, m := range s.media {
		if m.AlbumID != nil && *m.AlbumID == albumID && !m.VisibleAt.After(now) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *memMediaStore) GetByHostID(hostID uint) ([]models.Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Media
	for _, m := range s.media {
		if m.HostID != nil && *m.HostID == hostID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *memMediaStore) GetLatestByEventID(eventID uint, limit int) ([]models.Media, error) {
	all, _ := s.GetByEventID(eventID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *memMediaStore) GetLatestVisibleByEventID(eventID uint, limit int, now time.Time) ([]models.Media, error) {
	all, _ := s.GetVisibleByEventID(eventID, now)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *memMediaStore) UpdateStatus(id uint, status models.MediaStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	media, ok := s.media[id]
	if !ok {
		return apperr.ErrNotFound
	}
	media.Status = status
	return nil
}

func (s *memMediaStore) UpdateVisibleAt(id uint, visibleAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	media, ok := s.media[id]
	if !ok {
		return apperr.ErrNotFound
	}
	media.VisibleAt = visibleAt
	return nil
}

func (s *memMediaStore) UpdateAlbum(id uint, albumID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	media, ok := s.media[id]
	if !ok {
		return apperr.ErrNotFound
	}
	media.AlbumID = &albumID
	return nil
}

func (s *memMediaStore) DeleteByEventID(eventID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, m := range s.media {
		if m.EventID == eventID {
			delete(s.media, id)
		}
	}
	return nil
}

func (s *memMediaStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.media)
}

type memGuestStore struct {
	mu     sync.Mutex
	nextID uint
	guests map[uint]*models.Guest
}

func newMemGuestStore() *memGuestStore {
	return &memGuestStore{nextID: 1, guests: make(map[uint]*models.Guest)}
}

func (s *memGuestStore) Create(guest *models.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	guest.ID = s.nextID
	s.nextID++
	copied := *guest
	s.guests[guest.ID] = &copied
	return nil
}

func (s *memGuestStore) GetByID(id uint) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	guest, ok := s.guests[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *guest
	return &copied, nil
}

func (s *memGuestStore) GetByToken(token string) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.guests {
		if g.GuestToken == token {
			copied := *g
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *memGuestStore) DeleteByEventID(eventID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, g := range s.guests {
		if g.EventID == eventID {
			delete(s.guests, id)
		}
	}
	return nil
}

func (s *memGuestStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.guests)
}

type memUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1, users: make(map[uint]*models.User)}
}

func (s *memUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) GetByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *memUserStore) EmailExists(email string) (bool, error) {
	_, err := s.GetByEmail(email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (s *memUserStore) Update(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return apperr.ErrNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

type memDownloadLogStore struct {
	mu      sync.Mutex
	entries []models.DownloadLog
}

func (s *memDownloadLogStore) Create(entry *models.DownloadLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *memDownloadLogStore) DeleteByEventID(eventID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

func (s *memDownloadLogStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

type memGuestbookStore struct {
	mu      sync.Mutex
	nextID  uint
	entries map[uint]*models.GuestbookEntry
}

func newMemGuestbookStore() *memGuestbookStore {
	return &memGuestbookStore{nextID: 1, entries: make(map[uint]*models.GuestbookEntry)}
}

func (s *memGuestbookStore) Create(entry *models.GuestbookEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.nextID
	s.nextID++
	copied := *entry
	s.entries[entry.ID] = &copied
	return nil
}

func (s *memGuestbookStore) GetByEventID(eventID uint) ([]models.GuestbookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.GuestbookEntry
	for _, e := range s.entries {
		if e.EventID == eventID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *memGuestbookStore) IncrementReaction(id uint, reactionType string) (*models.GuestbookEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	switch reactionType {
	case "like":
		entry.LikeCount++
	case "love":
		entry.LoveCount++
	case "laugh":
		entry.LaughCount++
	}
	copied := *entry
	return &copied, nil
}

func (s *memGuestbookStore) DeleteByEventID(eventID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if e.EventID == eventID {
			delete(s.entries, id)
		}
	}
	return nil
}

type memReactionStore struct {
	mu        sync.Mutex
	nextID    uint
	reactions []models.Reaction
}

func (s *memReactionStore) Create(reaction *models.Reaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	reaction.ID = s.nextID
	s.reactions = append(s.reactions, *reaction)
	return nil
}

func (s *memReactionStore) GetByMediaID(mediaID uint) ([]models.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Reaction
	for _, r := range s.reactions {
		if r.MediaID == mediaID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memReactionStore) DeleteByEventID(eventID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reactions = nil
	return nil
}

type memArchiveStore struct {
	mu       sync.Mutex
	archived []models.ArchivedEvent
}

func (s *memArchiveStore) Create(archived *models.ArchivedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archived = append(s.archived, *archived)
	return nil
}

func (s *memArchiveStore) GetByHostID(hostID uint) ([]models.ArchivedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ArchivedEvent
	for _, a := range s.archived {
		if a.HostID == hostID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeBlobStore blob'ları bellekte tutar, uploadErr ile yazım hatası
// enjekte edilebilir
type fakeBlobStore struct {
	mu        sync.Mutex
	blobs     map[string][]byte
	uploadErr error
	deleted   []string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (s *fakeBlobStore) Upload(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = data
	return nil
}

func (s *fakeBlobStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeBlobStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}

// fakeNotifier fanout çağrılarını kanala yazar, testler zaman aşımıyla bekler
type fakeNotifier struct {
	calls chan *models.Media
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan *models.Media, 8)}
}

func (n *fakeNotifier) MediaUploaded(event *models.Event, media *models.Media) {
	n.calls <- media
}

type fakeMailer struct {
	mu         sync.Mutex
	welcomeErr error
	welcomes   []string
	newMedia   []string
}

func (m *fakeMailer) SendWelcomeEmail(email, fullName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.welcomeErr != nil {
		return m.welcomeErr
	}
	m.welcomes = append(m.welcomes, email)
	return nil
}

func (m *fakeMailer) SendNewMediaEmail(email, eventName, mediaType, mediaURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.newMedia = append(m.newMedia, email)
	return nil
}
