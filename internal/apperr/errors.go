package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrStorage      = errors.New("storage failure")
)

// Upload finalize adımları
const (
	StepMediaRecord = "media_record"
	StepEventAppend = "event_append"
	StepAlbumAppend = "album_append"
)

// FinalizeError blob yazımı başarılı olduktan SONRA kayıt adımlarından biri
// başarısız olduğunda döner. Blob artık storage'da sahipsiz kaldığı için bu
// hata diğerlerinden ayrı raporlanır; Completed hangi adımların bittiğini
// taşır ki elle mutabakat yapılabilsin.
type FinalizeError struct {
	EventID   uint
	BlobKey   string
	Completed []string
	Err       error
}

func (e *FinalizeError) Error() string {
	return fmt.Sprintf("upload finalize failed for event %d (blob %s, completed %v): %v",
		e.EventID, e.BlobKey, e.Completed, e.Err)
}

func (e *FinalizeError) Unwrap() error {
	return e.Err
}
