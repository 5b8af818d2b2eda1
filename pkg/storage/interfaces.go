package storage

import (
	"context"
	"io"
)

// BlobStorage ikili içerik deposu. Upload ancak nesne kalıcı olarak
// yazıldıktan sonra hatasız döner; yarıda kesilen yazımlar için ek
// temizlik yapılmaz.
type BlobStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
