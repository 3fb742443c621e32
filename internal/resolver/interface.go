package resolver

import "context"

// Asset is a video persisted to a transient file. The caller owns the file
// and must remove it when the pipeline finishes.
type Asset struct {
	Path      string
	SizeBytes int64
}

// Resolver obtains raw video bytes from a URL, a byte buffer or a local
// file and writes them to a uniquely named transient file.
type Resolver interface {
	FromURL(ctx context.Context, rawURL string) (*Asset, error)
	FromBytes(ctx context.Context, data []byte, ext string) (*Asset, error)
	FromFile(ctx context.Context, path string) (*Asset, error)
}
