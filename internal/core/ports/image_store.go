package ports

import "context"

// ImageStore is the image storage collaborator. The API only ever sees a
// reference string; the binary goes straight from the client to the store.
type ImageStore interface {
	// PresignUpload returns an object key and a short-lived URL the client
	// PUTs the binary to.
	PresignUpload(ctx context.Context) (key, uploadURL string, err error)
	// PublicURL converts an object key into the reference stored on a post.
	PublicURL(key string) string
}
