package generate

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// saveImage writes remote image bytes through the configured storage and
// returns the artifact key. Open, write fully, close; a failure at any step
// is a hard failure of this save only.
func (u *UseCase) saveImage(ctx context.Context, data []byte) (string, error) {
	if u.storage == nil {
		return "", goerr.New("storage is not configured")
	}

	key := fmt.Sprintf("mandala_%d.png", u.now().UnixMilli())

	w, err := u.storage.Put(ctx, key)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open artifact writer", goerr.V("key", key))
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to write artifact", goerr.V("key", key))
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to close artifact writer", goerr.V("key", key))
	}

	return key, nil
}
