package validators

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
)

// DecodeImagePayload accepts plain base64 or a data URL and returns the raw
// bytes when they are a non-empty image no larger than maxBytes.
func DecodeImagePayload(payload string, maxBytes int64) ([]byte, error) {
	raw := strings.TrimSpace(payload)
	if strings.HasPrefix(raw, "data:") {
		_, after, found := strings.Cut(raw, ";base64,")
		if !found {
			return nil, httperr.ErrBusinessMsg("invalid_base64", "Le fichier doit être encodé en base64.")
		}
		raw = after
	}
	if raw == "" {
		return nil, content.ErrEmptyPayload
	}

	// base64 inflates by 4/3; reject before decoding anything huge.
	if maxBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(raw))) > maxBytes+2 {
		return nil, fileTooLarge(maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		data, err = base64.RawStdEncoding.DecodeString(raw)
		if err != nil {
			return nil, httperr.ErrBusinessMsg("invalid_base64", "Le fichier doit être encodé en base64.")
		}
	}
	if len(data) == 0 {
		return nil, content.ErrEmptyPayload
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fileTooLarge(maxBytes)
	}

	if mt := mimetype.Detect(data); !strings.HasPrefix(mt.String(), "image/") {
		return nil, fmt.Errorf("%w: detected %s", content.ErrNotImage, mt.String())
	}
	return data, nil
}

func fileTooLarge(maxBytes int64) error {
	return httperr.ErrBusinessMsg(
		"file_too_large",
		fmt.Sprintf("Le fichier dépasse la taille maximale de %d Mo.", maxBytes/(1024*1024)),
	)
}
