// Package qrcode renders blog share links as PNG QR codes.
package qrcode

import (
	"strings"

	"blog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// recoveryLevels maps the usual L/M/Q/H names onto go-qrcode's levels.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type qrcodeService struct {
	baseURL string
	size    int
	level   qrcode.RecoveryLevel
}

// NewQRCodeService links share codes under baseURL. Unknown levels fall back
// to M and a non-positive size to 256 pixels.
func NewQRCodeService(baseURL string, size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(strings.TrimSpace(errorCorrectionLevel))]
	if !ok {
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL: strings.TrimRight(baseURL, "/"),
		size:    size,
		level:   level,
	}
}

func (s *qrcodeService) ShareURL(blogID uuid.UUID) string {
	return s.baseURL + "/blogs/" + blogID.String()
}

func (s *qrcodeService) GenerateBlogQR(blogID uuid.UUID) ([]byte, error) {
	png, err := qrcode.Encode(s.ShareURL(blogID), s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render share code for blog %s", blogID)
	}

	return png, nil
}
