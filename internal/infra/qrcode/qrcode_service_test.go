package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService_Defaults(t *testing.T) {
	tests := []struct {
		level     string
		size      int
		wantLevel qrcode.RecoveryLevel
		wantSize  int
	}{
		{level: "L", size: 128, wantLevel: qrcode.Low, wantSize: 128},
		{level: "q", size: 256, wantLevel: qrcode.High, wantSize: 256},
		{level: " H ", size: 64, wantLevel: qrcode.Highest, wantSize: 64},
		{level: "bogus", size: 0, wantLevel: qrcode.Medium, wantSize: defaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			svc, ok := NewQRCodeService("", tt.size, tt.level).(*qrcodeService)
			require.True(t, ok)

			assert.Equal(t, tt.wantLevel, svc.level)
			assert.Equal(t, tt.wantSize, svc.size)
		})
	}
}

func TestQRCodeService_ShareURL(t *testing.T) {
	blogID := uuid.MustParse("0b7e7f1c-2d2a-4c8e-9f7a-3f0a5d6c1b2e")

	svc := NewQRCodeService("https://blog.example.com/", 256, "M")

	assert.Equal(t, "https://blog.example.com/blogs/0b7e7f1c-2d2a-4c8e-9f7a-3f0a5d6c1b2e", svc.ShareURL(blogID))
}

func TestQRCodeService_GenerateBlogQR(t *testing.T) {
	for _, size := range []int{128, 512} {
		svc := NewQRCodeService("http://localhost:8080", size, "M")

		raw, err := svc.GenerateBlogQR(uuid.New())
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}
