package image_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	appimage "github.com/muhammadheryan/food-storefront/application/image"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	imagemocks "github.com/muhammadheryan/food-storefront/mocks/repository/image"
	"github.com/muhammadheryan/food-storefront/model"
	imagerepo "github.com/muhammadheryan/food-storefront/repository/image"
	cerr "github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
	jpegBytes = append([]byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}, make([]byte, 32)...)
	gifBytes  = append([]byte("GIF89a"), make([]byte, 32)...)
)

func TestImageApp_Upload(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		data     []byte
		mockCall func(repo *imagemocks.ImageRepository)
		errCode  constant.ErrorType
	}{
		{
			name: "success: png sniffed from content",
			data: pngBytes,
			mockCall: func(repo *imagemocks.ImageRepository) {
				repo.
					On("Upload", mock.Anything, mock.MatchedBy(func(name string) bool {
						return strings.HasPrefix(name, "product_") && strings.HasSuffix(name, ".png")
					}), pngBytes, mock.MatchedBy(func(m imagerepo.Metadata) bool {
						return m.ContentType == "image/png" && m.OriginalName == "photo.jpg" && m.Size == int64(len(pngBytes))
					})).
					Return("665f1c2e9b1d8a0001a1b2c3", nil).
					Once()
			},
			errCode:  constant.Successful,
		},
		{
			name: "success: jpeg",
			data: jpegBytes,
			mockCall: func(repo *imagemocks.ImageRepository) {
				repo.On("Upload", mock.Anything, mock.Anything, jpegBytes, mock.Anything).Return("665f1c2e9b1d8a0001a1b2c4", nil).Once()
			},
			errCode: constant.Successful,
		},
		{
			name:    "error: gif is not accepted",
			data:    gifBytes,
			errCode: constant.ErrInvalidImage,
		},
		{
			name:    "error: plain text",
			data:    []byte("definitely not an image"),
			errCode: constant.ErrInvalidImage,
		},
		{
			name:    "error: empty",
			data:    nil,
			errCode: constant.ErrInvalidImage,
		},
		{
			name:     "error: too large",
			maxBytes: 16,
			data:     pngBytes,
			errCode:  constant.ErrInvalidImage,
		},
		{
			name: "error: storage failure",
			data: pngBytes,
			mockCall: func(repo *imagemocks.ImageRepository) {
				repo.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("gridfs down")).Once()
			},
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := imagemocks.NewImageRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := appimage.NewImageApp(&config.Config{Image: config.ImageConfig{MaxBytes: tt.maxBytes}}, repo)

			res, err := app.Upload(context.Background(), &model.UploadImageRequest{OriginalName: "photo.jpg", Data: tt.data})
			if tt.errCode != constant.Successful {
				assert.True(t, cerr.IsType(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/images/"+res.ImageID, res.URL)
		})
	}
}

func TestImageApp_Open(t *testing.T) {
	repo := imagemocks.NewImageRepository(t)
	repo.On("Open", mock.Anything, "missing").Return(nil, nil, imagerepo.ErrImageNotFound).Once()
	repo.On("Open", mock.Anything, "ok").
		Return(io.NopCloser(strings.NewReader("bytes")), &model.ImageInfo{ID: "ok", ContentType: "image/webp", Size: 5}, nil).
		Once()
	app := appimage.NewImageApp(nil, repo)

	_, _, err := app.Open(context.Background(), "missing")
	assert.True(t, cerr.IsType(err, constant.ErrNotFound))

	rc, info, err := app.Open(context.Background(), "ok")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "image/webp", info.ContentType)
}
