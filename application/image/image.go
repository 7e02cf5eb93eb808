package image

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	imagerepo "github.com/muhammadheryan/food-storefront/repository/image"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"go.uber.org/zap"
)

type ImageApp interface {
	Upload(ctx context.Context, req *model.UploadImageRequest) (*model.UploadImageResponse, error)
	Open(ctx context.Context, id string) (io.ReadCloser, *model.ImageInfo, error)
}

type imageAppImpl struct {
	config    *config.Config
	imageRepo imagerepo.ImageRepository
	now       func() time.Time
}

func NewImageApp(config *config.Config, imageRepo imagerepo.ImageRepository) ImageApp {
	return &imageAppImpl{config: config, imageRepo: imageRepo, now: time.Now}
}

func (s *imageAppImpl) maxBytes() int64 {
	if s.config != nil && s.config.Image.MaxBytes > 0 {
		return s.config.Image.MaxBytes
	}
	return constant.MaxImageBytes
}

func (s *imageAppImpl) Upload(ctx context.Context, req *model.UploadImageRequest) (*model.UploadImageResponse, error) {
	size := int64(len(req.Data))
	if size == 0 || size > s.maxBytes() {
		return nil, errors.SetCustomError(constant.ErrInvalidImage).WithFields(map[string]string{
			"image": fmt.Sprintf("must be between 1 and %d bytes", s.maxBytes()),
		})
	}

	// the declared content type is ignored, only the bytes count
	mime := mimetype.Detect(req.Data)
	if !allowed(mime) {
		return nil, errors.SetCustomError(constant.ErrInvalidImage).WithFields(map[string]string{
			"image": "only jpeg, png and webp images are accepted",
		})
	}

	now := s.now()
	filename := fmt.Sprintf("product_%d_%s%s", now.UnixMilli(), strings.SplitN(uuid.NewString(), "-", 2)[0], mime.Extension())

	id, err := s.imageRepo.Upload(ctx, filename, req.Data, imagerepo.Metadata{
		OriginalName: req.OriginalName,
		ContentType:  mime.String(),
		Size:         size,
		UploadedAt:   now.UTC(),
	})
	if err != nil {
		logger.Error("[Upload] err imageRepo.Upload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UploadImageResponse{
		ImageID:  id,
		Filename: filename,
		URL:      "/images/" + id,
	}, nil
}

func (s *imageAppImpl) Open(ctx context.Context, id string) (io.ReadCloser, *model.ImageInfo, error) {
	rc, info, err := s.imageRepo.Open(ctx, id)
	if err != nil {
		if err == imagerepo.ErrImageNotFound {
			return nil, nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[Open] err imageRepo.Open", zap.String("image_id", id), zap.String("error", err.Error()))
		return nil, nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rc, info, nil
}

func allowed(mime *mimetype.MIME) bool {
	for _, t := range constant.AllowedImageTypes {
		if mime.Is(t) {
			return true
		}
	}
	return false
}
