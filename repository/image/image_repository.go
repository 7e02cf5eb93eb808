package image

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/muhammadheryan/food-storefront/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrImageNotFound = errors.New("image not found")

type ImageRepository interface {
	Upload(ctx context.Context, filename string, data []byte, meta Metadata) (string, error)
	// Open returns ErrImageNotFound for unknown or malformed ids.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.ImageInfo, error)
	Delete(ctx context.Context, id string) error
}

type Metadata struct {
	OriginalName string    `bson:"originalName"`
	ContentType  string    `bson:"contentType"`
	Size         int64     `bson:"size"`
	UploadedAt   time.Time `bson:"uploadedAt"`
}

type GridFS struct {
	db     *mongo.Database
	bucket string
}

func NewImageRepository(db *mongo.Database, bucket string) ImageRepository {
	return &GridFS{db: db, bucket: bucket}
}

// openBucket builds a bucket per call so deadlines from ctx never leak between requests.
func (g *GridFS) openBucket(ctx context.Context) (*gridfs.Bucket, error) {
	b, err := gridfs.NewBucket(g.db, options.GridFSBucket().SetName(g.bucket))
	if err != nil {
		return nil, err
	}
	if dl, ok := ctx.Deadline(); ok {
		if err := b.SetWriteDeadline(dl); err != nil {
			return nil, err
		}
		if err := b.SetReadDeadline(dl); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (g *GridFS) Upload(ctx context.Context, filename string, data []byte, meta Metadata) (string, error) {
	b, err := g.openBucket(ctx)
	if err != nil {
		return "", err
	}
	opts := options.GridFSUpload().SetMetadata(meta)
	id, err := b.UploadFromStream(filename, bytes.NewReader(data), opts)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (g *GridFS) Open(ctx context.Context, id string) (io.ReadCloser, *model.ImageInfo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil, ErrImageNotFound
	}
	b, err := g.openBucket(ctx)
	if err != nil {
		return nil, nil, err
	}
	stream, err := b.OpenDownloadStream(oid)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, nil, ErrImageNotFound
		}
		return nil, nil, err
	}

	file := stream.GetFile()
	var meta Metadata
	if len(file.Metadata) > 0 {
		if err := bson.Unmarshal(file.Metadata, &meta); err != nil {
			_ = stream.Close()
			return nil, nil, err
		}
	}
	info := &model.ImageInfo{
		ID:           id,
		Filename:     file.Name,
		OriginalName: meta.OriginalName,
		ContentType:  meta.ContentType,
		Size:         file.Length,
		UploadedAt:   file.UploadDate,
	}
	return stream, info, nil
}

func (g *GridFS) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrImageNotFound
	}
	b, err := g.openBucket(ctx)
	if err != nil {
		return err
	}
	if err := b.DeleteContext(ctx, oid); err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return nil
}
