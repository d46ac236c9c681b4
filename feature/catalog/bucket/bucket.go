package bucket

import (
	"bytes"
	"context"
	"fmt"
	"iter"

	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/core/storage"
	"catalog-reconciler/feature/catalog/spreadsheet"

	"github.com/minio/minio-go/v7"
)

// Source reads a catalog stored as an object.
type Source struct {
	client storage.Client
	bucket string
	key    string
	format spreadsheet.Format
	opts   spreadsheet.Options
}

// NewSource creates a source for bucket/key. The format follows the key's extension.
func NewSource(client storage.Client, bucket, key string, opts spreadsheet.Options) (*Source, error) {
	format, err := spreadsheet.FormatFromPath(key)
	if err != nil {
		return nil, err
	}
	return &Source{client: client, bucket: bucket, key: key, format: format, opts: opts}, nil
}

// Name returns the s3:// location of the object.
func (s *Source) Name() string {
	return storage.Scheme + s.bucket + "/" + s.key
}

// Read downloads the object and streams its rows.
func (s *Source) Read(ctx context.Context) iter.Seq2[reconcile.RawRow, error] {
	return func(yield func(reconcile.RawRow, error) bool) {
		obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
		if err != nil {
			yield(nil, fmt.Errorf("failed to get object %s: %w", s.key, err))
			return
		}
		defer obj.Close()

		for row, err := range spreadsheet.Decode(obj, s.format, s.opts) {
			if !yield(row, err) || err != nil {
				return
			}
		}
	}
}

// Sink encodes merged rows in memory and uploads the object on Close.
type Sink struct {
	client storage.Client
	bucket string
	key    string
	format spreadsheet.Format
	opts   spreadsheet.Options

	// ctx is the context given to Open; the upload on Close runs under it.
	ctx context.Context
	enc spreadsheet.Encoder
}

// NewSink creates a sink for bucket/key. The format follows the key's extension.
func NewSink(client storage.Client, bucket, key string, opts spreadsheet.Options) (*Sink, error) {
	format, err := spreadsheet.FormatFromPath(key)
	if err != nil {
		return nil, err
	}
	return &Sink{client: client, bucket: bucket, key: key, format: format, opts: opts}, nil
}

// Name returns the s3:// location of the object.
func (s *Sink) Name() string {
	return storage.Scheme + s.bucket + "/" + s.key
}

// Open checks that the bucket exists and prepares the encoder.
func (s *Sink) Open(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	enc, err := spreadsheet.NewEncoder(s.format, s.opts)
	if err != nil {
		return err
	}
	s.ctx = ctx
	s.enc = enc
	return nil
}

// Write appends one row to the in-memory document.
func (s *Sink) Write(_ context.Context, row reconcile.Row) error {
	if s.enc == nil {
		return fmt.Errorf("sink %s is not open", s.Name())
	}
	return s.enc.WriteRow(row)
}

// Close uploads the document.
func (s *Sink) Close() error {
	if s.enc == nil {
		return nil
	}
	enc := s.enc
	s.enc = nil
	defer enc.Close()

	var buf bytes.Buffer
	if _, err := enc.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.key, err)
	}

	size := int64(buf.Len())
	_, err := s.client.PutObject(s.ctx, s.bucket, s.key, &buf, size, minio.PutObjectOptions{
		ContentType: s.format.ContentType(),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", s.key, err)
	}
	return nil
}
