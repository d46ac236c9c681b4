// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so catalogs can be read from and merged output
// written to AWS S3 or self-hosted MinIO. Locations use the form
// s3://<bucket>/<key>.
//
// # Client Interface
//
// The Client interface exposes only what catalog sources and sinks need,
// making it easy to mock (see core/storage/mocks).
//
//   - BucketExists: Verifies access to the target bucket before writing.
//   - GetObject: Retrieves a catalog as a stream.
//   - PutObject: Uploads the merged catalog.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	bucket, key, ok := storage.ParseLocation("s3://catalogs/banco1.xlsx")
package storage
