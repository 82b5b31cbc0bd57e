// Package termsource provides the data-supply abstraction for the reference
// terminology documents.
//
// A Source fetches raw document bytes by name; FetchDocument layers probing
// for compressed variants (.gz, .zst, .lz4) and transparent decompression on
// top. The core never sees the storage format of the reference data.
//
// # Built-in Implementations
//
//   - FileSource: local directory
//   - FSSource: any fs.FS (e.g. embed.FS)
//   - MemorySource: in-memory, for testing
//   - s3.Source: Amazon S3
//   - minio.Source: MinIO and S3-compatible object stores
//
// # Custom Implementations
//
// Implement the Source interface to serve the documents from anywhere else:
//
//	type Source interface {
//	    Fetch(ctx context.Context, name string) ([]byte, error)
//	}
//
// Missing documents must be reported with an error satisfying
// errors.Is(err, ErrNotFound).
package termsource
