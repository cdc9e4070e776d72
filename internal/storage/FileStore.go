package storage

import (
	"os"
	"path/filepath"

	"cpd/internal/models"
	"cpd/internal/storage/interfaces"

	"github.com/pkg/errors"
)

// FileStore keeps every bucket in its own file under dir.
type FileStore struct {
	dir        string
	ext        string
	compressor interfaces.CompressorInterface
}

func NewFileStore(dir string, compressor interfaces.CompressorInterface) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create store dir %s", dir)
	}
	ext := ".json"
	if _, plain := compressor.(plainCompression); !plain {
		ext = ".json.zst"
	}
	return &FileStore{dir: dir, ext: ext, compressor: compressor}, nil
}

func (f *FileStore) path(bucket string) string {
	return filepath.Join(f.dir, bucket+f.ext)
}

func (f *FileStore) Read(bucket string) ([]byte, error) {
	data, err := os.ReadFile(f.path(bucket))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read bucket %s", bucket)
	}
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return nil, &models.StoreCorruptionError{Bucket: bucket, Err: err}
	}
	return decompressed, nil
}

// Write replaces the bucket file atomically: the document is written to a
// temporary file, synced, then renamed over the previous version.
func (f *FileStore) Write(bucket string, data []byte) error {
	compressed, err := f.compressor.Compress(data)
	if err != nil {
		return errors.Wrapf(err, "compress bucket %s", bucket)
	}

	fileName := f.path(bucket)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmpFile)
	}

	_, err = file.Write(compressed)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return errors.Wrapf(err, "write %s", tmpFile)
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return errors.Wrapf(err, "sync %s", tmpFile)
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return errors.Wrapf(err, "close %s", tmpFile)
	}

	return errors.Wrapf(os.Rename(tmpFile, fileName), "rename %s", tmpFile)
}

// Close is a no-op; the compressor belongs to whoever created it.
func (f *FileStore) Close() error {
	return nil
}
