package fileio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arloliu/hufblob"
	"github.com/arloliu/hufblob/errs"
)

const (
	// CompressedName is the file name CompressFile writes.
	CompressedName = "compressed.huff"
	// DecompressedName is the file name DecompressFile writes.
	DecompressedName = "decompressed.txt"

	dirPerm  = 0o755
	filePerm = 0o644
)

// CompressFile compresses the contents of src and writes the artifact to
// outDir/compressed.huff. It returns the path of the written file.
func CompressFile(src, outDir string, opts ...hufblob.Option) (string, error) {
	data, err := ReadFile(src)
	if err != nil {
		return "", err
	}

	artifact, err := hufblob.Compress(data, opts...)
	if err != nil {
		return "", err
	}

	return writeFile(outDir, CompressedName, artifact)
}

// DecompressFile restores the artifact stored in src and writes the original
// bytes to outDir/decompressed.txt. It returns the path of the written file.
func DecompressFile(src, outDir string) (string, error) {
	artifact, err := ReadFile(src)
	if err != nil {
		return "", err
	}

	data, err := hufblob.Decompress(artifact)
	if err != nil {
		return "", err
	}

	return writeFile(outDir, DecompressedName, data)
}

// ReadFile reads path, wrapping failures in errs.ErrIOUnavailable.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIOUnavailable, err)
	}

	return data, nil
}

// writeFile writes data to dir/name through a temporary file in dir.
func writeFile(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrIOUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrIOUnavailable, err)
	}
	defer os.Remove(tmp.Name()) //nolint: errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close() //nolint: errcheck,gosec
		return "", fmt.Errorf("%w: %w", errs.ErrIOUnavailable, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close() //nolint: errcheck,gosec
		return "", fmt.Errorf("%w: %w", errs.ErrIOUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrIOUnavailable, err)
	}

	path := filepath.Join(dir, name)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrIOUnavailable, err)
	}

	return path, nil
}
