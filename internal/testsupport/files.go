package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteMediaFile fills the target path with the requested number of bytes
// using a repeating pattern, creating parent directories as needed. A size
// <= 0 writes a single byte. Sized fixtures matter because scanning and
// scoring both read real file sizes.
func WriteMediaFile(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	const chunkSize = 32 * 1024
	buf := make([]byte, chunkSize)
	for i := range buf {
		buf[i] = 0x42
	}

	remaining := size
	for remaining > 0 {
		toWrite := int64(chunkSize)
		if remaining < toWrite {
			toWrite = remaining
		}
		if _, err := f.Write(buf[:toWrite]); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		remaining -= toWrite
	}
}

// MB converts megabytes to bytes for WriteMediaFile sizes.
func MB(n int64) int64 {
	return n * 1024 * 1024
}
