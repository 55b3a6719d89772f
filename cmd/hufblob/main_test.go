package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hufblob/fileio"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, log.New(&stderr, "", 0))

	return code, stdout.String(), stderr.String()
}

func TestRun_CompressDecompress(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "input.txt")
	text := []byte("she sells sea shells by the sea shore")
	require.NoError(t, os.WriteFile(src, text, 0o600))

	outDir := filepath.Join(dir, "out")
	code, _, stderr := runCLI(t, "compress", "-in", src, "-out", outDir, "-verify")
	require.Equal(t, 0, code)
	artifact := filepath.Join(outDir, fileio.CompressedName)
	require.Contains(t, stderr, "compress succeeded: "+artifact)

	code, stdout, _ := runCLI(t, "inspect", "-in", artifact)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "original length: 37 bytes")
	require.Contains(t, stdout, "CodeTable{")

	restoredDir := filepath.Join(dir, "restored")
	code, _, stderr = runCLI(t, "decompress", "-in", artifact, "-out", restoredDir)
	require.Equal(t, 0, code)
	require.Contains(t, stderr, "decompress succeeded")

	got, err := os.ReadFile(filepath.Join(restoredDir, fileio.DecompressedName))
	require.NoError(t, err)
	require.Equal(t, text, got)
}

func TestRun_Compare(t *testing.T) {
	src := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(src, bytes.Repeat([]byte("compare me "), 50), 0o600))

	code, stdout, _ := runCLI(t, "compare", "-in", src)
	require.Equal(t, 0, code)
	for _, name := range []string{"Huffman", "None", "Zstd", "S2", "LZ4"} {
		require.Contains(t, stdout, name)
	}
}

func TestRun_CompareEmptyFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(src, nil, 0o600))

	code, stdout, _ := runCLI(t, "compare", "-in", src)
	require.Equal(t, 0, code)
	require.Contains(t, stdout, "n/a (empty input)")
	for _, name := range []string{"None", "Zstd", "S2", "LZ4"} {
		require.Contains(t, stdout, name)
	}
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.huff")
	require.NoError(t, os.WriteFile(bad, []byte{0x00, 0x00, 0x00, 0x01, 0x09, 0x00}, 0o600))

	tests := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{name: "no command", args: nil, code: 2, stderr: "usage"},
		{name: "unknown command", args: []string{"explode"}, code: 2, stderr: `unknown command "explode"`},
		{name: "missing -in", args: []string{"compress"}, code: 1, stderr: "usage"},
		{name: "bad padding", args: []string{"compress", "-in", bad, "-padding", "huge"}, code: 1, stderr: "unknown padding policy"},
		{name: "corrupt artifact", args: []string{"decompress", "-in", bad, "-out", dir}, code: 1, stderr: "decompress failed: decompress: corrupt artifact"},
		{name: "missing file", args: []string{"inspect", "-in", filepath.Join(dir, "nope")}, code: 1, stderr: "io unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			require.Equal(t, tt.code, code)
			require.Contains(t, stderr, tt.stderr)
		})
	}
}
