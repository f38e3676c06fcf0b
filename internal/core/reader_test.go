package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestReadFileWithEncoding(t *testing.T) {
	tests := []struct {
		name string
		enc  string
		data []byte
		want string
	}{
		{name: "utf-8 passthrough", enc: "utf-8", data: []byte("héllo"), want: "héllo"},
		{name: "empty encoding is utf-8", enc: "", data: []byte("plain"), want: "plain"},
		{name: "utf-8-sig strips bom", enc: "utf-8-sig", data: []byte("\xef\xbb\xbfhi"), want: "hi"},
		{name: "latin1", enc: "latin1", data: []byte{'c', 'a', 'f', 0xe9}, want: "café"},
		{name: "iso-8859-1 alias", enc: "ISO-8859-1", data: []byte{0xfc}, want: "ü"},
		{name: "windows-1252", enc: "windows-1252", data: []byte{0x80}, want: "€"},
		{name: "utf-16le", enc: "utf-16le", data: []byte{'o', 0, 'k', 0}, want: "ok"},
		{name: "utf-16be", enc: "utf-16be", data: []byte{0, 'o', 0, 'k'}, want: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "f.txt", tt.data)
			got, err := ReadFileWithEncoding(path, tt.enc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFileWithEncodingMissing(t *testing.T) {
	_, err := ReadFileWithEncoding(filepath.Join(t.TempDir(), "nope"), "utf-8")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestKnownEncoding(t *testing.T) {
	for _, enc := range []string{"", "utf-8", "UTF8", "utf-8-sig", "latin1", "cp1252", "utf-16le"} {
		assert.True(t, KnownEncoding(enc), enc)
	}
	assert.False(t, KnownEncoding("ebcdic"))
}
