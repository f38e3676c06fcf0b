package core

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func decoderFor(enc string) (encoding.Encoding, bool) {
	switch strings.ToLower(strings.TrimSpace(enc)) {
	case "", "utf-8", "utf8":
		return nil, true
	case "utf-8-sig":
		return unicode.UTF8BOM, true
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, true
	case "windows-1252", "cp1252":
		return charmap.Windows1252, true
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), true
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), true
	default:
		return nil, false
	}
}

// KnownEncoding reports whether enc names an encoding OpenWithEncoding can decode
func KnownEncoding(enc string) bool {
	_, ok := decoderFor(enc)
	return ok
}

// OpenWithEncoding opens a file at the given path and wraps it with a decoder if the specified encoding requires one
func OpenWithEncoding(path string, enc string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	e, ok := decoderFor(enc)
	if !ok || e == nil {
		return f, nil
	}
	rc := struct {
		io.Reader
		io.Closer
	}{
		Reader: transform.NewReader(bufio.NewReader(f), e.NewDecoder()),
		Closer: f,
	}
	return rc, nil
}

// ReadFileWithEncoding returns the decoded contents of the file at path
func ReadFileWithEncoding(path string, enc string) (string, error) {
	rc, err := OpenWithEncoding(path, enc)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
