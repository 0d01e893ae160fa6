package project

import (
	"os"
	"strings"
)

// Source is raw project text loaded from disk.
type Source struct {
	Path string
	Text string
}

// ReadFile loads a project file. Invalid UTF-8 sequences are dropped and a
// leading byte order mark is removed, so a partially damaged project still
// yields whatever items can be found.
func ReadFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text := strings.ToValidUTF8(string(data), "")
	text = strings.TrimPrefix(text, "\ufeff")
	// REAPER on Windows writes CRLF
	text = strings.ReplaceAll(text, "\r\n", "\n")

	return &Source{Path: path, Text: text}, nil
}

// Tracks parses the track headers of the loaded text.
func (s *Source) Tracks() []Track {
	return ParseTracks(s.Text)
}
