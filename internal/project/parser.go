package project

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	itemDelimiter = "<ITEM"
	trackHeader   = "<TRACK"
	nameMarker    = "NAME"
)

// Track is a track header found in the project text. Index is 1-based.
type Track struct {
	Index int
	Name  string
}

// Item is a single timed region on a track.
type Item struct {
	Track    int
	Position float64 // seconds
	Length   float64 // seconds
}

// ParseItems extracts items in file order.
//
// The extraction is token based, not a grammar: every "<ITEM" starts a new
// item, and the track counter advances by the number of "<TRACK" headers seen
// in the text between the previous delimiter and this one. Missing or
// malformed POSITION/LENGTH fields yield 0.
func ParseItems(text string) []Item {
	segments := strings.Split(text, itemDelimiter)

	items := make([]Item, 0, len(segments)-1)
	track := 0
	for i := 1; i < len(segments); i++ {
		track += strings.Count(segments[i-1], trackHeader)

		pos, posFound := 0.0, false
		length, lenFound := 0.0, false
		for _, line := range strings.Split(segments[i], "\n") {
			ls := strings.TrimSpace(line)
			switch {
			case !posFound && strings.HasPrefix(ls, "POSITION"):
				pos, posFound = secondField(ls), true
			case !lenFound && strings.HasPrefix(ls, "LENGTH"):
				length, lenFound = secondField(ls), true
			}
			if posFound && lenFound {
				break
			}
		}

		items = append(items, Item{Track: track, Position: pos, Length: length})
	}

	return items
}

// ParseTracks lists track headers with their display names. Headers are
// counted the same way ParseItems counts them. The name comes from the line
// right after the header; headers without one get "Track <n>".
func ParseTracks(text string) []Track {
	var tracks []Track

	idx := 0
	pending := false
	for _, line := range strings.Split(text, "\n") {
		if pending {
			pending = false
			tracks[len(tracks)-1].Name = trackName(line, idx)
		}
		for n := strings.Count(line, trackHeader); n > 0; n-- {
			idx++
			tracks = append(tracks, Track{Index: idx, Name: fmt.Sprintf("Track %d", idx)})
			pending = true
		}
	}

	return tracks
}

func trackName(line string, idx int) string {
	if !strings.Contains(line, nameMarker) {
		return fmt.Sprintf("Track %d", idx)
	}
	name := strings.TrimSpace(strings.Replace(line, nameMarker+" ", "", 1))
	name = strings.Trim(name, `"'`)
	if name == "" {
		return fmt.Sprintf("Track %d", idx)
	}
	return name
}

func secondField(line string) float64 {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0
	}
	return v
}
