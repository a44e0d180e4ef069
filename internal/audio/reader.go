package audio

import (
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/bogem/id3v2"
	"github.com/handiism/tagg/internal/model"
)

// id3HeaderSize is the size of an ID3v2 header. Shorter files cannot
// carry a tag.
const id3HeaderSize = 10

// readFrames are the frames parsed by ReadTags.
var readFrames = []string{"TPE1", "TPE2", "TALB", "TDRC", "TYER", "TIT2", "TRCK", "TPOS"}

// ReadTags reads the ID3v2 tag of the MP3 file at path.
//
// A file without a tag yields a FileInput with only Path set.
func ReadTags(path string) (model.FileInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.FileInput{}, err
	}
	if info.Size() < id3HeaderSize {
		return model.FileInput{Path: path}, nil
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true, ParseFrames: readFrames})
	if err != nil {
		return model.FileInput{}, err
	}
	defer tag.Close()

	text := func(id string) string {
		return strings.TrimSpace(tag.GetTextFrame(id).Text)
	}

	in := model.FileInput{
		Path:        path,
		Artist:      text("TPE1"),
		AlbumArtist: text("TPE2"),
		Album:       text("TALB"),
		Title:       text("TIT2"),
	}

	in.Year = parseYear(text("TDRC"))
	if in.Year == 0 {
		in.Year = parseYear(text("TYER"))
	}
	in.TrackNumber, in.TotalTracks = parsePosition(text("TRCK"))
	in.DiscNumber, in.TotalDiscs = parsePosition(text("TPOS"))

	return in, nil
}

// parseYear takes the leading year of a timestamp such as "1971" or
// "1971-10-30". It returns 0 if there is none.
func parseYear(s string) int {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		end = len(s)
	}
	year, err := strconv.Atoi(s[:end])
	if err != nil || year < 0 {
		return 0
	}
	return year
}

// parsePosition splits "7/12" into 7 and 12. Missing or malformed parts
// are returned as 0.
func parsePosition(s string) (number, total int) {
	num, tot, found := strings.Cut(s, "/")
	number = atoiOrZero(num)
	if found {
		total = atoiOrZero(tot)
	}
	return number, total
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
