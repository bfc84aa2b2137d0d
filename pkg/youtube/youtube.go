package youtube

import (
	"net/url"
	"regexp"
	"strings"
)

// FallbackThumbnail is returned by Thumbnail when no video id can be extracted.
const FallbackThumbnail = "/images/genetic-image.png"

// Video ids are exactly 11 characters from the YouTube id alphabet.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID extracts the canonical 11-character video id from a YouTube
// URL. It accepts the shapes administrators actually paste: full watch links,
// youtu.be short links, shorts links and embed/v player links. It returns
// ("", false) for anything it cannot parse; it never panics.
func ExtractVideoID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	var id string
	switch host {
	case "youtu.be":
		id = firstSegment(u.Path)
	case "youtube.com", "m.youtube.com":
		segs := pathSegments(u.Path)
		switch {
		case len(segs) > 0 && segs[0] == "watch":
			id = u.Query().Get("v")
		case len(segs) > 1 && (segs[0] == "shorts" || segs[0] == "embed" || segs[0] == "v" || segs[0] == "live"):
			id = segs[1]
		}
	default:
		return "", false
	}

	if !idPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

// Thumbnail derives the display thumbnail for a YouTube URL. When no id can be
// extracted it returns a fixed placeholder path. Deterministic, no I/O.
func Thumbnail(raw string) string {
	id, ok := ExtractVideoID(raw)
	if !ok {
		return FallbackThumbnail
	}
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}

func pathSegments(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func firstSegment(p string) string {
	segs := pathSegments(p)
	if len(segs) == 0 {
		return ""
	}
	return segs[0]
}
