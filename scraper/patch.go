// Package scraper collects patch metadata from the public patch notes index.
// Version decoding is pure so it can run offline against stored pages.
package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Patch identifies one game patch, e.g. "26.03".
type Patch struct {
	Season int    `json:"season"`
	Number int    `json:"number"`
	URL    string `json:"url,omitempty"`
}

func (p Patch) String() string {
	return fmt.Sprintf("%d.%02d", p.Season, p.Number)
}

// Ordinal is a sortable encoding: later patches always compare higher.
func (p Patch) Ordinal() int {
	return p.Season*100 + p.Number
}

// Before reports whether p was released before other.
func (p Patch) Before(other Patch) bool {
	return p.Ordinal() < other.Ordinal()
}

var patchVersionRe = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})$`)

// ParsePatchVersion decodes a "season.number" version string.
func ParsePatchVersion(s string) (Patch, error) {
	m := patchVersionRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Patch{}, fmt.Errorf("malformed patch version %q", s)
	}
	season, _ := strconv.Atoi(m[1])
	number, _ := strconv.Atoi(m[2])
	if season == 0 || number == 0 {
		return Patch{}, fmt.Errorf("patch version %q has a zero component", s)
	}
	return Patch{Season: season, Number: number}, nil
}

// patchLinkRe matches patch note URLs like .../patch-26-03-notes/.
var patchLinkRe = regexp.MustCompile(`patch-(\d{1,2})-(\d{1,2})-notes`)

// patchFromLink decodes a patch note URL, returning ok=false for links that
// are not patch notes.
func patchFromLink(href string) (Patch, bool) {
	m := patchLinkRe.FindStringSubmatch(href)
	if m == nil {
		return Patch{}, false
	}
	season, _ := strconv.Atoi(m[1])
	number, _ := strconv.Atoi(m[2])
	if season == 0 || number == 0 {
		return Patch{}, false
	}
	return Patch{Season: season, Number: number, URL: href}, true
}

// Latest returns the highest-ordinal patch in the list.
func Latest(patches []Patch) (Patch, bool) {
	if len(patches) == 0 {
		return Patch{}, false
	}
	best := patches[0]
	for _, p := range patches[1:] {
		if best.Before(p) {
			best = p
		}
	}
	return best, true
}
