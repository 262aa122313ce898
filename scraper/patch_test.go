package scraper

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParsePatchVersion(t *testing.T) {
	p, err := ParsePatchVersion("26.03")
	require.NoError(t, err)
	require.Equal(t, 26, p.Season)
	require.Equal(t, 3, p.Number)
	require.Equal(t, "26.03", p.String())
	require.Equal(t, 2603, p.Ordinal())
}

func TestParsePatchVersionRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "26", "26.03.1", "v26.03", "0.5", "26.0"} {
		_, err := ParsePatchVersion(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestPatchOrdering(t *testing.T) {
	older, _ := ParsePatchVersion("25.24")
	newer, _ := ParsePatchVersion("26.01")

	require.True(t, older.Before(newer))
	require.False(t, newer.Before(older))
}

func TestPatchFromLink(t *testing.T) {
	p, ok := patchFromLink("/en-us/news/game-updates/patch-26-03-notes/")
	require.True(t, ok)
	require.Equal(t, "26.03", p.String())

	_, ok = patchFromLink("/en-us/news/game-updates/season-preview/")
	require.False(t, ok)
}

func TestLatest(t *testing.T) {
	a, _ := ParsePatchVersion("25.24")
	b, _ := ParsePatchVersion("26.03")
	c, _ := ParsePatchVersion("26.01")

	latest, ok := Latest([]Patch{a, b, c})
	require.True(t, ok)
	require.Equal(t, "26.03", latest.String())

	_, ok = Latest(nil)
	require.False(t, ok)
}

const indexPage = `
<html><body>
  <a href="/en-us/news/game-updates/patch-26-03-notes/">Patch 26.03 notes</a>
  <a href="/en-us/news/game-updates/patch-26-02-notes/">Patch 26.02 notes</a>
  <a href="/en-us/news/game-updates/patch-26-03-notes/">Patch 26.03 notes (dup)</a>
  <a href="/en-us/news/esports/worlds-recap/">Worlds recap</a>
  <a href="/en-us/news/game-updates/patch-25-24-notes/">Patch 25.24 notes</a>
</body></html>`

func TestParseIndexExtractsSortedUniquePatches(t *testing.T) {
	w := NewWorker(DefaultConfig(), zerolog.Nop())

	patches, err := w.parseIndex(strings.NewReader(indexPage))
	require.NoError(t, err)
	require.Len(t, patches, 3)
	require.Equal(t, "26.03", patches[0].String())
	require.Equal(t, "26.02", patches[1].String())
	require.Equal(t, "25.24", patches[2].String())
}

func TestParseIndexRespectsMaxPatches(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPatches = 1
	w := NewWorker(cfg, zerolog.Nop())

	patches, err := w.parseIndex(strings.NewReader(indexPage))
	require.NoError(t, err)
	require.Len(t, patches, 1)
	require.Equal(t, "26.03", patches[0].String())
}
