package extract

import (
    "errors"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

type fakeDoc struct {
    pages    []string
    errPages map[int]bool
}

func (d *fakeDoc) NumPage() int { return len(d.pages) }

func (d *fakeDoc) Text(page int) (string, error) {
    if d.errPages[page] {
        return "", errors.New("decode failed")
    }
    return d.pages[page], nil
}

func TestProbeDocTextLayer(t *testing.T) {
    long := strings.Repeat("tekst stranice ", 30)
    ok, res, err := probeDoc(&fakeDoc{pages: []string{long, long, long}}, 300)
    require.NoError(t, err)
    assert.True(t, ok)
    assert.Equal(t, 3, res.TotalPages)
    assert.GreaterOrEqual(t, res.SampleChars, 300)
}

func TestProbeDocScannedBook(t *testing.T) {
    // whitespace-only pages count zero runes
    ok, res, err := probeDoc(&fakeDoc{pages: []string{"  ", "\n\t", ""}}, 300)
    require.NoError(t, err)
    assert.False(t, ok)
    assert.Equal(t, 0, res.SampleChars)
}

func TestProbeDocEmptyDocument(t *testing.T) {
    ok, res, err := probeDoc(&fakeDoc{}, 0)
    require.NoError(t, err)
    assert.False(t, ok)
    assert.Equal(t, DefaultProbeThreshold, res.Threshold)
}

func TestProbeDocPageErrorSkipped(t *testing.T) {
    long := strings.Repeat("x", 400)
    ok, _, err := probeDoc(&fakeDoc{pages: []string{"", long, ""}, errPages: map[int]bool{0: true}}, 300)
    require.NoError(t, err)
    assert.True(t, ok)
}

func TestSampleIndices(t *testing.T) {
    assert.Equal(t, []int{0, 1, 2}, sampleIndices(3))
    assert.Empty(t, sampleIndices(0))

    idx := sampleIndices(100)
    require.Len(t, idx, 5)
    assert.Equal(t, 0, idx[0])
    assert.Contains(t, idx, 50)
    assert.Contains(t, idx, 99)
}

func TestNormalizePage(t *testing.T) {
    assert.Equal(t, "Nora ulazi u sobu.", NormalizePage("  Nora \n ulazi\tu   sobu.  "))
    assert.Equal(t, "", NormalizePage(" \n\t "))
}
