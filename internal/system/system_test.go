package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, mod time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("<REAPER_PROJECT\n>"), 0644))
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func TestFindLatestProject(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	touch(t, filepath.Join(dir, "old.rpp"), base)
	touch(t, filepath.Join(dir, "new.RPP"), base.Add(time.Hour))
	touch(t, filepath.Join(dir, "newer.txt"), base.Add(2*time.Hour))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.rpp"), 0755))

	got, err := FindLatestProject(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "new.RPP"), got)
}

func TestFindLatestProject_Empty(t *testing.T) {
	_, err := FindLatestProject(t.TempDir())
	assert.ErrorContains(t, err, "no .rpp files")

	_, err = FindLatestProject(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDefaultOutputPath(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 3, 7, 0, time.UTC)
	got := DefaultOutputPath("output", "input/rpp/my song.rpp", now)
	assert.Equal(t, filepath.Join("output", "my_song_2024-05-01_09-03-07.object"), got)
}

func TestBufferPool(t *testing.T) {
	p := NewBufferPool()

	buf := p.Get()
	buf.WriteString("leftover")
	p.Put(buf)

	again := p.Get()
	assert.Zero(t, again.Len())

	big := p.Get()
	big.Grow(maxPooledBuffer + 1)
	p.Put(big)
	p.Put(nil)

	shared := GetBuffer()
	assert.Zero(t, shared.Len())
	PutBuffer(shared)
}
