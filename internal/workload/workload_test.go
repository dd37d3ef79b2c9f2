// SPDX-License-Identifier: MIT

package workload_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fragmerge/builder"
	"github.com/katalvlaran/fragmerge/internal/workload"
)

const prototypeYAML = `
fragments:
  - sources: [a1]
    labels: [a1]
  - sources: [a2]
    labels: [a2]
  - sources: [a3]
    labels: [a3]
  - sources: [a1, a2]
    labels: [a12]
  - sources: [a2, a3]
    labels: [a23]
`

func TestParse(t *testing.T) {
	w, err := workload.Parse([]byte(prototypeYAML))
	require.NoError(t, err)
	require.Len(t, w.Fragments, 5)
	assert.False(t, w.HasMustCover())

	base := w.Base()
	require.Len(t, base, 5)
	assert.Equal(t, "<{a1, a2}, {a12}>", base[3].String())
}

func TestParse_MustCoverAndErrors(t *testing.T) {
	w, err := workload.Parse([]byte("fragments:\n  - sources: [x]\nmustcover: [x]\n"))
	require.NoError(t, err)
	assert.True(t, w.HasMustCover())
	assert.Equal(t, []string{"x"}, w.MustCover)
	assert.Equal(t, 0, w.Base()[0].NumLabels())

	_, err = workload.Parse([]byte("fragments: []\n"))
	assert.ErrorIs(t, err, workload.ErrNoFragments)

	_, err = workload.Parse([]byte("fragments: {"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.yaml")
	require.NoError(t, os.WriteFile(path, []byte(prototypeYAML), 0o644))

	w, err := workload.Load(path)
	require.NoError(t, err)
	assert.Len(t, w.Fragments, 5)

	_, err = workload.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	frags, err := builder.Chain(3, builder.WithIDScheme(builder.OneBasedIDFn("a")))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, workload.FromFragments(frags).Write(&buf))

	back, err := workload.Parse(buf.Bytes())
	require.NoError(t, err)
	base := back.Base()
	require.Len(t, base, len(frags))
	for i := range frags {
		assert.True(t, frags[i].Equal(base[i]), "fragment %d", i)
	}
	assert.Equal(t, []string{"a1", "a2"}, back.Fragments[3].Sources)
}
