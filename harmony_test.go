package harmony_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagekit/harmony"
	"github.com/stagekit/harmony/errors"
)

const sceneFixture = "testdata/scene.xstage"

func scene(t *testing.T) *harmony.Scene {
	t.Helper()
	s, err := harmony.ParseFile(sceneFixture)
	require.NoError(t, err)
	return s
}

func TestParseFile(t *testing.T) {
	s := scene(t)

	id, err := s.ID()
	require.NoError(t, err)
	assert.Equal(t, "0b0e5000b1861eda", id)

	start, err := s.StartFrame()
	require.NoError(t, err)
	assert.Equal(t, 1, start)

	end, err := s.EndFrame()
	require.NoError(t, err)
	assert.Equal(t, 60, end)
}

func TestParseReader(t *testing.T) {
	raw, err := os.ReadFile(sceneFixture)
	require.NoError(t, err)

	s, err := harmony.Parse(strings.NewReader(string(raw)))
	require.NoError(t, err)

	id, err := s.ID()
	require.NoError(t, err)
	assert.Equal(t, "0b0e5000b1861eda", id)
}

func TestParseMalformedXMLPropagates(t *testing.T) {
	_, err := harmony.Parse(strings.NewReader("<project><scenes></project>"))
	require.Error(t, err)

	// Parse failures are the underlying XML error, not a coded one.
	_, ok := errors.As(err)
	assert.False(t, ok)
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := harmony.Parse(strings.NewReader(""))
	require.Error(t, err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := harmony.ParseFile("testdata/absent.xstage")
	require.Error(t, err)
}

func TestMissingSceneRootIsStructural(t *testing.T) {
	s, err := harmony.Parse(strings.NewReader("<project><scenes/></project>"))
	require.NoError(t, err)

	_, err = s.ID()
	assert.True(t, errors.HasCode(err, errors.CodeMissingChild))
}
