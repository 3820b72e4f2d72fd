package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeScene(t *testing.T) {
	var out strings.Builder
	err := summarize(&out, "../../testdata/scene.xstage")
	require.NoError(t, err)

	assert.Equal(t, strings.Join([]string{
		"scene 0b0e5000b1861eda frames 1-60",
		"  column Drawing type 0 element Drawing",
		"  element Drawing at elements/Drawing",
		"",
	}, "\n"), out.String())
}

func TestSummarizeBoard(t *testing.T) {
	var out strings.Builder
	err := summarize(&out, "../../sboard/testdata/project.sboard")
	require.NoError(t, err)

	assert.Contains(t, out.String(), `project "Flying Colors" at 24 fps`)
	assert.Contains(t, out.String(), "sequence SEQ_A")
	assert.Contains(t, out.String(), "  scene SC_001 frames 1-24")
	assert.Contains(t, out.String(), "    panel 1 frames 2-18 BG CH")
	assert.Contains(t, out.String(), "video track Video-A enabled=true")
	assert.Contains(t, out.String(), "  clip frames 1-12 elements/clips/shotA.mov")
	assert.Contains(t, out.String(), "audio track audio2 enabled=false")
}

func TestSummarizeUnknownExtension(t *testing.T) {
	var out strings.Builder
	err := summarize(&out, "project.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestUsageErrors(t *testing.T) {
	var ran bool
	cmd := newRootCmd(&ran)
	cmd.SetArgs([]string{"scene"})
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.False(t, ran)
}
