package sboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stagekit/harmony/sboard"
)

func timeline(t *testing.T) *sboard.Timeline {
	t.Helper()
	tl, err := project(t).Timeline()
	require.NoError(t, err)
	return tl
}

func TestTimeline(t *testing.T) {
	tl := timeline(t)

	uid, err := tl.UID()
	require.NoError(t, err)
	assert.Equal(t, "top01", uid)

	length, err := tl.Length()
	require.NoError(t, err)
	assert.Equal(t, 48, length)
}

func TestTimelineScenesOrder(t *testing.T) {
	tl := timeline(t)

	scenes, err := tl.Scenes()
	require.NoError(t, err)
	assert.Equal(t, []string{"SC_001", "SC_002"}, sceneNames(t, scenes))
}

func TestTimelinePanels(t *testing.T) {
	tl := timeline(t)

	panels, err := tl.Panels()
	require.NoError(t, err)
	require.Len(t, panels, 3)

	var uids []string
	for _, panel := range panels {
		uid, err := panel.UID()
		require.NoError(t, err)
		uids = append(uids, uid)
	}
	assert.Equal(t, []string{"pn01uid", "pn02uid", "pn03uid"}, uids)
}

func TestVideoTracks(t *testing.T) {
	tl := timeline(t)

	tracks, err := tl.VideoTracks()
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	name, err := tracks[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "Video-A", name)

	uid, err := tracks[0].UID()
	require.NoError(t, err)
	assert.Equal(t, "videoColA", uid)

	enabled, err := tracks[0].IsEnabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	// Video-B carries a disabled marker in its options.
	enabled, err = tracks[1].IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestVideoClips(t *testing.T) {
	tl := timeline(t)

	tracks, err := tl.VideoTracks()
	require.NoError(t, err)

	clips, err := tracks[0].Clips()
	require.NoError(t, err)
	require.Len(t, clips, 2)

	uid, err := clips[0].UID()
	require.NoError(t, err)
	assert.Equal(t, "vc01uid", uid)

	bounds, err := clips[0].TimelineRange()
	require.NoError(t, err)
	assert.Equal(t, sboard.FrameRange{Start: 1, End: 12}, bounds)

	window, err := clips[0].ClipRange()
	require.NoError(t, err)
	assert.Equal(t, sboard.FrameRange{Start: 1, End: 12}, window)

	length, err := clips[0].Length()
	require.NoError(t, err)
	assert.Equal(t, 12, length)

	// Single frame exposure collapses to a one frame range.
	bounds, err = clips[1].TimelineRange()
	require.NoError(t, err)
	assert.Equal(t, sboard.FrameRange{Start: 13, End: 13}, bounds)

	empty, err := tracks[1].Clips()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestVideoClipElement(t *testing.T) {
	tl := timeline(t)

	tracks, err := tl.VideoTracks()
	require.NoError(t, err)
	clips, err := tracks[0].Clips()
	require.NoError(t, err)

	element, err := clips[0].Element()
	require.NoError(t, err)

	name, err := element.Name()
	require.NoError(t, err)
	assert.Equal(t, "shotA", name)

	path, err := clips[0].Path()
	require.NoError(t, err)
	assert.Equal(t, "elements/clips/shotA.mov", path)
}

func TestAudioTracks(t *testing.T) {
	tl := timeline(t)

	tracks, err := tl.AudioTracks()
	require.NoError(t, err)
	require.Len(t, tracks, 2)

	name, err := tracks[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "audio1", name)

	enabled, err := tracks[0].IsEnabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = tracks[1].IsEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestAudioClips(t *testing.T) {
	tl := timeline(t)

	tracks, err := tl.AudioTracks()
	require.NoError(t, err)

	clips, err := tracks[0].Clips()
	require.NoError(t, err)
	require.Len(t, clips, 1)

	fileName, err := clips[0].FileName()
	require.NoError(t, err)
	assert.Equal(t, "mix.wav", fileName)

	path, err := clips[0].Path()
	require.NoError(t, err)
	assert.Equal(t, "audio/mix.wav", path)

	window, err := clips[0].ClipRange()
	require.NoError(t, err)
	assert.Equal(t, sboard.TimeRange{Start: 0.5, End: 2.5}, window)

	bounds, err := clips[0].TimelineRange()
	require.NoError(t, err)
	assert.Equal(t, sboard.FrameRange{Start: 1, End: 49}, bounds)

	length, err := clips[0].Length()
	require.NoError(t, err)
	assert.Equal(t, 48, length)

	empty, err := tracks[1].Clips()
	require.NoError(t, err)
	assert.Empty(t, empty)
}
