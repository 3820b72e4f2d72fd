package sboard

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
)

// VideoTrack is a video track of the project timeline, backed by a
// module of the Top group. The track's clips live in the column the
// module's drawing attribute points at.
type VideoTrack struct {
	el       *etree.Element
	timeline *Timeline
}

// XMLElement returns the backing tree element.
func (v *VideoTrack) XMLElement() *etree.Element {
	return v.el
}

// Timeline returns the timeline of the track.
func (v *VideoTrack) Timeline() *Timeline {
	return v.timeline
}

// UID returns the identifier of the track: the name of the column
// holding its clip sequence.
func (v *VideoTrack) UID() (string, error) {
	element, err := attr.Child(v.el, "./attrs/drawing/element")
	if err != nil {
		return "", err
	}
	return attr.String(element, "col")
}

// Name returns the track name.
func (v *VideoTrack) Name() (string, error) {
	return attr.String(v.el, "name")
}

// IsEnabled reports whether the track is enabled. A track is disabled by
// the presence of a disabled marker in its options; absence means
// enabled.
func (v *VideoTrack) IsEnabled() (bool, error) {
	return attr.Find(v.el, "./options/disabled[@val='true']") == nil, nil
}

// Clips returns the clips of the track, in the order of the warp
// sequence records of the track's column. A record referencing no known
// clip element indicates a partially unlinked project.
func (v *VideoTrack) Clips() ([]*VideoClip, error) {
	uid, err := v.UID()
	if err != nil {
		return nil, err
	}
	column := attr.Find(v.timeline.el, fmt.Sprintf("./columns/column[@name='%s']", uid))
	if column == nil {
		return nil, errors.Newf(errors.CodeColumnNotFound, "timeline has no column named %q for video track", uid)
	}

	byID := make(map[string]*etree.Element)
	for _, el := range v.timeline.project.el.FindElements("./scenes/scene") {
		id, err := attr.String(el, "id")
		if err != nil {
			return nil, err
		}
		byID[id] = el
	}

	var clips []*VideoClip
	for _, record := range column.FindElements("./warpSeq") {
		id, err := attr.String(record, "id")
		if err != nil {
			return nil, err
		}
		el, ok := byID[id]
		if !ok {
			return nil, errors.Newf(errors.CodeRecordNotFound, "video track column references unknown clip id %q", id)
		}
		clips = append(clips, &VideoClip{el: el, track: v})
	}
	return clips, nil
}

// AudioTrack is an audio track of the project timeline, backed by a
// column of type 1 under the Top scene.
type AudioTrack struct {
	el       *etree.Element
	timeline *Timeline
}

// XMLElement returns the backing tree element.
func (a *AudioTrack) XMLElement() *etree.Element {
	return a.el
}

// Timeline returns the timeline of the track.
func (a *AudioTrack) Timeline() *Timeline {
	return a.timeline
}

// Name returns the track name.
func (a *AudioTrack) Name() (string, error) {
	return attr.String(a.el, "name")
}

// IsEnabled reports whether the track is enabled. The disabled attribute
// is parsed as a boolean; a missing attribute means enabled.
func (a *AudioTrack) IsEnabled() (bool, error) {
	disabled := a.el.SelectAttr("disabled")
	if disabled == nil {
		return true, nil
	}
	return disabled.Value != "true", nil
}

// Clips returns the clips of the track in document order.
func (a *AudioTrack) Clips() ([]*AudioClip, error) {
	var clips []*AudioClip
	for _, el := range a.el.FindElements("./soundSequence") {
		clips = append(clips, &AudioClip{el: el, track: a})
	}
	return clips, nil
}
