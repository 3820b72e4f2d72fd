package sboard

import (
	"github.com/beevik/etree"

	"github.com/stagekit/harmony/internal/attr"
)

// topLayerName is the synthetic module of the Top group that does not
// represent a video track.
const topLayerName = "TopLayer"

// Timeline is the global timeline of the project, backed by the Top
// scene element.
type Timeline struct {
	el      *etree.Element
	project *Project
}

// XMLElement returns the backing tree element.
func (t *Timeline) XMLElement() *etree.Element {
	return t.el
}

// Project returns the owning project.
func (t *Timeline) Project() *Project {
	return t.project
}

// UID returns the unique identifier of the timeline.
func (t *Timeline) UID() (string, error) {
	return attr.String(t.el, "id")
}

// Length returns the number of frames on the timeline.
func (t *Timeline) Length() (int, error) {
	return attr.Int(t.el, "nbframes")
}

// VideoTracks returns the video tracks of the timeline: the modules of
// the Top group other than the top layer, in document order.
func (t *Timeline) VideoTracks() ([]*VideoTrack, error) {
	var tracks []*VideoTrack
	for _, el := range t.el.FindElements("./rootgroup/nodeslist/module") {
		name, err := attr.String(el, "name")
		if err != nil {
			return nil, err
		}
		if name == topLayerName {
			continue
		}
		tracks = append(tracks, &VideoTrack{el: el, timeline: t})
	}
	return tracks, nil
}

// AudioTracks returns the audio tracks of the timeline: its columns of
// type 1, in the order they appear in the project.
func (t *Timeline) AudioTracks() ([]*AudioTrack, error) {
	var tracks []*AudioTrack
	for _, el := range t.el.FindElements("./columns/column[@type='1']") {
		tracks = append(tracks, &AudioTrack{el: el, timeline: t})
	}
	return tracks, nil
}

// Scenes returns the scenes placed on the timeline, in the order of
// their warp sequence records. Records referencing non-scene entities
// (clip media) are skipped.
func (t *Timeline) Scenes() ([]*Scene, error) {
	scenes, err := t.project.Scenes()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*Scene, len(scenes))
	for _, scene := range scenes {
		uid, err := scene.UID()
		if err != nil {
			return nil, err
		}
		byID[uid] = scene
	}

	var ordered []*Scene
	for _, record := range t.el.FindElements(".//warpSeq") {
		id, err := attr.String(record, "id")
		if err != nil {
			return nil, err
		}
		scene, ok := byID[id]
		if !ok {
			continue
		}
		ordered = append(ordered, scene)
	}
	return ordered, nil
}

// Panels returns the panels on the timeline: scene order, then panel
// order within each scene.
func (t *Timeline) Panels() ([]*Panel, error) {
	scenes, err := t.Scenes()
	if err != nil {
		return nil, err
	}
	var panels []*Panel
	for _, scene := range scenes {
		scenePanels, err := scene.Panels()
		if err != nil {
			return nil, err
		}
		panels = append(panels, scenePanels...)
	}
	return panels, nil
}
