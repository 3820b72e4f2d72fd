package sboard

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
	"github.com/stagekit/harmony/internal/warp"
)

// Scene is a collection of panels placed on the project timeline.
type Scene struct {
	el      *etree.Element
	project *Project
}

// XMLElement returns the backing tree element.
func (s *Scene) XMLElement() *etree.Element {
	return s.el
}

// Project returns the owning project.
func (s *Scene) Project() *Project {
	return s.project
}

// UID returns the unique identifier of the scene. Identifiers vary
// across projects and are not comparable between them.
func (s *Scene) UID() (string, error) {
	return attr.String(s.el, "id")
}

// Name returns the scene name from its scene info meta.
func (s *Scene) Name() (string, error) {
	info, err := attr.Child(s.el, "./metas/meta/sceneInfo")
	if err != nil {
		return "", err
	}
	return attr.String(info, "name")
}

// Length returns the number of frames of the scene.
func (s *Scene) Length() (int, error) {
	return attr.Int(s.el, "nbframes")
}

// TimelineRange returns the placement of the scene on the project
// timeline, from the exposures of its warp sequence record under Top.
func (s *Scene) TimelineRange() (FrameRange, error) {
	top, err := s.project.top()
	if err != nil {
		return FrameRange{}, err
	}
	uid, err := s.UID()
	if err != nil {
		return FrameRange{}, err
	}
	start, end, err := warp.ExposureRange(top, uid)
	if err != nil {
		return FrameRange{}, err
	}
	return FrameRange{Start: start, End: end}, nil
}

// ClipRange returns the window of the scene used on the project
// timeline, from the explicit start and end of its warp sequence record.
func (s *Scene) ClipRange() (FrameRange, error) {
	top, err := s.project.top()
	if err != nil {
		return FrameRange{}, err
	}
	uid, err := s.UID()
	if err != nil {
		return FrameRange{}, err
	}
	start, end, err := warp.StartEnd(top, uid)
	if err != nil {
		return FrameRange{}, err
	}
	return FrameRange{Start: start, End: end}, nil
}

// Sequence returns the sequence the scene belongs to.
func (s *Scene) Sequence() (Sequence, error) {
	info, err := attr.Child(s.el, "./metas/meta/sceneInfo")
	if err != nil {
		return Sequence{}, err
	}
	name, err := attr.String(info, "sequenceName")
	if err != nil {
		return Sequence{}, err
	}
	return Sequence{project: s.project, name: name}, nil
}

// timeline returns the scene's internal timeline: its first column of
// type 0, holding the warp sequence records of the scene's panels.
func (s *Scene) timeline() (*etree.Element, error) {
	column := attr.Find(s.el, "./columns/column[@type='0']")
	if column == nil {
		return nil, errors.Newf(errors.CodeMissingChild, "scene has no timeline column of type 0")
	}
	return column, nil
}

// Panels returns the panels of the scene, ordered by the warp sequence
// records of the scene's own timeline, not by the order panel elements
// appear in the global scene table.
func (s *Scene) Panels() ([]*Panel, error) {
	timeline, err := s.timeline()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*etree.Element)
	for _, el := range s.project.el.FindElements("./scenes/scene") {
		name, err := attr.String(el, "name")
		if err != nil {
			return nil, err
		}
		if !strings.Contains(name, "panel") {
			continue
		}
		id, err := attr.String(el, "id")
		if err != nil {
			return nil, err
		}
		byID[id] = el
	}

	var panels []*Panel
	for _, record := range timeline.FindElements("./warpSeq") {
		id, err := attr.String(record, "id")
		if err != nil {
			return nil, err
		}
		el, ok := byID[id]
		if !ok {
			return nil, errors.Newf(errors.CodeRecordNotFound, "scene timeline references unknown panel id %q", id)
		}
		panels = append(panels, &Panel{el: el, scene: s})
	}
	return panels, nil
}

// Sequence is a virtual grouping of scenes sharing a sequence name. It
// has no element of its own: its identity is the name string, and two
// sequences of the same project are equal exactly when their names are.
type Sequence struct {
	project *Project
	name    string
}

// Name returns the sequence name.
func (q Sequence) Name() string {
	return q.name
}

// Project returns the owning project.
func (q Sequence) Project() *Project {
	return q.project
}

// Scenes returns the scenes belonging to this sequence, in project
// order.
func (q Sequence) Scenes() ([]*Scene, error) {
	scenes, err := q.project.Scenes()
	if err != nil {
		return nil, err
	}
	var matched []*Scene
	for _, scene := range scenes {
		seq, err := scene.Sequence()
		if err != nil {
			return nil, err
		}
		if seq.Name() == q.name {
			matched = append(matched, scene)
		}
	}
	return matched, nil
}
