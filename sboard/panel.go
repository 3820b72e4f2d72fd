package sboard

import (
	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
	"github.com/stagekit/harmony/internal/nodegraph"
	"github.com/stagekit/harmony/internal/warp"
)

// Panel is one drawing unit of a scene, placed on the scene's internal
// timeline.
type Panel struct {
	el    *etree.Element
	scene *Scene
}

// XMLElement returns the backing tree element.
func (p *Panel) XMLElement() *etree.Element {
	return p.el
}

// Scene returns the scene the panel belongs to.
func (p *Panel) Scene() *Scene {
	return p.scene
}

// UID returns the unique identifier of the panel.
func (p *Panel) UID() (string, error) {
	return attr.String(p.el, "id")
}

// Length returns the number of frames of the panel.
func (p *Panel) Length() (int, error) {
	return attr.Int(p.el, "nbframes")
}

// Number returns the 1-based position of the panel within its scene.
func (p *Panel) Number() (int, error) {
	uid, err := p.UID()
	if err != nil {
		return 0, err
	}
	panels, err := p.scene.Panels()
	if err != nil {
		return 0, err
	}
	for k, panel := range panels {
		other, err := panel.UID()
		if err != nil {
			return 0, err
		}
		if other == uid {
			return k + 1, nil
		}
	}
	return 0, errors.Newf(errors.CodeRecordNotFound, "panel %q is not on its scene timeline", uid)
}

// SceneRange returns the frame range of the panel relative to its scene,
// from the exposures of the panel's warp record on the scene timeline.
func (p *Panel) SceneRange() (FrameRange, error) {
	timeline, err := p.scene.timeline()
	if err != nil {
		return FrameRange{}, err
	}
	uid, err := p.UID()
	if err != nil {
		return FrameRange{}, err
	}
	start, end, err := warp.ExposureRange(timeline, uid)
	if err != nil {
		return FrameRange{}, err
	}
	return FrameRange{Start: start, End: end}, nil
}

// ClipRange returns the window of the panel used on the scene timeline.
func (p *Panel) ClipRange() (FrameRange, error) {
	timeline, err := p.scene.timeline()
	if err != nil {
		return FrameRange{}, err
	}
	uid, err := p.UID()
	if err != nil {
		return FrameRange{}, err
	}
	start, end, err := warp.StartEnd(timeline, uid)
	if err != nil {
		return FrameRange{}, err
	}
	return FrameRange{Start: start, End: end}, nil
}

// TimelineRange returns the placement of the panel on the global project
// timeline. The scene's global range and the panel's scene-local range
// live in different subtrees; the absolute position is their sum:
//
//	start = scene.TimelineRange().Start + panel.SceneRange().Start
//	end   = start + panel.Length()
func (p *Panel) TimelineRange() (FrameRange, error) {
	sceneRange, err := p.scene.TimelineRange()
	if err != nil {
		return FrameRange{}, err
	}
	localRange, err := p.SceneRange()
	if err != nil {
		return FrameRange{}, err
	}
	length, err := p.Length()
	if err != nil {
		return FrameRange{}, err
	}
	start := sceneRange.Start + localRange.Start
	return FrameRange{Start: start, End: start + length}, nil
}

// rootgroup returns the graph root of the panel's layer graph.
func (p *Panel) rootgroup() (*nodegraph.Node, error) {
	group, err := attr.Child(p.el, "./rootgroup")
	if err != nil {
		return nil, err
	}
	return nodegraph.NewRoot(group), nil
}

// Layers returns the root layers of the panel. Layers claimed as a link
// child of a group are reachable through their group, not listed at the
// root. Groups are included only when groups is set; leaves are always
// included; recursion descends into groups either way.
func (p *Panel) Layers(groups, recursive bool) ([]*Layer, error) {
	root, err := p.rootgroup()
	if err != nil {
		return nil, err
	}

	claimed := make(map[string]bool)
	for _, link := range root.Links() {
		claimed[link.In] = true
	}

	var roots []*Layer
	for node := range root.Children(false) {
		name, err := node.Name()
		if err != nil {
			return nil, err
		}
		if claimed[name] {
			continue
		}
		roots = append(roots, &Layer{node: node, panel: p})
	}
	return filterLayers(roots, groups, recursive)
}

// filterLayers applies the group and recursion rules shared by panel and
// layer iteration.
func filterLayers(layers []*Layer, groups, recursive bool) ([]*Layer, error) {
	var out []*Layer
	for _, layer := range layers {
		isGroup, err := layer.IsGroup()
		if err != nil {
			return nil, err
		}
		if !isGroup {
			out = append(out, layer)
			continue
		}
		if groups {
			out = append(out, layer)
		}
		if recursive {
			children, err := layer.children()
			if err != nil {
				return nil, err
			}
			nested, err := filterLayers(children, groups, recursive)
			if err != nil {
				return nil, err
			}
			out = append(out, nested...)
		}
	}
	return out, nil
}
