package sboard

import (
	"path/filepath"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
	"github.com/stagekit/harmony/internal/warp"
)

// VideoClip is one clip of a video track. The clip is backed by a scene
// element of the global scene table, but its bounds live in the warp
// sequence records of the project timeline, not on the clip's own
// element.
type VideoClip struct {
	el    *etree.Element
	track *VideoTrack
}

// XMLElement returns the backing tree element.
func (c *VideoClip) XMLElement() *etree.Element {
	return c.el
}

// Track returns the track of the clip.
func (c *VideoClip) Track() *VideoTrack {
	return c.track
}

// UID returns the unique identifier of the clip.
func (c *VideoClip) UID() (string, error) {
	return attr.String(c.el, "id")
}

// Length returns the number of frames of the clip.
func (c *VideoClip) Length() (int, error) {
	return attr.Int(c.el, "nbframes")
}

// TimelineRange returns the placement of the clip on the project
// timeline, from the exposures of its warp sequence record.
func (c *VideoClip) TimelineRange() (FrameRange, error) {
	uid, err := c.UID()
	if err != nil {
		return FrameRange{}, err
	}
	start, end, err := warp.ExposureRange(c.track.timeline.el, uid)
	if err != nil {
		return FrameRange{}, err
	}
	return FrameRange{Start: start, End: end}, nil
}

// ClipRange returns the window of the clip media used on the timeline.
func (c *VideoClip) ClipRange() (FrameRange, error) {
	uid, err := c.UID()
	if err != nil {
		return FrameRange{}, err
	}
	start, end, err := warp.StartEnd(c.track.timeline.el, uid)
	if err != nil {
		return FrameRange{}, err
	}
	return FrameRange{Start: start, End: end}, nil
}

// Element returns the library element holding the clip media. The first
// sequence node of the clip's type 0 column carries the category id and
// element name resolved against the project library.
func (c *VideoClip) Element() (*LibraryElement, error) {
	column := attr.Find(c.el, "./columns/column[@type='0']")
	if column == nil {
		return nil, errors.Newf(errors.CodeMissingChild, "video clip has no media column of type 0")
	}
	children := column.ChildElements()
	if len(children) == 0 {
		return nil, errors.Newf(errors.CodeMissingChild, "video clip media column has no sequence node")
	}
	media := children[0]

	categoryID, err := attr.String(media, "id")
	if err != nil {
		return nil, err
	}
	elementName, err := attr.String(media, "val")
	if err != nil {
		return nil, err
	}

	library, err := c.track.timeline.project.Library()
	if err != nil {
		return nil, err
	}
	category, err := library.CategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	return category.ElementByName(elementName)
}

// Path returns the path of the clip media relative to the project file.
func (c *VideoClip) Path() (string, error) {
	element, err := c.Element()
	if err != nil {
		return "", err
	}
	return element.Path()
}

// AudioClip is one clip of an audio track, backed by a sound sequence
// record. Audio media lives next to the project file, outside the
// library.
type AudioClip struct {
	el    *etree.Element
	track *AudioTrack
}

// XMLElement returns the backing tree element.
func (c *AudioClip) XMLElement() *etree.Element {
	return c.el
}

// Track returns the track of the clip.
func (c *AudioClip) Track() *AudioTrack {
	return c.track
}

// FileName returns the file name of the clip media.
func (c *AudioClip) FileName() (string, error) {
	return attr.String(c.el, "name")
}

// Path returns the path of the media file relative to the project file.
func (c *AudioClip) Path() (string, error) {
	name, err := c.FileName()
	if err != nil {
		return "", err
	}
	return filepath.Join("audio", name), nil
}

// ClipRange returns the clipping window inside the media, in seconds.
func (c *AudioClip) ClipRange() (TimeRange, error) {
	start, err := attr.Float(c.el, "clippingTimeStart")
	if err != nil {
		return TimeRange{}, err
	}
	end, err := attr.Float(c.el, "clippingTimeStop")
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// TimelineRange returns the placement of the clip on the project
// timeline.
func (c *AudioClip) TimelineRange() (FrameRange, error) {
	start, err := attr.Int(c.el, "startFrame")
	if err != nil {
		return FrameRange{}, err
	}
	end, err := attr.Int(c.el, "stopFrame")
	if err != nil {
		return FrameRange{}, err
	}
	return FrameRange{Start: start, End: end}, nil
}

// Length returns the number of frames covered by the clip.
func (c *AudioClip) Length() (int, error) {
	bounds, err := c.TimelineRange()
	if err != nil {
		return 0, err
	}
	return bounds.End - bounds.Start, nil
}
