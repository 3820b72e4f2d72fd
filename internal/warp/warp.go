// Package warp resolves warp sequence records: link records that place an
// entity id on a timeline. The record for a given id may live anywhere
// under the timeline element, typically inside one of its columns, so the
// search covers the whole subtree.
package warp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/stagekit/harmony/errors"
	"github.com/stagekit/harmony/internal/attr"
)

// Find locates the warp sequence record for the given id under timeline.
// The first match wins when the source data carries duplicates.
func Find(timeline *etree.Element, id string) (*etree.Element, error) {
	record := timeline.FindElement(fmt.Sprintf(".//warpSeq[@id='%s']", id))
	if record == nil {
		return nil, errors.Newf(errors.CodeRecordNotFound, "no warp sequence record for id %q under <%s>", id, timeline.Tag)
	}
	return record, nil
}

// ExposureRange returns the frame range of the record for id, parsed from
// its exposures field: "N" yields (N, N), "N-M" yields (N, M).
func ExposureRange(timeline *etree.Element, id string) (start, end int, err error) {
	record, err := Find(timeline, id)
	if err != nil {
		return 0, 0, err
	}
	exposures, err := attr.String(record, "exposures")
	if err != nil {
		return 0, 0, err
	}
	return ParseExposures(exposures)
}

// StartEnd returns the explicit start and end attributes of the record for
// id. This is the placement window of a clip on its timeline.
func StartEnd(timeline *etree.Element, id string) (start, end int, err error) {
	record, err := Find(timeline, id)
	if err != nil {
		return 0, 0, err
	}
	if start, err = attr.Int(record, "start"); err != nil {
		return 0, 0, err
	}
	if end, err = attr.Int(record, "end"); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// ParseExposures parses an exposure spec of the form "N" or "N-M".
func ParseExposures(exposures string) (start, end int, err error) {
	first, rest, dashed := strings.Cut(exposures, "-")

	start, err = strconv.Atoi(first)
	if err != nil {
		return 0, 0, errors.Newf(errors.CodeInvalidAttribute, "exposures %q is not of the form N or N-M", exposures)
	}
	if !dashed {
		return start, start, nil
	}
	end, err = strconv.Atoi(rest)
	if err != nil {
		return 0, 0, errors.Newf(errors.CodeInvalidAttribute, "exposures %q is not of the form N or N-M", exposures)
	}
	return start, end, nil
}
