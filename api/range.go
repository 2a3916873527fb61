package api

import (
	"strconv"
	"strings"

	"github.com/briarcliff-cloud/s3gateway/apierror"
)

// parseRange parses a single-range "bytes=start-end" Range header
// against an object of the given size. A missing or unparsable header
// yields (nil, nil, nil): the whole object is served.
func parseRange(header string, size int64) (start, end *int64, err error) {
	if header == "" {
		return nil, nil, nil
	}

	const prefix = "bytes="
	if !strings.HasPrefix(header, prefix) {
		return nil, nil, nil
	}

	spec := strings.TrimPrefix(header, prefix)
	if strings.Contains(spec, ",") {
		return nil, nil, nil
	}

	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return nil, nil, nil
	}

	var s, e int64
	if parts[0] == "" {
		suffix, perr := strconv.ParseInt(parts[1], 10, 64)
		if perr != nil {
			return nil, nil, nil
		}
		s = size - suffix
		if s < 0 {
			s = 0
		}
		e = size - 1
	} else {
		s, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return nil, nil, nil
		}
		if parts[1] == "" {
			e = size - 1
		} else {
			e, err = strconv.ParseInt(parts[1], 10, 64)
			if err != nil {
				return nil, nil, nil
			}
		}
	}

	if s < 0 || e >= size || s > e {
		return nil, nil, apierror.New(apierror.InvalidRange, "the requested range is not satisfiable", nil)
	}

	return &s, &e, nil
}
