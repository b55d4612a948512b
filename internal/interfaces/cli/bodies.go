package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/jyotisha-io/grahakala/internal/domain/aspect"
	"github.com/jyotisha-io/grahakala/pkg/errors"
)

// parseBodies parses the --bodies flag syntax: a comma-separated list of
// NAME=LONGITUDE[@SPEED] entries, longitudes in degrees and speeds in
// degrees per day.
//
//	Sun=35.2@0.98,Moon=128.7@13.2,Mars=301.5
func parseBodies(spec string) ([]aspect.Body, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, errors.InvalidParam("bodies specification must not be empty")
	}

	entries := strings.Split(spec, ",")
	bodies := make([]aspect.Body, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		name, rest, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errors.InvalidParam("body entry must be NAME=LONGITUDE[@SPEED]: " + entry)
		}

		body := aspect.Body{Name: strings.TrimSpace(name)}
		lonPart, speedPart, hasSpeed := strings.Cut(rest, "@")

		lon, err := strconv.ParseFloat(strings.TrimSpace(lonPart), 64)
		if err != nil {
			return nil, errors.InvalidParam("invalid longitude in entry: " + entry)
		}
		body.Longitude = lon

		if hasSpeed {
			speed, err := strconv.ParseFloat(strings.TrimSpace(speedPart), 64)
			if err != nil {
				return nil, errors.InvalidParam("invalid speed in entry: " + entry)
			}
			body.Speed = &speed
		}

		if err := body.Validate(); err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return bodies, nil
}

// parseTime accepts RFC 3339 timestamps or bare dates.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, errors.InvalidParam("invalid time, want RFC 3339 or YYYY-MM-DD: " + s)
}

//Personal.AI order the ending
