package ratelimit

import (
	"strconv"
	"strings"
)

// record is the persisted unit of state per (policy, identifier) pair,
// serialized as "<count>:<windowStart>".
type record struct {
	Count       int64
	WindowStart int64
}

func (r record) encode() string {
	return strconv.FormatInt(r.Count, 10) + ":" + strconv.FormatInt(r.WindowStart, 10)
}

// parseRecord decodes a stored value. A value that does not parse into the
// two expected integer fields is treated the same as an absent record, so
// corrupted or legacy entries start a fresh window instead of failing.
func parseRecord(value string) (record, bool) {
	count, windowStart, ok := strings.Cut(value, ":")
	if !ok {
		return record{}, false
	}

	c, err := strconv.ParseInt(count, 10, 64)
	if err != nil {
		return record{}, false
	}

	w, err := strconv.ParseInt(windowStart, 10, 64)
	if err != nil {
		return record{}, false
	}

	return record{Count: c, WindowStart: w}, true
}
