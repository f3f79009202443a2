package tdx

import (
	"encoding/json"
	"time"
)

// Text is a TDX text field that arrives either as a plain JSON string or
// as a language-keyed object like {"Zh_tw": "...", "En": "..."}.
type Text struct {
	plain string
	zhTw  string
	en    string
}

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.plain = s
		return nil
	}

	var m struct {
		ZhTw string `json:"Zh_tw"`
		En   string `json:"En"`
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	t.zhTw = m.ZhTw
	t.en = m.En
	return nil
}

// Or resolves the field preferring Chinese, then English, then fallback.
// A plain string value wins outright unless empty.
func (t Text) Or(fallback string) string {
	if t.plain != "" {
		return t.plain
	}
	if t.zhTw != "" {
		return t.zhTw
	}
	if t.en != "" {
		return t.en
	}
	return fallback
}

// Point is the TDX position envelope. Missing coordinates stay nil;
// they are never defaulted to zero.
type Point struct {
	PositionLat *float64 `json:"PositionLat"`
	PositionLon *float64 `json:"PositionLon"`
}

// parseNaiveUTC parses an ISO-8601 timestamp with an optional Z suffix or
// numeric offset, drops the offset keeping the wall-clock reading, and
// returns it as a timezone-naive UTC time. Unparseable input returns nil;
// callers leave the field as previously set.
func parseNaiveUTC(value string) *time.Time {
	if value == "" {
		return nil
	}

	var parsed time.Time
	var err error
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil
	}

	naive := time.Date(
		parsed.Year(), parsed.Month(), parsed.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), parsed.Nanosecond(),
		time.UTC,
	)
	return &naive
}

// firstTimestamp parses the first non-empty candidate. A malformed value
// yields nil rather than falling through to later candidates.
func firstTimestamp(candidates ...string) *time.Time {
	for _, c := range candidates {
		if c != "" {
			return parseNaiveUTC(c)
		}
	}
	return nil
}
