package apidto

import (
	"fmt"
	"strconv"
	"time"
)

const LocalTimeLayout = "2006-01-02T15:04:05"

// принимаем и минутную точность, и RFC 3339 от клиентов, которые шлют зону
var localTimeInputLayouts = []string{
	LocalTimeLayout,
	"2006-01-02T15:04",
	time.RFC3339Nano,
}

// LocalTime - дата-время без зоны на проводе, внутри всегда UTC
type LocalTime struct {
	time.Time
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.UTC().Format(LocalTimeLayout))), nil
}

func (t *LocalTime) UnmarshalJSON(b []byte) error {
	raw, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("local date-time must be a string: %w", err)
	}

	for _, layout := range localTimeInputLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}

	return fmt.Errorf("invalid local date-time %q, expected %s", raw, LocalTimeLayout)
}
