package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CustomDate chỉ lưu ngày (không giờ), JSON dạng "YYYY-MM-DD"
type CustomDate struct {
	time.Time
}

func (d *CustomDate) UnmarshalJSON(data []byte) error {
	if string(data) == `null` {
		*d = CustomDate{time.Time{}}
		return nil
	}
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return fmt.Errorf("invalid date format: %s", str)
	}
	*d = CustomDate{t}
	return nil
}

func (d CustomDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

func (d CustomDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

func ParseDateOnly(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay: hết ngày, 23:59:59.999...
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// MinutesOfDay đổi "HH:MM" sang số phút từ 00:00
func MinutesOfDay(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", hhmm)
	}
	return h*60 + m, nil
}
