package datemath

import "time"

// DateFormat is the civil date layout used on the wire (YYYY-MM-DD).
const DateFormat = "2006-01-02"

// TimeFormat is the 24-hour clock layout (HH:mm).
const TimeFormat = "15:04"

// DefaultUTCOffsetHours is the fixed offset of the service's civil time zone.
const DefaultUTCOffsetHours = 9

// WeekdayNames is indexed by time.Weekday (0=Sunday .. 6=Saturday).
var WeekdayNames = [7]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// References holds the relative dates an instruction may refer to, all at local midnight.
type References struct {
	Now              time.Time
	Today            time.Time
	Tomorrow         time.Time
	DayAfterTomorrow time.Time
	ThisFriday       time.Time // next Friday when today is Friday
	NextMonday       time.Time // next Monday when today is Monday
	Weekday          string
}
