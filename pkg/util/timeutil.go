package util

import "time"

// Clock is the time source behind NowUTC. Tests may swap it and restore it afterwards.
var Clock = time.Now

// NowUTC returns Clock in UTC.
func NowUTC() time.Time {
	return Clock().UTC()
}
