package utils

// JobRef is an order number / job name pair pulled out of a booking descriptor
type JobRef struct {
	OrderNumber string
	JobName     string
}

// ShortDate is a month/day pair extracted from free text, with no year attached
type ShortDate struct {
	Month int
	Day   int
}

// DayPrefixes are the weekday abbreviations used in assignment calendar sheet names
var DayPrefixes = [7]string{"Sun", "Mon", "Tues", "Wed", "Thurs", "Fri", "Sat"}

// Constants
const (
	DATE_LAYOUT = "1/2/2006"
)
