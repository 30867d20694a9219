package academic

// GridPeriods returns the timetable row labels in display order, with the
// break and lunch markers spliced between the surrounding lecture periods.
func GridPeriods() []string {
	periods := make([]string, 0, len(TimeSlots)+2)
	for _, slot := range TimeSlots {
		periods = append(periods, slot)
		switch slot {
		case breakAfterPeriod:
			periods = append(periods, BreakMarker)
		case lunchAfterPeriod:
			periods = append(periods, LunchMarker)
		}
	}
	return periods
}

// IsMarker reports whether a grid row label is a non-teaching marker.
func IsMarker(period string) bool {
	return period == BreakMarker || period == LunchMarker
}
