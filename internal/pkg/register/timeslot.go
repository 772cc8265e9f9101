package register

import "fmt"

// DayTime is a wall-clock time of day with minute resolution.
type DayTime struct {
	Hour   int
	Minute int
}

func (t DayTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TimeSlot is a charge or discharge window. The device packs each end of the
// window into one register word as hour*100+minute.
type TimeSlot struct {
	Start DayTime
	End   DayTime
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// TimeSlotFromRepr unpacks a pair of packed words into a TimeSlot.
func TimeSlotFromRepr(start, end uint16) TimeSlot {
	return TimeSlot{Start: dayTimeFromRepr(start), End: dayTimeFromRepr(end)}
}

// dayTimeFromRepr unpacks hour*100+minute. Device clocks emit 2400 for
// midnight, and corrupted words show up in the field, so anything
// unrepresentable folds to 00:00 rather than failing.
func dayTimeFromRepr(v uint16) DayTime {
	hour := int(v) / 100
	minute := int(v) % 100
	if hour > 24 || minute >= 60 {
		return DayTime{}
	}
	return DayTime{Hour: hour % 24, Minute: minute}
}
