package planner

import "fmt"

const slotStep = 30

// TimeSlots returns the selectable clock times for a day/night selector.
// AnyTime is always first and is the default selection.
//
//	Daytime:   07:00 .. 18:00
//	Nighttime: 19:00 .. 23:30, then 00:00, 00:30, 01:00 of the next day
//	unset:     00:00 .. 23:30
func TimeSlots(sel TimeOfDay) []string {
	slots := []string{AnyTime}
	switch sel {
	case Daytime:
		slots = appendSlots(slots, 7*60, 18*60)
	case Nighttime:
		slots = appendSlots(slots, 19*60, 23*60+30)
		slots = appendSlots(slots, 0, 60)
	default:
		slots = appendSlots(slots, 0, 23*60+30)
	}
	return slots
}

// appendSlots adds every half hour in [from, to], both in minutes after midnight.
func appendSlots(dst []string, from, to int) []string {
	for m := from; m <= to; m += slotStep {
		dst = append(dst, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return dst
}
