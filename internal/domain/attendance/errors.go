package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicateDay     = errors.New("more than one attendance record for the same employee and date")
	ErrDayOutsideMonth  = errors.New("attendance record dated outside the requested month")
	ErrWrongEmployee    = errors.New("attendance record belongs to a different employee")
	ErrUnknownDayStatus = errors.New("unknown attendance day status")
)
