package schema

import "officehub/internal/models"

// InsertAttendance is the validated shape accepted when recording attendance.
// TotalHours and overtime arrive precomputed from the caller; the server
// stores them verbatim.
type InsertAttendance struct {
	EmployeeID *int    `json:"employeeId"`
	Date       Date    `json:"date"`
	CheckIn    *string `json:"checkIn"`
	CheckOut   *string `json:"checkOut"`
	TotalHours *string `json:"totalHours"`
	Overtime   *string `json:"overtime"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
}

// Validate coerces the input into a storable attendance record, collecting
// per-field errors.
func (in InsertAttendance) Validate() (models.Attendance, FieldErrors) {
	errs := FieldErrors{}

	a := models.Attendance{
		Date:       requiredDate(errs, "date", "Date", in.Date),
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		TotalHours: in.TotalHours,
		Overtime:   in.Overtime,
		Status:     enumOrDefault(errs, "status", "Status", in.Status, models.ValidAttendanceStatuses, models.DefaultAttendanceStatus),
		Notes:      in.Notes,
	}
	if in.EmployeeID == nil {
		errs["employeeId"] = "Employee is required"
	} else {
		a.EmployeeID = *in.EmployeeID
	}

	if len(errs) > 0 {
		return models.Attendance{}, errs
	}
	return a, nil
}

// UpdateAttendance is a partial patch for an attendance record.
type UpdateAttendance struct {
	EmployeeID Optional[int]    `json:"employeeId"`
	Date       Date             `json:"date"`
	CheckIn    Optional[string] `json:"checkIn"`
	CheckOut   Optional[string] `json:"checkOut"`
	TotalHours Optional[string] `json:"totalHours"`
	Overtime   Optional[string] `json:"overtime"`
	Status     Optional[string] `json:"status"`
	Notes      Optional[string] `json:"notes"`
}

// Apply merges the patch onto a, collecting per-field errors. a is only
// modified when validation succeeds.
func (u UpdateAttendance) Apply(a *models.Attendance) FieldErrors {
	errs := FieldErrors{}
	merged := *a

	if u.EmployeeID.Present() {
		if v := u.EmployeeID.Value(); v == nil {
			errs["employeeId"] = "Employee is required"
		} else {
			merged.EmployeeID = *v
		}
	}
	if u.Date.Present() {
		merged.Date = requiredDate(errs, "date", "Date", u.Date)
	}
	if u.CheckIn.Present() {
		merged.CheckIn = u.CheckIn.Value()
	}
	if u.CheckOut.Present() {
		merged.CheckOut = u.CheckOut.Value()
	}
	if u.TotalHours.Present() {
		merged.TotalHours = u.TotalHours.Value()
	}
	if u.Overtime.Present() {
		merged.Overtime = u.Overtime.Value()
	}
	if u.Status.Present() {
		merged.Status = patchEnum(errs, "status", "Status", u.Status, models.ValidAttendanceStatuses)
	}
	if u.Notes.Present() {
		merged.Notes = u.Notes.Value()
	}

	if len(errs) > 0 {
		return errs
	}
	*a = merged
	return nil
}
