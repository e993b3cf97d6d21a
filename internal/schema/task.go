package schema

import "officehub/internal/models"

// InsertTask is the validated shape accepted when creating a task. ProjectID
// and AssigneeID are plain references; nothing checks that the target rows
// exist.
type InsertTask struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	ProjectID   *int    `json:"projectId"`
	AssigneeID  *int    `json:"assigneeId"`
	DueDate     Date    `json:"dueDate"`
}

// Validate coerces the input into a storable task, collecting per-field
// errors.
func (in InsertTask) Validate() (models.Task, FieldErrors) {
	errs := FieldErrors{}

	t := models.Task{
		Title:       requiredString(errs, "title", "Title", in.Title),
		Description: in.Description,
		Status:      enumOrDefault(errs, "status", "Status", in.Status, models.ValidTaskStatuses, models.DefaultTaskStatus),
		Priority:    enumOrDefault(errs, "priority", "Priority", in.Priority, models.ValidTaskPriorities, models.DefaultTaskPriority),
		ProjectID:   in.ProjectID,
		AssigneeID:  in.AssigneeID,
		DueDate:     optionalDate(errs, "dueDate", "Due date", in.DueDate),
	}

	if len(errs) > 0 {
		return models.Task{}, errs
	}
	return t, nil
}

// UpdateTask is a partial patch for a task.
type UpdateTask struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Status      Optional[string] `json:"status"`
	Priority    Optional[string] `json:"priority"`
	ProjectID   Optional[int]    `json:"projectId"`
	AssigneeID  Optional[int]    `json:"assigneeId"`
	DueDate     Date             `json:"dueDate"`
}

// Apply merges the patch onto t, collecting per-field errors. t is only
// modified when validation succeeds.
func (u UpdateTask) Apply(t *models.Task) FieldErrors {
	errs := FieldErrors{}
	merged := *t

	if u.Title.Present() {
		merged.Title = patchRequiredString(errs, "title", "Title", u.Title)
	}
	if u.Description.Present() {
		merged.Description = u.Description.Value()
	}
	if u.Status.Present() {
		merged.Status = patchEnum(errs, "status", "Status", u.Status, models.ValidTaskStatuses)
	}
	if u.Priority.Present() {
		merged.Priority = patchEnum(errs, "priority", "Priority", u.Priority, models.ValidTaskPriorities)
	}
	if u.ProjectID.Present() {
		merged.ProjectID = u.ProjectID.Value()
	}
	if u.AssigneeID.Present() {
		merged.AssigneeID = u.AssigneeID.Value()
	}
	if u.DueDate.Present() {
		merged.DueDate = optionalDate(errs, "dueDate", "Due date", u.DueDate)
	}

	if len(errs) > 0 {
		return errs
	}
	*t = merged
	return nil
}
