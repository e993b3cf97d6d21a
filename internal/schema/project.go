package schema

import "officehub/internal/models"

// InsertProject is the validated shape accepted when creating a project:
// the full entity minus the server-assigned id and createdAt.
type InsertProject struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Client      string  `json:"client"`
	Progress    *int    `json:"progress"`
	Budget      Decimal `json:"budget"`
	StartDate   Date    `json:"startDate"`
	EndDate     Date    `json:"endDate"`
}

// Validate coerces the input into a storable project, collecting per-field
// errors.
func (in InsertProject) Validate() (models.Project, FieldErrors) {
	errs := FieldErrors{}

	p := models.Project{
		Name:        requiredString(errs, "name", "Name", in.Name),
		Description: in.Description,
		Status:      enumOrDefault(errs, "status", "Status", in.Status, models.ValidProjectStatuses, models.DefaultProjectStatus),
		Client:      requiredString(errs, "client", "Client", in.Client),
		Budget:      optionalDecimal(errs, "budget", "Budget", in.Budget),
		StartDate:   optionalDate(errs, "startDate", "Start date", in.StartDate),
		EndDate:     optionalDate(errs, "endDate", "End date", in.EndDate),
	}
	if in.Progress != nil {
		p.Progress = *in.Progress
	}
	if p.Progress < 0 || p.Progress > 100 {
		errs["progress"] = "Progress must be between 0 and 100"
	}

	if len(errs) > 0 {
		return models.Project{}, errs
	}
	return p, nil
}

// UpdateProject is a partial patch: only fields present in the body are
// touched, and present fields still go through coercion.
type UpdateProject struct {
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
	Status      Optional[string] `json:"status"`
	Client      Optional[string] `json:"client"`
	Progress    Optional[int]    `json:"progress"`
	Budget      Decimal          `json:"budget"`
	StartDate   Date             `json:"startDate"`
	EndDate     Date             `json:"endDate"`
}

// Apply merges the patch onto p, collecting per-field errors. p is only
// modified when validation succeeds.
func (u UpdateProject) Apply(p *models.Project) FieldErrors {
	errs := FieldErrors{}
	merged := *p

	if u.Name.Present() {
		merged.Name = patchRequiredString(errs, "name", "Name", u.Name)
	}
	if u.Description.Present() {
		merged.Description = u.Description.Value()
	}
	if u.Status.Present() {
		merged.Status = patchEnum(errs, "status", "Status", u.Status, models.ValidProjectStatuses)
	}
	if u.Client.Present() {
		merged.Client = patchRequiredString(errs, "client", "Client", u.Client)
	}
	if u.Progress.Present() {
		if v := u.Progress.Value(); v == nil || *v < 0 || *v > 100 {
			errs["progress"] = "Progress must be between 0 and 100"
		} else {
			merged.Progress = *v
		}
	}
	if u.Budget.Present() {
		merged.Budget = optionalDecimal(errs, "budget", "Budget", u.Budget)
	}
	if u.StartDate.Present() {
		merged.StartDate = optionalDate(errs, "startDate", "Start date", u.StartDate)
	}
	if u.EndDate.Present() {
		merged.EndDate = optionalDate(errs, "endDate", "End date", u.EndDate)
	}

	if len(errs) > 0 {
		return errs
	}
	*p = merged
	return nil
}
