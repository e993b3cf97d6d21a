package schema

import "officehub/internal/models"

// InsertEmployee is the validated shape accepted when creating an employee.
// Employees carry no createdAt, so the only server-assigned field is the id.
type InsertEmployee struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Avatar     *string `json:"avatar"`
	Phone      *string `json:"phone"`
	HireDate   Date    `json:"hireDate"`
	Salary     Decimal `json:"salary"`
	IsActive   *bool   `json:"isActive"`
}

// Validate coerces the input into a storable employee, collecting per-field
// errors. IsActive defaults to true when absent.
func (in InsertEmployee) Validate() (models.Employee, FieldErrors) {
	errs := FieldErrors{}

	e := models.Employee{
		Name:       requiredString(errs, "name", "Name", in.Name),
		Email:      requiredString(errs, "email", "Email", in.Email),
		Role:       requiredString(errs, "role", "Role", in.Role),
		Department: requiredString(errs, "department", "Department", in.Department),
		Avatar:     in.Avatar,
		Phone:      in.Phone,
		HireDate:   optionalDate(errs, "hireDate", "Hire date", in.HireDate),
		Salary:     optionalDecimal(errs, "salary", "Salary", in.Salary),
		IsActive:   true,
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}

	if len(errs) > 0 {
		return models.Employee{}, errs
	}
	return e, nil
}

// UpdateEmployee is a partial patch for an employee.
type UpdateEmployee struct {
	Name       Optional[string] `json:"name"`
	Email      Optional[string] `json:"email"`
	Role       Optional[string] `json:"role"`
	Department Optional[string] `json:"department"`
	Avatar     Optional[string] `json:"avatar"`
	Phone      Optional[string] `json:"phone"`
	HireDate   Date             `json:"hireDate"`
	Salary     Decimal          `json:"salary"`
	IsActive   Optional[bool]   `json:"isActive"`
}

// Apply merges the patch onto e, collecting per-field errors. e is only
// modified when validation succeeds.
func (u UpdateEmployee) Apply(e *models.Employee) FieldErrors {
	errs := FieldErrors{}
	merged := *e

	if u.Name.Present() {
		merged.Name = patchRequiredString(errs, "name", "Name", u.Name)
	}
	if u.Email.Present() {
		merged.Email = patchRequiredString(errs, "email", "Email", u.Email)
	}
	if u.Role.Present() {
		merged.Role = patchRequiredString(errs, "role", "Role", u.Role)
	}
	if u.Department.Present() {
		merged.Department = patchRequiredString(errs, "department", "Department", u.Department)
	}
	if u.Avatar.Present() {
		merged.Avatar = u.Avatar.Value()
	}
	if u.Phone.Present() {
		merged.Phone = u.Phone.Value()
	}
	if u.HireDate.Present() {
		merged.HireDate = optionalDate(errs, "hireDate", "Hire date", u.HireDate)
	}
	if u.Salary.Present() {
		merged.Salary = optionalDecimal(errs, "salary", "Salary", u.Salary)
	}
	if u.IsActive.Present() {
		if v := u.IsActive.Value(); v != nil {
			merged.IsActive = *v
		}
	}

	if len(errs) > 0 {
		return errs
	}
	*e = merged
	return nil
}
