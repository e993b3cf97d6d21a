package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officehub/internal/models"
)

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestInsertProjectOptionalFieldsNormalizeToNull(t *testing.T) {
	cases := map[string]string{
		"absent":       `{"name":"Site","client":"Acme"}`,
		"null":         `{"name":"Site","client":"Acme","budget":null,"startDate":null,"endDate":null}`,
		"empty string": `{"name":"Site","client":"Acme","budget":"","startDate":"","endDate":""}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			in := decode[InsertProject](t, body)
			p, errs := in.Validate()
			require.Nil(t, errs)
			assert.Nil(t, p.Budget)
			assert.Nil(t, p.StartDate)
			assert.Nil(t, p.EndDate)
		})
	}
}

func TestInsertProjectDecimalNormalization(t *testing.T) {
	num := decode[InsertProject](t, `{"name":"Site","client":"Acme","budget":1234.5}`)
	str := decode[InsertProject](t, `{"name":"Site","client":"Acme","budget":"1234.5"}`)

	pNum, errs := num.Validate()
	require.Nil(t, errs)
	pStr, errs := str.Validate()
	require.Nil(t, errs)

	require.NotNil(t, pNum.Budget)
	require.NotNil(t, pStr.Budget)
	assert.Equal(t, "1234.5", *pNum.Budget)
	assert.Equal(t, *pNum.Budget, *pStr.Budget)
}

func TestInsertProjectDecimalKeepsInputScale(t *testing.T) {
	cases := map[string]string{
		`{"name":"Site","client":"Acme","budget":"1234.50"}`: "1234.50",
		`{"name":"Site","client":"Acme","budget":"500"}`:     "500",
		`{"name":"Site","client":"Acme","budget":"1e3"}`:     "1000",
	}
	for body, want := range cases {
		in := decode[InsertProject](t, body)
		p, errs := in.Validate()
		require.Nil(t, errs)
		require.NotNil(t, p.Budget)
		assert.Equal(t, want, *p.Budget)
	}
}

func TestInsertProjectDefaults(t *testing.T) {
	in := decode[InsertProject](t, `{"name":"Site","client":"Acme"}`)
	p, errs := in.Validate()
	require.Nil(t, errs)
	assert.Equal(t, models.DefaultProjectStatus, p.Status)
	assert.Equal(t, 0, p.Progress)
}

func TestInsertProjectFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"client":"Acme"}`, "name"},
		{"blank client", `{"name":"Site","client":"  "}`, "client"},
		{"bad budget", `{"name":"Site","client":"Acme","budget":"abc"}`, "budget"},
		{"bad start date", `{"name":"Site","client":"Acme","startDate":"not-a-date"}`, "startDate"},
		{"impossible date", `{"name":"Site","client":"Acme","endDate":"2024-02-30"}`, "endDate"},
		{"out-of-set status", `{"name":"Site","client":"Acme","status":"archived"}`, "status"},
		{"progress over 100", `{"name":"Site","client":"Acme","progress":120}`, "progress"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decode[InsertProject](t, tt.body)
			_, errs := in.Validate()
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestInsertProjectParsesDates(t *testing.T) {
	in := decode[InsertProject](t, `{"name":"Site","client":"Acme","startDate":"2024-03-01"}`)
	p, errs := in.Validate()
	require.Nil(t, errs)
	require.NotNil(t, p.StartDate)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *p.StartDate)
}

func TestInsertFinanceAmountRules(t *testing.T) {
	t.Run("missing amount", func(t *testing.T) {
		in := decode[InsertFinance](t, `{"type":"income","category":"Consulting","description":"x","date":"2024-03-01"}`)
		_, errs := in.Validate()
		require.NotNil(t, errs)
		assert.Equal(t, "Amount is required", errs["amount"])
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		in := decode[InsertFinance](t, `{"type":"income","category":"Consulting","description":"x","amount":"abc","date":"2024-03-01"}`)
		_, errs := in.Validate()
		require.NotNil(t, errs)
		assert.Equal(t, "Amount must be a valid number", errs["amount"])
	})

	t.Run("zero is numeric, not rejected", func(t *testing.T) {
		for _, body := range []string{
			`{"type":"income","category":"Consulting","description":"x","amount":0,"date":"2024-03-01"}`,
			`{"type":"income","category":"Consulting","description":"x","amount":"0","date":"2024-03-01"}`,
		} {
			in := decode[InsertFinance](t, body)
			f, errs := in.Validate()
			require.Nil(t, errs)
			assert.Equal(t, "0", f.Amount)
		}
	})

	t.Run("valid entry", func(t *testing.T) {
		in := decode[InsertFinance](t, `{"type":"income","category":"Consulting","description":"x","amount":"500","date":"2024-03-01"}`)
		f, errs := in.Validate()
		require.Nil(t, errs)
		assert.Equal(t, "500", f.Amount)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), f.Date)
	})
}

func TestInsertFinanceDateRequired(t *testing.T) {
	for name, body := range map[string]string{
		"absent": `{"type":"expense","category":"Rent","description":"x","amount":"100"}`,
		"null":   `{"type":"expense","category":"Rent","description":"x","amount":"100","date":null}`,
		"empty":  `{"type":"expense","category":"Rent","description":"x","amount":"100","date":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			in := decode[InsertFinance](t, body)
			_, errs := in.Validate()
			require.NotNil(t, errs)
			assert.Equal(t, "Date is required", errs["date"])
		})
	}
}

func TestInsertFinanceTypeRestricted(t *testing.T) {
	in := decode[InsertFinance](t, `{"type":"transfer","category":"Misc","description":"x","amount":"10","date":"2024-03-01"}`)
	_, errs := in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "type")
}

func TestInsertEmployeeDefaults(t *testing.T) {
	in := decode[InsertEmployee](t, `{"name":"A","email":"a@b.com","role":"Dev","department":"Eng"}`)
	e, errs := in.Validate()
	require.Nil(t, errs)
	assert.True(t, e.IsActive)
	assert.Nil(t, e.Salary)
	assert.Nil(t, e.Phone)
	assert.Nil(t, e.HireDate)

	in = decode[InsertEmployee](t, `{"name":"A","email":"a@b.com","role":"Dev","department":"Eng","isActive":false}`)
	e, errs = in.Validate()
	require.Nil(t, errs)
	assert.False(t, e.IsActive)
}

func TestInsertAttendanceRules(t *testing.T) {
	in := decode[InsertAttendance](t, `{"date":"2024-03-01"}`)
	_, errs := in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "employeeId")

	in = decode[InsertAttendance](t, `{"employeeId":1,"date":"2024-03-01"}`)
	a, errs := in.Validate()
	require.Nil(t, errs)
	assert.Equal(t, models.DefaultAttendanceStatus, a.Status)
	assert.Equal(t, 1, a.EmployeeID)
}

func TestUpdateProjectApplyMergesOnlyPresentFields(t *testing.T) {
	budget := "1000"
	p := models.Project{ID: 1, Name: "Site", Client: "Acme", Status: "planning", Progress: 10, Budget: &budget}

	patch := decode[UpdateProject](t, `{"status":"completed","progress":100}`)
	errs := patch.Apply(&p)
	require.Nil(t, errs)
	assert.Equal(t, "completed", p.Status)
	assert.Equal(t, 100, p.Progress)
	assert.Equal(t, "Site", p.Name)
	require.NotNil(t, p.Budget)
	assert.Equal(t, "1000", *p.Budget)
}

func TestUpdateProjectApplyNullClearsOptionalFields(t *testing.T) {
	budget := "1000"
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := models.Project{ID: 1, Name: "Site", Client: "Acme", Budget: &budget, StartDate: &start}

	patch := decode[UpdateProject](t, `{"budget":null,"startDate":null}`)
	errs := patch.Apply(&p)
	require.Nil(t, errs)
	assert.Nil(t, p.Budget)
	assert.Nil(t, p.StartDate)
}

func TestUpdateProjectApplyRejectsInvalidPatchWithoutSideEffects(t *testing.T) {
	p := models.Project{ID: 1, Name: "Site", Client: "Acme", Status: "planning"}
	before := p

	for _, body := range []string{
		`{"name":null}`,
		`{"name":""}`,
		`{"status":"archived"}`,
		`{"budget":"abc"}`,
		`{"startDate":"nope"}`,
	} {
		patch := decode[UpdateProject](t, body)
		errs := patch.Apply(&p)
		require.NotNil(t, errs, "patch %s", body)
		assert.Equal(t, before, p, "patch %s must not modify the record", body)
	}
}

func TestUpdateFinanceApplyKeepsRequiredFieldsNonNull(t *testing.T) {
	f := models.Finance{ID: 1, Type: "income", Category: "Consulting", Description: "x", Amount: "500", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

	patch := decode[UpdateFinance](t, `{"amount":null}`)
	errs := patch.Apply(&f)
	require.NotNil(t, errs)
	assert.Equal(t, "Amount is required", errs["amount"])
	assert.Equal(t, "500", f.Amount)

	patch = decode[UpdateFinance](t, `{"date":""}`)
	errs = patch.Apply(&f)
	require.NotNil(t, errs)
	assert.Equal(t, "Date is required", errs["date"])

	patch = decode[UpdateFinance](t, `{"amount":750.25}`)
	errs = patch.Apply(&f)
	require.Nil(t, errs)
	assert.Equal(t, "750.25", f.Amount)
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{"name": "Name is required", "amount": "Amount must be a valid number"}
	assert.Equal(t, "validation failed: amount: Amount must be a valid number; name: Name is required", errs.Error())
}

func TestInsertUserValidation(t *testing.T) {
	in := decode[InsertUser](t, `{"username":"admin","password":"secret"}`)
	u, errs := in.Validate()
	require.Nil(t, errs)
	assert.Equal(t, "admin", u.Username)

	in = decode[InsertUser](t, `{"username":"admin"}`)
	_, errs = in.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "password")
}
