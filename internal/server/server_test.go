package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"officehub/internal/storage/memory"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(memory.New(), logger, "")
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateEmployeeMinimalPayload(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/employees",
		`{"name":"A","email":"a@b.com","role":"Dev","department":"Eng"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(1), body["id"])
	assert.Nil(t, body["salary"])
	assert.Nil(t, body["phone"])
	assert.Nil(t, body["hireDate"])
	assert.Equal(t, true, body["isActive"])
}

func TestCreateEmployeeDuplicateEmailIsPersistenceFailure(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/employees",
		`{"name":"A","email":"a@b.com","role":"Dev","department":"Eng"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/employees",
		`{"name":"B","email":"a@b.com","role":"Dev","department":"Eng"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Failed to create employee", body["message"])
}

func TestCreateFinanceNormalizesAmountAndDate(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/finances",
		`{"type":"income","category":"Consulting","description":"x","amount":"500","date":"2024-03-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "500", body["amount"])
	assert.Equal(t, "2024-03-01T00:00:00Z", body["date"])
}

func TestCreateFinanceValidationErrorShape(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/finances",
		`{"type":"income","category":"Consulting","description":"x","amount":"abc"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody[struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}](t, rec)
	assert.Equal(t, "Validation error", body.Message)
	assert.Equal(t, "Amount must be a valid number", body.Errors["amount"])
	assert.Equal(t, "Date is required", body.Errors["date"])
}

func TestProjectLifecycle(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/projects",
		`{"name":"Site","client":"Acme","budget":1234.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "planning", created["status"])
	assert.Equal(t, "1234.5", created["budget"])
	assert.NotNil(t, created["createdAt"])

	rec = doJSON(t, srv, http.MethodGet, "/api/projects/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodPatch, "/api/projects/1", `{"status":"in-progress","progress":40}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "in-progress", updated["status"])
	assert.Equal(t, float64(40), updated["progress"])

	rec = doJSON(t, srv, http.MethodDelete, "/api/projects/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodDelete, "/api/projects/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectNotFoundResponses(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/projects/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Project not found", body["message"])

	rec = doJSON(t, srv, http.MethodPatch, "/api/projects/99", `{"name":"New"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjectInvalidIdentifier(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/api/projects/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProjectRejectsOutOfSetStatus(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/projects", `{"name":"Site","client":"Acme"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPatch, "/api/projects/1", `{"status":"archived"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/projects/1", "")
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "planning", body["status"])
}

func TestListTasksFilteredByProject(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{
		`{"title":"a","projectId":1}`,
		`{"title":"b","projectId":2}`,
		`{"title":"c","projectId":1}`,
	} {
		rec := doJSON(t, srv, http.MethodPost, "/api/tasks", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/tasks?projectId=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tasks := decodeBody[[]map[string]any](t, rec)
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0]["title"])
	assert.Equal(t, "c", tasks[1]["title"])

	rec = doJSON(t, srv, http.MethodGet, "/api/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	tasks = decodeBody[[]map[string]any](t, rec)
	assert.Len(t, tasks, 3)
}

func TestTaskDefaultsApplied(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/tasks", `{"title":"a"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "todo", task["status"])
	assert.Equal(t, "medium", task["priority"])
	assert.Nil(t, task["projectId"])
	assert.Nil(t, task["dueDate"])
}

func TestAttendanceQueryFilters(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{
		`{"employeeId":1,"date":"2024-03-01"}`,
		`{"employeeId":1,"date":"2024-03-02"}`,
		`{"employeeId":2,"date":"2024-03-02"}`,
	} {
		rec := doJSON(t, srv, http.MethodPost, "/api/attendance", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("by employee", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/attendance?employeeId=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeBody[[]map[string]any](t, rec)
		require.Len(t, records, 2)
		for _, r := range records {
			assert.Equal(t, float64(1), r["employeeId"])
		}
	})

	t.Run("by date", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/attendance?date=2024-03-02", "")
		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeBody[[]map[string]any](t, rec)
		assert.Len(t, records, 2)
	})

	t.Run("by range", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/attendance?startDate=2024-03-01&endDate=2024-03-01", "")
		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeBody[[]map[string]any](t, rec)
		assert.Len(t, records, 1)
	})

	t.Run("date takes precedence over employeeId", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/attendance?date=2024-03-02&employeeId=1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeBody[[]map[string]any](t, rec)
		assert.Len(t, records, 2)
	})

	t.Run("unfiltered", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/attendance", "")
		require.Equal(t, http.StatusOK, rec.Code)
		records := decodeBody[[]map[string]any](t, rec)
		assert.Len(t, records, 3)
	})
}

func TestAttendanceRequiresDate(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/api/attendance", `{"employeeId":1}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[struct {
		Errors map[string]string `json:"errors"`
	}](t, rec)
	assert.Equal(t, "Date is required", body.Errors["date"])
}

func TestUnknownAPIPathIsJSON404(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/nonsense", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "Endpoint not found", body["message"])
}

func TestNoRouteFallsBackToIndexWhenStaticMounted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0o644))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(memory.New(), logger, dir)

	// Unknown API paths stay JSON 404 even with the SPA mounted.
	rec := doJSON(t, srv, http.MethodGet, "/api/nonsense", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	// Client-side routes get the SPA entry point.
	rec = doJSON(t, srv, http.MethodGet, "/attendance/overview", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard")
}

func TestInvalidJSONBody(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/api/projects", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
