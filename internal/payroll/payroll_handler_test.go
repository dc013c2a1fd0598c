package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	processFn   func(ctx context.Context, actorID string, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error)
	getAllFn    func(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, error)
	getStatusFn func(ctx context.Context) (payroll.PayrollStatusResponse, error)
}

func (f *fakePayrollService) Process(ctx context.Context, actorID string, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
	return f.processFn(ctx, actorID, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, filter)
}

func (f *fakePayrollService) GetStatus(ctx context.Context) (payroll.PayrollStatusResponse, error) {
	return f.getStatusFn(ctx)
}

func TestPayrollHandler_Process(t *testing.T) {
	actorID := uuid.New().String()

	svc := &fakePayrollService{
		processFn: func(ctx context.Context, aid string, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
			assert.Equal(t, actorID, aid)
			assert.Equal(t, 3, req.Month)
			assert.Equal(t, 2026, req.Year)
			return payroll.ProcessPayrollResponse{
				Month:     3,
				Year:      2026,
				Processed: 2,
				Records: []payroll.PayrollResponse{
					{ID: uuid.NewString(), Month: 3, Year: 2026, BaseSalary: 45000, Deductions: 700, NetSalary: 44300, Status: payroll.StatusPaid},
					{ID: uuid.NewString(), Month: 3, Year: 2026, BaseSalary: 38000, NetSalary: 38000, Status: payroll.StatusPaid},
				},
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/process", strings.NewReader(`{"month":3,"year":2026}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", actorID)

	h.Process(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)

	var resp payroll.ProcessPayrollResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 2, resp.Processed)
}

func TestPayrollHandler_Process_ValidationError(t *testing.T) {
	svc := &fakePayrollService{
		processFn: func(ctx context.Context, aid string, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
			t.Fatal("service must not be called on invalid input")
			return payroll.ProcessPayrollResponse{}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/process", strings.NewReader(`{"month":13,"year":2026}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uuid.New().String())

	h.Process(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestPayrollHandler_Process_InvalidPeriod(t *testing.T) {
	svc := &fakePayrollService{
		processFn: func(ctx context.Context, aid string, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
			return payroll.ProcessPayrollResponse{}, payrollerrors.ErrInvalidPeriod
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/process", strings.NewReader(`{"month":2,"year":2026}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uuid.New().String())

	h.Process(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_GetStatus_ScopedToSelf(t *testing.T) {
	userID := uuid.New().String()
	otherID := uuid.New().String()

	svc := &fakePayrollService{
		getStatusFn: func(ctx context.Context) (payroll.PayrollStatusResponse, error) {
			return payroll.PayrollStatusResponse{
				Month: 3,
				Year:  2026,
				Statuses: map[string]string{
					userID:  payroll.StatusPaid,
					otherID: payroll.StatusPaid,
				},
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/status", nil)
	c.Set("user_id", userID)
	c.Set("scope_self", true)

	h.GetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())

	var resp payroll.PayrollStatusResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Len(t, resp.Statuses, 1)
	assert.Equal(t, payroll.StatusPaid, resp.Statuses[userID])
}

func TestPayrollHandler_GetAll_ScopedToSelf(t *testing.T) {
	userID := uuid.New().String()

	svc := &fakePayrollService{
		getAllFn: func(ctx context.Context, filter payroll.GetPayrollsFilterRequest) ([]payroll.PayrollResponse, error) {
			assert.Equal(t, userID, filter.EmployeeID)
			return []payroll.PayrollResponse{
				{ID: uuid.NewString(), EmployeeID: userID, Month: 3, Year: 2026, NetSalary: 44300, Status: payroll.StatusPaid},
			}, nil
		},
	}

	h := payroll.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll", nil)
	c.Set("user_id", userID)
	c.Set("scope_self", true)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
}
