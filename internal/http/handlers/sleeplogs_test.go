package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"sleepapi/internal/config"
)

// newRequestCtx builds a request context the way the router would hand it
// to a handler, including path values set via SetUserValue.
func newRequestCtx(method, uri string, body []byte, pathValues map[string]string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		req.SetBody(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	for k, v := range pathValues {
		ctx.SetUserValue(k, v)
	}
	return ctx
}

func errorBody(t *testing.T, ctx *fasthttp.RequestCtx) string {
	t.Helper()
	var payload map[string]string
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &payload))
	return payload["error"]
}

// The 4xx paths below never reach storage, so a nil DB handle is fine.

func TestCreateSleepLogRejectsInvalidUserID(t *testing.T) {
	handler := CreateSleepLog(nil)

	for _, id := range []string{"", "abc", "-1", "1.5"} {
		ctx := newRequestCtx("POST", "/users/"+id+"/logs", []byte(`{}`), map[string]string{"userId": id})
		handler(ctx)
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode(), "userId=%q", id)
	}
}

func TestCreateSleepLogRejectsInvalidJSON(t *testing.T) {
	handler := CreateSleepLog(nil)

	ctx := newRequestCtx("POST", "/users/1/logs", []byte(`{not json`), map[string]string{"userId": "1"})
	handler(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, "invalid JSON body", errorBody(t, ctx))
}

func TestCreateSleepLogValidatesFields(t *testing.T) {
	handler := CreateSleepLog(nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing fields", `{}`},
		{"bad entry date", `{"entryDate":"10-03-2025","bedTime":"22:30:00","wakeTime":"06:30:00","morningFeeling":"GOOD"}`},
		{"bad bed time", `{"entryDate":"2025-03-10","bedTime":"22:30","wakeTime":"06:30:00","morningFeeling":"GOOD"}`},
		{"bad wake time", `{"entryDate":"2025-03-10","bedTime":"22:30:00","wakeTime":"25:00:00","morningFeeling":"GOOD"}`},
		{"unknown feeling", `{"entryDate":"2025-03-10","bedTime":"22:30:00","wakeTime":"06:30:00","morningFeeling":"GREAT"}`},
		{"lowercase feeling", `{"entryDate":"2025-03-10","bedTime":"22:30:00","wakeTime":"06:30:00","morningFeeling":"good"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newRequestCtx("POST", "/users/1/logs", []byte(tt.body), map[string]string{"userId": "1"})
			handler(ctx)
			assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
		})
	}
}

func TestGetSleepLogRejectsInvalidEntryDate(t *testing.T) {
	handler := GetSleepLog(nil)

	ctx := newRequestCtx("GET", "/users/1/logs/not-a-date", nil,
		map[string]string{"userId": "1", "entryDate": "not-a-date"})
	handler(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, "invalid entry date", errorBody(t, ctx))
}

func TestGetSleepLogsRequiresWindowBounds(t *testing.T) {
	handler := GetSleepLogs(nil)

	ctx := newRequestCtx("GET", "/users/1/logs?startDate=2025-03-01", nil, map[string]string{"userId": "1"})
	handler(ctx)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, "invalid endDate", errorBody(t, ctx))

	ctx = newRequestCtx("GET", "/users/1/logs?endDate=2025-03-31", nil, map[string]string{"userId": "1"})
	handler(ctx)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, "invalid startDate", errorBody(t, ctx))
}

func TestSleepLogReportRejectsInvalidDays(t *testing.T) {
	handler := SleepLogReport(nil, &config.Config{MaxReportDays: 365})

	for _, days := range []string{"0", "-5", "abc", "1.5"} {
		ctx := newRequestCtx("GET", "/users/1/logs/report?days="+days, nil, map[string]string{"userId": "1"})
		handler(ctx)
		assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode(), "days=%q", days)
		assert.Equal(t, "invalid days parameter", errorBody(t, ctx))
	}
}

func TestCreateUserRequiresUsername(t *testing.T) {
	handler := CreateUser(nil)

	ctx := newRequestCtx("POST", "/users/create", nil, nil)
	handler(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Equal(t, "username required", errorBody(t, ctx))
}

func TestFindUserByUsernameRequiresUsername(t *testing.T) {
	handler := FindUserByUsername(nil)

	ctx := newRequestCtx("GET", "/users/findByUsername", nil, nil)
	handler(ctx)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}
