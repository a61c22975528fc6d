package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/valyala/fasthttp"
)

func jsonResponse(ctx *fasthttp.RequestCtx, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString("failed to encode response")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

// jsonError writes the {"error": ...} envelope used by every failure response.
func jsonError(ctx *fasthttp.RequestCtx, status int, msg string) {
	jsonResponse(ctx, status, map[string]string{"error": msg})
}

// MustUserID returns the {userId} path value, or sends 400 and returns (0, false).
func MustUserID(ctx *fasthttp.RequestCtx) (uint, bool) {
	idVal := ctx.UserValue("userId")
	if idVal == nil {
		jsonError(ctx, fasthttp.StatusBadRequest, "invalid user ID")
		return 0, false
	}
	idStr, ok := idVal.(string)
	if !ok {
		jsonError(ctx, fasthttp.StatusBadRequest, "invalid user ID")
		return 0, false
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		jsonError(ctx, fasthttp.StatusBadRequest, "invalid user ID")
		return 0, false
	}
	return uint(id), true
}
