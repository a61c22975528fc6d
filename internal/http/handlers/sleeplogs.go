package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasthttp"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"sleepapi/internal/config"
	dbpkg "sleepapi/internal/db"
	"sleepapi/internal/report"
)

var validate = validator.New()

const opaqueErrorMessage = "An unexpected error occurred. Please try again later."

type createSleepLogRequest struct {
	EntryDate      string `json:"entryDate" validate:"required,datetime=2006-01-02"`
	BedTime        string `json:"bedTime" validate:"required,datetime=15:04:05"`
	WakeTime       string `json:"wakeTime" validate:"required,datetime=15:04:05"`
	MorningFeeling string `json:"morningFeeling" validate:"required,oneof=BAD OK GOOD"`
}

type sleepLogResponse struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"userId"`
	EntryDate      string    `json:"entryDate"`
	BedTime        string    `json:"bedTime"`
	WakeTime       string    `json:"wakeTime"`
	TotalTimeInBed int       `json:"totalTimeInBed"`
	MorningFeeling string    `json:"morningFeeling"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toSleepLogResponse(entry *dbpkg.SleepLog) sleepLogResponse {
	return sleepLogResponse{
		ID:             entry.ID,
		UserID:         entry.UserID,
		EntryDate:      formatDate(entry.EntryDate),
		BedTime:        formatTimeOfDay(entry.BedTime),
		WakeTime:       formatTimeOfDay(entry.WakeTime),
		TotalTimeInBed: entry.TotalTimeInBed,
		MorningFeeling: entry.MorningFeeling,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}

// CreateSleepLog handles POST /users/{userId}/logs.
func CreateSleepLog(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		userID, ok := MustUserID(ctx)
		if !ok {
			return
		}

		var req createSleepLogRequest
		if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, "invalid JSON body")
			return
		}
		if err := validate.Struct(&req); err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}

		entryDate, err := parseDate(req.EntryDate)
		if err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, "invalid entry date")
			return
		}
		bedTime, err := parseTimeOfDay(req.BedTime)
		if err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, "invalid bed time")
			return
		}
		wakeTime, err := parseTimeOfDay(req.WakeTime)
		if err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, "invalid wake time")
			return
		}
		feeling, err := dbpkg.ParseMorningFeeling(req.MorningFeeling)
		if err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, err.Error())
			return
		}

		entry, err := dbpkg.CreateSleepLog(db, userID, entryDate, bedTime, wakeTime, feeling)
		if err != nil {
			if errors.Is(err, dbpkg.ErrDuplicateSleepLog) {
				jsonError(ctx, fasthttp.StatusBadRequest, err.Error())
				return
			}
			jsonError(ctx, fasthttp.StatusInternalServerError, opaqueErrorMessage)
			return
		}

		observeSleepLogCreated(feeling, entry.TotalTimeInBed)
		jsonResponse(ctx, fasthttp.StatusOK, toSleepLogResponse(entry))
	}
}

// GetSleepLog handles GET /users/{userId}/logs/{entryDate}.
func GetSleepLog(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		userID, ok := MustUserID(ctx)
		if !ok {
			return
		}

		dateStr, _ := ctx.UserValue("entryDate").(string)
		entryDate, err := parseDate(dateStr)
		if err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, "invalid entry date")
			return
		}

		respondWithSleepLog(ctx, db, userID, entryDate)
	}
}

// GetLastNightSleepLog handles GET /users/{userId}/logs/lastNight. The log
// created on the current date is assumed to be last night's log.
func GetLastNightSleepLog(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		userID, ok := MustUserID(ctx)
		if !ok {
			return
		}
		respondWithSleepLog(ctx, db, userID, today())
	}
}

func respondWithSleepLog(ctx *fasthttp.RequestCtx, db *gorm.DB, userID uint, entryDate datatypes.Date) {
	entry, err := dbpkg.GetSleepLog(db, userID, entryDate)
	if err != nil {
		if errors.Is(err, dbpkg.ErrNotFound) {
			jsonError(ctx, fasthttp.StatusNotFound,
				fmt.Sprintf("Sleep log not found for userId %d on %s", userID, formatDate(entryDate)))
			return
		}
		jsonError(ctx, fasthttp.StatusInternalServerError, opaqueErrorMessage)
		return
	}
	jsonResponse(ctx, fasthttp.StatusOK, toSleepLogResponse(entry))
}

// GetSleepLogs handles GET /users/{userId}/logs?startDate=...&endDate=...
// and returns the (possibly empty) list of logs in the inclusive window,
// ordered by entry date.
func GetSleepLogs(db *gorm.DB) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		userID, ok := MustUserID(ctx)
		if !ok {
			return
		}

		startDate, err := parseDate(string(ctx.QueryArgs().Peek("startDate")))
		if err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, "invalid startDate")
			return
		}
		endDate, err := parseDate(string(ctx.QueryArgs().Peek("endDate")))
		if err != nil {
			jsonError(ctx, fasthttp.StatusBadRequest, "invalid endDate")
			return
		}

		entries, err := dbpkg.GetSleepLogs(db, userID, startDate, endDate)
		if err != nil {
			jsonError(ctx, fasthttp.StatusInternalServerError, opaqueErrorMessage)
			return
		}

		out := make([]sleepLogResponse, 0, len(entries))
		for i := range entries {
			out = append(out, toSleepLogResponse(&entries[i]))
		}
		jsonResponse(ctx, fasthttp.StatusOK, out)
	}
}

type sleepLogReportResponse struct {
	StartDate                    string         `json:"startDate"`
	EndDate                      string         `json:"endDate"`
	AverageTotalTimeInBedSeconds int            `json:"averageTotalTimeInBedSeconds"`
	AverageBedTime               string         `json:"averageBedTime"`
	AverageWakeTime              string         `json:"averageWakeTime"`
	MorningFeelingFrequencies    map[string]int `json:"morningFeelingFrequencies"`
}

// SleepLogReport handles GET /users/{userId}/logs/report?days=N (default 30).
// The window is [today-N, today]; N is clamped to cfg.MaxReportDays.
func SleepLogReport(db *gorm.DB, cfg *config.Config) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		userID, ok := MustUserID(ctx)
		if !ok {
			return
		}

		days := 30
		if v := string(ctx.QueryArgs().Peek("days")); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				jsonError(ctx, fasthttp.StatusBadRequest, "invalid days parameter")
				return
			}
			days = n
		}
		if days > cfg.MaxReportDays {
			days = cfg.MaxReportDays
		}

		endDate := today()
		startDate := datatypes.Date(time.Time(endDate).AddDate(0, 0, -days))

		entries, err := dbpkg.GetSleepLogs(db, userID, startDate, endDate)
		if err != nil {
			jsonError(ctx, fasthttp.StatusInternalServerError, opaqueErrorMessage)
			return
		}

		agg := report.Summarize(entries, startDate, endDate)
		if agg == nil {
			jsonError(ctx, fasthttp.StatusNotFound,
				fmt.Sprintf("No sleep logs found for userId %d in the last %d days", userID, days))
			return
		}

		jsonResponse(ctx, fasthttp.StatusOK, sleepLogReportResponse{
			StartDate:                    formatDate(agg.StartDate),
			EndDate:                      formatDate(agg.EndDate),
			AverageTotalTimeInBedSeconds: agg.AverageTotalTimeInBedSeconds,
			AverageBedTime:               formatTimeOfDay(agg.AverageBedTime),
			AverageWakeTime:              formatTimeOfDay(agg.AverageWakeTime),
			MorningFeelingFrequencies:    agg.MorningFeelingFrequencies,
		})
	}
}
