// Package handler provides HTTP handlers for the Reiseplaner API.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/reiseplaner/reiseplaner/internal/api/models"
	"github.com/reiseplaner/reiseplaner/internal/api/response"
	"github.com/reiseplaner/reiseplaner/internal/planner"
)

// PlanHandler handles trip planning endpoints.
type PlanHandler struct{}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler() *PlanHandler {
	return &PlanHandler{}
}

// PlanTrip handles POST /plan_trip - generate a multi-day itinerary.
func (h *PlanHandler) PlanTrip(w http.ResponseWriter, r *http.Request) {
	var input models.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	var fieldErrors []models.FieldError

	if input.City == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "city",
			Message: "required",
		})
	}

	days, daysErr := parseDays(input.Days)
	if daysErr != nil {
		fieldErrors = append(fieldErrors, *daysErr)
	}

	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "invalid trip request", fieldErrors)
		return
	}

	// Omitted optional fields fall back to defaults; explicit empty strings
	// pass through so their header lines are simply left out of the plan.
	interests := models.DefaultInterests
	if input.Interests != nil {
		interests = *input.Interests
	}
	weather := models.DefaultWeather
	if input.Weather != nil {
		weather = *input.Weather
	}

	plan := planner.PlanTrip(input.City, days, interests, weather)
	response.JSON(w, r, http.StatusOK, models.TripResponse{Plan: plan})
}

// parseDays validates the raw days value. Both JSON numbers and numeric
// strings are accepted; anything that is not a whole number in range is a
// field error.
func parseDays(raw *json.RawMessage) (int, *models.FieldError) {
	if raw == nil {
		return 0, &models.FieldError{Field: "days", Message: "required"}
	}

	value := strings.TrimSpace(string(*raw))
	if value == "null" {
		return 0, &models.FieldError{Field: "days", Message: "required"}
	}
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = strings.TrimSpace(value[1 : len(value)-1])
	}

	days, err := strconv.Atoi(value)
	if err != nil {
		return 0, &models.FieldError{Field: "days", Message: "must be an integer"}
	}
	if days < planner.MinDays {
		return 0, &models.FieldError{Field: "days", Message: "must be positive"}
	}
	if days > planner.MaxDays {
		return 0, &models.FieldError{Field: "days", Message: "must not exceed 21"}
	}
	return days, nil
}
