package handler

import (
	"net/http"
	"strconv"
	"time"

	"theatre-scheduling-backend/internal/service"
	"theatre-scheduling-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// GenerateScheduleRequest represents the request body for a generation run
type GenerateScheduleRequest struct {
	HospitalID uint   `json:"hospital_id" binding:"required"`
	StartDate  string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate    string `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

// Generate runs the scheduling engine over a date range (admin only)
func (h *ScheduleHandler) Generate(c *gin.Context) {
	var req GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. hospital_id, start_date and end_date are required")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid start_date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid end_date, expected YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		utils.ErrorResponse(c, http.StatusBadRequest, "end_date must not be before start_date")
		return
	}

	// Get user ID from context (set by auth middleware)
	var triggeredBy *uint
	if userID, exists := c.Get("userID"); exists {
		id := userID.(uint)
		triggeredBy = &id
	}

	result, err := h.scheduleService.GenerateFromConfig(c.Request.Context(), req.HospitalID, start, end, triggeredBy)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, result)
}

// GetLists returns persisted session lists for a hospital and date range
func (h *ScheduleHandler) GetLists(c *gin.Context) {
	hospitalID, err := strconv.ParseUint(c.Query("hospital_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid or missing hospital_id")
		return
	}

	from, err := time.Parse("2006-01-02", c.DefaultQuery("from", time.Now().Format("2006-01-02")))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.Parse("2006-01-02", c.DefaultQuery("to", from.AddDate(0, 0, 6).Format("2006-01-02")))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	lists, err := h.scheduleService.GetSessionLists(uint(hospitalID), from, to)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch session lists")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"lists": lists,
		"count": len(lists),
	})
}

// GetList returns one session list with its ordered cases
func (h *ScheduleHandler) GetList(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid session list ID")
		return
	}

	list, err := h.scheduleService.GetSessionListByID(uint(id))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, list)
}

// GetRun returns a generation run's summary by its UUID
func (h *ScheduleHandler) GetRun(c *gin.Context) {
	run, err := h.scheduleService.GetRunByUID(c.Param("uid"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		return
	}

	utils.SuccessResponse(c, run)
}
