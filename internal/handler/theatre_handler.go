package handler

import (
	"net/http"
	"strconv"

	"theatre-scheduling-backend/internal/service"
	"theatre-scheduling-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TheatreHandler struct {
	theatreService *service.TheatreService
}

func NewTheatreHandler(theatreService *service.TheatreService) *TheatreHandler {
	return &TheatreHandler{
		theatreService: theatreService,
	}
}

// GetHospitals retrieves hospitals accessible to the current user
func (h *TheatreHandler) GetHospitals(c *gin.Context) {
	// Get user info from context
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	hospitals, err := h.theatreService.GetHospitals(userID.(uint), role.(string))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch hospitals")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetTheatresByHospital retrieves all active theatres for a specific hospital
func (h *TheatreHandler) GetTheatresByHospital(c *gin.Context) {
	// Parse hospital ID
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	// Get user info from context
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	theatres, err := h.theatreService.GetTheatres(uint(hospitalID), userID.(uint), role.(string))
	if err != nil {
		if err.Error() == "access denied: you don't have permission to access this hospital" {
			utils.ErrorResponse(c, http.StatusForbidden, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch theatres")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"theatres": theatres,
		"count":    len(theatres),
	})
}

// GetTheatreUnitsByHospital retrieves all active theatre units for a hospital
func (h *TheatreHandler) GetTheatreUnitsByHospital(c *gin.Context) {
	// Parse hospital ID
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	// Get user info from context
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	units, err := h.theatreService.GetTheatreUnits(uint(hospitalID), userID.(uint), role.(string))
	if err != nil {
		if err.Error() == "access denied: you don't have permission to access this hospital" {
			utils.ErrorResponse(c, http.StatusForbidden, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch theatre units")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"units": units,
		"count": len(units),
	})
}

// GetTheatreConfiguration retrieves the specialty assignments of a theatre
func (h *TheatreHandler) GetTheatreConfiguration(c *gin.Context) {
	// Parse theatre ID
	theatreID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid theatre ID")
		return
	}

	// Get user info from context
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	configuration, err := h.theatreService.GetTheatreConfiguration(uint(theatreID), userID.(uint), role.(string))
	if err != nil {
		if err.Error() == "theatre not found" || err.Error() == "theatre configuration not found" {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else if err.Error() == "access denied: you don't have permission to access this hospital" {
			utils.ErrorResponse(c, http.StatusForbidden, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch theatre configuration")
		}
		return
	}

	utils.SuccessResponse(c, configuration)
}

// GetWaitingList retrieves pending waiting-list entries for a hospital,
// optionally filtered by ?specialty= or ?surgeon_id=
func (h *TheatreHandler) GetWaitingList(c *gin.Context) {
	// Parse hospital ID
	hospitalID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	specialty := c.Query("specialty")

	// Optional consultant filter
	var surgeonID uint64
	if v := c.Query("surgeon_id"); v != "" {
		surgeonID, err = strconv.ParseUint(v, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid surgeon_id")
			return
		}
	}

	// Get user info from context
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")

	entries, err := h.theatreService.GetWaitingList(uint(hospitalID), specialty, uint(surgeonID), userID.(uint), role.(string))
	if err != nil {
		if err.Error() == "access denied: you don't have permission to access this hospital" {
			utils.ErrorResponse(c, http.StatusForbidden, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch waiting list")
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}
