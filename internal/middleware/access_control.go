package middleware

import (
	"net/http"
	"strconv"

	"theatre-scheduling-backend/internal/models"
	"theatre-scheduling-backend/internal/repository"
	"theatre-scheduling-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccessControlMiddleware provides hospital and theatre access control
type AccessControlMiddleware struct {
	userHospitalRepo *repository.UserHospitalRepository
	theatreRepo      *repository.TheatreRepository
}

// NewAccessControlMiddleware creates a new access control middleware
func NewAccessControlMiddleware(
	userHospitalRepo *repository.UserHospitalRepository,
	theatreRepo *repository.TheatreRepository,
) *AccessControlMiddleware {
	return &AccessControlMiddleware{
		userHospitalRepo: userHospitalRepo,
		theatreRepo:      theatreRepo,
	}
}

// CheckHospitalAccess verifies user has access to the hospital specified in the path
// Expected path parameter: :hospital_id or :id
func (m *AccessControlMiddleware) CheckHospitalAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get user info from context (set by AuthMiddleware)
		userID, exists := c.Get("userID")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
			c.Abort()
			return
		}

		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User role not found")
			c.Abort()
			return
		}

		// Admin users have access to all hospitals
		if role.(string) == models.RoleAdmin {
			c.Next()
			return
		}

		// Parse hospital ID from path parameter
		hospitalIDStr := c.Param("hospital_id")
		if hospitalIDStr == "" {
			hospitalIDStr = c.Param("id")
		}

		hospitalID, err := strconv.ParseUint(hospitalIDStr, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
			c.Abort()
			return
		}

		// Check if user has access to this hospital
		hasAccess, err := m.userHospitalRepo.UserHasAccessToHospital(userID.(uint), uint(hospitalID))
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to verify access")
			c.Abort()
			return
		}

		if !hasAccess {
			utils.ErrorResponse(c, http.StatusForbidden, "Access denied: you don't have permission to access this hospital")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CheckTheatreAccess verifies user has access to the theatre specified in the path
// Expected path parameter: :theatre_id or :id
func (m *AccessControlMiddleware) CheckTheatreAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get user info from context (set by AuthMiddleware)
		userID, exists := c.Get("userID")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User not authenticated")
			c.Abort()
			return
		}

		role, exists := c.Get("role")
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "User role not found")
			c.Abort()
			return
		}

		// Admin users have access to all theatres
		if role.(string) == models.RoleAdmin {
			c.Next()
			return
		}

		// Parse theatre ID from path parameter
		theatreIDStr := c.Param("theatre_id")
		if theatreIDStr == "" {
			theatreIDStr = c.Param("id")
		}

		theatreID, err := strconv.ParseUint(theatreIDStr, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid theatre ID")
			c.Abort()
			return
		}

		// Get theatre to find its hospital
		theatre, err := m.theatreRepo.GetTheatreByID(uint(theatreID))
		if err != nil {
			utils.ErrorResponse(c, http.StatusNotFound, "Theatre not found")
			c.Abort()
			return
		}

		// Check if user has access to the theatre's hospital
		hasAccess, err := m.userHospitalRepo.UserHasAccessToHospital(userID.(uint), theatre.HospitalID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to verify access")
			c.Abort()
			return
		}

		if !hasAccess {
			utils.ErrorResponse(c, http.StatusForbidden, "Access denied: you don't have permission to access this theatre")
			c.Abort()
			return
		}

		c.Next()
	}
}
