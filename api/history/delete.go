package history

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dreamecho/feed-api/api/types"
	historyService "github.com/dreamecho/feed-api/internal/services/history"
)

// Delete handles removing one record
// @Summary      Delete a listening record
// @Description  Remove the record with the given ID
// @Tags         history
// @Produce      json
// @Param        id path string true "Record ID"
// @Success      200 {object} types.BaseResponse "Record deleted"
// @Failure      404 {object} types.ErrorResponse "Record not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/history/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := deps.HistoryService.DeleteRecord(c.Request.Context(), id); err != nil {
			if historyService.IsNotFound(err) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Listening record not found",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to delete listening record",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Listening record deleted successfully",
		})
	}
}

// Clear handles removing every record
// @Summary      Clear listening history
// @Description  Remove all listening records
// @Tags         history
// @Produce      json
// @Success      200 {object} types.BaseResponse "History cleared"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/history [delete]
func Clear(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.HistoryService.ClearAll(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to clear listening history",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Listening history cleared successfully",
		})
	}
}
