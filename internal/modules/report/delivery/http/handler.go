package handler

import (
	"net/http"

	"anoa.com/casetrack/internal/modules/report/dto"
	report "anoa.com/casetrack/internal/modules/report/service"
	"anoa.com/casetrack/pkg/response"
	"anoa.com/casetrack/pkg/validator"
	"github.com/gin-gonic/gin"
)

// ReportHandler serves every report as JSON, or CSV when built with asCSV.
type ReportHandler struct {
	service report.Service
}

func NewReportHandler(service report.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

func (h *ReportHandler) window(c *gin.Context) (dto.WindowQuery, dto.Window, bool) {
	var query dto.WindowQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ResponseError(c, validator.BindError(err))
		return query, dto.Window{}, false
	}

	w, err := h.service.Window(query)
	if err != nil {
		response.ResponseError(c, err)
		return query, dto.Window{}, false
	}
	return query, w, true
}

func (h *ReportHandler) Summary(asCSV bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, w, ok := h.window(c)
		if !ok {
			return
		}

		summary, err := h.service.Summary(c.Request.Context(), w)
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		if asCSV {
			writeCSV(c, "summary.csv", dto.SummaryHeader, summary.CSVRecords())
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

func (h *ReportHandler) Enrollments(asCSV bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, w, ok := h.window(c)
		if !ok {
			return
		}

		rows, err := h.service.Enrollments(c.Request.Context(), w)
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		if asCSV {
			writeCSV(c, "enrollments.csv", dto.DateCountHeader, records(rows))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// ServicesByType groups by type, or by type and day with ?group=date.
func (h *ReportHandler) ServicesByType(asCSV bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, w, ok := h.window(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()

		if query.Group == "date" {
			rows, err := h.service.ServicesByTypeAndDate(ctx, w)
			if err != nil {
				response.ResponseError(c, err)
				return
			}
			if asCSV {
				writeCSV(c, "services_by_type.csv", dto.TypeDateCountHeader, records(rows))
				return
			}
			c.JSON(http.StatusOK, rows)
			return
		}

		rows, err := h.service.ServicesByType(ctx, w)
		if err != nil {
			response.ResponseError(c, err)
			return
		}
		if asCSV {
			writeCSV(c, "services_by_type.csv", dto.TypeCountHeader, records(rows))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) Referrals(asCSV bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.Referrals(c.Request.Context())
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		if asCSV {
			writeCSV(c, "referrals.csv", dto.ReferralCountHeader, records(rows))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) Outcomes(asCSV bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := h.service.Outcomes(c.Request.Context())
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		if asCSV {
			writeCSV(c, "outcomes.csv", dto.OutcomeCountHeader, records(rows))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) Participants(asCSV bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query dto.ParticipantExportQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			response.ResponseError(c, validator.BindError(err))
			return
		}

		rows, err := h.service.Participants(c.Request.Context(), query)
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		if asCSV {
			writeCSV(c, "participants.csv", dto.ParticipantRowHeader, records(rows))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

func (h *ReportHandler) Services(asCSV bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, w, ok := h.window(c)
		if !ok {
			return
		}

		rows, err := h.service.Services(c.Request.Context(), w)
		if err != nil {
			response.ResponseError(c, err)
			return
		}

		if asCSV {
			writeCSV(c, "services.csv", dto.ServiceRowHeader, records(rows))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// Register mounts the JSON and .csv variant of each report on rg.
func (h *ReportHandler) Register(rg gin.IRoutes) {
	reports := map[string]func(bool) gin.HandlerFunc{
		"summary":          h.Summary,
		"enrollments":      h.Enrollments,
		"services_by_type": h.ServicesByType,
		"referrals":        h.Referrals,
		"outcomes":         h.Outcomes,
		"participants":     h.Participants,
		"services":         h.Services,
	}
	for name, build := range reports {
		rg.GET("/reports/"+name, build(false))
		rg.GET("/reports/"+name+".csv", build(true))
	}
}
