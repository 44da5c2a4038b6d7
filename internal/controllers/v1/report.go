package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/centsible/backend/internal/export"
	"github.com/centsible/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReport)
	r.GET("", GetReport)

	r.OPTIONS("/pdf", OptionsReportExport)
	r.GET("/pdf", GetReportPDF)

	r.OPTIONS("/excel", OptionsReportExport)
	r.GET("/excel", GetReportExcel)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/report [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/report/pdf [options]
func OptionsReportExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get financial report
// @Description	Returns the financial summary for a date range with all amounts converted to a single currency
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		400	{object}	ReportResponse
// @Failure		500	{object}	ReportResponse
// @Router			/v1/report [get]
// @Param			currency	query	string	false	"Currency to convert all amounts to. Defaults to USD."
// @Param			from		query	string	false	"Start of the date range, as YYYY-MM-DD or RFC3339"
// @Param			to			query	string	false	"End of the date range, as YYYY-MM-DD or RFC3339"
// @Param			reportType	query	string	false	"One of weekly, monthly, quarterly, yearly. Defaults to monthly."
// @Param			categories	query	string	false	"Glob pattern to restrict the categories included"
func GetReport(c *gin.Context) {
	built, _, err := reportForRequest(c, time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &built})
}

// @Summary		Export report as PDF
// @Description	Renders the financial summary as a PDF document
// @Tags			Reports
// @Produce		application/pdf
// @Success		200	{file}		file
// @Failure		400	{object}	export.Result
// @Failure		500	{object}	export.Result
// @Router			/v1/report/pdf [get]
// @Param			currency	query	string	false	"Currency to convert all amounts to. Defaults to USD."
// @Param			from		query	string	false	"Start of the date range, as YYYY-MM-DD or RFC3339"
// @Param			to			query	string	false	"End of the date range, as YYYY-MM-DD or RFC3339"
// @Param			reportType	query	string	false	"One of weekly, monthly, quarterly, yearly. Defaults to monthly."
// @Param			categories	query	string	false	"Glob pattern to restrict the categories included"
func GetReportPDF(c *gin.Context) {
	built, opts, err := reportForRequest(c, time.Now())
	if err != nil {
		c.JSON(status(err), export.Result{Type: export.Error, Message: err.Error()})
		return
	}

	data, result := export.PDF(built, opts)
	if result.Type == export.Error {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.PDFFilename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// @Summary		Export report as Excel
// @Description	Renders the financial summary as an xlsx workbook
// @Tags			Reports
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200	{file}		file
// @Failure		400	{object}	export.Result
// @Failure		500	{object}	export.Result
// @Router			/v1/report/excel [get]
// @Param			currency	query	string	false	"Currency to convert all amounts to. Defaults to USD."
// @Param			from		query	string	false	"Start of the date range, as YYYY-MM-DD or RFC3339"
// @Param			to			query	string	false	"End of the date range, as YYYY-MM-DD or RFC3339"
// @Param			reportType	query	string	false	"One of weekly, monthly, quarterly, yearly. Defaults to monthly."
// @Param			categories	query	string	false	"Glob pattern to restrict the categories included"
func GetReportExcel(c *gin.Context) {
	built, opts, err := reportForRequest(c, time.Now())
	if err != nil {
		c.JSON(status(err), export.Result{Type: export.Error, Message: err.Error()})
		return
	}

	data, result := export.Excel(built, opts)
	if result.Type == export.Error {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.ExcelFilename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
