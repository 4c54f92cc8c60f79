package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wallabag2karakeep/internal/converter"
	"github.com/mrlokans/wallabag2karakeep/internal/exporters"
	"github.com/mrlokans/wallabag2karakeep/internal/logger"
	"github.com/mrlokans/wallabag2karakeep/internal/services"
)

// ConvertController turns an uploaded wallabag export into the requested
// Karakeep format. The body is the export itself; options come from the
// query string and fall back to the server configuration.
type ConvertController struct {
	runner   *services.Runner
	defaults services.Options
	log      logger.Logger
}

func NewConvertController(runner *services.Runner, defaults services.Options, log logger.Logger) *ConvertController {
	return &ConvertController{
		runner:   runner,
		defaults: defaults,
		log:      log,
	}
}

func (cc *ConvertController) Convert(c *gin.Context) {
	opts, err := optionsFromQuery(c, cc.defaults)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		respondBadRequest(c, "failed to read request body")
		return
	}

	report, err := cc.runner.RunBytes(body, opts, services.TriggerHTTP)
	if report != nil {
		setReportHeaders(c, report)
	}
	if err != nil {
		status, code := http.StatusBadRequest, "invalid_export"
		if errors.Is(err, converter.ErrUnparseableTimestamp) {
			status, code = http.StatusUnprocessableEntity, "unparseable_timestamp"
		}
		cc.log.Warn("Conversion request failed", logger.Error(err))
		c.JSON(status, ErrorResponse{Error: err.Error(), Code: code, RunID: report.RunID})
		return
	}

	var buf bytes.Buffer
	if err := exporters.WriteJSON(&buf, report.Items()); err != nil {
		cc.log.Error("Failed to encode conversion result", logger.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", buf.Bytes())
}

func setReportHeaders(c *gin.Context, report *services.Report) {
	c.Header("X-Run-Id", report.RunID)
	c.Header("X-Entries-Read", strconv.Itoa(report.EntriesRead))
	c.Header("X-Entries-Invalid", strconv.Itoa(report.EntriesInvalid))
	c.Header("X-Entries-After-Dedup", strconv.Itoa(report.EntriesAfterDedup))
	c.Header("X-Entries-Converted", strconv.Itoa(report.Converted))
	c.Header("X-Entries-Skipped", strconv.Itoa(report.Skipped()))
}
