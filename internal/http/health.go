package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wallabag2karakeep/internal/database"
	"github.com/mrlokans/wallabag2karakeep/internal/database/runs"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// LastRun summarizes the most recent recorded conversion.
type LastRun struct {
	RunID     string    `json:"run_id"`
	Trigger   string    `json:"trigger"`
	Status    string    `json:"status"`
	Converted int       `json:"converted"`
	At        time.Time `json:"at"`
}

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Uptime  string            `json:"uptime"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
	LastRun *LastRun          `json:"last_run,omitempty"`
}

type HealthController struct {
	db        *database.Database
	version   string
	startedAt time.Time
}

// NewHealthController takes the history database, which may be nil when
// history is disabled.
func NewHealthController(db *database.Database, version string) *HealthController {
	return &HealthController{
		db:        db,
		version:   version,
		startedAt: time.Now(),
	}
}

func (h *HealthController) Status(c *gin.Context) {
	health := HealthResponse{
		Status:  statusHealthy,
		Time:    time.Now().Format(time.RFC3339),
		Uptime:  time.Since(h.startedAt).Round(time.Second).String(),
		Version: h.version,
		Checks:  map[string]string{"history_database": "not configured"},
	}

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			health.Checks["history_database"] = "error: " + err.Error()
			health.Status = statusUnhealthy
		} else {
			health.Checks["history_database"] = "ok"
			health.LastRun = h.lastRun()
		}
	}

	statusCode := http.StatusOK
	if health.Status != statusHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}

// lastRun is best effort; a failing query leaves it out of the response.
func (h *HealthController) lastRun() *LastRun {
	latest, err := runs.NewRepository(h.db.DB).ListRuns(1)
	if err != nil || len(latest) == 0 {
		return nil
	}
	run := latest[0]
	return &LastRun{
		RunID:     run.RunID,
		Trigger:   run.Trigger,
		Status:    string(run.Status),
		Converted: run.Converted,
		At:        run.CreatedAt,
	}
}
