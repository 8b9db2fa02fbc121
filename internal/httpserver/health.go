package httpserver

import (
	"github.com/gin-gonic/gin"

	"telegram-llm-relay/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "telegram-llm-relay"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the relay is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Relay is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the relay is ready to accept webhook traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Relay is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, healthBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the relay process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Relay is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
