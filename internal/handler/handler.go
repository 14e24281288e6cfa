package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/BarkinBalci/marketing-effectiveness-service/docs"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/analysis"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/dto"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/instrumentation"
	"github.com/BarkinBalci/marketing-effectiveness-service/internal/service"
)

const (
	errValidation  = "validation_error"
	errInvalidData = "invalid_input"
	errInternal    = "internal_error"
	errUnavailable = "unavailable"
)

type Handler struct {
	touchpointService service.TouchpointServicer
	analysisService   service.AnalysisServicer
	metrics           *instrumentation.Metrics
	router            *gin.Engine
	log               *zap.Logger
}

// NewHandler builds the HTTP router. metrics may be nil, in which case
// nothing is recorded and /prometheus answers 404.
func NewHandler(touchpointService service.TouchpointServicer, analysisService service.AnalysisServicer, metrics *instrumentation.Metrics, log *zap.Logger) *Handler {
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), requestID(), accessLog(log, metrics))

	h := &Handler{
		touchpointService: touchpointService,
		analysisService:   analysisService,
		metrics:           metrics,
		router:            router,
		log:               log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/touchpoints", h.publishTouchpoint)
	h.router.POST("/touchpoints/bulk", h.publishTouchpointsBulk)
	h.router.GET("/metrics", h.getMetrics)
	h.router.GET("/attribution", h.getAttribution)
	h.router.POST("/experiments/significance", h.computeSignificance)
	h.router.POST("/creatives/ces", h.scoreCreative)
	h.router.POST("/campaigns/analyze", h.analyzeCampaign)
	h.router.GET("/prometheus", gin.WrapH(h.metrics.Handler()))
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// respondError maps service errors onto status codes and error codes
func (h *Handler) respondError(c *gin.Context, err error) {
	var invalidInput *analysis.InvalidInputError
	switch {
	case errors.As(err, &invalidInput):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errInvalidData, Message: invalidInput.Reason})
	case errors.Is(err, service.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errValidation, Message: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: errInternal, Message: err.Error()})
	}
}

func (h *Handler) respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   errValidation,
		Message: err.Error(),
	})
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check that the service is running and the touchpoint store is reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} dto.ErrorResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.touchpointService.CheckHealth(c.Request.Context()); err != nil {
		h.requestLogger(c).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error:   errUnavailable,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// publishTouchpoint handles POST /touchpoints
// @Summary Publish a single touchpoint
// @Description Validate a marketing touchpoint and queue it for storage
// @Tags touchpoints
// @Accept json
// @Produce json
// @Param touchpoint body dto.PublishTouchpointRequest true "Touchpoint data"
// @Success 202 {object} dto.PublishTouchpointResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /touchpoints [post]
func (h *Handler) publishTouchpoint(c *gin.Context) {
	log := h.requestLogger(c)
	var req dto.PublishTouchpointRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid touchpoint request",
			zap.Error(err),
			zap.String("event_type", req.EventType))
		h.respondBindingError(c, err)
		return
	}

	touchpointID, err := h.touchpointService.ProcessTouchpoint(c.Request.Context(), &req)
	if err != nil {
		log.Warn("Failed to process touchpoint",
			zap.Error(err),
			zap.String("event_type", req.EventType),
			zap.String("contact_id", req.ContactID))
		h.respondError(c, err)
		return
	}

	log.Debug("Touchpoint accepted",
		zap.String("touchpoint_id", touchpointID),
		zap.String("event_type", req.EventType))

	c.JSON(http.StatusAccepted, dto.PublishTouchpointResponse{
		TouchpointID: touchpointID,
		Status:       "accepted",
	})
}

// publishTouchpointsBulk handles POST /touchpoints/bulk
// @Summary Publish multiple touchpoints
// @Description Queue up to 1000 touchpoints. Each is accepted or rejected on its own.
// @Tags touchpoints
// @Accept json
// @Produce json
// @Param touchpoints body dto.PublishTouchpointsBulkRequest true "Bulk touchpoint data"
// @Success 202 {object} dto.PublishBulkTouchpointsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /touchpoints/bulk [post]
func (h *Handler) publishTouchpointsBulk(c *gin.Context) {
	log := h.requestLogger(c)
	var bulkRequest dto.PublishTouchpointsBulkRequest

	if err := c.ShouldBindJSON(&bulkRequest); err != nil {
		log.Warn("Invalid bulk touchpoint request", zap.Error(err))
		h.respondBindingError(c, err)
		return
	}

	touchpointIDs, rejections, err := h.touchpointService.ProcessBulkTouchpoints(c.Request.Context(), bulkRequest.Touchpoints)
	if err != nil {
		log.Error("Failed to process bulk touchpoints",
			zap.Error(err),
			zap.Int("touchpoint_count", len(bulkRequest.Touchpoints)))
		h.respondError(c, err)
		return
	}

	log.Info("Bulk touchpoints processed",
		zap.Int("accepted", len(touchpointIDs)),
		zap.Int("rejected", len(rejections)),
		zap.Int("total", len(bulkRequest.Touchpoints)))

	c.JSON(http.StatusAccepted, dto.PublishBulkTouchpointsResponse{
		Accepted:      len(touchpointIDs),
		Rejected:      len(rejections),
		TouchpointIDs: touchpointIDs,
		Errors:        rejections,
	})
}

// getMetrics handles GET /metrics
// @Summary Get aggregated touchpoint metrics
// @Description Count touchpoints and unique contacts, optionally grouped by campaign, event type, hour or day
// @Tags metrics
// @Produce json
// @Param event_type query string false "Event type to filter by" example:"email_clicked"
// @Param from query int true "Start timestamp (Unix epoch)" example:"1723475612"
// @Param to query int true "End timestamp (Unix epoch)" example:"1723562012"
// @Param group_by query string false "Field to group by" Enums(campaign, event_type, hour, day)
// @Success 200 {object} dto.GetMetricsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /metrics [get]
func (h *Handler) getMetrics(c *gin.Context) {
	log := h.requestLogger(c)
	var req dto.GetMetricsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		log.Warn("Invalid metrics request", zap.Error(err))
		h.respondBindingError(c, err)
		return
	}

	response, err := h.touchpointService.GetMetrics(c.Request.Context(), &req)
	if err != nil {
		log.Warn("Failed to get metrics",
			zap.Error(err),
			zap.String("event_type", req.EventType),
			zap.Int64("from", req.From),
			zap.Int64("to", req.To))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// getAttribution handles GET /attribution
// @Summary Attribute conversion credit for a contact
// @Description Split conversion credit across the campaigns in a contact's touchpoint path
// @Tags attribution
// @Produce json
// @Param contact_id query string true "Contact whose path is attributed" example:"contact_123"
// @Param from query int true "Start timestamp (Unix epoch)" example:"1723475612"
// @Param to query int true "End timestamp (Unix epoch)" example:"1723562012"
// @Param model query string false "Attribution model" Enums(first_touch, last_touch, linear, time_decay, position_based, data_driven, custom)
// @Success 200 {object} dto.GetAttributionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /attribution [get]
func (h *Handler) getAttribution(c *gin.Context) {
	log := h.requestLogger(c)
	var req dto.GetAttributionRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		log.Warn("Invalid attribution request", zap.Error(err))
		h.respondBindingError(c, err)
		return
	}

	response, err := h.analysisService.GetAttribution(c.Request.Context(), &req)
	if err != nil {
		log.Warn("Failed to compute attribution",
			zap.Error(err),
			zap.String("contact_id", req.ContactID),
			zap.String("model", req.Model))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// computeSignificance handles POST /experiments/significance
// @Summary Test an A/B experiment for significance
// @Description Compare the first control variant against the first treatment variant
// @Tags experiments
// @Accept json
// @Produce json
// @Param experiment body dto.ComputeSignificanceRequest true "Variants and confidence level"
// @Success 200 {object} dto.SignificanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /experiments/significance [post]
func (h *Handler) computeSignificance(c *gin.Context) {
	log := h.requestLogger(c)
	var req dto.ComputeSignificanceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid significance request", zap.Error(err))
		h.respondBindingError(c, err)
		return
	}

	response, err := h.analysisService.ComputeSignificance(&req)
	if err != nil {
		log.Warn("Failed to compute significance",
			zap.Error(err),
			zap.Int("variant_count", len(req.Variants)))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// scoreCreative handles POST /creatives/ces
// @Summary Score creative effectiveness
// @Description Compute the creative effectiveness score and tier from quality signals and optional campaign metrics
// @Tags creatives
// @Accept json
// @Produce json
// @Param creative body dto.ScoreCreativeRequest true "Creative signals"
// @Success 200 {object} dto.ScoreCreativeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /creatives/ces [post]
func (h *Handler) scoreCreative(c *gin.Context) {
	var req dto.ScoreCreativeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.requestLogger(c).Warn("Invalid creative scoring request", zap.Error(err))
		h.respondBindingError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.analysisService.ScoreCreative(&req))
}

// analyzeCampaign handles POST /campaigns/analyze
// @Summary Analyze a campaign's creatives
// @Description Validate every creative template, score each one and average the scores across the campaign
// @Tags creatives
// @Accept json
// @Produce json
// @Param campaign body dto.AnalyzeCampaignRequest true "Campaign creatives"
// @Success 200 {object} dto.AnalyzeCampaignResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /campaigns/analyze [post]
func (h *Handler) analyzeCampaign(c *gin.Context) {
	var req dto.AnalyzeCampaignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.requestLogger(c).Warn("Invalid campaign analysis request", zap.Error(err))
		h.respondBindingError(c, err)
		return
	}

	response, err := h.analysisService.AnalyzeCampaign(c.Request.Context(), &req)
	if err != nil {
		h.requestLogger(c).Error("Failed to analyze campaign",
			zap.String("campaign_id", req.CampaignID),
			zap.Error(err))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
