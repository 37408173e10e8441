package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ohrid/internal/models/request_models"
	"ohrid/internal/services"
	"ohrid/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GetPlan godoc
// @Summary Whole plan
// @Description Every planned date with its items
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plans [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	utils.RespondSuccess(c, p.planService.GetPlan(c.Request.Context()), "Plan fetched successfully")
}

func (p *PlanController) GetDay(c *gin.Context) {
	day, err := p.planService.GetDay(c.Request.Context(), c.Param("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, day, "Day plan fetched successfully")
}

// AddItem godoc
// @Summary Add an item to a date
// @Tags Plans
// @Accept json
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Param body body request_models.AddItemRequest true "Item"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plans/{date}/items [post]
func (p *PlanController) AddItem(c *gin.Context) {
	var req request_models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := p.planService.AddItem(c.Request.Context(), c.Param("date"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, item, "Item added")
}

func (p *PlanController) AddEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	item, err := p.planService.AddEvent(c.Request.Context(), c.Param("date"), eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondStatus(c, http.StatusCreated, item, "Event added")
}

func (p *PlanController) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	if err := p.planService.RemoveItem(c.Request.Context(), c.Param("date"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Item removed")
}

// Reorder godoc
// @Summary Move one item within a date
// @Description Out-of-range indices are ignored and reported as moved=false
// @Tags Plans
// @Accept json
// @Produce json
// @Param date path string true "YYYY-MM-DD"
// @Param body body request_models.ReorderRequest true "From and to indices"
// @Success 200 {object} response_models.ReorderResponse
// @Router /plans/{date}/reorder [post]
func (p *PlanController) Reorder(c *gin.Context) {
	var req request_models.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "from and to are required")
		return
	}

	res, err := p.planService.Reorder(c.Request.Context(), c.Param("date"), *req.From, *req.To)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, res, "Reorder processed")
}

func (p *PlanController) ClearDay(c *gin.Context) {
	if err := p.planService.ClearDay(c.Request.Context(), c.Param("date")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Day cleared")
}

func (p *PlanController) Share(c *gin.Context) {
	share, err := p.planService.Share(c.Request.Context(), c.Param("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, share, "Share link created")
}

// Import accepts the token in the JSON body or as the "plan" query parameter.
func (p *PlanController) Import(c *gin.Context) {
	var req request_models.ImportPlanRequest
	if token := c.Query("plan"); token != "" {
		req.Token = token
	} else if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "plan token is required")
		return
	}

	day, err := p.planService.Import(c.Request.Context(), req.Token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, day, "Shared plan imported")
}

func (p *PlanController) ExportICal(c *gin.Context) {
	date := c.Param("date")
	body, err := p.planService.ExportICal(c.Request.Context(), date)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="ohrid-`+date+`.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", body)
}
