package controllers

import (
	"Backend-Career-Advisor/src/jobs"
	"Backend-Career-Advisor/src/models"
	"Backend-Career-Advisor/src/services/assessment"
	"Backend-Career-Advisor/src/utils"

	"github.com/gofiber/fiber/v2"
)

type RetrainRequest struct {
	DatasetPath string `json:"datasetPath"`
}

type AdminController struct {
	service    *assessment.Service
	dispatcher *jobs.Dispatcher
}

func NewAdminController(service *assessment.Service, dispatcher *jobs.Dispatcher) *AdminController {
	return &AdminController{service: service, dispatcher: dispatcher}
}

// ListSubmissions godoc
// @Summary      List recent submissions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int     false  "Page"  default(1)
// @Param        limit  query  int     false  "Page size"  default(20)
// @Param        role   query  string  false  "Only this predicted role"
// @Param        order  query  string  false  "createdAt order (asc/desc)"  default(desc)
// @Success      200  {object}  models.PaginatedResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/admin/submissions [get]
func (ctrl *AdminController) ListSubmissions(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query: "+err.Error())
	}

	page, err := ctrl.service.List(c.UserContext(), params)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(page)
}

// Stats godoc
// @Summary      Predicted role histogram
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.SubmissionStats
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/admin/stats [get]
func (ctrl *AdminController) Stats(c *fiber.Ctx) error {
	stats, err := ctrl.service.Stats(c.UserContext())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(stats)
}

// ModelInfo godoc
// @Summary      Serving model
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.ModelInfo
// @Failure      503  {object}  models.ErrorResponse
// @Router       /api/admin/model [get]
func (ctrl *AdminController) ModelInfo(c *fiber.Ctx) error {
	info, err := ctrl.service.ModelInfo()
	if err != nil {
		return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(info)
}

// Retrain godoc
// @Summary      Retrain the model
// @Description  Queues a model:retrain task when Redis is configured, otherwise retrains before responding
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body controllers.RetrainRequest false "Optional dataset override"
// @Success      200  {object}  jobs.RetrainResult
// @Success      202  {object}  jobs.RetrainResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/admin/model/retrain [post]
func (ctrl *AdminController) Retrain(c *fiber.Ctx) error {
	var req RetrainRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	}

	requestedBy, _ := c.Locals("username").(string)
	res, err := ctrl.dispatcher.Retrain(c.UserContext(), req.DatasetPath, requestedBy)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	if res.Queued {
		return c.Status(fiber.StatusAccepted).JSON(res)
	}
	return c.JSON(res)
}
