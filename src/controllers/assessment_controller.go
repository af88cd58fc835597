package controllers

import (
	"errors"
	"strings"

	"Backend-Career-Advisor/src/models"
	"Backend-Career-Advisor/src/qrcode"
	"Backend-Career-Advisor/src/services/assessment"
	"Backend-Career-Advisor/src/services/questionnaire"
	"Backend-Career-Advisor/src/services/roles"
	"Backend-Career-Advisor/src/services/submission"
	"Backend-Career-Advisor/src/services/training"
	"Backend-Career-Advisor/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// --------- Input DTOs ---------

type AssessmentRequest struct {
	Answers []string `json:"answers" validate:"required,max=15,dive,max=64"`
}

type CareersResponse struct {
	Roles    []models.Role `json:"roles"`
	Featured []string      `json:"featured"`
}

type AssessmentController struct {
	service  *assessment.Service
	validate *validator.Validate
}

func NewAssessmentController(service *assessment.Service, validate *validator.Validate) *AssessmentController {
	return &AssessmentController{service: service, validate: validate}
}

// GetQuestions godoc
// @Summary      List questionnaire
// @Description  The 15 skill questions in order and the answer options
// @Tags         assessments
// @Produce      json
// @Success      200  {object}  models.Questionnaire
// @Router       /api/questions [get]
func (ctrl *AssessmentController) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(ctrl.service.Questionnaire())
}

// GetCareers godoc
// @Summary      List careers
// @Description  Every role the model can predict and the homepage showcase
// @Tags         assessments
// @Produce      json
// @Success      200  {object}  controllers.CareersResponse
// @Router       /api/careers [get]
func (ctrl *AssessmentController) GetCareers(c *fiber.Ctx) error {
	return c.JSON(CareersResponse{Roles: roles.All(), Featured: roles.Featured()})
}

// CreateAssessment godoc
// @Summary      Submit an assessment
// @Description  Accepts {"answers": [...]} as JSON or question_0..question_14 form fields
// @Tags         assessments
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body body controllers.AssessmentRequest false "Answers in question order"
// @Success      201  {object}  models.Prediction
// @Failure      400  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/assessments [post]
func (ctrl *AssessmentController) CreateAssessment(c *fiber.Ctx) error {
	var in AssessmentRequest
	if c.Is("json") {
		if err := c.BodyParser(&in); err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
		}
	} else {
		in.Answers = formAnswers(c)
	}

	if err := ctrl.validate.Struct(in); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	prediction, err := ctrl.service.Assess(c.UserContext(), in.Answers)
	if err != nil {
		var ue *assessment.UnansweredError
		switch {
		case errors.As(err, &ue):
			return utils.HandleMissing(c, "Please answer all questions", ue.Missing)
		case errors.Is(err, assessment.ErrTooManyAnswers):
			return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, training.ErrNoModel):
			return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
		default:
			return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(fiber.StatusCreated).JSON(prediction)
}

// formAnswers reads question_0..question_14 from a submitted form.
func formAnswers(c *fiber.Ctx) []string {
	answers := make([]string, questionnaire.Size)
	for i := range answers {
		answers[i] = strings.TrimSpace(c.FormValue(questionnaire.Key(i)))
	}
	return answers
}

// GetAssessment godoc
// @Summary      Get a stored assessment
// @Tags         assessments
// @Produce      json
// @Param        id   path      string  true  "Submission ID"
// @Success      200  {object}  models.Submission
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/assessments/{id} [get]
func (ctrl *AssessmentController) GetAssessment(c *fiber.Ctx) error {
	sub, err := ctrl.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, submission.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(sub)
}

// GetAssessmentQRCode godoc
// @Summary      QR code linking to a stored assessment
// @Tags         assessments
// @Produce      png
// @Param        id    path   string  true   "Submission ID"
// @Param        size  query  int     false  "Image size in pixels"  default(256)
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/assessments/{id}/qrcode [get]
func (ctrl *AssessmentController) GetAssessmentQRCode(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := ctrl.service.Get(c.UserContext(), id); err != nil {
		if errors.Is(err, submission.ErrNotFound) {
			return utils.HandleError(c, fiber.StatusNotFound, "Submission not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	size := c.QueryInt("size", qrcode.DefaultSize)
	if size < 64 || size > 1024 {
		size = qrcode.DefaultSize
	}
	png, err := qrcode.PNG(c.BaseURL()+"/api/assessments/"+id, size)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
