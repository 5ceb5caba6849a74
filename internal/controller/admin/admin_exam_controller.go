package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/university/internal/controller"
	"github.com/lshigami/university/internal/dto"
	"github.com/lshigami/university/internal/service"
	"github.com/lshigami/university/internal/validation"
)

type AdminExamController struct {
	questionService service.QuestionService
	examService     service.ExamService
	validator       *validation.Validator
}

func NewAdminExamController(qs service.QuestionService, es service.ExamService, v *validation.Validator) *AdminExamController {
	return &AdminExamController{questionService: qs, examService: es, validator: v}
}

// RegisterRoutes mounts the admin endpoints under /admin and the read-only
// exam endpoint at the root.
func (c *AdminExamController) RegisterRoutes(router gin.IRouter) {
	admin := router.Group("/admin")
	admin.POST("/questions", c.CreateQuestion)
	admin.GET("/questions/:question_id", c.GetQuestion)
	admin.POST("/exams", c.CreateExam)

	router.GET("/exams/:exam_id", c.GetExam)
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language of validation messages (en, pt-BR)"
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {array} string "Validation messages"
// @Router /admin/questions [post]
func (c *AdminExamController) CreateQuestion(ctx *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBadBody(ctx, err)
		return
	}
	question, err := c.questionService.CreateQuestion(ctx.Request.Context(), req, c.validator.Locale(ctx.GetHeader("Accept-Language")))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.CreatedAt(ctx, question.ID)
}

// GetQuestion godoc
// @Summary (Admin) Get a question
// @Tags Admin - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "question not registered"
// @Router /admin/questions/{question_id} [get]
func (c *AdminExamController) GetQuestion(ctx *gin.Context) {
	questionID, ok := controller.ParseID(ctx, "question_id")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(ctx.Request.Context(), questionID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// CreateExam godoc
// @Summary (Admin) Create an exam from existing questions
// @Tags Admin - Exams
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language of validation messages (en, pt-BR)"
// @Param exam body dto.CreateExamRequest true "Exam data"
// @Success 201 {object} dto.ExamResponse
// @Failure 400 {array} string "Validation messages"
// @Failure 422 {object} dto.ErrorResponse "Unknown question id"
// @Router /admin/exams [post]
func (c *AdminExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBadBody(ctx, err)
		return
	}
	exam, err := c.examService.CreateExam(ctx.Request.Context(), req, c.validator.Locale(ctx.GetHeader("Accept-Language")))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Header("Location", "/exams/"+strconv.FormatUint(uint64(exam.ID), 10))
	ctx.JSON(http.StatusCreated, exam)
}

// GetExam godoc
// @Summary Get an exam with its questions
// @Tags Exams
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 404 {object} dto.ErrorResponse "exam not registered"
// @Router /exams/{exam_id} [get]
func (c *AdminExamController) GetExam(ctx *gin.Context) {
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	exam, err := c.examService.GetExam(ctx.Request.Context(), examID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exam)
}
