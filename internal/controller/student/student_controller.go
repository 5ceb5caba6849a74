package student

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/university/internal/controller"
	"github.com/lshigami/university/internal/dto"
	"github.com/lshigami/university/internal/service"
	"github.com/lshigami/university/internal/validation"
	"github.com/rs/zerolog/log"
)

type StudentController struct {
	studentService    service.StudentService
	submissionService service.AnswerSubmissionService
	validator         *validation.Validator
}

func NewStudentController(ss service.StudentService, as service.AnswerSubmissionService, v *validation.Validator) *StudentController {
	return &StudentController{
		studentService:    ss,
		submissionService: as,
		validator:         v,
	}
}

func (c *StudentController) RegisterRoutes(router gin.IRouter) {
	students := router.Group("/students")
	students.POST("", c.RegisterStudent)
	students.GET("/:student_id", c.GetStudent)
	students.DELETE("/:student_id", c.RemoveStudent)
	students.POST("/:student_id/exams/:exam_id/answers", c.SubmitAnswers)
	students.GET("/:student_id/exams/:exam_id/answers/:answer_id", c.GetExamAnswer)
}

func (c *StudentController) locale(ctx *gin.Context) string {
	return c.validator.Locale(ctx.GetHeader("Accept-Language"))
}

// RegisterStudent godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language of validation messages (en, pt-BR)"
// @Param student body dto.CreateStudentRequest true "Student data"
// @Success 201 {object} dto.CreatedResponse
// @Header 201 {string} Location "URL of the new student"
// @Failure 400 {array} string "Validation messages"
// @Router /students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBadBody(ctx, err)
		return
	}

	student, err := c.studentService.RegisterStudent(ctx.Request.Context(), req, c.locale(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.CreatedAt(ctx, student.ID)
}

// GetStudent godoc
// @Summary Get a student
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse "student not registered"
// @Router /students/{student_id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id")
	if !ok {
		return
	}
	student, err := c.studentService.GetStudent(ctx.Request.Context(), studentID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, student)
}

// RemoveStudent godoc
// @Summary Remove a student
// @Description Deletes the student and every exam answer it submitted.
// @Tags Students
// @Param student_id path int true "Student ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "student not registered"
// @Router /students/{student_id} [delete]
func (c *StudentController) RemoveStudent(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id")
	if !ok {
		return
	}
	if err := c.studentService.RemoveStudent(ctx.Request.Context(), studentID); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SubmitAnswers godoc
// @Summary Submit a student's answers to an exam
// @Description Every answered question must belong to the exam. The whole submission is stored or rejected.
// @Tags Students
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language of validation messages (en, pt-BR)"
// @Param student_id path int true "Student ID"
// @Param exam_id path int true "Exam ID"
// @Param answers body dto.SubmitAnswersRequest true "Answers"
// @Success 201 {object} dto.CreatedResponse
// @Header 201 {string} Location "URL of the stored exam answer"
// @Failure 400 {array} string "Validation messages"
// @Failure 404 {object} dto.ErrorResponse "student not registered / exam not registered"
// @Failure 422 {object} dto.ErrorResponse "question not part of the exam"
// @Router /students/{student_id}/exams/{exam_id}/answers [post]
func (c *StudentController) SubmitAnswers(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id")
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}

	var req dto.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBadBody(ctx, err)
		return
	}

	log.Info().Uint("studentID", studentID).Uint("examID", examID).Int("answerCount", len(req.Answers)).Msg("Received exam answers")

	examAnswerID, err := c.submissionService.SubmitAnswers(ctx.Request.Context(), studentID, examID, req, c.locale(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	controller.CreatedAt(ctx, examAnswerID)
}

// GetExamAnswer godoc
// @Summary Get a stored exam answer
// @Tags Students
// @Produce json
// @Param student_id path int true "Student ID"
// @Param exam_id path int true "Exam ID"
// @Param answer_id path int true "Exam answer ID"
// @Success 200 {object} dto.ExamAnswerResponse
// @Failure 404 {object} dto.ErrorResponse "exam answer not registered"
// @Router /students/{student_id}/exams/{exam_id}/answers/{answer_id} [get]
func (c *StudentController) GetExamAnswer(ctx *gin.Context) {
	studentID, ok := controller.ParseID(ctx, "student_id")
	if !ok {
		return
	}
	examID, ok := controller.ParseID(ctx, "exam_id")
	if !ok {
		return
	}
	answerID, ok := controller.ParseID(ctx, "answer_id")
	if !ok {
		return
	}

	resp, err := c.submissionService.GetExamAnswer(ctx.Request.Context(), studentID, examID, answerID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
