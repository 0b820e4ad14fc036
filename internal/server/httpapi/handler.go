package httpapi

import (
	"encoding/base64"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/models"
)

const dateLayout = "2006-01-02"

func (s *Server) handleHealth(c *gin.Context) {
	if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Error(c.Request.Context(), "health check failed", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c)
		return
	}

	identity, err := s.auth.Verify(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, identity)
}

type studentRequest struct {
	Name       string  `json:"name"`
	BirthDate  string  `json:"birthDate"`
	Guardian   string  `json:"guardian"`
	Phone      string  `json:"phone"`
	MonthlyFee float64 `json:"monthlyFee"`
	Active     *bool   `json:"active"`
}

func (r *studentRequest) toModel() (*models.Student, error) {
	student := &models.Student{
		Name:       r.Name,
		Guardian:   r.Guardian,
		Phone:      r.Phone,
		MonthlyFee: r.MonthlyFee,
		Active:     true,
	}
	if r.Active != nil {
		student.Active = *r.Active
	}
	if r.BirthDate != "" {
		d, err := time.Parse(dateLayout, r.BirthDate)
		if err != nil {
			return nil, err
		}
		student.BirthDate = &d
	}
	return student, nil
}

func (s *Server) handleCreateStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c)
		return
	}

	student, err := req.toModel()
	if err != nil {
		s.badRequest(c)
		return
	}

	created, err := s.students.Create(c.Request.Context(), student)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListStudents(c *gin.Context) {
	list, err := s.students.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleGetStudent(c *gin.Context) {
	student, err := s.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (s *Server) handleUpdateStudent(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c)
		return
	}

	student, err := req.toModel()
	if err != nil {
		s.badRequest(c)
		return
	}
	student.ID = c.Param("id")

	if err := s.students.Update(c.Request.Context(), student); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

func (s *Server) handleDeleteStudent(c *gin.Context) {
	if err := s.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type assignClassRequest struct {
	ClassID string `json:"classId"`
}

func (s *Server) handleAssignClass(c *gin.Context) {
	var req assignClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c)
		return
	}

	if err := s.students.AssignClass(c.Request.Context(), c.Param("id"), req.ClassID); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"studentId": c.Param("id"), "classId": req.ClassID})
}

type classRequest struct {
	Name          string `json:"name"`
	Schedule      string `json:"schedule"`
	CoachUsername string `json:"coachUsername"`
}

func (s *Server) handleCreateClass(c *gin.Context) {
	var req classRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c)
		return
	}

	class := &models.Class{Name: req.Name, Schedule: req.Schedule}
	created, err := s.classes.Create(c.Request.Context(), class, req.CoachUsername)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListClasses(c *gin.Context) {
	list, err := s.classes.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type paymentRequest struct {
	StudentID      string  `json:"studentId"`
	ReferenceMonth string  `json:"referenceMonth"`
	Amount         float64 `json:"amount"`
}

func (s *Server) handleRecordPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c)
		return
	}

	payment := &models.Payment{
		StudentID:      req.StudentID,
		ReferenceMonth: req.ReferenceMonth,
		Amount:         req.Amount,
	}

	created, err := s.payments.Record(c.Request.Context(), payment)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListPaymentsByMonth(c *gin.Context) {
	list, err := s.payments.ListByMonth(c.Request.Context(), c.Query("month"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleListStudentPayments(c *gin.Context) {
	list, err := s.payments.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type checkInRequest struct {
	StudentID     string `json:"studentId"`
	ClassID       string `json:"classId"`
	Date          string `json:"date"`
	CurrentUserID string `json:"currentUserId"`
}

func (s *Server) handleCheckIn(c *gin.Context) {
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c)
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		s.badRequest(c)
		return
	}

	attendance := &models.Attendance{
		StudentID:   req.StudentID,
		ClassID:     req.ClassID,
		Date:        date,
		CheckedInBy: req.CurrentUserID,
	}

	created, err := s.attendance.CheckIn(c.Request.Context(), attendance)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) handleListAttendance(c *gin.Context) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		s.badRequest(c)
		return
	}

	list, err := s.attendance.ListByClassAndDate(c.Request.Context(), c.Query("class"), date)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type uploadReceiptRequest struct {
	File          string `json:"file"`
	FileName      string `json:"fileName"`
	StudentID     string `json:"studentId"`
	CurrentUserID string `json:"currentUserId"`
}

func (s *Server) handleUploadReceipt(c *gin.Context) {
	var req uploadReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c)
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.File)
	if err != nil {
		s.badRequest(c)
		return
	}

	receipt, err := s.receipts.Upload(c.Request.Context(), req.StudentID, req.CurrentUserID, req.FileName, data)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

func (s *Server) handleListStudentReceipts(c *gin.Context) {
	list, err := s.receipts.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
