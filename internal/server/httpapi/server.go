// Package httpapi exposes the SIGA services over a JSON/HTTP surface.
// It is a thin transport adapter: every handler translates the request into
// one service call and maps the service error taxonomy onto status codes.
package httpapi

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/logging"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/services"
)

type Server struct {
	addr            string
	shutdownTimeout time.Duration
	logger          logging.Logger
	db              *sql.DB

	auth       *services.AuthService
	students   *services.StudentService
	classes    *services.ClassService
	payments   *services.PaymentService
	attendance *services.AttendanceService
	receipts   *services.ReceiptService

	engine *gin.Engine
}

func NewServer(
	addr string,
	shutdownTimeout time.Duration,
	logger logging.Logger,
	db *sql.DB,
	auth *services.AuthService,
	students *services.StudentService,
	classes *services.ClassService,
	payments *services.PaymentService,
	attendance *services.AttendanceService,
	receipts *services.ReceiptService,
) *Server {

	s := &Server{
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		db:              db,
		auth:            auth,
		students:        students,
		classes:         classes,
		payments:        payments,
		attendance:      attendance,
		receipts:        receipts,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	s.registerRoutes(engine)
	s.engine = engine

	return s
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/health", s.handleHealth)

	r.POST("/auth/login", s.handleLogin)

	r.GET("/students", s.handleListStudents)
	r.POST("/students", s.handleCreateStudent)
	r.GET("/students/:id", s.handleGetStudent)
	r.PUT("/students/:id", s.handleUpdateStudent)
	r.DELETE("/students/:id", s.handleDeleteStudent)
	r.PUT("/students/:id/class", s.handleAssignClass)
	r.GET("/students/:id/payments", s.handleListStudentPayments)
	r.GET("/students/:id/receipts", s.handleListStudentReceipts)

	r.GET("/classes", s.handleListClasses)
	r.POST("/classes", s.handleCreateClass)

	r.POST("/payments", s.handleRecordPayment)
	r.GET("/payments", s.handleListPaymentsByMonth)

	r.POST("/attendance", s.handleCheckIn)
	r.GET("/attendance", s.handleListAttendance)

	r.POST("/receipts/upload", s.handleUploadReceipt)
}

// Handler exposes the routing table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API until ctx is cancelled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "HTTP server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info(ctx, "HTTP server stopped")
	return nil
}
