package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/courtwatchhq/courtwatch-api/docs"
	"github.com/courtwatchhq/courtwatch-api/internal/analyzer"
	v1 "github.com/courtwatchhq/courtwatch-api/internal/api/handler/v1"
	"github.com/courtwatchhq/courtwatch-api/internal/api/middleware"
	"github.com/courtwatchhq/courtwatch-api/internal/config"
	"github.com/courtwatchhq/courtwatch-api/internal/contract"
	"github.com/courtwatchhq/courtwatch-api/internal/repository"
	"github.com/courtwatchhq/courtwatch-api/internal/repository/dao"
	"github.com/courtwatchhq/courtwatch-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	judgeHandler := s.initJudgeHandler(db)
	caseHandler := s.initCaseHandler(db)
	attendanceHandler := s.initAttendanceHandler(db)
	s.MountHandlers(judgeHandler, caseHandler, attendanceHandler)

	return s
}

func (s *Server) initJudgeHandler(db *gorm.DB) *v1.JudgeHandler {
	repo := repository.NewJudgeRepository(dao.NewJudgeDAO(db))
	svc := service.NewJudgeService(repo)

	return v1.NewJudgeHandler(svc)
}

func (s *Server) initCaseHandler(db *gorm.DB) *v1.CaseHandler {
	repo := repository.NewCaseRepository(dao.NewCaseDAO(db))
	svc := service.NewCaseService(repo, analyzer.NewHeuristic())

	return v1.NewCaseHandler(svc)
}

func (s *Server) initAttendanceHandler(db *gorm.DB) *v1.AttendanceHandler {
	repo := repository.NewAttendanceRepository(dao.NewAttendanceDAO(db))
	caseRepo := repository.NewCaseRepository(dao.NewCaseDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewAttendanceService(repo, caseRepo, userRepo)

	return v1.NewAttendanceHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.Metrics())
}

// MountHandlers wires every route from the shared contract package, so the
// server cannot drift from the paths clients build URLs against.
func (s *Server) MountHandlers(judgeHandler *v1.JudgeHandler, caseHandler *v1.CaseHandler, attendanceHandler *v1.AttendanceHandler) {
	auth := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group("")
	{
		public.Handle(contract.JudgesList.Method, contract.JudgesList.Path, judgeHandler.HandleListJudges)
		public.Handle(contract.JudgesGet.Method, contract.JudgesGet.Path, judgeHandler.HandleGetJudge)
		public.Handle(contract.CasesList.Method, contract.CasesList.Path, caseHandler.HandleListCases)
		public.Handle(contract.CasesGet.Method, contract.CasesGet.Path, caseHandler.HandleGetCase)
		public.Handle(contract.Leaderboard.Method, contract.Leaderboard.Path, attendanceHandler.HandleGetLeaderboard)
	}

	authenticated := s.Router.Group("", auth.VerifyJWT())
	{
		authenticated.Handle(contract.AttendanceMark.Method, contract.AttendanceMark.Path, attendanceHandler.HandleMarkAttendance)
		authenticated.Handle(contract.AttendanceMine.Method, contract.AttendanceMine.Path, attendanceHandler.HandleGetMyAttendance)
		authenticated.Handle(contract.CasesAnalyze.Method, contract.CasesAnalyze.Path, caseHandler.HandleAnalyzeCase)
	}

	admin := s.Router.Group("", auth.VerifyJWT(), auth.RequireRole(middleware.RoleAdmin))
	{
		admin.Handle(contract.JudgesCreate.Method, contract.JudgesCreate.Path, judgeHandler.HandleCreateJudge)
		admin.Handle(contract.CasesCreate.Method, contract.CasesCreate.Path, caseHandler.HandleCreateCase)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.Title = "CourtWatch API"
	docs.SwaggerInfo.Description = "Civic engagement API for judges, court cases and hearing attendance."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
