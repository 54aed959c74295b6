package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"letnex-erp/backend/config"
	"letnex-erp/backend/internal/api/handler"
	"letnex-erp/backend/internal/api/middleware"
	"letnex-erp/backend/pkg/jwt"
	"letnex-erp/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时登录限流与 Token 黑名单检查均降级放行
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// rdb 为 nil 时两个接口保持 nil
	var (
		limiter middleware.RateLimiter
		checker middleware.TokenChecker
	)
	if rdb != nil {
		limiter = rdb
		checker = rdb
	}

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查与指标 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// 认证模块（无需认证）
		api.POST("/login", middleware.RateLimit(limiter, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow), h.Auth.Login)
		api.POST("/logout", h.Auth.Logout)

		// 业务路由；auth.require_token 关闭时与前端现有行为一致，不校验 Token
		authorized := api.Group("")
		if cfg.Auth.RequireToken {
			authorized.Use(middleware.JWTAuth(jwtMgr, checker))
		}
		{
			// 员工模块
			employees := authorized.Group("/employee")
			{
				employees.GET("", h.Employee.ListEmployees)
				employees.POST("", h.Employee.CreateEmployee)
				employees.PUT("/:id", h.Employee.UpdateEmployee)
				employees.DELETE("/:id", h.Employee.DeleteEmployee)
			}

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", h.Attendance.ListAttendance)
				attendance.POST("", h.Attendance.MarkAttendance)
				attendance.POST("/save", h.Attendance.MarkAttendance)
				attendance.GET("/day", h.Attendance.GetDay)
				attendance.GET("/summary", h.Attendance.GetSummary)
				attendance.GET("/print", h.Attendance.Print)
				attendance.GET("/export", h.Export.ExportAttendance)

				// 花名册
				attendance.GET("/staffs", h.Staff.ListStaff)
				attendance.POST("/staffs", h.Staff.CreateStaff)
				attendance.DELETE("/staffs/:name", h.Staff.DeleteStaff)
			}

			// 工资模块
			salary := authorized.Group("/salary")
			{
				salary.GET("", h.Salary.ListSalaries)
				salary.GET("/export", h.Export.ExportSalaries)
				salary.POST("", h.Salary.CreateSalary)
				salary.PUT("/:id", h.Salary.UpdateSalary)
				salary.DELETE("/:id", h.Salary.DeleteSalary)
			}

			// 收入模块
			revenue := authorized.Group("/revenue")
			{
				revenue.GET("", h.Revenue.ListRevenues)
				revenue.GET("/summary", h.Revenue.RevenueSummary)
				revenue.POST("", h.Revenue.CreateRevenue)
				revenue.PUT("/:id", h.Revenue.UpdateRevenue)
				revenue.DELETE("/:id", h.Revenue.DeleteRevenue)
			}

			// 支出模块
			expenditure := authorized.Group("/expenditure")
			{
				expenditure.GET("", h.Expenditure.ListExpenditures)
				expenditure.GET("/summary", h.Expenditure.ExpenditureSummary)
				expenditure.POST("", h.Expenditure.CreateExpenditure)
				expenditure.PUT("/:id", h.Expenditure.UpdateExpenditure)
				expenditure.DELETE("/:id", h.Expenditure.DeleteExpenditure)
			}

			// 招聘模块
			vacancies := authorized.Group("/vacancies")
			{
				vacancies.GET("", h.Vacancy.ListVacancies)
				vacancies.POST("", h.Vacancy.CreateVacancy)
				vacancies.PUT("/:id", h.Vacancy.UpdateVacancy)
				vacancies.DELETE("/:id", h.Vacancy.DeleteVacancy)
			}

			// 项目模块
			projects := authorized.Group("/projects")
			{
				projects.GET("", h.Project.ListProjects)
				projects.POST("", h.Project.CreateProject)
				projects.PUT("/:id", h.Project.UpdateProject)
				projects.DELETE("/:id", h.Project.DeleteProject)
			}
		}
	}

	return r
}
