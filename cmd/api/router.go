package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authHandler "portfolio-backend/internal/domains/auth/handler"
	blogHandler "portfolio-backend/internal/domains/blog/handler"
	certificationHandler "portfolio-backend/internal/domains/certification/handler"
	educationHandler "portfolio-backend/internal/domains/education/handler"
	mediaHandler "portfolio-backend/internal/domains/media/handler"
	profileHandler "portfolio-backend/internal/domains/profile/handler"
	projectHandler "portfolio-backend/internal/domains/project/handler"
	skillHandler "portfolio-backend/internal/domains/skill/handler"
	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupPortfolioRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	h := authHandler.NewAuthHandler(c.AuthService)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// setupPortfolioRoutes registers the content routes. Reads are public,
// every mutation requires a bearer token.
func setupPortfolioRoutes(api *gin.RouterGroup, c *container.Container) {
	requireAuth := middleware.RequireAuth(c.JWT)
	portfolio := api.Group("/portfolio")

	ph := profileHandler.NewProfileHandler(c.ProfileService)
	{
		portfolio.GET("/profile", ph.GetProfile)
		portfolio.POST("/profile", requireAuth, ph.CreateProfile)
		portfolio.PUT("/profile/:id", requireAuth, ph.UpdateProfile)

		portfolio.GET("/about", ph.GetAbout)
		portfolio.POST("/about", requireAuth, ph.CreateAbout)
		portfolio.PUT("/about/:id", requireAuth, ph.UpdateAbout)
	}

	bh := blogHandler.NewBlogHandler(c.BlogService)
	{
		portfolio.GET("/blogs", bh.List)
		portfolio.GET("/blogs/:id", bh.GetByID)
		portfolio.POST("/blogs", requireAuth, bh.Create)
		portfolio.PUT("/blogs/:id", requireAuth, bh.Update)
		portfolio.DELETE("/blogs/:id", requireAuth, bh.Delete)
	}

	prh := projectHandler.NewProjectHandler(c.ProjectService)
	{
		portfolio.GET("/projects", prh.List)
		portfolio.GET("/projects/:id", prh.GetByID)
		portfolio.POST("/projects", requireAuth, prh.Create)
		portfolio.PUT("/projects/:id", requireAuth, prh.Update)
		portfolio.DELETE("/projects/:id", requireAuth, prh.Delete)
	}

	sh := skillHandler.NewSkillHandler(c.SkillService)
	{
		portfolio.GET("/skills", sh.ListSkills)
		portfolio.GET("/skills/:id", sh.GetSkillByID)
		portfolio.POST("/skills", requireAuth, sh.CreateSkill)
		portfolio.PUT("/skills/:id", requireAuth, sh.UpdateSkill)
		portfolio.DELETE("/skills/:id", requireAuth, sh.DeleteSkill)

		portfolio.GET("/skill-categories", sh.ListCategories)
		portfolio.GET("/skill-categories/:id", sh.GetCategoryByID)
		portfolio.POST("/skill-categories", requireAuth, sh.CreateCategory)
		portfolio.PUT("/skill-categories/:id", requireAuth, sh.UpdateCategory)
		portfolio.DELETE("/skill-categories/:id", requireAuth, sh.DeleteCategory)
	}

	ch := certificationHandler.NewCertificationHandler(c.CertificationService)
	{
		portfolio.GET("/certifications", ch.List)
		portfolio.GET("/certifications/:id", ch.GetByID)
		portfolio.POST("/certifications", requireAuth, ch.Create)
		portfolio.PUT("/certifications/:id", requireAuth, ch.Update)
		portfolio.DELETE("/certifications/:id", requireAuth, ch.Delete)
	}

	eh := educationHandler.NewEducationHandler(c.EducationService)
	{
		portfolio.GET("/education", eh.List)
		portfolio.GET("/education/:id", eh.GetByID)
		portfolio.POST("/education", requireAuth, eh.Create)
		portfolio.PUT("/education/:id", requireAuth, eh.Update)
		portfolio.DELETE("/education/:id", requireAuth, eh.Delete)
	}

	mh := mediaHandler.NewMediaHandler(c.Storage)
	{
		portfolio.POST("/uploads", requireAuth, mh.Upload)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		response.Success(ctx, status, "Health check", gin.H{
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"database":    dbStatus,
			"cache":       cacheStatus,
		})
	}
}
