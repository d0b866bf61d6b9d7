package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/audit"
	"github.com/hopeactionjeunesse/hope-site/internal/config"
	"github.com/hopeactionjeunesse/hope-site/internal/db"
	"github.com/hopeactionjeunesse/hope-site/internal/handlers"
	"github.com/hopeactionjeunesse/hope-site/internal/imaging"
	infraRepo "github.com/hopeactionjeunesse/hope-site/internal/infra/repository"
	"github.com/hopeactionjeunesse/hope-site/internal/middleware"
	"github.com/hopeactionjeunesse/hope-site/internal/oauth"
	"github.com/hopeactionjeunesse/hope-site/internal/ratelimit"
	"github.com/hopeactionjeunesse/hope-site/internal/session"
	"github.com/hopeactionjeunesse/hope-site/internal/storage"
	ucMedia "github.com/hopeactionjeunesse/hope-site/internal/usecase/media"
)

const (
	publicBodyBytes = 64 << 10
	adminBodyBytes  = 1 << 20
)

// Deps are the process-wide collaborators built by main.
type Deps struct {
	Config   *config.Config
	Handle   *db.Handle
	Storage  storage.Storage
	Sessions *session.Manager
	OAuth    *oauth.Client
	Limiter  ratelimit.Limiter
	Audit    *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	serviceRepo := infraRepo.NewServiceGormRepository(d.Handle)
	projectRepo := infraRepo.NewProjectGormRepository(d.Handle)
	teamRepo := infraRepo.NewTeamMemberGormRepository(d.Handle)
	contactRepo := infraRepo.NewContactMessageGormRepository(d.Handle)
	userRepo := infraRepo.NewUserGormRepository(d.Handle, cfg.OwnerOpenID)

	auditDispatcher := d.Audit
	if auditDispatcher == nil {
		auditDispatcher = audit.NewDispatcher(nil)
	}

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.SessionMiddleware(d.Sessions, userRepo))

	// ======================================================
	// 🧠 USE CASES (MEDIA)
	// ======================================================
	uploadImageUC := ucMedia.NewUploadImage(
		d.Storage,
		imaging.NewTranscoder(cfg.ImageQuality, cfg.ImageMaxDimension),
	)
	deleteImageUC := ucMedia.NewDeleteImage(d.Storage)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(d.Handle)
	authHandler := handlers.NewAuthHandler(
		userRepo,
		d.Sessions,
		d.OAuth,
		cfg.OwnerOpenID,
		cfg.LocalAdminPasswordHash,
	)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, auditDispatcher)
	projectHandler := handlers.NewProjectHandler(projectRepo, auditDispatcher, cfg.SiteTimezone)
	teamHandler := handlers.NewTeamMemberHandler(teamRepo, auditDispatcher)
	contactHandler := handlers.NewContactHandler(contactRepo, auditDispatcher, d.Limiter, cfg.ContactCheckEmailDomain)
	uploadHandler := handlers.NewUploadHandler(uploadImageUC, deleteImageUC, auditDispatcher, cfg.UploadMaxBytes)

	r.GET("/health", healthHandler.Health)

	smallBody := middleware.BodyLimit(publicBodyBytes)
	contentBody := middleware.BodyLimit(adminBodyBytes)
	// base64 inflates by 4/3; headroom covers the data-URL prefix and JSON.
	uploadBody := middleware.BodyLimit(cfg.UploadMaxBytes*4/3 + publicBodyBytes)

	api := r.Group("/api")

	// ======================================================
	// 🔐 AUTH
	// ======================================================
	api.GET("/auth/me", authHandler.Me)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/auth/local-login", smallBody, middleware.RateLimit(d.Limiter, "login"), authHandler.LocalLogin)
	api.GET("/oauth/login", authHandler.OAuthLogin)
	api.GET("/oauth/callback", authHandler.OAuthCallback)

	// ======================================================
	// 🌐 PUBLIC
	// ======================================================
	api.GET("/services", serviceHandler.List)
	api.GET("/services/:id", serviceHandler.Get)

	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)

	api.GET("/team", teamHandler.List)
	api.GET("/team/:id", teamHandler.Get)

	api.POST("/contact", smallBody, contactHandler.Send)

	// ======================================================
	// 🛠️ ADMIN
	// ======================================================
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/services", serviceHandler.ListAll)
		admin.POST("/services", contentBody, serviceHandler.Create)
		admin.PATCH("/services/:id", contentBody, serviceHandler.Update)
		admin.DELETE("/services/:id", serviceHandler.Delete)

		admin.GET("/projects", projectHandler.ListAll)
		admin.POST("/projects", contentBody, projectHandler.Create)
		admin.PATCH("/projects/:id", contentBody, projectHandler.Update)
		admin.DELETE("/projects/:id", projectHandler.Delete)

		admin.GET("/team", teamHandler.ListAll)
		admin.POST("/team", contentBody, teamHandler.Create)
		admin.PATCH("/team/:id", contentBody, teamHandler.Update)
		admin.DELETE("/team/:id", teamHandler.Delete)

		admin.GET("/contact", contactHandler.ListAll)
		admin.PATCH("/contact/:id/read", contactHandler.MarkRead)
		admin.DELETE("/contact/:id", contactHandler.Delete)

		admin.POST("/upload/image", uploadBody, uploadHandler.Image)
		admin.DELETE("/upload/image", smallBody, uploadHandler.DeleteImage)
	}

	// ======================================================
	// 🖼️ LOCAL FILES
	// ======================================================
	if local, ok := d.Storage.(*storage.LocalStorage); ok && len(local.PublicBase()) > 1 && local.PublicBase()[0] == '/' {
		r.Static(local.PublicBase(), local.LocalBaseDir())
	}
}
