package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/htetarkarhlaing/share-book-api/docs"
	"github.com/htetarkarhlaing/share-book-api/internal/config"
	"github.com/htetarkarhlaing/share-book-api/internal/database"
	"github.com/htetarkarhlaing/share-book-api/internal/middleware"
	"github.com/htetarkarhlaing/share-book-api/internal/modules/auth"
	"github.com/htetarkarhlaing/share-book-api/internal/modules/category"
	"github.com/htetarkarhlaing/share-book-api/internal/modules/post"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/blacklist"
	jwtpkg "github.com/htetarkarhlaing/share-book-api/internal/pkg/jwt"
	"github.com/htetarkarhlaing/share-book-api/internal/pkg/mailer"
	"github.com/htetarkarhlaing/share-book-api/internal/repository"
)

const welcomePage = `<!DOCTYPE html>
<html>
  <head><title>ShareBook API</title></head>
  <body style="font-family: sans-serif; text-align: center; padding-top: 4rem;">
    <h1>ShareBook API</h1>
    <p>The server is up and running.</p>
    <p><a href="/docs/index.html">API documentation</a></p>
  </body>
</html>`

// @title			ShareBook API
// @version		1.0
// @description	Authentication, session lifecycle and content sharing API.
// @BasePath		/api
// @securityDefinitions.apikey	BearerAuth
// @in				header
// @name			Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var logger *zap.Logger
	if cfg.AppEnv == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	reportRepo := repository.NewReportRepository(db)

	tokens := jwtpkg.NewManager(jwtpkg.Config{
		AccessSecret:       cfg.AccessTokenSecret,
		RefreshSecret:      cfg.RefreshTokenSecret,
		MultiPurposeSecret: cfg.MultiPurposeSecret,
		AdminAccessSecret:  cfg.AdminAccessTokenSecret,
		AccessTTL:          cfg.AccessTokenTTL,
		RefreshTTL:         cfg.RefreshTokenTTL,
		ResetTTL:           cfg.ResetTokenTTL,
	})

	userBlacklist := blacklist.NewRegistry()
	adminBlacklist := blacklist.NewRegistry()

	var mail mailer.Mailer
	if cfg.MailConfigured() {
		mail = mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	} else {
		logger.Warn("SMTP not configured, outbound mail goes to the log")
		mail = mailer.NewDevConsoleMailer(logger)
	}

	authService := auth.NewService(
		userRepo,
		adminRepo,
		tokens,
		mail,
		userBlacklist,
		adminBlacklist,
		cfg.RefreshTokenPepper,
		logger,
	)
	authHandler := auth.NewHandler(authService)
	adminHandler := auth.NewAdminHandler(authService)

	categoryService := category.NewService(categoryRepo)
	categoryHandler := category.NewHandler(categoryService)

	postService := post.NewService(postRepo, reportRepo)
	postHandler := post.NewHandler(postService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	requireUser := middleware.RequireUser(tokens)
	requireAdmin := middleware.RequireAdmin(tokens)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.CORS(),
		middleware.RequestLogger(logger),
		middleware.TokenBlacklist(userBlacklist, adminBlacklist),
	)

	r.GET("/", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", []byte(welcomePage))
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		user := api.Group("/user")
		authHandler.RegisterRoutes(user, requireUser)

		userGuarded := user.Group("", requireUser)
		categoryHandler.RegisterUserRoutes(userGuarded)
		postHandler.RegisterUserRoutes(userGuarded)

		admin := api.Group("/admin")
		adminHandler.RegisterRoutes(admin, requireAdmin)

		adminGuarded := admin.Group("", requireAdmin)
		categoryHandler.RegisterAdminRoutes(adminGuarded)
		postHandler.RegisterAdminRoutes(adminGuarded)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
