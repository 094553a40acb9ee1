package http

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	appsvc "carpoolhub/internal/app"
	"carpoolhub/internal/bootstrap"
	"carpoolhub/internal/repository"
	"carpoolhub/internal/transport/http/handler"
	"carpoolhub/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(sessions.Sessions(app.Config.Session.CookieName, app.SessionStore))
	router.LoadHTMLGlob(app.Config.App.Templates)

	userRepo := repository.NewUserRepository(app.DB)
	postRepo := repository.NewPostRepository(app.DB)
	authService := appsvc.NewAuthService(userRepo)
	postService := appsvc.NewPostService(postRepo, userRepo)
	accountService := appsvc.NewAccountService(userRepo)

	pageHandler := handler.NewPageHandler()
	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService)
	boardHandler := handler.NewBoardHandler(authService, postService)
	accountHandler := handler.NewAccountHandler(accountService, boardHandler)

	router.GET("/", pageHandler.Home)
	router.GET("/about", pageHandler.About)
	router.GET("/healthz", healthHandler.Check)

	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)

	protected := router.Group("/")
	protected.Use(middleware.RequireLogin())
	protected.GET("/logout", authHandler.Logout)
	protected.POST("/logout", authHandler.Logout)
	protected.GET("/dashboard", boardHandler.Dashboard)
	protected.POST("/dashboard", boardHandler.Dashboard)
	// /pool and /createPool are legacy aliases for /createCarpool.
	for _, path := range []string{"/createCarpool", "/createPool", "/pool"} {
		protected.GET(path, boardHandler.ShowCreate)
		protected.POST(path, boardHandler.Create)
	}
	protected.GET("/edit", accountHandler.ShowEdit)
	protected.POST("/edit", accountHandler.Edit)

	router.NoRoute(pageHandler.NotFound)

	return router
}
