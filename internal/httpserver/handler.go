package httpserver

import (
	"lldap-gateway/internal/middleware"
	"lldap-gateway/internal/model"
	"lldap-gateway/internal/user"

	authHTTP "lldap-gateway/internal/auth/delivery/http"
	authUC "lldap-gateway/internal/auth/usecase"
	userHTTP "lldap-gateway/internal/user/delivery/http"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "lldap-gateway/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const Api = "/api"

func (srv *HTTPServer) mapHandlers(userUseCase user.UseCase) {
	mw := middleware.New(srv.l, srv.scopeManager, srv.metrics)

	srv.gin.Use(
		middleware.Recovery(srv.l, srv.discord),
		mw.RequestID(),
		mw.Metrics(),
		middleware.CORS(middleware.DefaultCORSConfig(srv.corsOrigins)),
	)

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token issuance
	authUseCase := authUC.New(srv.l, userUseCase, srv.scopeManager, srv.metrics)
	authHandler := authHTTP.New(srv.l, authUseCase, srv.discord, srv.cookie)
	authHandler.RegisterRoutes(srv.gin)

	// Protected API
	api := srv.gin.Group(Api, mw.CookieBridge(), mw.Auth(model.AdminGroup))
	userHandler := userHTTP.New(srv.l, userUseCase, srv.discord)
	userHandler.RegisterRoutes(api)
}
