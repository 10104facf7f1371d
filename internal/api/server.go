package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/cafe-api/docs"
	v1 "github.com/vietanh2810/cafe-api/internal/api/handler/v1"
	"github.com/vietanh2810/cafe-api/internal/api/middleware"
	"github.com/vietanh2810/cafe-api/internal/config"
	"github.com/vietanh2810/cafe-api/internal/repository"
	"github.com/vietanh2810/cafe-api/internal/repository/dao"
	"github.com/vietanh2810/cafe-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	guard, err := middleware.NewAPIKeyGuard(conf.API.APIKey, conf.API.APIKeyHash)
	if err != nil {
		return nil, fmt.Errorf("middleware.NewAPIKeyGuard -> %w", err)
	}

	s.MountMiddlewares()

	cafeHandler := s.initCafeHandler(db)
	s.MountHandlers(cafeHandler, guard)

	return s, nil
}

func (s *Server) initCafeHandler(db *gorm.DB) *v1.CafeHandler {
	cafeDAO := dao.NewCafeDAO(db)
	repo := repository.NewCafeRepository(cafeDAO)
	svc := service.NewCafeService(repo)
	handler := v1.NewCafeHandler(s.Config.API, svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(cafeHandler *v1.CafeHandler, guard *middleware.APIKeyGuard) {
	s.Router.LoadHTMLGlob(s.Config.Web.Templates)
	s.Router.GET("/", cafeHandler.HandleHome)
	s.Router.GET("/healthcheck", cafeHandler.HandleHealthcheck)

	cafes := s.Router.Group("/")
	{
		cafes.GET("/random", cafeHandler.HandleGetRandomCafe)
		cafes.GET("/all", cafeHandler.HandleGetAllCafes)
		cafes.GET("/search", cafeHandler.HandleSearchCafes)
		cafes.POST("/add", cafeHandler.HandleAddCafe)
		cafes.PATCH("/update-price/:cafe_id", cafeHandler.HandleUpdatePrice)
	}

	closures := s.Router.Group("/", guard.VerifyQueryKey())
	{
		closures.DELETE("/report-closed/:cafe_id", cafeHandler.HandleReportClosed)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Cafe & Wifi API"
	docs.SwaggerInfo.Description = "Find cafes with wifi, sockets and decent coffee."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
