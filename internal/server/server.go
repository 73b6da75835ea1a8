package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shinyyama/omnicopy-backend/internal/ai"
	"github.com/shinyyama/omnicopy-backend/internal/handler"
	appmw "github.com/shinyyama/omnicopy-backend/internal/middleware"
	"github.com/shinyyama/omnicopy-backend/internal/service"
)

type Deps struct {
	Generations   service.GenerationService
	Profiles      service.ProfileService
	Auth          *appmw.AuthMiddleware
	Users         handler.UserLookup
	PromptVersion ai.PromptVersion
	SaveWait      time.Duration
	GitSHA        string
	BuildTime     string
}

type Server struct {
	e *echo.Echo
}

func New(d Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(appmw.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.BodyLimit("12M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
		AllowCredentials: true,
		AllowOriginFunc:  allowOrigin,
	}))

	genHandler := handler.NewGenerationHandler(d.Generations, d.SaveWait)
	userHandler := handler.NewUserHandler(d.Users, d.Profiles)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    d.GitSHA,
			"build_time": d.BuildTime,
		})
	})

	api := e.Group("/api")
	requireAuth := d.Auth.RequireAuth
	api.POST("/generations", genHandler.Generate, requireAuth)
	api.GET("/generations", genHandler.List, requireAuth)
	api.GET("/generations/:id/export/:format", genHandler.ExportRecord, requireAuth)
	api.GET("/me", userHandler.Me, requireAuth)
	api.POST("/exports/:format", genHandler.ExportContent, requireAuth)
	api.GET("/catalog", handler.Catalog(d.PromptVersion))

	return &Server{e: e}
}

func allowOrigin(origin string) (bool, error) {
	low := strings.ToLower(origin)
	if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
		strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
		return true, nil
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false, nil
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false, nil
	}
	host := strings.ToLower(u.Hostname())
	for _, domain := range hostedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true, nil
		}
	}
	return false, nil
}

// hostedDomains are the frontend hosting domains; subdomains match, look-alike hosts do not.
var hostedDomains = []string{"vercel.app", "web.app", "firebaseapp.com"}

func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
