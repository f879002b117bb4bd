package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"toolbox-api/internal/apperrors"
	"toolbox-api/internal/application/interfaces"
	"toolbox-api/internal/infrastructure"
)

// Services bundles the application services the HTTP surface exposes.
type Services struct {
	Account interfaces.AccountService
	Search  interfaces.SearchService
	Group   interfaces.GroupService
	Tool    interfaces.ToolService
	Catalog interfaces.CatalogService
}

type Server struct {
	echo           *echo.Echo
	tokenService   *infrastructure.TokenService
	accountService interfaces.AccountService
}

func NewServer(tokenService *infrastructure.TokenService, services Services, rateLimit, rateBurst int) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	e.Use(middleware.Recover())
	e.Use(globalRateLimit(rateLimit, rateBurst))

	s := &Server{
		echo:           e,
		tokenService:   tokenService,
		accountService: services.Account,
	}

	personHandler := NewPersonHandler(services.Account, services.Tool, services.Group)
	toolHandler := NewToolHandler(services.Tool)
	groupHandler := NewGroupHandler(services.Group)
	catalogHandler := NewCatalogHandler(services.Catalog)
	searchHandler := NewSearchHandler(services.Search)

	api := e.Group("/api")

	api.GET("/persons", s.enforce(OpListPersons, personHandler.List))
	api.POST("/persons", s.enforce(OpRegisterPerson, personHandler.Register))
	api.GET("/persons/aliases", s.enforce(OpListAliases, personHandler.Aliases))
	api.GET("/persons/login", s.enforce(OpLogin, personHandler.Login))
	api.GET("/persons/login_token", s.enforce(OpLoginByToken, personHandler.LoginByToken))
	api.GET("/persons/:id", s.enforce(OpGetPerson, personHandler.Get))
	api.PUT("/persons/:id", s.enforce(OpUpdatePerson, personHandler.Update))
	api.GET("/persons/:id/tools", s.enforce(OpPersonTools, personHandler.ListTools))
	api.POST("/persons/:id/tools", s.enforce(OpPersonTools, personHandler.AddTool))
	api.GET("/persons/:id/reviews", s.enforce(OpPersonReviews, personHandler.ListReviews))
	api.POST("/persons/:id/reviews", s.enforce(OpPersonReviews, personHandler.AddReview))
	api.GET("/persons/:id/towns", s.enforce(OpPersonTowns, personHandler.ListTowns))
	api.POST("/persons/:id/towns", s.enforce(OpPersonTowns, personHandler.AddTown))
	api.GET("/persons/:id/groups", s.enforce(OpPersonGroups, personHandler.ListGroups))

	api.GET("/tools", s.enforce(OpListTools, toolHandler.List))
	api.GET("/tools/:id/images", s.enforce(OpToolImages, toolHandler.ListImages))
	api.POST("/tools/:id/images", s.enforce(OpToolImagesAdd, toolHandler.AddImage))
	api.GET("/tools/:id/reviews", s.enforce(OpToolReviews, toolHandler.ListReviews))
	api.POST("/tools/:id/reviews", s.enforce(OpToolReviewsAdd, toolHandler.AddReview))
	api.GET("/tools/:id/groups", s.enforce(OpToolGroups, toolHandler.ListGroups))

	api.GET("/groups", s.enforce(OpListGroups, groupHandler.List))
	api.POST("/groups", s.enforce(OpCreateGroup, groupHandler.Create))
	api.GET("/groups/public", s.enforce(OpPublicGroups, groupHandler.ListPublic))
	api.GET("/groups/private", s.enforce(OpPrivateGroups, groupHandler.ListPrivate))
	api.GET("/groups/members", s.enforce(OpGroupMembers, groupHandler.ListMembers))
	api.POST("/groups/members", s.enforce(OpGroupMembers, groupHandler.AddMember))
	api.DELETE("/groups/members", s.enforce(OpGroupMembers, groupHandler.RemoveMember))
	api.GET("/groups/admins", s.enforce(OpGroupAdmins, groupHandler.ListAdmins))
	api.GET("/groups/tools", s.enforce(OpGroupTools, groupHandler.ListTools))
	api.POST("/groups/tools", s.enforce(OpGroupTools, groupHandler.AddTool))
	api.DELETE("/groups/tools", s.enforce(OpGroupTools, groupHandler.RemoveTool))

	api.GET("/towns", s.enforce(OpListTowns, catalogHandler.ListTowns))
	api.POST("/towns", s.enforce(OpCreateTown, catalogHandler.CreateTown))
	api.GET("/countries", s.enforce(OpListCountries, catalogHandler.ListCountries))
	api.POST("/countries", s.enforce(OpCreateCountry, catalogHandler.CreateCountry))

	api.GET("/search", s.enforce(OpSearch, searchHandler.Search))

	return s
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Echo exposes the underlying engine, mainly for httptest.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func globalRateLimit(requestsPerSecond, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return apperrors.RateLimited("too many requests")
			}
			return next(c)
		}
	}
}
