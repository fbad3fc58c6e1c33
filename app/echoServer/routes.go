package echoServer

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/audit"
	"github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/auth"
	"github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/book"
	"github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/borrowing"
	"github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/reservation"
	"github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/setting"
	"github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/user"
	jwtutil "github.com/MedGm/Library-Management-Scrum/util/jwt"
)

type C struct {
	Auth        *auth.Controller
	Book        *book.Controller
	Borrowing   *borrowing.Controller
	Reservation *reservation.Controller
	Setting     *setting.Controller
	Audit       *audit.Controller
	User        *user.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/api")
	pub.POST("/auth/register", c.Auth.Register)
	pub.POST("/auth/login", c.Auth.Login)
	pub.GET("/books", c.Book.List)
	pub.GET("/books/:id", c.Book.Detail)

	// Authenticated
	authed := e.Group("/api")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:Authorization",
		ParseTokenFunc: func(_ echo.Context, auth string) (interface{}, error) {
			return jwtutil.ParseAuth(auth, c.JWTSecret)
		},
	}))

	staff := RequireStaff()
	admin := RequireAdmin()

	// Catalog management
	authed.POST("/books", c.Book.Create, staff)
	authed.PUT("/books/:id", c.Book.Update, staff)

	// Borrowing lifecycle
	authed.POST("/borrowings", c.Borrowing.Create, staff)
	authed.PUT("/borrowings/:id/return", c.Borrowing.Return, staff)
	authed.PUT("/borrowings/:id/renew", c.Borrowing.Renew)
	authed.GET("/borrowings/my", c.Borrowing.My)
	authed.GET("/borrowings", c.Borrowing.All, staff)

	// Reservations
	authed.POST("/reservations", c.Reservation.Create)
	authed.GET("/reservations/my", c.Reservation.My)
	authed.DELETE("/reservations/:id", c.Reservation.Cancel)

	// System settings
	authed.GET("/settings", c.Setting.Get, staff)
	authed.PUT("/settings", c.Setting.Update, admin)

	// Audit trail
	authed.GET("/audit", c.Audit.List, admin)

	// Users
	authed.GET("/users/members", c.User.Members, staff)
}
