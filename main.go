// Package main library management API.
//
// @title           Library Management API
// @version         1.0
// @description     Library service (catalog, borrowings, reservations, settings, audit).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/MedGm/Library-Management-Scrum/app/echoServer"
	auditctrl "github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/audit"
	authctrl "github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/auth"
	bookctrl "github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/book"
	borrowctrl "github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/borrowing"
	resctrl "github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/reservation"
	settingctrl "github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/setting"
	userctrl "github.com/MedGm/Library-Management-Scrum/app/echoServer/controller/user"
	"github.com/MedGm/Library-Management-Scrum/app/echoServer/validation"
	"github.com/MedGm/Library-Management-Scrum/config"
	auditrepo "github.com/MedGm/Library-Management-Scrum/repository/audit"
	bookrepo "github.com/MedGm/Library-Management-Scrum/repository/book"
	borrowrepo "github.com/MedGm/Library-Management-Scrum/repository/borrowing"
	resrepo "github.com/MedGm/Library-Management-Scrum/repository/reservation"
	settingrepo "github.com/MedGm/Library-Management-Scrum/repository/setting"
	userrepo "github.com/MedGm/Library-Management-Scrum/repository/user"
	auditsvc "github.com/MedGm/Library-Management-Scrum/service/audit"
	authsvc "github.com/MedGm/Library-Management-Scrum/service/auth"
	booksvc "github.com/MedGm/Library-Management-Scrum/service/book"
	borrowsvc "github.com/MedGm/Library-Management-Scrum/service/borrowing"
	ressvc "github.com/MedGm/Library-Management-Scrum/service/reservation"
	settingsvc "github.com/MedGm/Library-Management-Scrum/service/setting"
	usersvc "github.com/MedGm/Library-Management-Scrum/service/user"
	"github.com/MedGm/Library-Management-Scrum/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	// repos
	ur := userrepo.New(db)
	bkr := bookrepo.New(db)
	brr := borrowrepo.New(db)
	rr := resrepo.New(db)
	str := settingrepo.New(db)
	adr := auditrepo.New(db)

	// services
	ads := auditsvc.New(adr, log)
	sts := settingsvc.New(str, ads, log)
	as := authsvc.New(ur, cfg.JWTSecret)
	bs := booksvc.New(bkr)
	brs := borrowsvc.New(db, brr, bkr, sts)
	rs := ressvc.New(rr, bkr)
	us := usersvc.New(ur)

	if err := as.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Error("admin bootstrap failed", "err", err)
		os.Exit(1)
	}

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	borrowC := &borrowctrl.Controller{Svc: brs, V: v, Log: log}
	resC := &resctrl.Controller{Svc: rs, V: v, Log: log}
	settingC := &settingctrl.Controller{Svc: sts, V: v, Log: log}
	auditC := &auditctrl.Controller{Svc: ads, Log: log}
	userC := &userctrl.Controller{Svc: us, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:        authC,
		Book:        bookC,
		Borrowing:   borrowC,
		Reservation: resC,
		Setting:     settingC,
		Audit:       auditC,
		User:        userC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
