package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/hka9s2v/task-calendar/internal/config"
	"github.com/hka9s2v/task-calendar/internal/handlers"
	"github.com/hka9s2v/task-calendar/internal/middleware"
	"github.com/hka9s2v/task-calendar/internal/repository"
	"github.com/hka9s2v/task-calendar/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)

	taskSvc := service.NewTaskService(tasks)
	calendarSvc := service.NewCalendarService(tasks)

	h := handlers.New(users, taskSvc, calendarSvc, cfg.JWTKey)

	router := gin.Default()
	router.GET("/health", h.Health)

	api := router.Group("/api")
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)

	authed := api.Group("", middleware.Auth(cfg.JWTKey))
	authed.GET("/tasks", h.GetTasks)
	authed.POST("/tasks", h.CreateTask)
	authed.GET("/tasks/:id", h.GetTask)
	authed.PATCH("/tasks/:id", h.UpdateTask)
	authed.DELETE("/tasks/:id", h.DeleteTask)
	authed.GET("/calendar", h.GetCalendar)

	addr := []string{}
	if cfg.Port != "" {
		addr = append(addr, ":"+cfg.Port)
	}
	log.Fatal(router.Run(addr...))
}
