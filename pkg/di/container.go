package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"taskmanager/application/serviceimpl"
	"taskmanager/domain/ports"
	"taskmanager/domain/repositories"
	"taskmanager/domain/services"
	"taskmanager/infrastructure/mailer"
	"taskmanager/infrastructure/postgres"
	redispkg "taskmanager/infrastructure/redis"
	"taskmanager/interfaces/api/handlers"
	"taskmanager/pkg/config"
	"taskmanager/pkg/logger"
	"taskmanager/pkg/scheduler"
)

const nightlyReminderJobID = "nightly_reminders"

type Container struct {
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // nil เมื่อไม่ได้ config Redis
	Mailer         ports.MailerPort
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService     services.UserService
	TaskService     services.TaskService
	ReminderService services.ReminderService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized", "level", c.Config.Log.Level, "format", c.Config.Log.Format)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional: the stats cache degrades to direct queries.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&redispkg.Config{
			URL:      c.Config.Redis.URL,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if err != nil {
			logger.Warn("Redis initialization failed (stats cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis connected", "url", c.Config.Redis.URL)
		}
	}

	c.Mailer = mailer.NewSMTPMailer(mailer.Config{
		Host:     c.Config.SMTP.Host,
		Port:     c.Config.SMTP.Port,
		User:     c.Config.SMTP.User,
		Password: c.Config.SMTP.Password,
		From:     c.Config.SMTP.From,
		FromName: c.Config.SMTP.FromName,
	})

	return nil
}

func (c *Container) initRepositories() {
	timeout := c.Config.Database.QueryTimeout
	c.UserRepository = postgres.NewUserRepository(c.DB, timeout)
	c.TaskRepository = postgres.NewTaskRepository(c.DB, timeout)
}

func (c *Container) initServices() {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret, c.Config.JWT.Expiry)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.RedisClient)
	c.ReminderService = serviceimpl.NewReminderService(
		c.TaskRepository,
		c.UserRepository,
		c.Mailer,
		c.Config.Reminder.Concurrency,
	)
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler(time.Local)

	err := c.EventScheduler.AddJob(nightlyReminderJobID, c.Config.Reminder.CronExpr, func() {
		c.ReminderService.RunNightly(context.Background(), time.Now())
	})
	if err != nil {
		return err
	}

	c.EventScheduler.Start()
	logger.Info("Nightly reminder job scheduled", "cron", c.Config.Reminder.CronExpr)
	return nil
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:     c.UserService,
		TaskService:     c.TaskService,
		ReminderService: c.ReminderService,
		JWTSecret:       c.Config.JWT.Secret,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// Cleanup releases infrastructure on shutdown. The scheduler stops
// first so no new reminder run starts while connections close.
func (c *Container) Cleanup() error {
	if c.EventScheduler != nil {
		c.EventScheduler.Stop()
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}

	return nil
}
