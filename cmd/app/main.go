package main

import (
	"os"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbadapter "weblog/internal/adapters/database"
	"weblog/internal/adapters/httpapi"
	redisadapter "weblog/internal/adapters/redis"
	"weblog/internal/config"
	"weblog/internal/core/category"
	"weblog/internal/core/comment"
	commentapp "weblog/internal/core/comment/service"
	"weblog/internal/core/location"
	"weblog/internal/core/moderation"
	"weblog/internal/core/post"
	postapp "weblog/internal/core/post/service"
	"weblog/internal/core/user"
	userapp "weblog/internal/core/user/service"
)

func main() {
	config.InitLogger()
	config.Init()

	db, err := config.InitDB()
	if err != nil {
		config.Logger.Fatal("Error connecting to the database:", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&user.User{},
		&category.Category{},
		&location.Location{},
		&post.Post{},
		&comment.Comment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	redisClient, err := config.InitRedis()
	if err != nil {
		config.Logger.Fatal("Error connecting to Redis:", zap.Error(err))
	}
	defer closeResources(config.Logger, db, redisClient)

	filter := moderation.NewFilterFromEnv()
	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	userRepo := dbadapter.NewUserRepositoryDatabase(db)
	postRepo := dbadapter.NewPostRepositoryDatabase(db)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(db)
	categoryRepo := dbadapter.NewCategoryRepositoryDatabase(db)
	locationRepo := dbadapter.NewLocationRepositoryDatabase(db)
	sessions := redisadapter.NewSessionStoreRedis(redisClient)

	userSvc := userapp.NewUserService(userRepo, sessions, jwtKey)
	postSvc := postapp.NewPostService(postRepo, categoryRepo, locationRepo, commentRepo, userRepo, filter)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo, filter)

	r := httpapi.SetupRoutes(userSvc, postSvc, commentSvc, jwtKey, sessions)

	config.Logger.Info("App is running...")
	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

func closeResources(logger *zap.Logger, db *gorm.DB, redisClient *redis.Client) {
	if err := redisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
