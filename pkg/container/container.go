package container

import (
	"context"
	"fmt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/infrastructure/cache"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/storage"

	"portfolio-backend/internal/domains/auth"
	authRepository "portfolio-backend/internal/domains/auth/repository"
	authService "portfolio-backend/internal/domains/auth/service"
	"portfolio-backend/internal/domains/blog"
	blogRepository "portfolio-backend/internal/domains/blog/repository"
	blogService "portfolio-backend/internal/domains/blog/service"
	"portfolio-backend/internal/domains/certification"
	certificationRepository "portfolio-backend/internal/domains/certification/repository"
	certificationService "portfolio-backend/internal/domains/certification/service"
	"portfolio-backend/internal/domains/education"
	educationRepository "portfolio-backend/internal/domains/education/repository"
	educationService "portfolio-backend/internal/domains/education/service"
	"portfolio-backend/internal/domains/profile"
	profileRepository "portfolio-backend/internal/domains/profile/repository"
	profileService "portfolio-backend/internal/domains/profile/service"
	"portfolio-backend/internal/domains/project"
	projectRepository "portfolio-backend/internal/domains/project/repository"
	projectService "portfolio-backend/internal/domains/project/service"
	"portfolio-backend/internal/domains/skill"
	skillRepository "portfolio-backend/internal/domains/skill/repository"
	skillService "portfolio-backend/internal/domains/skill/service"

	"portfolio-backend/pkg/jwt"
	"portfolio-backend/pkg/logger"
)

// Container wires configuration, infrastructure, repositories and
// services together. Build order is strictly staged so every dependency
// exists before its consumer.
type Container struct {
	Config *config.Config

	DB      *database.PostgresDB
	Cache   *cache.RedisCache
	Storage *storage.MinIOStorage
	JWT     *jwt.Manager

	AuthService          auth.Service
	ProfileService       profile.Service
	BlogService          blog.Service
	ProjectService       project.Service
	SkillService         skill.Service
	CertificationService certification.Service
	EducationService     education.Service
}

func New(ctx context.Context) (*Container, error) {
	c := &Container{}

	if err := c.initConfig(); err != nil {
		return nil, err
	}
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.initServices()

	return c, nil
}

func (c *Container) initConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	c.Cache = cache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := c.Cache.Ping(ctx); err != nil {
		// The app degrades to uncached reads when Redis is down.
		logger.Warn("redis unavailable, continuing without cache hits", map[string]interface{}{
			"host": c.Config.Redis.Host,
		})
	}

	c.Storage, err = storage.NewMinIOStorage(c.Config.MinIO)
	if err != nil {
		return fmt.Errorf("connect minio: %w", err)
	}

	c.JWT = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)

	return nil
}

func (c *Container) initServices() {
	pool := c.DB.Pool

	c.AuthService = authService.NewAuthService(authRepository.NewPostgresRepository(pool), c.JWT)
	c.ProfileService = profileService.NewProfileService(profileRepository.NewPostgresRepository(pool, c.Cache))
	c.BlogService = blogService.NewBlogService(blogRepository.NewPostgresRepository(pool, c.Cache))
	c.ProjectService = projectService.NewProjectService(projectRepository.NewPostgresRepository(pool, c.Cache))
	c.SkillService = skillService.NewSkillService(skillRepository.NewPostgresRepository(pool))
	c.CertificationService = certificationService.NewCertificationService(certificationRepository.NewPostgresRepository(pool))
	c.EducationService = educationService.NewEducationService(educationRepository.NewPostgresRepository(pool))
}

// Cleanup releases infrastructure connections in reverse build order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	logger.Info("container cleanup complete", nil)
}
