package router

import (
	"blogforge/internal/application"
	"blogforge/internal/container"
	pginfra "blogforge/internal/infrastructure/postgres"
	handlers "blogforge/internal/interface/http"
	"blogforge/internal/router/modules"
	"blogforge/pkg/helpers"
)

// InitModules builds the full dependency graph and registers every feature
// module. Call once during startup, after the container singletons are set.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	blogs := pginfra.NewBlogRepository(pool)
	uow := pginfra.NewUnitOfWorkFactory(pool)

	hasher := helpers.BcryptHasher{}
	idGen := helpers.UUIDGenerator{}
	indexer := application.NewBlogIndexer(container.GetES(), cfg.ESBlogsIndex, logger)

	var queue application.EmailQueue
	if pub := container.GetRabbitPub(); pub != nil {
		queue = pub
	}

	authSvc := application.NewAuthService(users, hasher, container.GetJWT(), container.GetRedis(), logger)

	userHandler := &handlers.UserHandler{
		Create:         application.NewCreateUserUseCase(uow, hasher, idGen, queue, cfg.SignupNotifyEmail, logger),
		Get:            application.NewGetUserUseCase(users),
		Update:         application.NewUpdateUserUseCase(uow),
		Delete:         application.NewDeleteUserUseCase(uow),
		ChangePassword: application.NewChangePasswordUseCase(uow, hasher),
		GCS:            container.GetGCS(),
		GCSBucket:      cfg.GCSBucket,
		Logger:         logger,
	}

	blogHandler := &handlers.BlogHandler{
		Create:  application.NewCreateBlogUseCase(uow, idGen, indexer),
		Get:     application.NewGetBlogUseCase(blogs),
		Update:  application.NewUpdateBlogUseCase(uow, indexer),
		Delete:  application.NewDeleteBlogUseCase(uow, indexer),
		Indexer: indexer,
		Logger:  logger,
	}

	authHandler := handlers.NewAuthHandler(authSvc, helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure), logger)

	r.Add(modules.NewUserModule(userHandler, authSvc))
	r.Add(modules.NewBlogModule(blogHandler, authSvc))
	r.Add(modules.NewAuthModule(authHandler, authSvc))
}
