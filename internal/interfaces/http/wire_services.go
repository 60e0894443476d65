package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	contactUsecases "github.com/flyoffice/directory/internal/application/contact/usecases"
	"github.com/flyoffice/directory/internal/application/directory"
	permissionApp "github.com/flyoffice/directory/internal/application/permission"
	"github.com/flyoffice/directory/internal/infrastructure/auth"
	"github.com/flyoffice/directory/internal/infrastructure/email"
	"github.com/flyoffice/directory/internal/infrastructure/metrics"
	infraPermission "github.com/flyoffice/directory/internal/infrastructure/permission"
	"github.com/flyoffice/directory/internal/infrastructure/ratelimit"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
	sharedConfig "github.com/flyoffice/directory/internal/shared/config"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/services/markdown"
)

// services holds application services shared by use cases and handlers.
type services struct {
	permissions *permissionApp.Service
	directory   *directory.Service
	markdown    markdown.Service
	notifier    contactUsecases.InquiryNotifier // nil when email is disabled
}

func (c *Container) initInfrastructure() {
	c.metrics = metrics.NewRecorder()

	if c.cfg.Redis.Enabled() {
		client := redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			c.log.Warnw("redis unavailable, inquiry rate limiting disabled", "addr", c.cfg.Redis.GetAddr(), "error", err)
			_ = client.Close()
		} else {
			c.redis = client
			c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
		}
	}

	c.initRepositories()
}

func (c *Container) initServices() {
	c.svcs = &services{markdown: markdown.NewService()}

	policyDB := c.db
	if !c.cfg.Permission.PersistPolicy {
		policyDB = nil
	}
	enforcer, err := infraPermission.NewEnforcer(policyDB, logger.WithComponent("permission.enforcer"))
	if err != nil {
		c.log.Warnw("permission enforcer unavailable, using static table", "error", err)
		c.svcs.permissions = permissionApp.NewService(nil, c.metrics, c.log)
	} else {
		c.svcs.permissions = permissionApp.NewService(enforcer, c.metrics, c.log)
	}

	c.svcs.directory = directory.NewService(
		c.repos.airlineRepo,
		c.repos.officeRepo,
		c.repos.contactRepo,
		c.svcs.permissions,
		c.cfg.Directory.MaxPageSize,
		logger.WithComponent("directory"),
	)

	if c.cfg.Email.Enabled() {
		c.svcs.notifier = email.NewInquiryNotifier(email.SMTPConfig{
			Host:        c.cfg.Email.SMTPHost,
			Port:        c.cfg.Email.SMTPPort,
			Username:    c.cfg.Email.SMTPUser,
			Password:    c.cfg.Email.SMTPPassword,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
			StaffInbox:  c.cfg.Email.StaffInbox,
		})
	} else {
		c.log.Infow("email disabled, staff will not be notified of new inquiries")
	}

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWTSecret, c.cfg.Auth.Issuer)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.svcs.permissions)

	limits := contactRateLimits(c.cfg.RateLimit)
	if c.redis != nil && limits.Enabled() {
		c.contactRateLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis), "contact", limits, c.log)
	}
}

// contactRateLimits maps the configured inquiry limits onto the limiter windows.
func contactRateLimits(cfg sharedConfig.RateLimitConfig) ratelimit.RateLimitConfig {
	return ratelimit.RateLimitConfig{
		RequestsPerMinute: cfg.ContactPerMinute,
		RequestsPerHour:   cfg.ContactPerHour,
		RequestsPerDay:    cfg.ContactPerDay,
	}
}
