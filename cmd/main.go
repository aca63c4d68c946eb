package main

import (
	"log"

	"github.com/pot-code/elearn-bff/internal/enrollment"
	"github.com/pot-code/elearn-bff/internal/identity"
	infra "github.com/pot-code/elearn-bff/internal/infrastructure"
	"github.com/pot-code/elearn-bff/internal/infrastructure/auth"
	"github.com/pot-code/elearn-bff/internal/infrastructure/driver"
	"github.com/pot-code/elearn-bff/internal/infrastructure/logging"
	"github.com/pot-code/elearn-bff/internal/infrastructure/uuid"
	ihttp "github.com/pot-code/elearn-bff/internal/interfaces/http"
	"github.com/pot-code/elearn-bff/internal/progress"
	"go.uber.org/zap"
)

func main() {
	log.SetFlags(log.Lshortfile | log.Ldate | log.Ltime)
	option, err := infra.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(&logging.Config{
		FilePath: option.Logging.FilePath,
		Level:    option.Logging.Level,
		AppID:    option.AppID,
		Env:      option.Env,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %s\n", err)
	}
	logger = logger.With(
		zap.String("service.id", option.AppID),
	)
	defer logger.Sync()

	rdb := driver.NewRedisClient(option.KVStore.Host, option.KVStore.Port, option.KVStore.Password)

	UUIDGenerator := uuid.NewNanoIDGenerator(option.Security.IDLength)
	gateway, err := driver.NewAuthorityClient(&driver.AuthorityConfig{
		BaseURL: option.Authority.BaseURL,
		Timeout: option.Authority.Timeout,
	}, UUIDGenerator)
	if err != nil {
		log.Fatalf("Failed to create authority gateway: %s\n", err)
	}
	logger.Debug("Create authority gateway", zap.String("authority.base_url", option.Authority.BaseURL))

	jwtUtil := auth.NewJWTUtil(option.Security.JWTMethod,
		option.Security.JWTSecret,
		option.Security.TokenName)
	IdentityResolver := identity.NewResolver(jwtUtil, logger)
	EnrollmentResolver := enrollment.NewResolver(gateway, enrollment.FailOpen, logger)
	Tracker := progress.NewTracker(gateway, EnrollmentResolver, logger)

	ihttp.Serve(rdb, option, gateway, IdentityResolver, EnrollmentResolver, Tracker, logger)
}
