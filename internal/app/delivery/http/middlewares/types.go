package middlewares

import (
	"clinicdesk-service/internal/app/config"
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/app/services/core/gate"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	IdentityProvider contracts.IdentityProvider
	Gate             *gate.Gate
}

func NewMiddlewares(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	identityProvider contracts.IdentityProvider,
	requestGate *gate.Gate,
) *Middlewares {
	return &Middlewares{
		Log:              logger,
		InternalConfig:   internalConfig,
		IdentityProvider: identityProvider,
		Gate:             requestGate,
	}
}
