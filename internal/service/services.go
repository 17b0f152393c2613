package service

import (
	"github.com/dquintero/hr-records/internal/config"
	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/store"
)

type Services struct {
	AuthService     AuthService
	EmployeeService EmployeeService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.Auth, logger),
		EmployeeService: NewEmployeeService(storages.EmployeeRepository, logger),
	}
}
