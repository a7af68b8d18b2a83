package cmd

import (
	"time"

	"gorm.io/gorm"

	"parceltrack/internal/adapters/out/crypto"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/core/ports"
)

// CompositionRoot wires adapters and domain services into use case handlers.
type CompositionRoot struct {
	gormDB        *gorm.DB
	uowFactory    postgres.GormUnitOfWorkFactory
	hasher        *crypto.Argon2Hasher
	signer        *crypto.JWTSigner
	codeGenerator services.TrackingCodeGenerator
	tariff        services.Tariff
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	tariff, err := services.NewTariff(config.RatePerKg)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:        crypto.NewArgon2Hasher(crypto.DefaultArgon2Params),
		signer:        crypto.NewJWTSigner([]byte(config.JWTSecret), time.Duration(config.TokenTTLMinutes)*time.Minute),
		codeGenerator: services.NewTrackingCodeGenerator(),
		tariff:        tariff,
	}, nil
}

func (c *CompositionRoot) TokenSigner() ports.TokenSigner {
	return c.signer
}

// AccountReader returns a repository bound to the shared connection, outside
// any transaction. Used by the HTTP middleware to resolve token subjects.
func (c *CompositionRoot) AccountReader() ports.AccountRepository {
	return c.uowFactory.Create().AccountRepository()
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.codeGenerator, c.tariff)
}

func (c *CompositionRoot) CreateEditParcelCommandHandler() commands.EditParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditParcelCommandHandler(f, c.tariff)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRiderCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionStatusCommandHandler() commands.TransitionStatusCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.gormDB, c.hasher, c.signer)
}

func (c *CompositionRoot) CreateTrackParcelQueryHandler() queries.TrackParcelQueryHandler {
	return queries.NewTrackParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerParcelsQueryHandler() queries.GetCustomerParcelsQueryHandler {
	return queries.NewGetCustomerParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllParcelsQueryHandler() queries.GetAllParcelsQueryHandler {
	return queries.NewGetAllParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRidersQueryHandler() queries.GetRidersQueryHandler {
	return queries.NewGetRidersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRiderAssignmentsQueryHandler() queries.GetRiderAssignmentsQueryHandler {
	return queries.NewGetRiderAssignmentsQueryHandler(c.gormDB)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}
