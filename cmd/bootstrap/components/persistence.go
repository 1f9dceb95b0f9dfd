package components

import (
	"weekly-menu/internal/infra/readstore"
	"weekly-menu/internal/infra/uow"
	"weekly-menu/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewDishReadStore,
			fx.As(new(queries.DishReadStore)),
		),
		fx.Annotate(
			readstore.NewSuggestionReadStore,
			fx.As(new(queries.SuggestionReadStore)),
		),
	),
)

// Write-side repositories are created per transaction by the unit of work,
// so only the UoW itself is wired here.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
