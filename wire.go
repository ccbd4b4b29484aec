//go:build wireinject
// +build wireinject

package main

import (
	"Packed/cmd"
	"Packed/database"
	"Packed/internal/handlers"
	"Packed/internal/repository"
	"Packed/internal/services"

	"github.com/google/wire"
)

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewListService,
		handlers.NewListHandler,
		repository.NewListRepository,
		services.NewItemService,
		handlers.NewItemHandler,
		repository.NewItemRepository,
		services.NewContainerService,
		handlers.NewContainerHandler,
		repository.NewContainerRepository,
		services.NewPlacementService,
		handlers.NewPlacementHandler,
		repository.NewPlacementRepository,
		database.SetupDatabase,
		services.NewLogService,
		services.NewJanitorService,
		Provider,
	)
	return nil, nil
}
