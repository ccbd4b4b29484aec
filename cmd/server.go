package cmd

import (
	"Packed/internal/handlers"
	"Packed/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	DB               *gorm.DB
	ListService      services.ListService
	ListHandler      *handlers.ListHandler
	ItemService      services.ItemService
	ItemHandler      *handlers.ItemHandler
	ContainerService services.ContainerService
	ContainerHandler *handlers.ContainerHandler
	PlacementService services.PlacementService
	PlacementHandler *handlers.PlacementHandler
	LogService       services.LogService
	JanitorService   *services.Janitor
}

func NewServer(
	db *gorm.DB,
	listService services.ListService,
	listHandler *handlers.ListHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	containerService services.ContainerService,
	containerHandler *handlers.ContainerHandler,
	placementService services.PlacementService,
	placementHandler *handlers.PlacementHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		DB:               db,
		ListService:      listService,
		ListHandler:      listHandler,
		ItemService:      itemService,
		ItemHandler:      itemHandler,
		ContainerService: containerService,
		ContainerHandler: containerHandler,
		PlacementService: placementService,
		PlacementHandler: placementHandler,
		LogService:       logService,
		JanitorService:   janitorService,
	}
}
