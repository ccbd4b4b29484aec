package services

import (
	"Packed/internal/apperrors"
	"Packed/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPlacementRepository struct {
	mock.Mock
}

func (m *MockPlacementRepository) Create(placement *models.Placement) error {
	args := m.Called(placement)
	return args.Error(0)
}

func (m *MockPlacementRepository) FindByID(id uint) (*models.Placement, error) {
	args := m.Called(id)
	placement, _ := args.Get(0).(*models.Placement)
	return placement, args.Error(1)
}

func (m *MockPlacementRepository) FindAll() ([]models.Placement, error) {
	args := m.Called()
	placements, _ := args.Get(0).([]models.Placement)
	return placements, args.Error(1)
}

func (m *MockPlacementRepository) Update(placement *models.Placement) error {
	args := m.Called(placement)
	return args.Error(0)
}

func (m *MockPlacementRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPlacementRepository) PurgeDeletedBefore(cutoff time.Time) error {
	args := m.Called(cutoff)
	return args.Error(0)
}

func TestPlacementService_GetPlacements(t *testing.T) {
	listRepo := newSeededListRepo(campingList())
	service := NewPlacementService(listRepo, new(MockPlacementRepository))

	placements, err := service.GetPlacements(1, 10)

	assert.NoError(t, err)
	assert.Len(t, placements, 1)
	assert.Equal(t, uint(20), placements[0].ContainerID)
}

func TestPlacementService_GetPlacements_EmptyItem(t *testing.T) {
	list := campingList()
	list.Items[1].Placements = nil
	listRepo := newSeededListRepo(list)
	service := NewPlacementService(listRepo, new(MockPlacementRepository))

	placements, err := service.GetPlacements(1, 11)

	assert.NoError(t, err)
	assert.NotNil(t, placements)
	assert.Empty(t, placements)
}

func TestPlacementService_GetPlacementByID_ResolutionOrder(t *testing.T) {
	listRepo := newSeededListRepo(campingList())
	service := NewPlacementService(listRepo, new(MockPlacementRepository))

	// List and item both resolve, so only the placement can be missing.
	_, err := service.GetPlacementByID(1, 10, 999)
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.PlacementNotFound, kind)

	_, err = service.GetPlacementByID(1, 99, 999)
	kind, _ = apperrors.KindOf(err)
	assert.Equal(t, apperrors.ItemNotFound, kind)

	_, err = service.GetPlacementByID(42, 10, 999)
	kind, _ = apperrors.KindOf(err)
	assert.Equal(t, apperrors.ListNotFound, kind)
}

func TestPlacementService_CreatePlacement(t *testing.T) {
	listRepo := newSeededListRepo(campingList())
	placementRepo := new(MockPlacementRepository)
	service := NewPlacementService(listRepo, placementRepo)

	placementRepo.On("Create", mock.AnythingOfType("*models.Placement")).Return(nil)

	// The stove has quantity 2 and one placement, so one more fits.
	placement, err := service.CreatePlacement(1, 11, 20)

	assert.NoError(t, err)
	assert.Equal(t, uint(11), placement.ItemID)
	assert.Equal(t, uint(20), placement.ContainerID)
	placementRepo.AssertExpectations(t)
}

func TestPlacementService_CreatePlacement_QuantityExhausted(t *testing.T) {
	listRepo := newSeededListRepo(campingList())
	placementRepo := new(MockPlacementRepository)
	service := NewPlacementService(listRepo, placementRepo)

	// The tent has quantity 1 and is already placed.
	placement, err := service.CreatePlacement(1, 10, 21)

	assert.Nil(t, placement)
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.ItemQuantityViolation, kind)
	placementRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPlacementService_CreatePlacement_ContainerFromOtherList(t *testing.T) {
	listRepo := newSeededListRepo(campingList())
	placementRepo := new(MockPlacementRepository)
	service := NewPlacementService(listRepo, placementRepo)

	// Container 77 exists nowhere in this list's aggregate; cross-list
	// placements must fail as container-not-found.
	placement, err := service.CreatePlacement(1, 11, 77)

	assert.Nil(t, placement)
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.ContainerNotFound, kind)
	placementRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPlacementService_CreatePlacement_SameContainerTwice(t *testing.T) {
	list := campingList()
	list.Items[1].Quantity = 3
	listRepo := newSeededListRepo(list)
	placementRepo := new(MockPlacementRepository)
	service := NewPlacementService(listRepo, placementRepo)

	placementRepo.On("Create", mock.AnythingOfType("*models.Placement")).Return(nil)

	// Two stove units in the same duffel are two distinct placements.
	placement, err := service.CreatePlacement(1, 11, 21)

	assert.NoError(t, err)
	assert.Equal(t, uint(21), placement.ContainerID)
}

func TestPlacementService_DeletePlacement(t *testing.T) {
	listRepo := newSeededListRepo(campingList())
	placementRepo := new(MockPlacementRepository)
	service := NewPlacementService(listRepo, placementRepo)

	placementRepo.On("Delete", uint(100)).Return(nil)

	err := service.DeletePlacement(1, 10, 100)

	assert.NoError(t, err)
	placementRepo.AssertExpectations(t)
}

func TestPlacementService_DeletePlacement_NotFound(t *testing.T) {
	listRepo := newSeededListRepo(campingList())
	placementRepo := new(MockPlacementRepository)
	service := NewPlacementService(listRepo, placementRepo)

	err := service.DeletePlacement(1, 10, 999)

	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.PlacementNotFound, kind)
	placementRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
