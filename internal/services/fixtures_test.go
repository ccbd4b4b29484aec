package services

import (
	"Packed/internal/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Create(list *models.List) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockListRepository) FindByID(id uint) (*models.List, error) {
	args := m.Called(id)
	list, _ := args.Get(0).(*models.List)
	return list, args.Error(1)
}

func (m *MockListRepository) FindAll() ([]models.List, error) {
	args := m.Called()
	lists, _ := args.Get(0).([]models.List)
	return lists, args.Error(1)
}

func (m *MockListRepository) Update(list *models.List) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockListRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockListRepository) FindGraphByID(id uint) (*models.List, error) {
	args := m.Called(id)
	list, _ := args.Get(0).(*models.List)
	return list, args.Error(1)
}

func (m *MockListRepository) FindAllGraph() ([]models.List, error) {
	args := m.Called()
	lists, _ := args.Get(0).([]models.List)
	return lists, args.Error(1)
}

func (m *MockListRepository) FindByDescription(description string) (*models.List, error) {
	args := m.Called(description)
	list, _ := args.Get(0).(*models.List)
	return list, args.Error(1)
}

func (m *MockListRepository) FindDeletedBefore(cutoff time.Time) ([]models.List, error) {
	args := m.Called(cutoff)
	lists, _ := args.Get(0).([]models.List)
	return lists, args.Error(1)
}

func (m *MockListRepository) HardDelete(list *models.List) error {
	args := m.Called(list)
	return args.Error(0)
}

// campingList builds a fresh aggregate per call so no two tests share
// mutable state: the "Camping" list holds a fully placed tent, a stove with
// room for one more placement, and two containers.
func campingList() *models.List {
	return &models.List{
		BaseModel:   models.BaseModel{ID: 1},
		Description: "Camping",
		Items: []models.Item{
			{
				BaseModel: models.BaseModel{ID: 10},
				ListID:    1,
				Name:      "Tent",
				Quantity:  1,
				Placements: []models.Placement{
					{BaseModel: models.BaseModel{ID: 100}, ItemID: 10, ContainerID: 20},
				},
			},
			{
				BaseModel: models.BaseModel{ID: 11},
				ListID:    1,
				Name:      "Stove",
				Quantity:  2,
				Placements: []models.Placement{
					{BaseModel: models.BaseModel{ID: 101}, ItemID: 11, ContainerID: 21},
				},
			},
		},
		Containers: []models.Container{
			{BaseModel: models.BaseModel{ID: 20}, ListID: 1, Name: "Backpack"},
			{BaseModel: models.BaseModel{ID: 21}, ListID: 1, Name: "Duffel"},
		},
	}
}

// newSeededListRepo returns a fresh mock that resolves the given aggregate
// by id and reports any other id as absent.
func newSeededListRepo(list *models.List) *MockListRepository {
	repo := new(MockListRepository)
	repo.On("FindGraphByID", list.ID).Return(list, nil)
	repo.On("FindGraphByID", mock.Anything).Return(nil, nil).Maybe()
	return repo
}
