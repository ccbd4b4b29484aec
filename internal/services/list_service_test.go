package services

import (
	"Packed/internal/apperrors"
	"Packed/internal/models"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListService_GetLists(t *testing.T) {
	mockRepo := new(MockListRepository)
	service := NewListService(mockRepo)

	lists := []models.List{
		*campingList(),
		{BaseModel: models.BaseModel{ID: 2}, Description: "Ski trip"},
	}
	mockRepo.On("FindAllGraph").Return(lists, nil)

	allLists, err := service.GetLists()

	assert.NoError(t, err)
	assert.Len(t, allLists, 2)
	assert.Equal(t, "Camping", allLists[0].Description)
	// The collection carries full aggregates, not bare list rows.
	assert.Len(t, allLists[0].Items, 2)
	assert.Len(t, allLists[0].Containers, 2)
	mockRepo.AssertExpectations(t)
}

func TestListService_GetLists_EmptyStore(t *testing.T) {
	mockRepo := new(MockListRepository)
	service := NewListService(mockRepo)

	mockRepo.On("FindAllGraph").Return(nil, nil)

	allLists, err := service.GetLists()

	assert.NoError(t, err)
	assert.NotNil(t, allLists)
	assert.Empty(t, allLists)
}

func TestListService_GetListByID_NotFound(t *testing.T) {
	mockRepo := new(MockListRepository)
	service := NewListService(mockRepo)

	mockRepo.On("FindGraphByID", uint(99)).Return(nil, nil)

	list, err := service.GetListByID(99)

	assert.Nil(t, list)
	kind, ok := apperrors.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ListNotFound, kind)
}

func TestListService_CreateList(t *testing.T) {
	mockRepo := new(MockListRepository)
	service := NewListService(mockRepo)

	mockRepo.On("FindByDescription", "Camping").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.List")).Return(nil)

	list, err := service.CreateList("Camping")

	assert.NoError(t, err)
	assert.Equal(t, "Camping", list.Description)
	assert.Empty(t, list.Items)
	assert.Empty(t, list.Containers)
	mockRepo.AssertExpectations(t)
}

func TestListService_CreateList_Duplicate(t *testing.T) {
	mockRepo := new(MockListRepository)
	service := NewListService(mockRepo)

	existing := &models.List{BaseModel: models.BaseModel{ID: 1}, Description: "Camping"}
	mockRepo.On("FindByDescription", "Camping").Return(existing, nil)

	list, err := service.CreateList("Camping")

	assert.Nil(t, list)
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.DuplicateList, kind)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListService_CreateList_StoreUniqueViolation(t *testing.T) {
	mockRepo := new(MockListRepository)
	service := NewListService(mockRepo)

	// The pre-check misses the concurrent writer; the store signal must
	// still come back as a domain duplicate.
	mockRepo.On("FindByDescription", "Camping").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.List")).Return(apperrors.ErrUniqueConstraint)

	list, err := service.CreateList("Camping")

	assert.Nil(t, list)
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.DuplicateList, kind)
}

func TestListService_CreateList_StoreFaultPassesThrough(t *testing.T) {
	mockRepo := new(MockListRepository)
	service := NewListService(mockRepo)

	storeFault := errors.New("connection reset")
	mockRepo.On("FindByDescription", "Camping").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*models.List")).Return(storeFault)

	_, err := service.CreateList("Camping")

	assert.ErrorIs(t, err, storeFault)
	_, ok := apperrors.KindOf(err)
	assert.False(t, ok)
}

func TestListService_UpdateList(t *testing.T) {
	mockRepo := newSeededListRepo(campingList())
	service := NewListService(mockRepo)

	mockRepo.On("FindByDescription", "Festival").Return(nil, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.List")).Return(nil)

	list, err := service.UpdateList(1, "Festival")

	assert.NoError(t, err)
	assert.Equal(t, "Festival", list.Description)
	mockRepo.AssertExpectations(t)
}

func TestListService_UpdateList_SameDescriptionSkipsWrite(t *testing.T) {
	mockRepo := newSeededListRepo(campingList())
	service := NewListService(mockRepo)

	list, err := service.UpdateList(1, "Camping")

	assert.NoError(t, err)
	assert.Equal(t, "Camping", list.Description)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertNotCalled(t, "FindByDescription", mock.Anything)
}

func TestListService_UpdateList_Duplicate(t *testing.T) {
	mockRepo := newSeededListRepo(campingList())
	service := NewListService(mockRepo)

	other := &models.List{BaseModel: models.BaseModel{ID: 2}, Description: "Festival"}
	mockRepo.On("FindByDescription", "Festival").Return(other, nil)

	list, err := service.UpdateList(1, "Festival")

	assert.Nil(t, list)
	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.DuplicateList, kind)
	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestListService_UpdateList_NotFound(t *testing.T) {
	mockRepo := newSeededListRepo(campingList())
	service := NewListService(mockRepo)

	_, err := service.UpdateList(99, "Festival")

	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.ListNotFound, kind)
}

func TestListService_DeleteList(t *testing.T) {
	mockRepo := newSeededListRepo(campingList())
	service := NewListService(mockRepo)

	mockRepo.On("Delete", uint(1)).Return(nil)

	err := service.DeleteList(1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestListService_DeleteList_NotFound(t *testing.T) {
	mockRepo := newSeededListRepo(campingList())
	service := NewListService(mockRepo)

	err := service.DeleteList(99)

	kind, _ := apperrors.KindOf(err)
	assert.Equal(t, apperrors.ListNotFound, kind)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
}
