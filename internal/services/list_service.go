package services

import (
	"Packed/internal/apperrors"
	"Packed/internal/models"
	"Packed/internal/repository"
	"errors"
)

type ListService interface {
	GetLists() ([]models.List, error)
	GetListByID(id uint) (*models.List, error)
	CreateList(description string) (*models.List, error)
	UpdateList(id uint, description string) (*models.List, error)
	DeleteList(id uint) error
}

type listServiceImpl struct {
	listRepo repository.ListRepository
}

func NewListService(listRepo repository.ListRepository) ListService {
	return &listServiceImpl{listRepo: listRepo}
}

func (s *listServiceImpl) GetLists() ([]models.List, error) {
	lists, err := s.listRepo.FindAllGraph()
	if err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []models.List{}
	}
	return lists, nil
}

func (s *listServiceImpl) GetListByID(id uint) (*models.List, error) {
	return resolveList(s.listRepo, id)
}

func (s *listServiceImpl) CreateList(description string) (*models.List, error) {
	existing, err := s.listRepo.FindByDescription(description)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewDuplicateList(description)
	}
	list := &models.List{Description: description, Items: []models.Item{}, Containers: []models.Container{}}
	if err := s.listRepo.Create(list); err != nil {
		// The pre-check races with concurrent creates; the unique index is
		// the authoritative arbiter.
		if errors.Is(err, apperrors.ErrUniqueConstraint) {
			return nil, apperrors.NewDuplicateList(description)
		}
		return nil, err
	}
	return list, nil
}

func (s *listServiceImpl) UpdateList(id uint, description string) (*models.List, error) {
	list, err := resolveList(s.listRepo, id)
	if err != nil {
		return nil, err
	}
	// Writing back the current description must stay idempotent, so skip
	// the save entirely.
	if list.Description == description {
		return list, nil
	}
	existing, err := s.listRepo.FindByDescription(description)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, apperrors.NewDuplicateList(description)
	}
	list.Description = description
	if err := s.listRepo.Update(list); err != nil {
		if errors.Is(err, apperrors.ErrUniqueConstraint) {
			return nil, apperrors.NewDuplicateList(description)
		}
		return nil, err
	}
	return list, nil
}

func (s *listServiceImpl) DeleteList(id uint) error {
	if _, err := resolveList(s.listRepo, id); err != nil {
		return err
	}
	return s.listRepo.Delete(id)
}
