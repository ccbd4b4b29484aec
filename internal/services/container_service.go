package services

import (
	"Packed/internal/apperrors"
	"Packed/internal/models"
	"Packed/internal/repository"
	"errors"
)

type ContainerService interface {
	GetContainers(listID uint) ([]models.Container, error)
	GetContainerByID(listID, containerID uint) (*models.Container, error)
	CreateContainer(listID uint, name string) (*models.Container, error)
	UpdateContainer(listID, containerID uint, name string) (*models.Container, error)
	DeleteContainer(listID, containerID uint) error
}

type containerServiceImpl struct {
	listRepo      repository.ListRepository
	containerRepo repository.ContainerRepository
}

func NewContainerService(listRepo repository.ListRepository, containerRepo repository.ContainerRepository) ContainerService {
	return &containerServiceImpl{listRepo: listRepo, containerRepo: containerRepo}
}

func (s *containerServiceImpl) GetContainers(listID uint) ([]models.Container, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	if list.Containers == nil {
		return []models.Container{}, nil
	}
	return list.Containers, nil
}

func (s *containerServiceImpl) GetContainerByID(listID, containerID uint) (*models.Container, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	return resolveContainer(list, containerID)
}

func (s *containerServiceImpl) CreateContainer(listID uint, name string) (*models.Container, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	for i := range list.Containers {
		if list.Containers[i].Name == name {
			return nil, apperrors.NewDuplicateContainer(name)
		}
	}
	container := &models.Container{ListID: list.ID, Name: name}
	if err := s.containerRepo.Create(container); err != nil {
		if errors.Is(err, apperrors.ErrUniqueConstraint) {
			return nil, apperrors.NewDuplicateContainer(name)
		}
		return nil, err
	}
	return container, nil
}

func (s *containerServiceImpl) UpdateContainer(listID, containerID uint, name string) (*models.Container, error) {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return nil, err
	}
	container, err := resolveContainer(list, containerID)
	if err != nil {
		return nil, err
	}
	// Renaming to the current name is idempotent; no save is issued.
	if container.Name == name {
		return container, nil
	}
	for i := range list.Containers {
		if list.Containers[i].ID != containerID && list.Containers[i].Name == name {
			return nil, apperrors.NewDuplicateContainer(name)
		}
	}
	container.Name = name
	if err := s.containerRepo.Update(container); err != nil {
		if errors.Is(err, apperrors.ErrUniqueConstraint) {
			return nil, apperrors.NewDuplicateContainer(name)
		}
		return nil, err
	}
	return container, nil
}

func (s *containerServiceImpl) DeleteContainer(listID, containerID uint) error {
	list, err := resolveList(s.listRepo, listID)
	if err != nil {
		return err
	}
	container, err := resolveContainer(list, containerID)
	if err != nil {
		return err
	}
	return s.containerRepo.Delete(container.ID)
}
