package apperrors

import (
	"errors"
	"fmt"
)

// Kind enumerates the domain error conditions the services can produce.
// Every caller branches on Kind, never on message text.
type Kind string

const (
	ListNotFound          Kind = "ListNotFound"
	DuplicateList         Kind = "DuplicateList"
	ItemNotFound          Kind = "ItemNotFound"
	DuplicateItem         Kind = "DuplicateItem"
	ItemQuantityViolation Kind = "ItemQuantityViolation"
	ContainerNotFound     Kind = "ContainerNotFound"
	DuplicateContainer    Kind = "DuplicateContainer"
	PlacementNotFound     Kind = "PlacementNotFound"
)

// ErrUniqueConstraint is the store-level signal raised by the repository
// layer when a database uniqueness constraint is violated at save time. It
// is not a domain error; services reclassify it into the matching
// Duplicate* kind.
var ErrUniqueConstraint = errors.New("unique constraint violation")

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the domain kind of err, or ("", false) when err is not a
// domain error.
func KindOf(err error) (Kind, bool) {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind, true
	}
	return "", false
}

func IsNotFound(err error) bool {
	switch kind, ok := KindOf(err); {
	case !ok:
		return false
	default:
		return kind == ListNotFound || kind == ItemNotFound ||
			kind == ContainerNotFound || kind == PlacementNotFound
	}
}

func NewListNotFound(listID uint) *Error {
	return &Error{Kind: ListNotFound, Message: fmt.Sprintf("list with id %d not found", listID)}
}

func NewDuplicateList(description string) *Error {
	return &Error{Kind: DuplicateList, Message: fmt.Sprintf("a list with description %q already exists", description)}
}

func NewItemNotFound(itemID uint) *Error {
	return &Error{Kind: ItemNotFound, Message: fmt.Sprintf("item with id %d not found", itemID)}
}

func NewDuplicateItem(name string) *Error {
	return &Error{Kind: DuplicateItem, Message: fmt.Sprintf("an item named %q already exists in this list", name)}
}

func NewItemQuantityViolation(name string, quantity, placements int) *Error {
	return &Error{
		Kind:    ItemQuantityViolation,
		Message: fmt.Sprintf("item %q has %d placements which exceeds quantity %d", name, placements, quantity),
	}
}

func NewContainerNotFound(containerID uint) *Error {
	return &Error{Kind: ContainerNotFound, Message: fmt.Sprintf("container with id %d not found", containerID)}
}

func NewDuplicateContainer(name string) *Error {
	return &Error{Kind: DuplicateContainer, Message: fmt.Sprintf("a container named %q already exists in this list", name)}
}

func NewPlacementNotFound(placementID uint) *Error {
	return &Error{Kind: PlacementNotFound, Message: fmt.Sprintf("placement with id %d not found", placementID)}
}
