package services

import (
	"errors"
	"sync"

	"github.com/asanchezr/gin-menu-api/internal/models"
)

// ErrMenuItemNotFound is returned when an id matches no stored item
var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuService provides access to the in-memory menu collection
type MenuService interface {
	// GetAllItems retrieves every menu item in insertion order
	GetAllItems() []models.MenuItem
	// GetItemByID retrieves a menu item by its ID
	GetItemByID(id int) (models.MenuItem, error)
	// CreateItem assigns the next id to the item and appends it to the collection
	CreateItem(item models.MenuItem) models.MenuItem
	// UpdateItem replaces the item with the given id in place, keeping its position
	UpdateItem(id int, item models.MenuItem) (models.MenuItem, error)
	// DeleteItem removes the item with the given id and returns it
	DeleteItem(id int) (models.MenuItem, error)
}

// menuService is the implementation of the MenuService interface.
// The collection and id counter live for the lifetime of the process and are
// guarded by a mutex because Gin serves requests on multiple goroutines.
type menuService struct {
	mu     sync.Mutex
	items  []models.MenuItem
	nextID int
}

// NewMenuService creates a MenuService seeded with the initial menu.
// The id counter starts above the highest seeded id and never reuses ids,
// even after deletions.
func NewMenuService() MenuService {
	items := seedMenu()
	nextID := 1
	for _, item := range items {
		if item.ID >= nextID {
			nextID = item.ID + 1
		}
	}
	return &menuService{items: items, nextID: nextID}
}

// seedMenu returns the initial menu loaded on every process start
func seedMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          1,
			Name:        "Bruschetta",
			Description: "Grilled bread topped with fresh tomatoes, garlic and basil",
			Price:       6.5,
			Category:    models.CategoryAppetizer,
			Ingredients: []string{"bread", "tomatoes", "garlic", "basil", "olive oil"},
			Available:   true,
		},
		{
			ID:          2,
			Name:        "Tiramisu",
			Description: "Classic Italian dessert with mascarpone and espresso",
			Price:       7.0,
			Category:    models.CategoryDessert,
			Ingredients: []string{"mascarpone", "espresso", "ladyfingers", "cocoa"},
			Available:   true,
		},
		{
			ID:          3,
			Name:        "Spaghetti Carbonara",
			Description: "Spaghetti with pancetta, egg and pecorino romano",
			Price:       13.5,
			Category:    models.CategoryEntree,
			Ingredients: []string{"spaghetti", "pancetta", "egg", "pecorino romano", "black pepper"},
			Available:   true,
		},
	}
}

func (s *menuService) GetAllItems() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *menuService) GetItemByID(id int) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrMenuItemNotFound
}

func (s *menuService) CreateItem(item models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextID
	s.nextID++
	s.items = append(s.items, item)
	return item
}

func (s *menuService) UpdateItem(id int, item models.MenuItem) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			// Full replace: every field comes from the request, only the id survives
			item.ID = id
			s.items[i] = item
			return item, nil
		}
	}
	return models.MenuItem{}, ErrMenuItemNotFound
}

func (s *menuService) DeleteItem(id int) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return item, nil
		}
	}
	return models.MenuItem{}, ErrMenuItemNotFound
}
