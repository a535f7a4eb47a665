package cart

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/shopspring/decimal"
)

// Storage persists the whole cart as one blob. Each mutation rewrites the
// full state, so there is no torn-write risk to reason about.
type Storage interface {
	Load() (*Cart, error)
	Save(*Cart) error
}

// FileStorage keeps the cart in a JSON file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load returns an empty cart when the file does not exist yet.
func (s *FileStorage) Load() (*Cart, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Cart{}, nil
	}
	if err != nil {
		return nil, err
	}

	c := &Cart{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *FileStorage) Save(c *Cart) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Session wraps a Cart with save-after-mutate persistence: every mutating
// call writes the full state back to storage before returning.
type Session struct {
	cart  *Cart
	store Storage
}

func NewSession(store Storage) (*Session, error) {
	c, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{cart: c, store: store}, nil
}

func (s *Session) Items() []Item {
	return s.cart.Items
}

func (s *Session) Subtotal() decimal.Decimal {
	return s.cart.Subtotal()
}

func (s *Session) AddItem(item Item) error {
	s.cart.AddItem(item)
	return s.store.Save(s.cart)
}

func (s *Session) RemoveItem(productID, size, color string) error {
	s.cart.RemoveItem(productID, size, color)
	return s.store.Save(s.cart)
}

func (s *Session) UpdateQuantity(productID, size, color string, quantity int) error {
	s.cart.UpdateQuantity(productID, size, color, quantity)
	return s.store.Save(s.cart)
}

func (s *Session) Clear() error {
	s.cart.Clear()
	return s.store.Save(s.cart)
}
