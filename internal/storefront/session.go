package storefront

import (
	"errors"
	"sync"
	"time"

	"freshmart/internal/cart"
	"freshmart/internal/catalog"

	"go.uber.org/zap"
)

// ContextKey is the gin context key the session middleware stores the
// caller's *Session under.
const ContextKey = "session"

// Catalog is the read side of the product catalog a Session works against.
type Catalog interface {
	Get(id string) (catalog.Product, error)
	Filter(query, category string) []catalog.Product
	Categories() []catalog.Category
	ImageURL(p catalog.Product) string
}

// Recorder receives storefront metrics.
type Recorder interface {
	CommandDispatched(commandType string, err error)
	LineAdded()
	SetActiveSessions(n int)
}

type nopRecorder struct{}

func (nopRecorder) CommandDispatched(string, error) {}
func (nopRecorder) LineAdded()                      {}
func (nopRecorder) SetActiveSessions(int)           {}

// Session is one shopper's storefront state. Commands are applied one at a
// time; a View always reflects every command dispatched before it.
type Session struct {
	id       string
	catalog  Catalog
	log      *zap.Logger
	recorder Recorder
	now      func() time.Time

	mu       sync.Mutex
	cart     *cart.Cart
	search   string
	category string
	cartOpen bool
	toasts   []cart.Notification
	lastSeen time.Time
}

// NewSession returns an empty session. log and recorder may be nil.
func NewSession(id string, cat Catalog, log *zap.Logger, recorder Recorder) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	s := &Session{
		id:       id,
		catalog:  cat,
		log:      log.With(zap.String("session_id", id)),
		recorder: recorder,
		now:      time.Now,
	}
	s.cart = cart.New(cart.NotifierFunc(s.notify))
	s.lastSeen = s.now()
	return s
}

func (s *Session) ID() string {
	return s.id
}

// notify runs with s.mu held, from inside a cart mutation.
func (s *Session) notify(n cart.Notification) {
	s.toasts = append(s.toasts, n)
	s.recorder.LineAdded()
}

// Dispatch applies cmd. Unknown product ids and out-of-range quantities are
// absorbed by the cart; only a command type the session does not handle is
// an error.
func (s *Session) Dispatch(cmd Command) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()

	err := s.apply(cmd)
	name := "nil"
	if cmd != nil {
		name = cmd.Name()
	}
	s.recorder.CommandDispatched(name, err)

	if err != nil {
		s.log.Warn("command rejected", zap.String("command", name), zap.Error(err))
		return err
	}
	s.log.Debug("command applied", zap.String("command", name))
	return nil
}

func (s *Session) apply(cmd Command) error {
	switch c := cmd.(type) {
	case ChangeSearch:
		s.search = c.Query
	case SelectCategory:
		s.category = ToggleCategory(s.category, c.Category)
	case AddToCart:
		p, err := s.catalog.Get(c.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			s.log.Debug("add ignored, product not in catalog", zap.String("product_id", c.ProductID))
			return nil
		}
		if err != nil {
			return err
		}
		s.cart.Add(p)
	case RemoveFromCart:
		s.cart.Remove(c.ProductID)
	case UpdateQuantity:
		s.cart.SetQuantity(c.ProductID, c.Quantity)
	case RemoveItem:
		s.cart.RemoveLine(c.ProductID)
	case OpenCart:
		s.cartOpen = true
	case CloseCart:
		s.cartOpen = false
	default:
		return ErrUnknownCommand
	}
	return nil
}

// View derives the current read model and hands over pending toasts, so
// each toast is rendered once.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = s.now()

	v := s.buildView()
	s.toasts = nil
	return v
}

// LastSeen reports when the session last handled a command or a read.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}
