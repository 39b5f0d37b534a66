package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/api/middleware"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/errors"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/metrics"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/models"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type InventoryService interface {
	Load(ctx context.Context) ([]models.Sneaker, error)
	List(ctx context.Context, category models.Category) ([]models.Sneaker, error)
	Get(ctx context.Context, id string) (*models.Sneaker, error)
	Add(ctx context.Context, data *models.SneakerFormData) (*models.Sneaker, error)
	Update(ctx context.Context, id string, req *models.UpdateSneakerRequest) (*models.Sneaker, error)
	Remove(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (models.DashboardStats, error)
}

var _ InventoryService = (*InventoryStore)(nil)

const errBlankName = "name: must contain visible text"

type CurrentUserProvider interface {
	CurrentUser() *models.User
}

type LowStockNotifier interface {
	NotifyLowStock(ctx context.Context, alert *models.LowStockAlert) error
}

type InventoryOption func(*InventoryStore)

func WithNotifier(notifier LowStockNotifier) InventoryOption {
	return func(s *InventoryStore) { s.notifier = notifier }
}

func WithClock(now func() time.Time) InventoryOption {
	return func(s *InventoryStore) { s.now = now }
}

func WithIDGenerator(newID func() string) InventoryOption {
	return func(s *InventoryStore) { s.newID = newID }
}

// InventoryStore keeps the current user's sneakers in memory and writes
// the whole collection back on every mutation. Without a current user
// every operation is a no-op.
type InventoryStore struct {
	mu       sync.Mutex
	store    storage.Store
	identity CurrentUserProvider
	notifier LowStockNotifier
	validate *validator.Validate
	now      func() time.Time
	newID    func() string

	// namespace currently held in sneakers; empty when nothing is loaded
	ownerID  string
	sneakers []models.Sneaker
}

func NewInventoryStore(store storage.Store, identity CurrentUserProvider, opts ...InventoryOption) *InventoryStore {

	s := &InventoryStore{
		store:    store,
		identity: identity,
		validate: validator.New(),
		now:      time.Now,
		newID:    uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *InventoryStore) Load(ctx context.Context) (sneakers []models.Sneaker, err error) {

	ctx, finish := observe(ctx, "inventory.load")
	defer func() { finish(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sync(ctx); err != nil {
		return nil, err
	}

	return slices.Clone(s.sneakers), nil
}

// List returns the collection, narrowed to one category when category is set.
func (s *InventoryStore) List(ctx context.Context, category models.Category) (sneakers []models.Sneaker, err error) {

	ctx, finish := observe(ctx, "inventory.list")
	defer func() { finish(err) }()

	if category != "" && !category.Valid() {
		return nil, errors.AddValidationError("category", "must be one of Running, Casual, Basketball")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sync(ctx); err != nil {
		return nil, err
	}

	sneakers = make([]models.Sneaker, 0, len(s.sneakers))
	for _, sneaker := range s.sneakers {
		if category == "" || sneaker.Category == category {
			sneakers = append(sneakers, sneaker)
		}
	}

	return sneakers, nil
}

func (s *InventoryStore) Get(ctx context.Context, id string) (sneaker *models.Sneaker, err error) {

	ctx, finish := observe(ctx, "inventory.get")
	defer func() { finish(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sync(ctx); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, errors.NotFoundError("Sneaker not found")
	}

	found := s.sneakers[idx]

	return &found, nil
}

func (s *InventoryStore) Add(ctx context.Context, data *models.SneakerFormData) (sneaker *models.Sneaker, err error) {

	ctx, finish := observe(ctx, "inventory.add")
	defer func() { finish(err) }()

	s.mu.Lock()

	user, err := s.sync(ctx)
	if err != nil || user == nil {
		s.mu.Unlock()
		return nil, err
	}

	if data == nil {
		s.mu.Unlock()
		return nil, errors.ValidationError("Sneaker data is required")
	}

	if err := s.validate.Struct(data); err != nil {
		s.mu.Unlock()
		return nil, errors.ValidationError("Invalid sneaker data").WithDetail(err.Error())
	}

	if !hasVisibleText(data.Name) {
		s.mu.Unlock()
		return nil, errors.ValidationError("Invalid sneaker data").WithDetail(errBlankName)
	}

	now := s.now()
	created := models.Sneaker{
		ID:        s.newID(),
		Name:      data.Name,
		Price:     data.Price,
		Quantity:  data.Quantity,
		Category:  data.Category,
		Image:     data.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := append(slices.Clone(s.sneakers), created)

	if err := s.commit(ctx, user.ID, next); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Unlock()

	middleware.LoggerFromContext(ctx).Info("Sneaker added", slog.String("sneakerId", created.ID), slog.String("userId", user.ID))
	s.alertIfLow(ctx, user, nil, created)

	return &created, nil
}

// Update merges the non-nil fields of req into the item with the given id.
// A missing id leaves the collection untouched and returns a nil sneaker.
func (s *InventoryStore) Update(ctx context.Context, id string, req *models.UpdateSneakerRequest) (sneaker *models.Sneaker, err error) {

	ctx, finish := observe(ctx, "inventory.update")
	defer func() { finish(err) }()

	s.mu.Lock()

	user, err := s.sync(ctx)
	if err != nil || user == nil {
		s.mu.Unlock()
		return nil, err
	}

	if req == nil {
		req = &models.UpdateSneakerRequest{}
	}

	if err := s.validate.Struct(req); err != nil {
		s.mu.Unlock()
		return nil, errors.ValidationError("Invalid sneaker data").WithDetail(err.Error())
	}

	if req.Name != nil && !hasVisibleText(*req.Name) {
		s.mu.Unlock()
		return nil, errors.ValidationError("Invalid sneaker data").WithDetail(errBlankName)
	}

	// an empty image clears it, anything else must be a URL
	if req.Image != nil && *req.Image != "" {
		if err := s.validate.Var(*req.Image, "url"); err != nil {
			s.mu.Unlock()
			return nil, errors.ValidationError("Invalid sneaker data").WithDetail("image: must be a valid URL")
		}
	}

	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, nil
	}

	previous := s.sneakers[idx]
	merged := previous

	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Price != nil {
		merged.Price = *req.Price
	}
	if req.Quantity != nil {
		merged.Quantity = *req.Quantity
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.Image != nil {
		merged.Image = *req.Image
	}
	merged.UpdatedAt = s.now()

	next := slices.Clone(s.sneakers)
	next[idx] = merged

	if err := s.commit(ctx, user.ID, next); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Unlock()

	middleware.LoggerFromContext(ctx).Info("Sneaker updated", slog.String("sneakerId", id), slog.String("userId", user.ID))
	s.alertIfLow(ctx, user, &previous, merged)

	return &merged, nil
}

// Remove reports whether an item was removed. A missing id is a no-op.
func (s *InventoryStore) Remove(ctx context.Context, id string) (removed bool, err error) {

	ctx, finish := observe(ctx, "inventory.remove")
	defer func() { finish(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.sync(ctx)
	if err != nil || user == nil {
		return false, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.sneakers), idx, idx+1)

	if err := s.commit(ctx, user.ID, next); err != nil {
		return false, err
	}

	middleware.LoggerFromContext(ctx).Info("Sneaker removed", slog.String("sneakerId", id), slog.String("userId", user.ID))

	return true, nil
}

func (s *InventoryStore) Stats(ctx context.Context) (stats models.DashboardStats, err error) {

	ctx, finish := observe(ctx, "inventory.stats")
	defer func() { finish(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.sync(ctx); err != nil {
		return models.DashboardStats{}, err
	}

	return ComputeStats(s.sneakers), nil
}

// sync makes sneakers hold the current user's namespace, loading (and on
// first sight seeding) it when the user changed. Returns nil when nobody
// is logged in. Callers hold s.mu.
func (s *InventoryStore) sync(ctx context.Context) (*models.User, error) {

	user := s.identity.CurrentUser()

	if user == nil {
		s.reset()
		return nil, nil
	}

	if s.ownerID == user.ID {
		return user, nil
	}

	s.reset()

	sneakers, err := s.loadNamespace(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.ownerID = user.ID
	s.sneakers = sneakers
	metrics.SetLowStockItems(ComputeStats(sneakers).LowStockCount)

	return user, nil
}

func (s *InventoryStore) loadNamespace(ctx context.Context, userID string) ([]models.Sneaker, error) {

	logger := middleware.LoggerFromContext(ctx)
	key := storage.InventoryKey(userID)

	var sneakers []models.Sneaker

	found, err := storage.GetJSON(ctx, s.store, key, &sneakers)
	if err != nil {
		return nil, errors.StorageError("Failed to load inventory").WithError(err)
	}

	if found {
		if sneakers == nil {
			sneakers = []models.Sneaker{}
		}

		logger.Debug("Inventory loaded", slog.String("userId", userID), slog.Int("count", len(sneakers)))

		return sneakers, nil
	}

	seed := SampleSneakers(s.now())

	if err := storage.SetJSON(ctx, s.store, key, seed); err != nil {
		return nil, errors.StorageError("Failed to seed inventory").WithError(err)
	}

	logger.Info("Seeded sample inventory", slog.String("userId", userID), slog.Int("count", len(seed)))

	return seed, nil
}

// commit persists next and only then swaps it in, so a failed write
// leaves memory matching storage.
func (s *InventoryStore) commit(ctx context.Context, userID string, next []models.Sneaker) error {

	if err := storage.SetJSON(ctx, s.store, storage.InventoryKey(userID), next); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to persist inventory", slog.String("userId", userID), slog.Any("error", err))
		return errors.StorageError("Failed to save inventory").WithError(err)
	}

	s.sneakers = next
	metrics.SetLowStockItems(ComputeStats(next).LowStockCount)

	return nil
}

func (s *InventoryStore) reset() {
	s.ownerID = ""
	s.sneakers = []models.Sneaker{}
}

func (s *InventoryStore) indexOf(id string) int {
	return slices.IndexFunc(s.sneakers, func(sneaker models.Sneaker) bool {
		return sneaker.ID == id
	})
}

func (s *InventoryStore) alertIfLow(ctx context.Context, user *models.User, previous *models.Sneaker, current models.Sneaker) {

	if s.notifier == nil || !current.IsLowStock() {
		return
	}

	if previous != nil && previous.IsLowStock() {
		return
	}

	alert := &models.LowStockAlert{
		Type:    models.NotificationTypeLowStock,
		User:    *user,
		Sneaker: current,
	}

	if err := s.notifier.NotifyLowStock(ctx, alert); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Low stock alert failed",
			slog.String("sneakerId", current.ID),
			slog.Any("error", err),
		)
	}
}
