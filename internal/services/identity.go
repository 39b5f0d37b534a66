package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aaravmahajanofficial/sneaker-inventory/internal/api/middleware"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/errors"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/models"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/ratelimit"
	"github.com/aaravmahajanofficial/sneaker-inventory/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 6

type IdentityService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthState, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthState, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.User
	State() *models.AuthState
}

var _ IdentityService = (*IdentityStore)(nil)

type IdentityOptions struct {
	// VerifyPasswords stores bcrypt hashes at signup and checks them at
	// login. Off by default: any password logs in a registered e-mail.
	VerifyPasswords bool
	Now             func() time.Time
	NewID           func() string
	// LoginLimiter, when set, bounds login attempts per e-mail.
	LoginLimiter ratelimit.Limiter
}

// IdentityStore owns the current user and the registered users list.
// The current user is read from storage once, in NewIdentityStore, and
// cached in memory afterwards.
type IdentityStore struct {
	mu       sync.RWMutex
	store    storage.Store
	validate *validator.Validate
	opts     IdentityOptions
	current  *models.User
}

func NewIdentityStore(ctx context.Context, store storage.Store, opts IdentityOptions) (*IdentityStore, error) {

	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	s := &IdentityStore{
		store:    store,
		validate: validator.New(),
		opts:     opts,
	}

	var user models.User

	found, err := storage.GetJSON(ctx, store, storage.CurrentUserKey, &user)
	if err != nil {
		return nil, errors.StorageError("Failed to read current user").WithError(err)
	}

	if found {
		s.current = &user
		slog.Info("Restored current user", slog.String("userId", user.ID))
	}

	return s, nil
}

func (s *IdentityStore) Login(ctx context.Context, req *models.LoginRequest) (state *models.AuthState, err error) {

	ctx, finish := observe(ctx, "identity.login")
	defer func() { finish(err) }()

	logger := middleware.LoggerFromContext(ctx)

	if req == nil || s.validate.Struct(req) != nil {
		return nil, errors.ValidationError("Email and password are required")
	}

	if err := s.checkRateLimit(ctx, req.Email); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	registered := findUserByEmail(users, req.Email)
	if registered == nil {
		logger.Warn("Login for unknown email")
		return nil, errors.NotFoundError("User not found")
	}

	if s.opts.VerifyPasswords {
		if err := s.checkPassword(ctx, req.Email, req.Password); err != nil {
			logger.Warn("Login rejected", slog.String("userId", registered.ID))
			return nil, err
		}
	}

	user := &models.User{
		ID:        registered.ID,
		Email:     registered.Email,
		Name:      registered.Name,
		CreatedAt: registered.CreatedAt,
	}

	if err := storage.SetJSON(ctx, s.store, storage.CurrentUserKey, user); err != nil {
		return nil, errors.StorageError("Failed to save current user").WithError(err)
	}

	s.current = user
	logger.Info("User logged in", slog.String("userId", user.ID))

	return models.NewAuthState(cloneUser(user)), nil
}

func (s *IdentityStore) Signup(ctx context.Context, req *models.SignupRequest) (state *models.AuthState, err error) {

	ctx, finish := observe(ctx, "identity.signup")
	defer func() { finish(err) }()

	logger := middleware.LoggerFromContext(ctx)

	if req == nil || s.validate.Struct(req) != nil || !hasVisibleText(req.Name) {
		return nil, errors.ValidationError("All fields are required")
	}

	if req.Password != req.ConfirmPassword {
		return nil, errors.ValidationError("Passwords do not match")
	}

	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return nil, errors.ValidationError("Password must be at least 6 characters")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users(ctx)
	if err != nil {
		return nil, err
	}

	if findUserByEmail(users, req.Email) != nil {
		return nil, errors.ConflictError("User with this email already exists")
	}

	user := &models.User{
		ID:        s.opts.NewID(),
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: s.opts.Now(),
	}

	if s.opts.VerifyPasswords {
		if err := s.savePassword(ctx, req.Email, req.Password); err != nil {
			return nil, err
		}
	}

	if err := storage.SetJSON(ctx, s.store, storage.UsersKey, append(users, *user)); err != nil {
		return nil, errors.StorageError("Failed to save users").WithError(err)
	}

	if err := storage.SetJSON(ctx, s.store, storage.CurrentUserKey, user); err != nil {
		return nil, errors.StorageError("Failed to save current user").WithError(err)
	}

	s.current = user
	logger.Info("User signed up", slog.String("userId", user.ID))

	return models.NewAuthState(cloneUser(user)), nil
}

// Logout always clears the in-memory user. A failed delete is reported
// so the caller knows the user will be restored on the next start.
func (s *IdentityStore) Logout(ctx context.Context) (err error) {

	ctx, finish := observe(ctx, "identity.logout")
	defer func() { finish(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	if err := s.store.Delete(ctx, storage.CurrentUserKey); err != nil {
		return errors.StorageError("Failed to clear current user").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Info("User logged out")

	return nil
}

func (s *IdentityStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneUser(s.current)
}

func (s *IdentityStore) State() *models.AuthState {
	return models.NewAuthState(s.CurrentUser())
}

func (s *IdentityStore) checkRateLimit(ctx context.Context, email string) error {

	if s.opts.LoginLimiter == nil {
		return nil
	}

	decision, err := s.opts.LoginLimiter.Allow(ctx, email)
	if err != nil {
		return errors.InternalError("Failed to check login attempts").WithError(err)
	}

	if !decision.Allowed {
		retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
		return errors.TooManyRequestsError("Too many login attempts, please try again later").
			WithDetail(fmt.Sprintf("retry after %ds", retryAfter))
	}

	return nil
}

func (s *IdentityStore) users(ctx context.Context) ([]models.User, error) {

	var users []models.User

	if _, err := storage.GetJSON(ctx, s.store, storage.UsersKey, &users); err != nil {
		return nil, errors.StorageError("Failed to read users").WithError(err)
	}

	return users, nil
}

func (s *IdentityStore) credentials(ctx context.Context) (map[string]string, error) {

	hashes := map[string]string{}

	if _, err := storage.GetJSON(ctx, s.store, storage.CredentialsKey, &hashes); err != nil {
		return nil, errors.StorageError("Failed to read credentials").WithError(err)
	}

	if hashes == nil {
		hashes = map[string]string{}
	}

	return hashes, nil
}

func (s *IdentityStore) savePassword(ctx context.Context, email, password string) error {

	hashes, err := s.credentials(ctx)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.InternalError("Failed to secure password").WithError(err)
	}

	hashes[email] = string(hashed)

	if err := storage.SetJSON(ctx, s.store, storage.CredentialsKey, hashes); err != nil {
		return errors.StorageError("Failed to save credentials").WithError(err)
	}

	return nil
}

func (s *IdentityStore) checkPassword(ctx context.Context, email, password string) error {

	hashes, err := s.credentials(ctx)
	if err != nil {
		return err
	}

	hashed, ok := hashes[email]
	if !ok || bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) != nil {
		return errors.UnauthorizedError("Invalid email or password")
	}

	return nil
}

// e-mails compare exactly, case included
func findUserByEmail(users []models.User, email string) *models.User {
	for i := range users {
		if users[i].Email == email {
			return &users[i]
		}
	}

	return nil
}

func cloneUser(user *models.User) *models.User {
	if user == nil {
		return nil
	}

	c := *user

	return &c
}
