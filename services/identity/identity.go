// Package identity stores user accounts: registration, credentials, profile and the
// simulated subscription tier.
package identity

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursehub/errs"
	"coursehub/models"
)

var (
	ErrUsernameTaken      = errs.New(errs.KindConflict, "identity", "Username already exists")
	ErrInvalidCredentials = errs.New(errs.KindUnauthenticated, "identity", "Invalid username or password")
	ErrWrongPassword      = errs.New(errs.KindInvalidArgument, "identity", "Current password is incorrect")
	ErrInvalidTier        = errs.New(errs.KindInvalidArgument, "identity", "Invalid subscription tier")
	ErrUserNotFound       = errs.New(errs.KindNotFound, "identity", "User not found")
)

type Store struct {
	db        *gorm.DB
	saltRound int
}

// New returns a Store hashing passwords at the given bcrypt cost.
func New(db *gorm.DB, saltRound int) *Store {
	if saltRound < bcrypt.MinCost {
		saltRound = bcrypt.DefaultCost
	}
	return &Store{db: db, saltRound: saltRound}
}

// Register creates a free-tier user. Usernames are unique.
func (s *Store) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	taken, err := s.usernameTaken(ctx, username, 0)
	if err != nil {
		return nil, errs.Wrap(errs.KindInternal, "identity.Register", "failed to check username", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.saltRound)
	if err != nil {
		return nil, errs.Wrap(errs.KindInternal, "identity.Register", "failed to hash password", err)
	}

	user := models.User{
		Username:         username,
		Email:            strings.TrimSpace(email),
		Password:         string(hashed),
		SubscriptionTier: models.TierFree,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, errs.Wrap(errs.KindInternal, "identity.Register", "failed to create user", err)
	}

	zap.L().Info("user registered", zap.Uint("userId", user.ID), zap.String("username", user.Username))
	return &user, nil
}

// Authenticate checks a username/password pair.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(errs.KindInternal, "identity.Authenticate", "failed to load user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *Store) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(errs.KindInternal, "identity.ByID", "failed to load user", err)
	}
	return &user, nil
}

// UpdateProfile changes username and/or email. Nil fields are left alone.
func (s *Store) UpdateProfile(ctx context.Context, id uint, username, email *string) (*models.User, error) {
	updates := map[string]interface{}{}
	if username != nil {
		name := strings.TrimSpace(*username)
		taken, err := s.usernameTaken(ctx, name, id)
		if err != nil {
			return nil, errs.Wrap(errs.KindInternal, "identity.UpdateProfile", "failed to check username", err)
		}
		if taken {
			return nil, ErrUsernameTaken
		}
		updates["username"] = name
	}
	if email != nil {
		updates["email"] = strings.TrimSpace(*email)
	}
	return s.update(ctx, "identity.UpdateProfile", id, updates)
}

// ChangePassword replaces the password after checking the current one.
func (s *Store) ChangePassword(ctx context.Context, id uint, current, next string) error {
	user, err := s.ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), s.saltRound)
	if err != nil {
		return errs.Wrap(errs.KindInternal, "identity.ChangePassword", "failed to hash password", err)
	}
	_, err = s.update(ctx, "identity.ChangePassword", id, map[string]interface{}{"password": string(hashed)})
	return err
}

// UpdateSubscription stores a tier and the unlimited-access flag as given. No payment
// is involved; the tier system is simulated.
func (s *Store) UpdateSubscription(ctx context.Context, id uint, tier string, unlimited bool) (*models.User, error) {
	if !models.IsValidTier(tier) {
		return nil, ErrInvalidTier
	}
	return s.update(ctx, "identity.UpdateSubscription", id, map[string]interface{}{
		"subscription_tier":    tier,
		"has_unlimited_access": unlimited,
	})
}

// Upgrade moves the user to tier; only the unlimited tier grants unlimited access.
func (s *Store) Upgrade(ctx context.Context, id uint, tier string) (*models.User, error) {
	return s.UpdateSubscription(ctx, id, tier, tier == models.TierUnlimited)
}

func (s *Store) update(ctx context.Context, op string, id uint, updates map[string]interface{}) (*models.User, error) {
	if len(updates) > 0 {
		res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, ErrUsernameTaken
			}
			return nil, errs.Wrap(errs.KindInternal, op, "failed to update user", res.Error)
		}
	}
	return s.ByID(ctx, id)
}

func (s *Store) usernameTaken(ctx context.Context, username string, exceptID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? AND id <> ?", username, exceptID).
		Count(&count).Error
	return count > 0, err
}
