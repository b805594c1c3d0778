package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RegisterInput struct {
	Email      string
	Password   string
	Name       string
	Phone      string
	Role       string
	InviteCode string
}

// Profile is the caller-facing view of an account.
type Profile struct {
	ID         string
	Email      string
	Name       string
	Phone      string
	Role       entities.Role
	WorkshopID string
}

type Session struct {
	Token   string
	Profile Profile
}

// IAuthUseCase exposes account and session operations.
type IAuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (Session, error)
	Login(ctx context.Context, email, password string) (Session, error)
	// ResolveSession turns a bearer token into the live account behind it.
	ResolveSession(ctx context.Context, token string) (entities.User, error)
	Me(ctx context.Context, caller entities.User) (Profile, error)
}

type AuthUseCase struct {
	users   interfaces.IUserRepository
	invites interfaces.IInviteCodeRepository
	scopes  *ScopeResolver
	hasher  interfaces.IPasswordHasher
	tokens  interfaces.ITokenCodec
	log     logrus.FieldLogger
	now     func() time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users interfaces.IUserRepository,
	invites interfaces.IInviteCodeRepository,
	scopes *ScopeResolver,
	hasher interfaces.IPasswordHasher,
	tokens interfaces.ITokenCodec,
	log logrus.FieldLogger,
) *AuthUseCase {
	return &AuthUseCase{
		users:   users,
		invites: invites,
		scopes:  scopes,
		hasher:  hasher,
		tokens:  tokens,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (u *AuthUseCase) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if email == "" || in.Password == "" || name == "" || phone == "" {
		return Session{}, ErrMissingFields
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if existing.ID != "" {
		return Session{}, ErrEmailAlreadyRegistered
	}

	role, ok := entities.ParseRole(in.Role)
	if !ok {
		return Session{}, ErrInvalidRole
	}

	var invite entities.InviteCode
	if role == entities.RoleManager {
		code := normalizeCode(in.InviteCode)
		if code == "" {
			return Session{}, ErrInviteCodeRequired
		}
		if invite, err = u.invites.GetByCode(ctx, code); err != nil {
			return Session{}, err
		}
		if !invite.IsRedeemable() {
			return Session{}, ErrInvalidInviteCode
		}
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return Session{}, err
	}

	now := u.now()
	user := entities.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Phone:        phone,
		Role:         role,
		CreatedAt:    now,
	}

	profile := Profile{ID: user.ID, Email: user.Email, Name: user.Name, Phone: user.Phone, Role: role}

	switch role {
	case entities.RoleOwner:
		user, err = u.users.Create(ctx, user)
	case entities.RoleManager:
		binding := entities.ManagerBinding{
			ID:          uuid.NewString(),
			UserID:      user.ID,
			WorkshopID:  invite.WorkshopID,
			JoinedAt:    now,
			Active:      true,
			Permissions: map[string]bool{},
		}
		user, err = u.users.CreateManager(ctx, user, invite.Code, binding, now)
		profile.WorkshopID = invite.WorkshopID
	}
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrDuplicateKey):
			return Session{}, ErrEmailAlreadyRegistered
		case errors.Is(err, interfaces.ErrInviteUnavailable):
			return Session{}, ErrInvalidInviteCode
		}
		return Session{}, err
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role.String())
	if err != nil {
		return Session{}, err
	}

	u.log.WithFields(logrus.Fields{"user_id": user.ID, "role": role}).Info("[auth][usecase] account registered")
	return Session{Token: token, Profile: profile}, nil
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return Session{}, err
	}
	if user.ID == "" || !u.hasher.Verify(password, user.PasswordHash) {
		return Session{}, ErrInvalidCredentials
	}

	profile, err := u.Me(ctx, user)
	if err != nil {
		return Session{}, err
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role.String())
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, Profile: profile}, nil
}

func (u *AuthUseCase) ResolveSession(ctx context.Context, token string) (entities.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.User{}, ErrInvalidSession
	}

	claims, err := u.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, interfaces.ErrTokenExpired) {
			return entities.User{}, ErrSessionExpired
		}
		return entities.User{}, ErrInvalidSession
	}

	user, err := u.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrInvalidSession
	}
	return user, nil
}

// Me reports the caller's profile. WorkshopID is empty for an owner
// without a workshop and for a removed manager.
func (u *AuthUseCase) Me(ctx context.Context, caller entities.User) (Profile, error) {
	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		ID:         caller.ID,
		Email:      caller.Email,
		Name:       caller.Name,
		Phone:      caller.Phone,
		Role:       caller.Role,
		WorkshopID: scope.WorkshopID(),
	}, nil
}
