package auth

import (
	"context"
	"errors"

	"github.com/littleoaks/preschool-api/internal/users"
)

var (
	// ErrRoleMismatch means the declared role does not match any stored record.
	ErrRoleMismatch = errors.New("invalid role selected for this account")
	// ErrAccountBlocked means a record exists but has been deactivated.
	ErrAccountBlocked = errors.New("account is blocked")
	// ErrNotRegistered means the flow requires an existing record and none exists.
	ErrNotRegistered = errors.New("phone number not registered")
)

// Identity is the resolved login identity a token gets minted from.
type Identity struct {
	Role   string
	UserID string
	Name   string
	Active bool
}

// Resolver determines the effective role for a phone number. The admin
// allow-list always wins over stored records.
type Resolver struct {
	allowlist map[string]struct{}
	users     users.Repository
}

// NewResolver builds a Resolver. Allow-list entries are matched on the
// canonical local-number form so "+911234567890" and "1234567890" agree.
func NewResolver(adminPhones []string, repo users.Repository) *Resolver {
	allow := make(map[string]struct{}, len(adminPhones))
	for _, p := range adminPhones {
		allow[NormalizePhone(p)] = struct{}{}
	}
	return &Resolver{allowlist: allow, users: repo}
}

// IsAllowListed reports whether phone belongs to the static admin allow-list.
func (r *Resolver) IsAllowListed(phone string) bool {
	_, ok := r.allowlist[NormalizePhone(phone)]
	return ok
}

// PrecheckRole validates a client-declared role before an OTP is issued.
// An empty declaredRole skips the check; the role is resolved at verify time.
func (r *Resolver) PrecheckRole(ctx context.Context, phone, declaredRole string) error {
	if declaredRole == "" {
		return nil
	}
	if declaredRole == users.RoleAdmin {
		if r.IsAllowListed(phone) {
			return nil
		}
		return ErrRoleMismatch
	}
	if !users.ValidRole(declaredRole) {
		return ErrRoleMismatch
	}

	u, err := r.users.FindByPhone(ctx, phone)
	if errors.Is(err, users.ErrNotFound) {
		return ErrRoleMismatch
	}
	if err != nil {
		return err
	}
	if u.Role != declaredRole {
		return ErrRoleMismatch
	}
	if !u.Active {
		return ErrAccountBlocked
	}
	return nil
}

// ResolveFinalRole determines the identity a verified phone logs in as.
// Allow-listed phones are always admin; a stored row contributes id and name
// only. Unknown phones fall back to the parent role pending onboarding.
func (r *Resolver) ResolveFinalRole(ctx context.Context, phone string) (Identity, error) {
	if r.IsAllowListed(phone) {
		id := Identity{Role: users.RoleAdmin, Active: true}
		u, err := r.users.FindByPhone(ctx, phone)
		if err == nil {
			id.UserID = u.ID
			id.Name = u.Name
		} else if !errors.Is(err, users.ErrNotFound) {
			return Identity{}, err
		}
		return id, nil
	}

	u, err := r.users.FindByPhone(ctx, phone)
	if errors.Is(err, users.ErrNotFound) {
		return Identity{Role: users.RoleParent, Active: true}, nil
	}
	if err != nil {
		return Identity{}, err
	}
	return Identity{Role: u.Role, UserID: u.ID, Name: u.Name, Active: u.Active}, nil
}

// ResolveFederated is the stricter variant used by the federated login path:
// allow-listed phones become admin without consulting the store, everyone
// else must have an existing active record.
func (r *Resolver) ResolveFederated(ctx context.Context, phone string) (Identity, error) {
	if r.IsAllowListed(phone) {
		return Identity{Role: users.RoleAdmin, Active: true}, nil
	}

	u, err := r.users.FindByPhone(ctx, phone)
	if errors.Is(err, users.ErrNotFound) {
		return Identity{}, ErrNotRegistered
	}
	if err != nil {
		return Identity{}, err
	}
	if !u.Active {
		return Identity{}, ErrAccountBlocked
	}
	return Identity{Role: u.Role, UserID: u.ID, Name: u.Name, Active: true}, nil
}
