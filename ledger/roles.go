package ledger

import (
	"errors"
	"fmt"
	"sort"
)

// RoleMembership is the stored member set of one role, kept sorted.
type RoleMembership struct {
	Role    Role        `json:"role"`
	Members []Principal `json:"members"`
}

func (m *RoleMembership) index(p Principal) (int, bool) {
	i := sort.Search(len(m.Members), func(i int) bool { return m.Members[i] >= p })
	return i, i < len(m.Members) && m.Members[i] == p
}

// Init fixes the administrator. It succeeds once per store.
func (l *Ledger) Init(st State, admin Principal) error {
	if admin == "" {
		return fmt.Errorf("admin principal is empty: %w", ErrInvalidTarget)
	}
	existing, err := l.Admin(st)
	switch {
	case err == nil:
		return fmt.Errorf("administered by %s: %w", existing, ErrAlreadyInitialized)
	case !errors.Is(err, ErrNotInitialized):
		return err
	}
	if err := st.PutState(adminKey, []byte(admin)); err != nil {
		return fmt.Errorf("failed to write admin: %w", err)
	}
	return nil
}

// Admin returns the principal allowed to grant and revoke roles.
func (l *Ledger) Admin(st State) (Principal, error) {
	data, err := st.GetState(adminKey)
	if err != nil {
		return "", fmt.Errorf("failed to read admin: %w", err)
	}
	if len(data) == 0 {
		return "", ErrNotInitialized
	}
	return Principal(data), nil
}

func (l *Ledger) requireAdmin(st State, caller Principal) error {
	admin, err := l.Admin(st)
	if err != nil {
		return err
	}
	if caller != admin {
		return fmt.Errorf("%s is not the ledger admin: %w", caller, ErrUnauthorized)
	}
	return nil
}

func (l *Ledger) membership(st State, role Role) (*RoleMembership, error) {
	m := &RoleMembership{Role: role}
	if _, err := getJSON(st, roleKey(role), m); err != nil {
		return nil, err
	}
	if m.Members == nil {
		m.Members = []Principal{}
	}
	return m, nil
}

// Grant adds principal to role. Granting an existing membership is a no-op.
func (l *Ledger) Grant(st State, caller Principal, role Role, principal Principal) error {
	if err := l.requireAdmin(st, caller); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role %q: %w", role, ErrMalformedInput)
	}
	if principal == "" {
		return fmt.Errorf("cannot grant %s to the null principal: %w", role, ErrInvalidTarget)
	}

	m, err := l.membership(st, role)
	if err != nil {
		return err
	}
	i, found := m.index(principal)
	if found {
		return nil
	}
	m.Members = append(m.Members, "")
	copy(m.Members[i+1:], m.Members[i:])
	m.Members[i] = principal
	if err := putJSON(st, roleKey(role), m); err != nil {
		return err
	}

	return emit(st, EventRoleGranted, RoleChanged{
		Role:      role,
		Principal: principal,
		Admin:     caller,
		Timestamp: st.Timestamp().Unix(),
	})
}

// Revoke removes principal from role. Products it owns and history naming it
// are untouched; it simply can no longer act in that role.
func (l *Ledger) Revoke(st State, caller Principal, role Role, principal Principal) error {
	if err := l.requireAdmin(st, caller); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role %q: %w", role, ErrMalformedInput)
	}

	m, err := l.membership(st, role)
	if err != nil {
		return err
	}
	i, found := m.index(principal)
	if !found {
		return nil
	}
	m.Members = append(m.Members[:i], m.Members[i+1:]...)
	if err := putJSON(st, roleKey(role), m); err != nil {
		return err
	}

	return emit(st, EventRoleRevoked, RoleChanged{
		Role:      role,
		Principal: principal,
		Admin:     caller,
		Timestamp: st.Timestamp().Unix(),
	})
}

func (l *Ledger) HasRole(st State, role Role, principal Principal) (bool, error) {
	if !role.Valid() || principal == "" {
		return false, nil
	}
	m, err := l.membership(st, role)
	if err != nil {
		return false, err
	}
	_, found := m.index(principal)
	return found, nil
}

// Members lists the principals holding role in ascending order.
func (l *Ledger) Members(st State, role Role) ([]Principal, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, ErrMalformedInput)
	}
	m, err := l.membership(st, role)
	if err != nil {
		return nil, err
	}
	return m.Members, nil
}

// RolesOf lists the roles principal holds. An empty result means end user.
func (l *Ledger) RolesOf(st State, principal Principal) ([]Role, error) {
	roles := []Role{}
	for _, role := range Roles {
		ok, err := l.HasRole(st, role, principal)
		if err != nil {
			return nil, err
		}
		if ok {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

func (l *Ledger) requireRole(st State, role Role, caller Principal) error {
	ok, err := l.HasRole(st, role, caller)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s does not hold role %s: %w", caller, role, ErrUnauthorized)
	}
	return nil
}
