package model

import (
	"sync"
)

// wildcard marks every attribute as guarded when it is the sole entry of the
// guarded list.
const wildcard = "*"

// The unguard flag is process-wide: while set, every mass-assignment check
// passes. It exists for scoped bypasses (seeding, trusted internal writes) and
// assumes cooperative use; the mutex only keeps the flag itself consistent.
var guardState struct {
	mu        sync.RWMutex
	unguarded bool
}

// Unguard disables mass-assignment protection process-wide until Reguard is
// called.
func Unguard() {
	guardState.mu.Lock()
	guardState.unguarded = true
	guardState.mu.Unlock()
	logDebug("mass-assignment protection disabled")
}

// Reguard re-enables mass-assignment protection.
func Reguard() {
	guardState.mu.Lock()
	guardState.unguarded = false
	guardState.mu.Unlock()
	logDebug("mass-assignment protection enabled")
}

// IsUnguarded returns true while mass-assignment protection is disabled.
func IsUnguarded() bool {
	guardState.mu.RLock()
	defer guardState.mu.RUnlock()
	return guardState.unguarded
}

// Unguarded runs fn with mass-assignment protection disabled and restores the
// guarded state afterward, on normal return, error return, and panic alike.
// If protection is already disabled, fn runs as-is.
func Unguarded(fn func() error) error {
	if IsUnguarded() {
		return fn()
	}

	Unguard()
	defer Reguard()
	return fn()
}

// IsFillable returns true if the key may be set through mass assignment on
// this model: always while unguarded, if the key is explicitly fillable, never
// if it is guarded, and otherwise only when no fillable list is declared.
func (m *Model) IsFillable(key string) bool {
	if IsUnguarded() {
		return true
	}
	if containsString(m.def.fillable, key) {
		return true
	}
	if m.IsGuarded(key) {
		return false
	}
	return len(m.def.fillable) == 0
}

// IsGuarded returns true if the key is in the guarded list, or if the guarded
// list is the wildcard.
func (m *Model) IsGuarded(key string) bool {
	return containsString(m.def.guarded, key) || m.guardedIsWildcard()
}

// TotallyGuarded returns true if no fillable attributes are declared and the
// guarded list is the wildcard, i.e. every mass assignment must fail.
func (m *Model) TotallyGuarded() bool {
	return len(m.def.fillable) == 0 && m.guardedIsWildcard()
}

func (m *Model) guardedIsWildcard() bool {
	return len(m.def.guarded) == 1 && m.def.guarded[0] == wildcard
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
