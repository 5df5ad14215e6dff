package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// It is also returned when a resource exists but belongs to another company,
// so cross-tenant probing cannot distinguish the two cases.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrForbidden indicates the actor is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUnbalanced indicates that an entry's debit and credit totals differ at posting time.
var ErrUnbalanced = errors.New("entry debits and credits do not balance")

// ErrInvalidTransition indicates an illegal entry status change was requested.
var ErrInvalidTransition = errors.New("invalid entry status transition")

// ErrInvalidParent indicates an account parent reference that is cross-company,
// inactive, missing, or would create a cycle in the account tree.
var ErrInvalidParent = errors.New("invalid parent account")

// ErrHasChildren indicates an account cannot be deactivated while active child accounts exist.
var ErrHasChildren = errors.New("account has active child accounts")

// ErrDuplicateName indicates an active sibling account already uses the requested name.
var ErrDuplicateName = errors.New("account name already in use")

// ErrImbalanced is an integrity alarm: a generated balance sheet did not balance.
// Unlike ErrUnbalanced it does not mean the current request is bad; it means the
// double-entry invariant was violated earlier and the stored data is corrupt.
var ErrImbalanced = errors.New("balance sheet does not balance: ledger data is corrupt")
