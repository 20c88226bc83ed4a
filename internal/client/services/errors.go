package services

import "errors"

// ErrLogoutIncomplete is returned by Logout when local session data could
// not be removed. The controller is already unauthenticated when it is
// returned.
var ErrLogoutIncomplete = errors.New("logout incomplete: stored session could not be cleared")
