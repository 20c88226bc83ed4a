package services

import "fmt"

type Status int

const (
	StatusLoading Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// AuthState is an immutable snapshot of the session as the UI sees it.
// User fields are only set when Status is StatusAuthenticated.
type AuthState struct {
	status   Status
	userID   string
	userName string
}

func Loading() AuthState         { return AuthState{status: StatusLoading} }
func Unauthenticated() AuthState { return AuthState{status: StatusUnauthenticated} }

func Authenticated(userID, userName string) AuthState {
	return AuthState{status: StatusAuthenticated, userID: userID, userName: userName}
}

func (s AuthState) Status() Status        { return s.status }
func (s AuthState) IsLoading() bool       { return s.status == StatusLoading }
func (s AuthState) IsAuthenticated() bool { return s.status == StatusAuthenticated }
func (s AuthState) UserID() string        { return s.userID }
func (s AuthState) UserName() string      { return s.userName }

func (s AuthState) String() string {
	if s.IsAuthenticated() {
		return fmt.Sprintf("%s(%s, %s)", s.status, s.userID, s.userName)
	}
	return s.status.String()
}
