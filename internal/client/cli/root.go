package cli

import "fmt"

func (a *App) getStatus() string {
	s := ""
	if st := a.sessions.State(); st.IsAuthenticated() {
		s = st.UserName() + " "
	}
	if m := a.Mode(); m != "" {
		s = s + string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
