package users

import "testing"

func TestStateFor(t *testing.T) {
	if got := StateFor(Session{}); got != StateUnauthenticated {
		t.Fatalf("empty session should be unauthenticated, got %s", got)
	}
	if got := StateFor(Session{LoggedIn: true, Username: "a", Role: RoleUser}); got != StateUser {
		t.Fatalf("expected user state, got %s", got)
	}
	if got := StateFor(Session{LoggedIn: true, Username: "a", Role: RoleAdmin}); got != StateAdmin {
		t.Fatalf("expected admin state, got %s", got)
	}
	// LoggedIn sin username no alcanza
	if got := StateFor(Session{LoggedIn: true, Username: "  "}); got != StateUnauthenticated {
		t.Fatalf("blank username should be unauthenticated, got %s", got)
	}
}

func TestState_Views(t *testing.T) {
	cases := []struct {
		state State
		can   []View
		cant  []View
	}{
		{StateUnauthenticated, []View{ViewLogin, ViewSignup}, []View{ViewDashboard, ViewAdmin}},
		{StateUser, []View{ViewDashboard}, []View{ViewAdmin, ViewLogin}},
		{StateAdmin, []View{ViewDashboard, ViewAdmin}, []View{ViewLogin, ViewSignup}},
	}

	for _, c := range cases {
		for _, v := range c.can {
			if !c.state.CanView(v) {
				t.Fatalf("%s should reach %s", c.state, v)
			}
		}
		for _, v := range c.cant {
			if c.state.CanView(v) {
				t.Fatalf("%s should not reach %s", c.state, v)
			}
		}
	}
}

func TestRoleFrom_UnknownDegradesToUser(t *testing.T) {
	if RoleFrom("admin") != RoleAdmin {
		t.Fatalf("admin should map to RoleAdmin")
	}
	for _, s := range []string{"", "root", "superuser", "ADMIN"} {
		if RoleFrom(s) != RoleUser {
			t.Fatalf("role %q should degrade to user", s)
		}
	}
}
