package focus

import "testing"

func newTestManager() (*Manager, *Group) {
	m := NewManager()
	r := NewRing("main")
	g := NewGroup("dashboard", ModeOrdinal)
	g.Join(NewComponent("a").WithTabIndex(0))
	g.Join(NewComponent("b").WithTabIndex(1))
	r.AddGroup(g)
	m.AddRing(r)
	return m, g
}

func TestManager_NavigateRoutesToActiveGroup(t *testing.T) {
	m, g := newTestManager()

	if got := m.Navigate(NavNext); got == nil || got.ID != "a" {
		t.Errorf("next = %v, want a", got)
	}
	if got := m.Navigate(NavNext); got == nil || got.ID != "b" {
		t.Errorf("next = %v, want b", got)
	}
	if got := m.Navigate(NavFirst); got == nil || got.ID != "a" {
		t.Errorf("first = %v, want a", got)
	}
	if got := m.Navigate(NavLast); got == nil || got.ID != "b" {
		t.Errorf("last = %v, want b", got)
	}
	if m.Focused() != g.Current() {
		t.Error("Focused should report the active group's current component")
	}
}

func TestManager_DisabledGroupIgnoresNavigation(t *testing.T) {
	m, g := newTestManager()
	g.Enabled = false

	if got := m.Navigate(NavNext); got != nil {
		t.Errorf("navigate on disabled group = %v, want nil", got)
	}
}

func TestManager_NoRingIsNoOp(t *testing.T) {
	m := NewManager()

	if got := m.Navigate(NavNext); got != nil {
		t.Errorf("navigate without rings = %v, want nil", got)
	}
	if m.SetCurrentRing("nope") {
		t.Error("unknown ring should return false")
	}
	if m.PopModal() != nil {
		t.Error("pop without rings should return nil")
	}
}

func TestManager_SwitchToScreenRing(t *testing.T) {
	m, _ := newTestManager()
	other := NewRing("settings")
	sg := NewGroup("settings", ModeOrdinal)
	sg.Join(NewComponent("s1"))
	other.AddGroup(sg)
	m.AddRing(other)
	m.BindScreen("settings-screen", "settings")

	if !m.SwitchToScreenRing("settings-screen") {
		t.Fatal("switch to bound screen should succeed")
	}
	if m.CurrentRing() != other {
		t.Error("current ring should be settings")
	}
	if m.SwitchToScreenRing("missing-screen") {
		t.Error("unknown screen should return false")
	}
	if m.CurrentRing() != other {
		t.Error("failed switch should not change the current ring")
	}
}

func TestManager_ModalRouting(t *testing.T) {
	m, g := newTestManager()
	g.First()

	dialog := NewGroup("dialog", ModeOrdinal)
	ok := NewComponent("ok")
	dialog.Join(ok)
	m.PushModal(dialog)

	if got := m.Navigate(NavNext); got != ok {
		t.Errorf("navigation should route to the modal group, got %v", got)
	}
	m.PopModal()
	if got := m.Navigate(NavNext); got == nil || got.Group() != g {
		t.Error("navigation should return to the dashboard group after pop")
	}
}
