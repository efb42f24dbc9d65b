package focus

import "testing"

func TestRing_FirstGroupBecomesActive(t *testing.T) {
	r := NewRing("main")
	dash := NewGroup("dashboard", ModeOrdinal)
	users := NewGroup("users", ModeOrdinal)
	r.AddGroup(dash)
	r.AddGroup(users)

	if r.ActiveGroup() != dash {
		t.Error("first added group should be active")
	}
	if !r.SetActiveGroup("users") {
		t.Fatal("switching to a known group should succeed")
	}
	if r.ActiveGroup() != users {
		t.Error("active group should be users")
	}
}

func TestRing_UnknownGroupNoOp(t *testing.T) {
	r := NewRing("main")
	r.AddGroup(NewGroup("dashboard", ModeOrdinal))

	if r.SetActiveGroup("nope") {
		t.Error("unknown group should return false")
	}
	if r.ActiveGroup().Name != "dashboard" {
		t.Error("active group should be unchanged")
	}
}

func TestRing_ModalPushPop(t *testing.T) {
	r := NewRing("main")
	dash := NewGroup("dashboard", ModeOrdinal)
	users := NewGroup("users", ModeOrdinal)
	r.AddGroup(dash)
	r.AddGroup(users)

	dialog := NewGroup("dialog", ModeOrdinal)
	r.PushModal(dialog)
	if r.ActiveGroup() != dialog {
		t.Fatal("modal should be active after push")
	}
	if r.ModalDepth() != 1 {
		t.Errorf("modal depth = %d, want 1", r.ModalDepth())
	}

	restored := r.PopModal()
	if restored != dash {
		t.Errorf("pop restored %v, want dashboard", restored)
	}
	if r.ActiveGroup() != dash {
		t.Error("dashboard should be active after pop")
	}
}

func TestRing_NestedModals(t *testing.T) {
	r := NewRing("main")
	dash := NewGroup("dashboard", ModeOrdinal)
	r.AddGroup(dash)

	first := NewGroup("first", ModeOrdinal)
	second := NewGroup("second", ModeOrdinal)
	r.PushModal(first)
	r.PushModal(second)

	if r.ActiveGroup() != second {
		t.Error("top of stack should be active")
	}
	if got := r.PopModal(); got != first {
		t.Errorf("pop = %v, want first", got)
	}
	if got := r.PopModal(); got != dash {
		t.Errorf("pop = %v, want dashboard", got)
	}
	if got := r.PopModal(); got != nil {
		t.Errorf("pop on empty stack = %v, want nil", got)
	}
}

func TestRing_PopRestoresFocusHistory(t *testing.T) {
	r := NewRing("main")
	r.Config.RestoreFocus = true
	dash := NewGroup("dashboard", ModeOrdinal)
	x := NewComponent("x")
	dash.Join(x)
	dash.Focus(x)
	dash.current = nil // focus cleared while the modal was up
	r.AddGroup(dash)

	r.PushModal(NewGroup("dialog", ModeOrdinal))
	r.PopModal()

	if dash.Current() != x {
		t.Error("pop should restore focus to x from history")
	}
}
