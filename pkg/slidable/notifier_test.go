package slidable

import "testing"

func TestValueNotifierNotifiesOnUnchangedValue(t *testing.T) {
	n := NewValueNotifier(7)

	notified := 0
	remove := n.AddListener(func(v int) {
		notified++
		if v != 7 {
			t.Errorf("listener got %d, want 7", v)
		}
	})
	defer remove()

	n.Set(7)
	n.Set(7)

	if notified != 2 {
		t.Errorf("notified %d times, want 2", notified)
	}
}

func TestValueNotifierUnsubscribe(t *testing.T) {
	n := NewValueNotifier(0)

	notified := 0
	remove := n.AddListener(func(int) { notified++ })
	n.Set(1)
	remove()
	n.Set(2)

	if notified != 1 {
		t.Errorf("notified %d times, want 1", notified)
	}
	if n.Value() != 2 {
		t.Errorf("Value = %d, want 2", n.Value())
	}
}

func TestValueNotifierUnsubscribeDuringNotification(t *testing.T) {
	n := NewValueNotifier(0)

	var removeSelf func()
	notified := 0
	removeSelf = n.AddListener(func(int) {
		notified++
		removeSelf()
	})
	other := 0
	remove := n.AddListener(func(int) { other++ })
	defer remove()

	n.Set(1)
	n.Set(2)

	if notified != 1 {
		t.Errorf("self-removing listener ran %d times, want 1", notified)
	}
	if other != 2 {
		t.Errorf("remaining listener ran %d times, want 2", other)
	}
}

func TestValueNotifierHasListeners(t *testing.T) {
	n := NewValueNotifier("")

	if n.HasListeners() {
		t.Fatal("HasListeners on a fresh notifier")
	}
	remove := n.AddListener(func(string) {})
	if !n.HasListeners() {
		t.Fatal("HasListeners = false with a listener attached")
	}
	remove()
	if n.HasListeners() {
		t.Error("HasListeners = true after unsubscribe")
	}
}
