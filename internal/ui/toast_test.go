package ui

import (
	"strings"
	"testing"
	"time"
)

func TestToastLifecycle(t *testing.T) {
	now := time.Now()
	toast := NewToast()

	if toast.Active(now) {
		t.Error("zero toast should be inactive")
	}

	toast.Show("View mode: technical", ToastModeDuration, now)
	if !toast.Active(now) {
		t.Error("toast should be active immediately after Show")
	}
	if !toast.Active(now.Add(2 * time.Second)) {
		t.Error("toast should still be active before ttl elapses")
	}
	if toast.Active(now.Add(ToastModeDuration)) {
		t.Error("toast should expire at ttl")
	}
}

func TestToastShowRestartsClock(t *testing.T) {
	now := time.Now()
	toast := NewToast()

	toast.Show("saved", ToastActionDuration, now)
	later := now.Add(1500 * time.Millisecond)
	toast.Show("saved", ToastActionDuration, later)

	if !toast.Active(later.Add(1500 * time.Millisecond)) {
		t.Error("re-showing the same message should restart the clock")
	}
}

func TestToastClear(t *testing.T) {
	now := time.Now()
	toast := NewToast()
	toast.Show("something", ToastModeDuration, now)
	toast.Clear()
	if toast.Active(now) {
		t.Error("cleared toast should be inactive")
	}
	if toast.View(now) != "" {
		t.Error("cleared toast should render empty")
	}
}

func TestToastViewFades(t *testing.T) {
	now := time.Now()
	toast := NewToast()
	toast.Show("mode changed", ToastModeDuration, now)

	fresh := toast.View(now)
	if !strings.Contains(fresh, "mode changed") {
		t.Error("active toast should render its message")
	}

	faded := toast.View(now.Add(ToastModeDuration - 500*time.Millisecond))
	if faded == "" {
		t.Error("toast in fade window should still render")
	}
	if faded == fresh {
		t.Error("fade window should use a different style")
	}
}
