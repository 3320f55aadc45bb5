package handle

import (
	"testing"

	"github.com/bpmn-os/limex/value"
)

func TestHandleAddAndGetIndex(t *testing.T) {
	h := New[value.Float64]()
	idx, err := h.Add("double", func(args []value.Float64) (value.Float64, error) {
		return args[0].Multiply(2), nil
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if idx != 0 {
		t.Errorf("first registered callable should be index 0, got %d", idx)
	}
	got, err := h.GetIndex("double")
	if err != nil || got != idx {
		t.Errorf("GetIndex(double) = %d, %v, want %d, nil", got, err, idx)
	}
	if h.Name(idx) != "double" {
		t.Errorf("Name(%d) = %q, want double", idx, h.Name(idx))
	}
}

func TestHandleDuplicateNameIsAnError(t *testing.T) {
	h := New[value.Float64]()
	h.MustAdd("f", func(args []value.Float64) (value.Float64, error) { return 0, nil })
	if _, err := h.Add("f", func(args []value.Float64) (value.Float64, error) { return 0, nil }); err == nil {
		t.Error("expected an error re-registering an existing name")
	}
}

func TestHandleGetIndexUnknownName(t *testing.T) {
	h := New[value.Float64]()
	if _, err := h.GetIndex("bogus"); err == nil {
		t.Error("expected an error for an unregistered name")
	}
}

func TestHandleCall(t *testing.T) {
	h := New[value.Float64]()
	idx := h.MustAdd("double", func(args []value.Float64) (value.Float64, error) {
		return args[0].Multiply(2), nil
	})
	got, err := h.Call(idx, []value.Float64{21})
	if err != nil || got != 42 {
		t.Errorf("Call(double, 21) = %v, %v, want 42, nil", got, err)
	}
}

func TestHandleLenAndNames(t *testing.T) {
	h := New[value.Float64]()
	h.MustAdd("a", func(args []value.Float64) (value.Float64, error) { return 0, nil })
	h.MustAdd("b", func(args []value.Float64) (value.Float64, error) { return 0, nil })
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
	if names := h.Names(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("Names() = %v, want [a b]", names)
	}
}
