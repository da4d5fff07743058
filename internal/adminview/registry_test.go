package adminview

import (
	"reflect"
	"testing"
)

func TestView_Account(t *testing.T) {
	v, ok := View(EntityAccount)
	if !ok {
		t.Fatalf("account view not registered")
	}

	wantDisplay := []string{"username", "email", "role", "is_staff", "created_at"}
	if !reflect.DeepEqual(v.ListDisplay, wantDisplay) {
		t.Errorf("ListDisplay = %v, want %v", v.ListDisplay, wantDisplay)
	}

	wantFilter := []string{"role", "is_staff", "is_active"}
	if !reflect.DeepEqual(v.ListFilter, wantFilter) {
		t.Errorf("ListFilter = %v, want %v", v.ListFilter, wantFilter)
	}

	if !reflect.DeepEqual(v.ReadOnlyFields, []string{"created_at"}) {
		t.Errorf("ReadOnlyFields = %v, want [created_at]", v.ReadOnlyFields)
	}
}

func TestView_Supervisor(t *testing.T) {
	v, ok := View(EntitySupervisor)
	if !ok {
		t.Fatalf("supervisor view not registered")
	}

	want := []string{"name", "email", "department"}
	if !reflect.DeepEqual(v.ListDisplay, want) {
		t.Errorf("ListDisplay = %v, want %v", v.ListDisplay, want)
	}
	if !reflect.DeepEqual(v.SearchFields, want) {
		t.Errorf("SearchFields = %v, want %v", v.SearchFields, want)
	}
}

func TestView_Unknown(t *testing.T) {
	if _, ok := View("project"); ok {
		t.Fatalf("unexpected view for unregistered entity")
	}
}

func TestView_ReturnsCopies(t *testing.T) {
	v, _ := View(EntityAccount)
	v.ListDisplay[0] = "mutated"

	again, _ := View(EntityAccount)
	if again.ListDisplay[0] != "username" {
		t.Fatalf("registry leaked a mutable slice: %v", again.ListDisplay)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	Register(ModelView{Entity: EntityAccount})
}

func TestAll_Sorted(t *testing.T) {
	all := All()
	if len(all) < 2 {
		t.Fatalf("expected at least 2 registered views, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Entity >= all[i].Entity {
			t.Fatalf("views not sorted: %q before %q", all[i-1].Entity, all[i].Entity)
		}
	}
}
