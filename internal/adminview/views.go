package adminview

// Entity names used as registry keys.
const (
	EntityAccount    = "account"
	EntitySupervisor = "supervisor"
)

// The two directory entities register their management-surface configuration
// at init. created_at is displayed but never editable; the account list is
// filterable by the three classification flags, while the supervisor roster
// gets a free-text search box over all of its columns.
func init() {
	Register(ModelView{
		Entity:         EntityAccount,
		ListDisplay:    []string{"username", "email", "role", "is_staff", "created_at"},
		ListFilter:     []string{"role", "is_staff", "is_active"},
		ReadOnlyFields: []string{"created_at"},
	})

	Register(ModelView{
		Entity:       EntitySupervisor,
		ListDisplay:  []string{"name", "email", "department"},
		SearchFields: []string{"name", "email", "department"},
	})
}
