package domain

// Supervisor is a roster entry in the supervisor directory. It is not linked
// to any Account record: a supervisor person and an account with
// Role=RoleSupervisor are independent records.
type Supervisor struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}
