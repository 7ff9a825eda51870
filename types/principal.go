package types

// Role classifies a principal's access tier.
type Role string

const (
	// RoleInsider is the administrative role with full read/write
	// access to every managed resource.
	RoleInsider Role = "insider"

	// RoleOutsider is the self-declared visitor role. Outsiders get
	// the unauthenticated read tier plus blog commenting.
	RoleOutsider Role = "outsider"
)

// Principal is the identity carried by a session credential. It is
// never persisted server-side; the cookie is the only copy.
type Principal struct {
	// ID identifies the principal. The insider has a fixed ID;
	// outsider IDs are synthesized at sign-in time.
	ID string `json:"id"`

	// Role is either "insider" or "outsider".
	Role Role `json:"role"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// Email is the address the principal signed in with.
	Email string `json:"email"`
}
