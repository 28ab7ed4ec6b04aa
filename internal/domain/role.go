package domain

// Role determines which actions an identity may perform.
// Roles form a strict hierarchy: Customer < Manager < Admin.
type Role int

const (
	RoleCustomer Role = iota + 1
	RoleManager
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleManager:
		return "manager"
	case RoleAdmin:
		return "admin"
	default:
		return "unknown"
	}
}

// AtLeast reports whether r grants at least the privileges of min.
func (r Role) AtLeast(min Role) bool {
	return r >= min
}

// Action is an operation subject to the permission table.
type Action int

const (
	ActionBrowseProducts Action = iota
	ActionModifyCart
	ActionCheckout
	ActionUpdateProduct
	ActionCreateProduct
)

func (a Action) String() string {
	switch a {
	case ActionBrowseProducts:
		return "browse products"
	case ActionModifyCart:
		return "modify cart"
	case ActionCheckout:
		return "checkout"
	case ActionUpdateProduct:
		return "update product"
	case ActionCreateProduct:
		return "create product"
	default:
		return "unknown"
	}
}
