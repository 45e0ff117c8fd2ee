package filter

// Campos lógicos filtrables. Los adaptadores de persistencia los traducen a columnas.
const (
	UserRole = "role"

	ClientFullName = "full_name"
	ClientTaxID    = "tax_id"
	ClientEmail    = "email"

	ProductValue       = "value"
	ProductDescription = "description"
	ProductCategory    = "category"
	ProductStock       = "initial_stock"

	OrderCreatedAt      = "created_at"
	OrderProductSection = "product_section"
	OrderID             = "id"
	OrderState          = "state"
	OrderClientID       = "client_id"
)

// Orden declarado de aplicación por entidad.
var (
	UserFields    = []string{UserRole}
	ClientFields  = []string{ClientFullName, ClientTaxID, ClientEmail}
	ProductFields = []string{ProductValue, ProductDescription, ProductCategory, ProductStock}
	OrderFields   = []string{OrderCreatedAt, OrderProductSection, OrderID, OrderState, OrderClientID}
)
