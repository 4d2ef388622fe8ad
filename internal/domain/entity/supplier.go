package entity

// Supplier representa un proveedor al que se le compran productos.
type Supplier struct {
	ID   string
	Name string
}
