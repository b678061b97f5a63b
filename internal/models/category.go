package models

// Category groups products for display and filtering.
//
// Key is the identity: the lowercase-normalized form of the name, so
// "Dulces" and "dulces" cannot coexist as distinct categories. Name is the
// display-cased form shown to the operator.
type Category struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}
