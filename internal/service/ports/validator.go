package ports

// InputValidator checks tagged input structs and reports every failing field.
type InputValidator interface {
	Struct(v any) error
}
