package ecs

// iComponentStorage is an interface for a type-erased component storage keyed by entity index.
type iComponentStorage interface {
	Set(entity uint32, item any) bool
	Delete(entity uint32)
	Get(entity uint32) any
	Has(entity uint32) bool
	Len() int
}
