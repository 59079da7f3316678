package builder

func New[T any]() *Builder[T] {
	return &Builder[T]{
		Obj: new(T),
	}
}

// Builder applies setters to a fresh T. The first failing MaybeUse
// setter stops the remaining ones.
type Builder[T any] struct {
	Obj *T
	Err error
}

func (b *Builder[T]) Use(setter func(b *T)) *Builder[T] {
	setter(b.Obj)
	return b
}

func (b *Builder[T]) UseAll(setters ...func(b *T)) *Builder[T] {
	for _, s := range setters {
		b.Use(s)
	}
	return b
}

func (b *Builder[T]) MaybeUse(setter func(b *T) error) *Builder[T] {
	if b.Err == nil {
		b.Err = setter(b.Obj)
	}
	return b
}

func (b *Builder[T]) Get() (*T, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	return b.Obj, nil
}
