package dom

type stack[T any] struct {
	v []T
}

func (s *stack[T]) push(t T) {
	s.v = append(s.v, t)
}

func (s *stack[T]) pop() (T, bool) {
	var empty T

	n := len(s.v)
	if n == 0 {
		return empty, false
	}

	t := s.v[n-1]
	s.v = s.v[:n-1]
	return t, true
}

func (s *stack[T]) peek() (T, bool) {
	if len(s.v) > 0 {
		return s.v[len(s.v)-1], true
	}

	var empty T

	return empty, false
}

func (s *stack[T]) len() int {
	return len(s.v)
}
