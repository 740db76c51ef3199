package list

type node[T any] struct {
	value    T
	nextNode *node[T] // Следующий узел, nil у последнего узла
}
