package list

import (
	"fmt"
	"linkedList/gates/storage"
	"reflect"
	"strings"
)

var _ storage.Sequence[int] = (*List[int])(nil)

// List это односвязный список без внутренней синхронизации.
// Нулевое значение List является пустым списком, готовым к использованию.
type List[T any] struct {
	length    int      // Текущая длина списка (количество узлов)
	firstNode *node[T] // Указатель на первый узел, nil у пустого списка
	lastNode  *node[T] // Указатель на последний узел (для ускорения вставки элемента в конец)
	equal     func(a, b T) bool
}

// NewList создает новый пустой список, элементы которого сравниваются оператором ==
func NewList[T comparable]() *List[T] {
	return &List[T]{equal: func(a, b T) bool { return a == b }}
}

// NewListFunc создает новый пустой список с заданной функцией сравнения элементов.
// Если equal равна nil, используется reflect.DeepEqual.
func NewListFunc[T any](equal func(a, b T) bool) *List[T] {
	return &List[T]{equal: equal}
}

// Size возвращает количество элементов в списке
func (l *List[T]) Size() int {
	return l.length
}

// Empty сообщает, пуст ли список
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Add добавляет элемент в конец списка
func (l *List[T]) Add(value T) {
	newNode := &node[T]{value: value}
	l.length++
	// Случай вставки первого элемента, когда не определены первый и последний узлы
	if l.firstNode == nil {
		l.firstNode = newNode
		l.lastNode = newNode
		return
	}
	l.lastNode.nextNode = newNode
	l.lastNode = newNode
}

// Get возвращает значение элемента с данным индексом.
// Если индекс выходит за пределы списка, возвращает *storage.IndexError.
func (l *List[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= l.length {
		return value, &storage.IndexError{Op: "get", Index: index, Size: l.length}
	}
	return l.nodeAt(index).value, nil
}

// IndexOf возвращает индекс первого по порядку элемента с данным значением.
// Если элемент не найден, возвращает storage.NotFound.
func (l *List[T]) IndexOf(value T) int {
	equal := l.equal
	if equal == nil {
		equal = deepEqual[T]
	}

	index := 0
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		if equal(currentNode.value, value) {
			return index
		}
		index++
	}
	return storage.NotFound
}

// Insert вставляет элемент так, чтобы он получил данный индекс.
// Элементы, начиная с index, сдвигаются на одну позицию к концу.
// Допустим index == Size(), тогда вставка равносильна Add.
func (l *List[T]) Insert(index int, value T) error {
	if index < 0 || index > l.length {
		return &storage.IndexError{Op: "insert", Index: index, Size: l.length}
	}

	// Случай вставки в конец, в том числе в пустой список
	if index == l.length {
		l.Add(value)
		return nil
	}

	// Случай вставки в начало
	if index == 0 {
		l.firstNode = &node[T]{value: value, nextNode: l.firstNode}
		l.length++
		return nil
	}

	prevNode := l.nodeAt(index - 1)
	prevNode.nextNode = &node[T]{value: value, nextNode: prevNode.nextNode}
	l.length++
	return nil
}

// Remove удаляет элемент с данным индексом.
// Если индекс выходит за пределы списка (в том числе для пустого списка), возвращает *storage.IndexError.
func (l *List[T]) Remove(index int) error {
	if index < 0 || index >= l.length {
		return &storage.IndexError{Op: "remove", Index: index, Size: l.length}
	}

	// Случай удаления первого элемента
	if index == 0 {
		removedNode := l.firstNode
		l.firstNode = removedNode.nextNode
		removedNode.nextNode = nil
		// Случай удаления единственного элемента
		if l.firstNode == nil {
			l.lastNode = nil
		}
		l.length--
		return nil
	}

	prevNode := l.nodeAt(index - 1)
	removedNode := prevNode.nextNode
	prevNode.nextNode = removedNode.nextNode
	removedNode.nextNode = nil
	// Случай удаления последнего элемента
	if removedNode == l.lastNode {
		l.lastNode = prevNode
	}
	l.length--
	return nil
}

// Clear удаляет все элементы из списка, разрывая связи между узлами
func (l *List[T]) Clear() {
	for l.firstNode != nil {
		currentNode := l.firstNode
		l.firstNode = currentNode.nextNode
		currentNode.nextNode = nil
	}
	l.lastNode = nil
	l.length = 0
}

// Values возвращает копию значений списка в порядке обхода
func (l *List[T]) Values() []interface{} {
	values := make([]interface{}, 0, l.length)
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		values = append(values, currentNode.value)
	}
	return values
}

// String возвращает представление списка в виде [v0, v1, ...]
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for currentNode := l.firstNode; currentNode != nil; currentNode = currentNode.nextNode {
		if currentNode != l.firstNode {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", currentNode.value)
	}
	sb.WriteString("]")
	return sb.String()
}

// nodeAt возвращает узел, до которого index раз проходим по nextNode от первого.
// Индекс должен быть проверен вызывающей стороной.
func (l *List[T]) nodeAt(index int) *node[T] {
	currentNode := l.firstNode
	for ; index > 0; index-- {
		currentNode = currentNode.nextNode
	}
	return currentNode
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}
