package storage

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/containers"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrMismatchType    = errors.New("mismatch type")
)

// NotFound возвращается поиском по значению, если элемент не найден
const NotFound = -1

// Sequence описывает хранилище с доступом к элементам по порядковому номеру (индексу).
// Size, Empty, Clear, Values и String приходят из containers.Container.
type Sequence[T any] interface {
	containers.Container
	Add(value T)
	Get(index int) (T, error)
	IndexOf(value T) int
	Insert(index int, value T) error
	Remove(index int) error
}

// IndexError возвращается при обращении по индексу за пределами хранилища.
// Сравнивается с ErrIndexOutOfRange через errors.Is.
type IndexError struct {
	Op    string // Операция, в которой произошла ошибка
	Index int    // Запрошенный индекс
	Size  int    // Количество элементов на момент вызова
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (size %d)", e.Op, e.Index, e.Size)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
