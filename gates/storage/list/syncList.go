package list

import (
	"linkedList/gates/storage"
	"sync"
)

var _ storage.Sequence[int] = (*SyncList[int])(nil)

// SyncList оборачивает List и защищает каждый вызов мьютексом.
// Сам List остается несинхронизированным, вся блокировка находится здесь.
type SyncList[T any] struct {
	list *List[T]
	mu   sync.RWMutex
}

// NewSyncList оборачивает переданный список. Если l равен nil, создается пустой список.
// После оборачивания к l нельзя обращаться напрямую.
func NewSyncList[T any](l *List[T]) *SyncList[T] {
	if l == nil {
		l = &List[T]{}
	}
	return &SyncList[T]{list: l}
}

// Size возвращает количество элементов в списке
func (sl *SyncList[T]) Size() int {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	return sl.list.Size()
}

// Empty сообщает, пуст ли список
func (sl *SyncList[T]) Empty() bool {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	return sl.list.Empty()
}

// Add добавляет элемент в конец списка
func (sl *SyncList[T]) Add(value T) {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.list.Add(value)
}

// Get возвращает значение элемента с данным индексом
func (sl *SyncList[T]) Get(index int) (T, error) {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	return sl.list.Get(index)
}

// IndexOf возвращает индекс первого элемента с данным значением или storage.NotFound
func (sl *SyncList[T]) IndexOf(value T) int {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	return sl.list.IndexOf(value)
}

// Insert вставляет элемент по индексу
func (sl *SyncList[T]) Insert(index int, value T) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	return sl.list.Insert(index, value)
}

// Remove удаляет элемент по индексу
func (sl *SyncList[T]) Remove(index int) error {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	return sl.list.Remove(index)
}

// Clear удаляет все элементы из списка
func (sl *SyncList[T]) Clear() {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	sl.list.Clear()
}

// Values возвращает копию значений, которую можно безопасно использовать после разблокировки sl.mu
func (sl *SyncList[T]) Values() []interface{} {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	return sl.list.Values()
}

func (sl *SyncList[T]) String() string {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	return sl.list.String()
}
