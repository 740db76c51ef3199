package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Операции, которые можно описать в сценарии
const (
	OpAdd     = "add"
	OpGet     = "get"
	OpIndexOf = "indexOf"
	OpInsert  = "insert"
	OpRemove  = "remove"
	OpSize    = "size"
)

var ErrEmptyScenario = errors.New("scenario has no steps")

// Scenario это последовательность операций над списком
type Scenario struct {
	Name  string `yaml:"name,omitempty"`
	Steps []Step `yaml:"steps"`
}

// Step это одна операция. Expect сравнивается с результатом get/indexOf/size,
// ExpectError означает, что операция должна завершиться ошибкой выхода за пределы списка.
type Step struct {
	Op          string `yaml:"op"`
	Index       *int   `yaml:"index,omitempty"`
	Value       any    `yaml:"value,omitempty"`
	Expect      any    `yaml:"expect,omitempty"`
	ExpectError bool   `yaml:"expectError,omitempty"`
}

// Load читает сценарий из YAML-файла
func Load(fileName string) (*Scenario, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse разбирает и проверяет сценарий. Неизвестные поля считаются ошибкой.
func Parse(data []byte) (*Scenario, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var sc Scenario
	if err := decoder.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScenario
		}
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate проверяет, что у каждого шага известная операция и заданы нужные ей поля
func (sc *Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i, step := range sc.Steps {
		needIndex, needValue := false, false
		switch step.Op {
		case OpAdd, OpIndexOf:
			needValue = true
		case OpGet, OpRemove:
			needIndex = true
		case OpInsert:
			needIndex, needValue = true, true
		case OpSize:
		default:
			return fmt.Errorf("step %d: unknown op '%s'", i+1, step.Op)
		}
		if needIndex && step.Index == nil {
			return fmt.Errorf("step %d: op '%s' requires 'index'", i+1, step.Op)
		}
		if needValue && step.Value == nil {
			return fmt.Errorf("step %d: op '%s' requires 'value'", i+1, step.Op)
		}
	}
	return nil
}

// Default возвращает сценарий: три добавления, вставка в середину, удаление первого элемента
func Default() *Scenario {
	return &Scenario{
		Name: "default",
		Steps: []Step{
			{Op: OpAdd, Value: 10},
			{Op: OpAdd, Value: 20},
			{Op: OpAdd, Value: 30},
			{Op: OpSize, Expect: 3},
			{Op: OpGet, Index: index(0), Expect: 10},
			{Op: OpGet, Index: index(1), Expect: 20},
			{Op: OpGet, Index: index(2), Expect: 30},
			{Op: OpInsert, Index: index(1), Value: 15},
			{Op: OpGet, Index: index(1), Expect: 15},
			{Op: OpGet, Index: index(2), Expect: 20},
			{Op: OpSize, Expect: 4},
			{Op: OpRemove, Index: index(0)},
			{Op: OpGet, Index: index(0), Expect: 15},
			{Op: OpSize, Expect: 3},
			{Op: OpIndexOf, Value: 30, Expect: 2},
			{Op: OpGet, Index: index(3), ExpectError: true},
		},
	}
}

func index(i int) *int {
	return &i
}
