package scenarioRunner

import (
	"errors"
	"fmt"
	"linkedList/gates/storage"
	"linkedList/models/scenario"
	"linkedList/pkg"
	"reflect"
	"strconv"
)

// ScenarioRunner выполняет шаги сценария над хранилищем и проверяет ожидаемые результаты
type ScenarioRunner struct {
	storage storage.Sequence[any]
	wErr    *pkg.WrappedError
	V       reflect.Type // фиксируется при добавлении первого элемента, сбрасывается при удалении всех элементов
}

// NewScenarioRunner создает исполнителя сценариев. Сообщения о неудачных шагах пишутся через wErr.
func NewScenarioRunner(st storage.Sequence[any], wErr *pkg.WrappedError) *ScenarioRunner {
	if wErr == nil {
		wErr = pkg.NewWrappedError("(sr *ScenarioRunner) Run()")
	}
	return &ScenarioRunner{storage: st, wErr: wErr}
}

// Run выполняет все шаги по порядку. Неудачный шаг не прерывает выполнение сценария.
func (sr *ScenarioRunner) Run(sc *scenario.Scenario) *scenario.Report {
	report := &scenario.Report{Name: sc.Name, Results: make([]scenario.StepResult, 0, len(sc.Steps))}

	for i, step := range sc.Steps {
		result := sr.runStep(step)
		result.Step = i + 1
		result.Op = step.Op
		if result.Result == scenario.ResultFail {
			report.Failed++
			sr.wErr.LogMsg(fmt.Sprintf("scenario '%s': %s", sc.Name, result))
		}
		report.Results = append(report.Results, result)
	}

	report.Final = sr.storage.String()
	return report
}

func (sr *ScenarioRunner) runStep(step scenario.Step) (result scenario.StepResult) {
	var data string
	var err error

	switch step.Op {
	case scenario.OpAdd:
		err = sr.handleAdd(step.Value)
	case scenario.OpGet:
		var value any
		value, err = sr.storage.Get(*step.Index)
		data, err = sr.checkExpect(step, value, err)
	case scenario.OpIndexOf:
		index := sr.storage.IndexOf(step.Value)
		data, err = sr.checkExpect(step, index, nil)
	case scenario.OpInsert:
		err = sr.handleInsert(*step.Index, step.Value)
	case scenario.OpRemove:
		err = sr.handleRemove(*step.Index)
	case scenario.OpSize:
		data, err = sr.checkExpect(step, sr.storage.Size(), nil)
	default:
		err = fmt.Errorf("unknown op '%s'", step.Op)
	}

	// Ожидаемая ошибка выхода за пределы списка считается успехом
	isRangeErr := errors.Is(err, storage.ErrIndexOutOfRange)
	switch {
	case step.ExpectError && isRangeErr:
		result.Update(scenario.ResultOK, data, err.Error())
	case step.ExpectError && err == nil:
		result.Update(scenario.ResultFail, data, "expected index out of range error")
	case err != nil:
		result.Update(scenario.ResultFail, data, err.Error())
	default:
		result.Update(scenario.ResultOK, data, "")
	}
	return result
}

// handleAdd добавляет значение в конец хранилища после согласования типа
func (sr *ScenarioRunner) handleAdd(value any) error {
	if err := sr.checkType(value); err != nil {
		return err
	}
	sr.storage.Add(value)
	return nil
}

// handleInsert вставляет значение по индексу после согласования типа.
// Тип фиксируется только при успешной вставке.
func (sr *ScenarioRunner) handleInsert(index int, value any) error {
	pinned := sr.V
	if err := sr.checkType(value); err != nil {
		return err
	}
	if err := sr.storage.Insert(index, value); err != nil {
		sr.V = pinned
		return err
	}
	return nil
}

// handleRemove удаляет элемент по индексу и сбрасывает тип, если хранилище опустело
func (sr *ScenarioRunner) handleRemove(index int) error {
	if err := sr.storage.Remove(index); err != nil {
		return err
	}
	if sr.storage.Empty() {
		sr.V = nil
	}
	return nil
}

// checkType согласует тип значения с типом уже добавленных элементов.
// Несравнимые значения (списки, словари) не принимаются, так как поиск по значению использует ==.
func (sr *ScenarioRunner) checkType(value any) error {
	valueType := reflect.TypeOf(value)
	if valueType == nil || !valueType.Comparable() {
		return fmt.Errorf("%w: %v is not comparable", storage.ErrMismatchType, valueType)
	}
	if sr.V == nil {
		sr.V = valueType
		return nil
	}
	if sr.V != valueType {
		return fmt.Errorf("%w: have %v, got %v", storage.ErrMismatchType, sr.V, valueType)
	}
	return nil
}

// checkExpect сравнивает полученное значение с ожидаемым, если ожидание задано
func (sr *ScenarioRunner) checkExpect(step scenario.Step, got any, err error) (string, error) {
	if err != nil {
		return "", err
	}
	data := format(got)
	if step.Expect != nil && !reflect.DeepEqual(step.Expect, got) {
		return data, fmt.Errorf("expected %s", format(step.Expect))
	}
	return data, nil
}

func format(value any) string {
	if s, ok := value.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprint(value)
}
