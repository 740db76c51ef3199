package pkg

import (
	"fmt"
	"log"
	"os"
	"time"
)

const (
	DefaultLogFileName = "log.txt"
	errorTag           = "[ERROR]"
	messageTag         = "(msg)"
)

// WrappedError оборачивает ошибку вместе с именем функции и комментарием и умеет записывать ее в логи.
// Реализует интерфейс error, исходная ошибка доступна через errors.Is/errors.As.
// Также выводит обычные сообщения (не ошибки) в консоль и в файл логов.
type WrappedError struct {
	functionName string   // Где произошла ошибка
	comment      string   // Что именно вызвало ошибку
	err          error    // Исходная ошибка
	timestamp    string   // Время последнего вызова Specify() с ненулевой ошибкой
	logFile      *os.File // Файл логов, nil если логи пишутся только в консоль
}

// NewWrappedError создает WrappedError без ошибки, пишущий только в консоль
func NewWrappedError(funcName string) *WrappedError {
	return &WrappedError{functionName: funcName, timestamp: "[]"}
}

// NewWrappedErrorWithFile аналогична NewWrappedError, но дополнительно дописывает логи в файл fileName.
// Если файл не удалось открыть, возвращает nil и ошибку.
func NewWrappedErrorWithFile(funcName, fileName string) (*WrappedError, error) {
	file, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	wErr := NewWrappedError(funcName)
	wErr.logFile = file
	return wErr, nil
}

// Specify запоминает ошибку и комментарий, если err не nil. Иначе ничего не меняет.
func (e *WrappedError) Specify(err error, comment string) *WrappedError {
	if err != nil {
		e.err = err
		e.comment = comment
		e.timestamp = now()
	}
	return e
}

// Failed сообщает, была ли зафиксирована ошибка
func (e *WrappedError) Failed() bool {
	return e.err != nil
}

func (e *WrappedError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("'%s' in function '%s' invoked '%s'", e.comment, e.functionName, e.err.Error())
}

func (e *WrappedError) Unwrap() error {
	return e.err
}

// LogError выводит ошибку в консоль и в файл логов. Если ошибки нет, ничего не делает.
func (e *WrappedError) LogError() {
	if e.err == nil {
		return
	}
	e.write(e.timestamp, errorTag, e.Error())
}

// LogMsg выводит сообщение в консоль и в файл логов
func (e *WrappedError) LogMsg(msg string) {
	e.write(now(), messageTag, fmt.Sprintf("'%s' from function '%s'", msg, e.functionName))
}

// Close закрывает файл логов, если он был открыт
func (e *WrappedError) Close() error {
	if e.logFile == nil {
		return nil
	}
	err := e.logFile.Close()
	e.logFile = nil
	return err
}

func (e *WrappedError) write(timestamp, tag, text string) {
	log.Println(timestamp, tag, text)
	if e.logFile == nil {
		return
	}
	if _, err := fmt.Fprintln(e.logFile, timestamp, tag, text); err != nil {
		log.Println("Failed to write log into opened file:", err)
	}
}

func now() string {
	return fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
}
