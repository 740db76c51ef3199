package scenario

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	ResultOK   = "OK"
	ResultFail = "FAIL"
)

// StepResult это итог выполнения одного шага сценария
type StepResult struct {
	Step   int    `yaml:"step"`
	Op     string `yaml:"op"`
	Result string `yaml:"result"`
	Data   string `yaml:"data,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

func (r *StepResult) Update(result string, data string, errMsg string) {
	r.Result = result
	r.Data = data
	r.Error = errMsg
}

func (r StepResult) String() string {
	s := fmt.Sprintf("#%d %s: %s", r.Step, r.Op, r.Result)
	if r.Data != "" {
		s += " " + r.Data
	}
	if r.Error != "" {
		s += " (" + r.Error + ")"
	}
	return s
}

// Report собирает результаты всех шагов и итоговое состояние списка
type Report struct {
	Name    string       `yaml:"name,omitempty"`
	Results []StepResult `yaml:"results"`
	Failed  int          `yaml:"failed"`
	Final   string       `yaml:"final"`
}

// WriteYAML выводит отчет в формате YAML
func (r *Report) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return err
	}
	return encoder.Close()
}
