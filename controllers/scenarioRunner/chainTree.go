package scenarioRunner

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/containers"
	asciitree "github.com/thediveo/go-asciitree"
)

// chainNode это узел цепочки для отрисовки: каждый следующий узел списка вложен в предыдущий
type chainNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []chainNode `asciitree:"children"`
}

func convertToTree(values []interface{}) chainNode {
	root := chainNode{Label: "head"}
	if len(values) == 0 {
		root.Props = []string{"empty"}
		return root
	}

	// Собираем цепочку с конца, чтобы каждый узел содержал свой хвост
	var next []chainNode
	for i := len(values) - 1; i >= 0; i-- {
		n := chainNode{Label: fmt.Sprintf("[%d] %v", i, values[i]), Children: next}
		if i == len(values)-1 {
			n.Props = []string{"tail"}
		}
		next = []chainNode{n}
	}
	root.Children = next
	return root
}

// PrintChain выводит содержимое контейнера в виде ASCII-дерева от головы к хвосту
func PrintChain(c containers.Container, output io.Writer) {
	fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(c.Values())))
}
