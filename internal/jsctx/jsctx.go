// Package jsctx executa o script inline do lab js-context num runtime goja
// isolado para saber se o valor refletido escapou da string literal.
package jsctx

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dop251/goja"
)

// Timeout limita uma avaliação. Loops infinitos são interrompidos.
const Timeout = 200 * time.Millisecond

const scriptFormat = `var username = "%s";
var status = "active";
function showUserInfo() {
	return "User: " + username + " (" + status + ")";
}
`

// Script monta o script exatamente como a página do lab o embute.
func Script(username string) string {
	return fmt.Sprintf(scriptFormat, username)
}

type Verdict struct {
	Executed bool     `json:"executed"`
	Calls    []string `json:"calls,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Evaluate roda Script(username) com alert/confirm/prompt interceptados.
// O payload conta como executado se algum diálogo foi chamado.
func Evaluate(username string) Verdict {
	vm := goja.New()
	var v Verdict

	trap := func(name string) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			arg := ""
			if len(call.Arguments) > 0 {
				arg = call.Arguments[0].String()
			}
			v.Calls = append(v.Calls, fmt.Sprintf("%s(%s)", name, arg))
			return goja.Undefined()
		}
	}
	for _, name := range []string{"alert", "confirm", "prompt"} {
		vm.Set(name, trap(name))
	}
	vm.Set("window", vm.GlobalObject())
	doc := vm.NewObject()
	doc.Set("cookie", "session=lab")
	vm.Set("document", doc)

	timer := time.AfterFunc(Timeout, func() {
		vm.Interrupt("timeout")
	})
	defer timer.Stop()

	if _, err := vm.RunString(Script(username)); err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			log.Printf("AVISO [JSContext]: execução interrompida após %s", Timeout)
			v.Error = "timeout"
		} else {
			v.Error = err.Error()
		}
	}
	v.Executed = len(v.Calls) > 0
	return v
}
