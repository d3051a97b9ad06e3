// Package detector indica se um texto carrega um sinal conhecido de XSS.
//
// É só um indicador para os labs, não um sanitizador nem um filtro:
// nada na aplicação bloqueia ou reescreve a entrada com base na resposta.
package detector

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout limita cada padrão; um timeout conta como "sem match".
const matchTimeout = 250 * time.Millisecond

// Match descreve a primeira entrada do catálogo que disparou.
type Match struct {
	Found   bool   `json:"detected"`
	Group   string `json:"group,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

type group struct {
	name     string
	patterns []*regexp2.Regexp
}

// LiteralGroup é o grupo reportado quando só a lista de tokens literais casou.
const LiteralGroup = "literal-token"

var catalogue = []group{
	{"script-tag", compile(
		`<script[\s\S]*?>`,
		`</script>`,
		`<script[\s\S]*?/>`,
	)},
	{"event-handler", compile(
		`on\w+\s*=`,
		`onabort\s*=`, `onblur\s*=`, `onchange\s*=`, `onclick\s*=`,
		`ondblclick\s*=`, `onerror\s*=`, `onfocus\s*=`, `onkeydown\s*=`,
		`onkeypress\s*=`, `onkeyup\s*=`, `onload\s*=`, `onmousedown\s*=`,
		`onmousemove\s*=`, `onmouseout\s*=`, `onmouseover\s*=`, `onmouseup\s*=`,
		`onreset\s*=`, `onresize\s*=`, `onselect\s*=`, `onsubmit\s*=`,
		`onunload\s*=`, `oncontextmenu\s*=`, `ondrag\s*=`, `ondrop\s*=`,
	)},
	{"url-scheme", compile(
		`javascript\s*:`,
		`vbscript\s*:`,
		`data\s*:\s*text/html`,
		`data\s*:\s*application/javascript`,
	)},
	{"dangerous-tag", compile(
		`<iframe[\s\S]*?>`,
		`<object[\s\S]*?>`,
		`<embed[\s\S]*?>`,
		`<applet[\s\S]*?>`,
		`<meta[\s\S]*?>`,
		`<link[\s\S]*?>`,
		`<style[\s\S]*?>`,
		`<base[\s\S]*?>`,
	)},
	{"element-with-event", compile(
		`<img[\s\S]*?on\w+[\s\S]*?>`,
		`<svg[\s\S]*?on\w+[\s\S]*?>`,
		`<input[\s\S]*?on\w+[\s\S]*?>`,
		`<button[\s\S]*?on\w+[\s\S]*?>`,
		`<textarea[\s\S]*?on\w+[\s\S]*?>`,
		`<select[\s\S]*?on\w+[\s\S]*?>`,
	)},
	{"script-call", compile(
		`alert\s*\(`,
		`confirm\s*\(`,
		`prompt\s*\(`,
		`eval\s*\(`,
		`settimeout\s*\(`,
		`setinterval\s*\(`,
		`function\s*\(`,
	)},
	{"dom-access", compile(
		`document\.`,
		`window\.`,
		`location\.`,
		`\.innerhtml`,
		`\.outerhtml`,
		`\.write\s*\(`,
		`\.writeln\s*\(`,
	)},
	{"css-vector", compile(
		`expression\s*\(`,
		`behavior\s*:`,
		`-moz-binding`,
		`@import`,
	)},
	{"template-delimiter", compile(
		`\{\{[\s\S]*?\}\}`,
		`\$\{[\s\S]*?\}`,
		`<%[\s\S]*?%>`,
	)},
	{"encoded", compile(
		`&#x?\d+;`,
		`%3c%73%63%72%69%70%74`,
		`&lt;script`,
		`&lt;img`,
		`\\u[0-9a-f]{4}`,
	)},
	{"base64-data-uri", compile(
		`data:[\w/]+;base64,`,
	)},
	{"xml-artifact", compile(
		`<\?xml[\s\S]*?\?>`,
		`<!doctype[\s\S]*?>`,
		`<!\[cdata\[`,
	)},
	{"obfuscated-keyword", compile(
		`scr\w*ipt`,
		`java\w*script`,
		`vb\w*script`,
	)},
	{"media-with-event", compile(
		`<audio[\s\S]*?on\w+[\s\S]*?>`,
		`<video[\s\S]*?on\w+[\s\S]*?>`,
		`<canvas[\s\S]*?on\w+[\s\S]*?>`,
		`<details[\s\S]*?on\w+[\s\S]*?>`,
	)},
	{"form-hijack", compile(
		`formaction\s*=`,
		`action\s*=\s*["']javascript:`,
	)},
	{"css-block", compile(
		`@media[\s\S]*?\{`,
		`@keyframes[\s\S]*?\{`,
	)},
	{"browser-api", compile(
		`navigator\.`,
		`geolocation\.`,
		`webkitrtc`,
		`mozrtc`,
	)},
}

// literals são procurados como substrings depois do catálogo.
var literals = lower(
	"javascript:", "vbscript:", "data:text/html",
	"onload=", "onerror=", "onclick=", "onmouseover=",
	"alert(", "confirm(", "prompt(", "eval(",
	"document.cookie", "document.write", "window.location",
	"innerHTML", "outerHTML", "insertAdjacentHTML",
	"setTimeout", "setInterval", "Function(",
	"constructor", "prototype", "__proto__",
	"expression(", "behavior:", "-moz-binding",
	"import", "url(", "@import",
	"script:", "about:", "chrome:", "resource:",
	"moz-icon:", "ms-its:", "mk:", "wyciwyg:",
	"jar:", "view-source:", "gopher:", "finger:",
	"feed:", "pcast:", "webcal:",
)

// compile usa as classes Unicode do regexp2 (\w, \d, \s). O \s dele segue
// unicode.IsSpace, que não inclui os separadores \x1c-\x1f; eles entram à mão.
func compile(exprs ...string) []*regexp2.Regexp {
	out := make([]*regexp2.Regexp, len(exprs))
	for i, e := range exprs {
		re := regexp2.MustCompile(strings.ReplaceAll(e, `\s*`, `[\s\x1c-\x1f]*`), regexp2.None)
		re.MatchTimeout = matchTimeout
		out[i] = re
	}
	return out
}

func lower(tokens ...string) []string {
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}
	return tokens
}

// ContainsSignal aceita qualquer valor, mas só inspeciona string.
// []byte, nil e o resto devolvem false.
func ContainsSignal(v any) bool {
	t, ok := v.(string)
	if !ok {
		return false
	}
	return Detect(t).Found
}

// Detect roda o catálogo e depois a lista de literais.
func Detect(text string) Match {
	if text == "" {
		return Match{}
	}
	content := strings.ToLower(text)

	for _, g := range catalogue {
		for _, p := range g.patterns {
			if ok, err := p.MatchString(content); err == nil && ok {
				return Match{Found: true, Group: g.name, Pattern: p.String()}
			}
		}
	}

	for _, tok := range literals {
		if strings.Contains(content, tok) {
			return Match{Found: true, Group: LiteralGroup, Pattern: tok}
		}
	}
	return Match{}
}

// Groups devolve os nomes dos grupos na ordem de avaliação.
func Groups() []string {
	names := make([]string, 0, len(catalogue))
	for _, g := range catalogue {
		names = append(names, g.name)
	}
	return names
}
