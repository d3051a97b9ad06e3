// Package inspect lista a marcação que a entrada do aluno cria quando cai
// sem escape no corpo da página.
package inspect

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Inventory resume a marcação encontrada.
type Inventory struct {
	Elements      []string `json:"elements,omitempty"`
	EventHandlers []string `json:"event_handlers,omitempty"`
	ScriptURLs    []string `json:"script_urls,omitempty"`
	Scripts       int      `json:"scripts"`
}

var urlAttrs = map[string]bool{
	"href": true, "src": true, "action": true, "formaction": true, "data": true, "xlink:href": true,
}

// Markup faz o parse do fragmento em contexto de <body> e anota elementos,
// atributos on* e URLs com esquema de script.
func Markup(fragment string) Inventory {
	var inv Inventory
	if fragment == "" {
		return inv
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return inv
	}

	elements := map[string]bool{}
	handlers := map[string]bool{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			elements[n.Data] = true
			if n.DataAtom == atom.Script || n.Data == "script" {
				inv.Scripts++
			}
			for _, a := range n.Attr {
				key := strings.ToLower(a.Key)
				if a.Namespace != "" {
					key = a.Namespace + ":" + key
				}
				if strings.HasPrefix(key, "on") {
					handlers[key] = true
				}
				if urlAttrs[key] && isScriptURL(a.Val) {
					inv.ScriptURLs = append(inv.ScriptURLs, a.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}

	inv.Elements = sortedKeys(elements)
	inv.EventHandlers = sortedKeys(handlers)
	return inv
}

func isScriptURL(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.HasPrefix(v, "javascript:") ||
		strings.HasPrefix(v, "vbscript:") ||
		strings.HasPrefix(v, "data:text/html")
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
