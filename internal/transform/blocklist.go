package transform

import "strings"

// Blocklist é o filtro ingênuo do lab filter-bypass. Cada entrada é removida
// em ordem, por comparação exata (sensível a maiúsculas), numa única passada.
var Blocklist = []string{
	"<script>",
	"</script>",
	"javascript:",
	"onclick",
	"onload",
	"onerror",
	"alert()",
	"eval()",
	"document.cookie",
}

type FilterResult struct {
	Output          string   `json:"filtered_comment"`
	BlockedPatterns []string `json:"blocked_patterns"`
}

// Filter remove as entradas da blocklist e registra quais dispararam.
// Não normaliza caixa nem decodifica entidades.
func Filter(input string) FilterResult {
	res := FilterResult{Output: input, BlockedPatterns: []string{}}
	for _, pattern := range Blocklist {
		if strings.Contains(res.Output, pattern) {
			res.BlockedPatterns = append(res.BlockedPatterns, pattern)
			res.Output = strings.ReplaceAll(res.Output, pattern, "")
		}
	}
	return res
}
