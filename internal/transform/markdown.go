package transform

import "regexp"

var (
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Markdown converte negrito e links para HTML. O HTML cru da entrada passa
// direto e o destino do link não é validado: javascript: chega ao href.
func Markdown(src string) string {
	out := boldPattern.ReplaceAllString(src, `<strong>${1}</strong>`)
	return linkPattern.ReplaceAllString(out, `<a href="${2}">${1}</a>`)
}
