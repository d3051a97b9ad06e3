package transform

import (
	"mime"
	"path/filepath"
	"strings"
)

// DefaultContentType é usado quando a extensão é desconhecida.
const DefaultContentType = "text/plain"

// ContentTypeFor resolve o media type só pela extensão do nome do arquivo,
// sem parâmetros como charset. Pontos no início do nome não abrem extensão:
// ".html" e "..html" são tratados como arquivos sem extensão.
func ContentTypeFor(filename string) string {
	base := strings.TrimLeft(filepath.Base(filename), ".")
	ext := filepath.Ext(base)
	if ext == "" {
		return DefaultContentType
	}
	full := mime.TypeByExtension(ext)
	if full == "" {
		return DefaultContentType
	}
	mediaType, _, err := mime.ParseMediaType(full)
	if err != nil {
		return DefaultContentType
	}
	return mediaType
}
