package transform

import "unicode/utf8"

// UnreadableUpload substitui conteúdo de upload que não é UTF-8 válido.
const UnreadableUpload = "Could not read file content"

func DecodeUpload(data []byte) string {
	if !utf8.Valid(data) {
		return UnreadableUpload
	}
	return string(data)
}
