package console

import "strings"

// Width — ширина экрана терминала в символах.
const Width = 60

// Border возвращает разделительную линию из символа c на всю ширину экрана.
func Border(c rune) string {
	return strings.Repeat(string(c), Width)
}

// Center выравнивает текст по центру экрана.
func Center(text string) string {
	if len(text) >= Width {
		return text
	}
	left := (Width - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", Width-len(text)-left)
}
