package entity

import "strings"

// ResultMarker префикс строки с результатом
const ResultMarker = "RESULT:"

// DoneLine строка, которой модуль камеры завершает работу
const DoneLine = "DONE"

// FrameKind тип строки протокола
type FrameKind string

const (
	FrameResult    FrameKind = "result"    // Строка RESULT:<категория>
	FrameIgnorable FrameKind = "ignorable" // Диагностика, баннеры, мусор
)

// ProtocolFrame разобранная строка UART
type ProtocolFrame struct {
	Kind  FrameKind
	Grade GradeBand // заполнено только для FrameResult
	Text  string    // строка без окружающих пробелов
}

// FormatResultLine формирует строку результата без перевода строки
func FormatResultLine(g GradeBand) string {
	return ResultMarker + g.String()
}

// ParseFrame классифицирует строку. Пробелы после маркера допускаются,
// неизвестная категория делает строку игнорируемой.
func ParseFrame(line string) ProtocolFrame {
	text := strings.TrimSpace(line)
	frame := ProtocolFrame{Kind: FrameIgnorable, Text: text}

	payload, ok := strings.CutPrefix(text, ResultMarker)
	if !ok {
		return frame
	}
	g, err := ParseGradeBand(payload)
	if err != nil {
		return frame
	}

	frame.Kind = FrameResult
	frame.Grade = g
	return frame
}
