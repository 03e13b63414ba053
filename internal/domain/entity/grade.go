package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownGrade возвращается, если текст не соответствует ни одной категории
var ErrUnknownGrade = errors.New("unknown grade band")

// GradeBand категория качества шелухи
type GradeBand string

const (
	GradeQualified    GradeBand = "Qualified"    // Зелёные тона, высшая категория
	GradeAccepted     GradeBand = "Accepted"     // Жёлто-коричневые тона
	GradeDisqualified GradeBand = "Disqualified" // Тёмные или блёклые тона
)

// GradePriority порядок категорий: первая совпавшая побеждает, при равенстве счётчиков тоже
var GradePriority = [...]GradeBand{GradeQualified, GradeAccepted, GradeDisqualified}

// String возвращает текстовое представление для передачи по UART
func (g GradeBand) String() string {
	return string(g)
}

// Valid проверяет, что значение входит в допустимый набор
func (g GradeBand) Valid() bool {
	switch g {
	case GradeQualified, GradeAccepted, GradeDisqualified:
		return true
	}
	return false
}

// ParseGradeBand разбирает текст категории, окружающие пробелы игнорируются
func ParseGradeBand(text string) (GradeBand, error) {
	g := GradeBand(strings.TrimSpace(text))
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGrade, text)
	}
	return g, nil
}
