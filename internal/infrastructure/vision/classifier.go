package vision

import (
	"math"

	"husk-grader/internal/domain/entity"
)

// achromaticDelta разница каналов, ниже которой пиксель считается серым
const achromaticDelta = 1e-5

// percentScale шкала, в которой заданы пороги S и V
const percentScale = 100.0

// RGBToHSV переводит 8-битный пиксель в HSV.
// Серые и чёрные пиксели получают S = 0 и H = 0.
func RGBToHSV(p entity.PixelRGB) entity.PixelHSV {
	rf := float64(p.R) / 255.0
	gf := float64(p.G) / 255.0
	bf := float64(p.B) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	hsv := entity.PixelHSV{V: maxC}
	if delta < achromaticDelta || maxC <= 0 {
		return hsv
	}
	hsv.S = delta / maxC

	var h float64
	switch {
	case rf >= maxC:
		h = 60 * math.Mod((gf-bf)/delta, 6)
	case gf >= maxC:
		h = 60 * ((bf-rf)/delta + 2)
	default:
		h = 60 * ((rf-gf)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	hsv.H = h

	return hsv
}

// Rule пара (категория, предикат). Правила проверяются по порядку, первое совпавшее побеждает.
type Rule struct {
	Grade entity.GradeBand
	Match func(entity.PixelHSV) bool
}

// Classifier относит пиксель к одной из категорий по таблице порогов
type Classifier struct {
	thresholds entity.ThresholdSet
	rules      []Rule
}

// NewClassifier собирает упорядоченный список правил из порогов
func NewClassifier(thresholds entity.ThresholdSet) (*Classifier, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	dq := thresholds.Disqualified
	rules := []Rule{
		{Grade: entity.GradeQualified, Match: windowMatcher(thresholds.Qualified)},
		{Grade: entity.GradeAccepted, Match: windowMatcher(thresholds.Accepted)},
		{Grade: entity.GradeDisqualified, Match: func(hsv entity.PixelHSV) bool {
			return hsv.H <= dq.HueUpper &&
				hsv.S*percentScale <= dq.SaturationUpper &&
				hsv.V*percentScale <= dq.ValueUpper
		}},
	}

	return &Classifier{thresholds: thresholds, rules: rules}, nil
}

func windowMatcher(w entity.BandWindow) func(entity.PixelHSV) bool {
	return func(hsv entity.PixelHSV) bool {
		return w.Hue.Contains(hsv.H) &&
			w.Saturation.Contains(hsv.S*percentScale) &&
			w.Value.Contains(hsv.V*percentScale)
	}
}

// Thresholds возвращает таблицу, по которой собран классификатор
func (c *Classifier) Thresholds() entity.ThresholdSet {
	return c.thresholds
}

// Rules возвращает правила в порядке проверки
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Classify возвращает категорию пикселя. ok == false, если пиксель не попал ни в одну категорию.
func (c *Classifier) Classify(p entity.PixelRGB) (grade entity.GradeBand, ok bool) {
	return c.ClassifyHSV(RGBToHSV(p))
}

// ClassifyHSV то же, что Classify, для уже переведённого пикселя
func (c *Classifier) ClassifyHSV(hsv entity.PixelHSV) (entity.GradeBand, bool) {
	for _, rule := range c.rules {
		if rule.Match(hsv) {
			return rule.Grade, true
		}
	}
	return "", false
}
