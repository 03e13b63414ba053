package entity

// BandCounts счётчики пикселей по категориям
type BandCounts struct {
	Qualified    int
	Accepted     int
	Disqualified int
}

// Add увеличивает счётчик категории
func (c *BandCounts) Add(g GradeBand) {
	switch g {
	case GradeQualified:
		c.Qualified++
	case GradeAccepted:
		c.Accepted++
	case GradeDisqualified:
		c.Disqualified++
	}
}

// Decide выбирает категорию большинством.
// Равенство разрешается в пользу Qualified, затем Accepted; нулевые счётчики дают Disqualified.
func (c BandCounts) Decide() GradeBand {
	if c.Qualified >= c.Accepted && c.Qualified >= c.Disqualified && c.Qualified > 0 {
		return GradeQualified
	}
	if c.Accepted >= c.Disqualified && c.Accepted > 0 {
		return GradeAccepted
	}
	return GradeDisqualified
}

// Verdict итог оценки кадра
type Verdict struct {
	Grade   GradeBand
	Counts  BandCounts
	Sampled int // сколько троек было прочитано, включая не попавшие ни в одну категорию
}
