package vision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"husk-grader/internal/domain/entity"
)

func TestBandMasks(t *testing.T) {
	frame := entity.Raster{
		Width:  2,
		Height: 2,
		Format: entity.FormatRGB888,
		Pix: []byte{
			230, 255, 0, 255, 128, 0,
			0, 0, 0, 255, 255, 255,
		},
	}

	masks, err := BandMasks(newDefaultClassifier(t), frame)
	require.NoError(t, err)
	require.Len(t, masks, 3)

	require.Equal(t, uint8(255), masks[entity.GradeQualified].GrayAt(0, 0).Y)
	require.Equal(t, uint8(255), masks[entity.GradeAccepted].GrayAt(1, 0).Y)
	require.Equal(t, uint8(255), masks[entity.GradeDisqualified].GrayAt(0, 1).Y)
	for _, m := range masks {
		require.Zero(t, m.GrayAt(1, 1).Y)
	}
}
