package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitungSplit(t *testing.T) {
	tests := []struct {
		name             string
		total            int64
		feeMentor        int64
		komisiMitra      int64
		keuntunganBersih int64
	}{
		{"juta bulat", 1_000_000, 430_000, 228_000, 342_000},
		{"nol", 0, 0, 0, 0},
		{"satu rupiah", 1, 0, 0, 1},
		{"seratus", 100, 43, 23, 34},
		{"ganjil", 999_999, 430_000, 228_000, 341_999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := HitungSplit(tt.total)
			assert.Equal(t, tt.feeMentor, s.FeeMentor)
			assert.Equal(t, tt.komisiMitra, s.KomisiMitra)
			assert.Equal(t, tt.keuntunganBersih, s.KeuntunganBersih)
		})
	}
}

// The two split roundings may each be off by up to one rupiah, so the parts
// must reconstruct the total within a tolerance of 2.
func TestHitungSplitSumTolerance(t *testing.T) {
	for total := int64(0); total < 10_000; total++ {
		s := HitungSplit(total)
		sum := s.FeeMentor + s.KomisiMitra + s.KeuntunganBersih
		diff := sum - total
		if diff < 0 {
			diff = -diff
		}
		if diff > 2 {
			t.Fatalf("total=%d: parts sum to %d (diff %d)", total, sum, diff)
		}
	}
}

func TestHitungOrder(t *testing.T) {
	tests := []struct {
		name         string
		totalDp      int64
		pembayaran   int64
		kekurangan   int64
		feeFreelance int64
	}{
		{"dp sebagian", 200_000, 500_000, 300_000, 215_000},
		{"lunas", 500_000, 500_000, 0, 215_000},
		{"dp melebihi total", 500_000, 300_000, 0, 129_000},
		{"tanpa dp", 0, 1_000_000, 1_000_000, 430_000},
		{"nol", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kekurangan, fee := HitungOrder(tt.totalDp, tt.pembayaran)
			assert.Equal(t, tt.kekurangan, kekurangan)
			assert.Equal(t, tt.feeFreelance, fee)
		})
	}
}

func TestHitungOrderNeverNegative(t *testing.T) {
	for dp := int64(0); dp < 2_000; dp += 37 {
		for total := int64(0); total < 2_000; total += 53 {
			kekurangan, _ := HitungOrder(dp, total)
			assert.GreaterOrEqual(t, kekurangan, int64(0))
		}
	}
}
