package words

import (
	"fmt"
	"math/big"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestLongMatchesKaratsubaAroundThreshold(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(1, 2))
	opts := DefaultOptions()
	lengths := []int{1, 2, 3, 8, 15, 16, 17, 31, 32, 33, 64, 100}
	for _, n := range lengths {
		for _, m := range lengths {
			t.Run(fmt.Sprintf("%dx%d", n, m), func(t *testing.T) {
				lhs := Of(randomDigits[uint64](r, n)...)
				rhs := Of(randomDigits[uint64](r, m)...)
				long := make([]uint64, n+m)
				kara := make([]uint64, n+m)
				auto := make([]uint64, n+m)
				InitProductLong(MutOf(long), lhs, rhs)
				InitProductKaratsuba(MutOf(kara), lhs, rhs, opts)
				InitProduct(MutOf(auto), lhs, rhs)
				if !slices.Equal(long, kara) || !slices.Equal(long, auto) {
					t.Fatalf("long and Karatsuba products differ for %dx%d digits", n, m)
				}
				want := new(big.Int).Mul(toBig(lhs), toBig(rhs))
				if toBig(Of(long...)).Cmp(want) != 0 {
					t.Fatalf("product of %dx%d digits does not match math/big", n, m)
				}
			})
		}
	}
}

func TestKaratsubaWithAllOnesAndZeros(t *testing.T) {
	t.Parallel()
	for _, n := range []int{15, 16, 17, 40} {
		ones := make([]uint8, n)
		for i := range ones {
			ones[i] = 0xFF
		}
		zeroTop := slices.Clone(ones)
		zeroTop[n-1] = 0
		for _, pair := range [][2][]uint8{{ones, ones}, {ones, zeroTop}, {zeroTop, make([]uint8, n)}} {
			lhs, rhs := Of(pair[0]...), Of(pair[1]...)
			long := make([]uint8, 2*n)
			kara := make([]uint8, 2*n)
			InitProductLong(MutOf(long), lhs, rhs)
			InitProductKaratsuba(MutOf(kara), lhs, rhs, Options{KaratsubaThreshold: 2})
			if !slices.Equal(long, kara) {
				t.Errorf("n=%d: Karatsuba %x != long %x", n, kara, long)
			}
		}
	}
}

func TestSquareVariants(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{0, 1, 2, 5, 15, 16, 17, 33, 70} {
		x := Of(randomDigits[uint32](r, n)...)
		product := make([]uint32, 2*n)
		long := make([]uint32, 2*n)
		kara := make([]uint32, 2*n)
		InitProductLong(MutOf(product), x, x)
		InitSquareLong(MutOf(long), x)
		InitSquareKaratsuba(MutOf(kara), x, Options{KaratsubaThreshold: 4})
		if !slices.Equal(product, long) {
			t.Errorf("n=%d: long square differs from long product", n)
		}
		if !slices.Equal(product, kara) {
			t.Errorf("n=%d: Karatsuba square differs from long product", n)
		}
	}
}

func TestMaxDepthFallsBackToLong(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(5, 6))
	lhs := Of(randomDigits[uint16](r, 200)...)
	rhs := Of(randomDigits[uint16](r, 190)...)
	want := make([]uint16, 390)
	InitProductLong(MutOf(want), lhs, rhs)
	for _, depth := range []int{1, 2, 3} {
		got := make([]uint16, 390)
		InitProductWith(MutOf(got), lhs, rhs, Options{KaratsubaThreshold: 2, MaxDepth: depth})
		if !slices.Equal(got, want) {
			t.Errorf("MaxDepth=%d: product differs", depth)
		}
	}
}

func TestProductOutputSizeIsChecked(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a short output")
		}
	}()
	InitProduct(MutOf(make([]uint8, 2)), Of[uint8](1, 2), Of[uint8](3))
}

func TestMultiplicationIgnoresStaleOutput(t *testing.T) {
	t.Parallel()
	out := []uint64{9, 9, 9, 9}
	InitProductLong(MutOf(out), Of[uint64](2, 0), Of[uint64](3, 0))
	if !slices.Equal(out, []uint64{6, 0, 0, 0}) {
		t.Errorf("InitProductLong() = %v, want [6 0 0 0]", out)
	}
	InitSquareLong(MutOf(out), Of[uint64](3, 0))
	if !slices.Equal(out, []uint64{9, 0, 0, 0}) {
		t.Errorf("InitSquareLong() = %v, want [9 0 0 0]", out)
	}
}

func FuzzMultiplicationAgreement(f *testing.F) {
	f.Add([]byte{0xFF, 0xFF}, []byte{0xFF, 0xFF}, uint8(2))
	f.Add(make([]byte, 64), []byte{1, 2, 3, 4}, uint8(16))
	f.Add(bytesOf(0xFF, 80), bytesOf(0xFF, 80), uint8(3))
	f.Fuzz(func(t *testing.T, a, b []byte, threshold uint8) {
		if len(a) > 512 || len(b) > 512 {
			return
		}
		lhs, rhs := Of(bytesToDigits(a)...), Of(bytesToDigits(b)...)
		n := lhs.Count() + rhs.Count()
		long := make([]uint16, n)
		fast := make([]uint16, n)
		InitProductLong(MutOf(long), lhs, rhs)
		InitProductWith(MutOf(fast), lhs, rhs, Options{KaratsubaThreshold: int(threshold)})
		if !slices.Equal(long, fast) {
			t.Fatalf("threshold %d: products differ", threshold)
		}
	})
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
