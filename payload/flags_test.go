package payload

import "testing"

func TestComputeSizeFieldLen(t *testing.T) {
	cases := []struct {
		payloadLen int
		want       int
	}{
		{0, 1},
		{1, 1},
		{255, 1},
		{256, 2},
		{65535, 2},
		{65536, 3},
		{16777215, 3},
		{16777216, 4},
	}
	for _, c := range cases {
		got := computeSizeFieldLen(c.payloadLen)
		if got != c.want {
			t.Errorf("computeSizeFieldLen(%d) = %d, want %d", c.payloadLen, got, c.want)
		}
	}
}

func TestComputePaddingSize(t *testing.T) {
	cases := []struct {
		rawSize int
		want    int
	}{
		{1, 255},
		{255, 1},
		{256, 256},
		{257, 255},
	}
	for _, c := range cases {
		got := computePaddingSize(c.rawSize)
		if got != c.want {
			t.Errorf("computePaddingSize(%d) = %d, want %d", c.rawSize, got, c.want)
		}
		if got < 1 || got > paddingTarget {
			t.Errorf("computePaddingSize(%d) = %d out of range", c.rawSize, got)
		}
	}
}
