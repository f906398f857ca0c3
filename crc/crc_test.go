package crc

import "testing"

type crcTest struct {
	in   string
	want uint32
}

func TestSum(t *testing.T) {
	var crcs = []crcTest{
		{in: "", want: 0},
		{in: "123456789", want: 0xCBF43926},
		{in: "hello", want: 0x3610A686},
		{in: "\x00\x00\x00\x00", want: 0x2144DF1C},
	}
	for _, ct := range crcs {
		if got := Sum([]byte(ct.in)); got != ct.want {
			t.Errorf("Sum(%q) got %08x want %08x", ct.in, got, ct.want)
		}
	}
}
