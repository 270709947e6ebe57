package dictbits

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/andybalholm/lzdict"
	"github.com/kr/pretty"
)

func sampleDicts() map[string]lzdict.Dict {
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 2000)
	rng.Read(random)
	text := strings.Repeat("Of the Reflexions, Refractions, Inflexions and Colours of Light. ", 40)

	return map[string]lzdict.Dict{
		"empty input": lzdict.EncodeUnbounded([]byte{}),
		"run":         lzdict.EncodeUnbounded([]byte("aaaa")),
		"repeat":      lzdict.EncodeString("abcabcabc"),
		"text":        lzdict.Encode([]byte(text), 0, 0),
		"unbounded":   lzdict.EncodeUnbounded([]byte(text)),
		"random":      lzdict.Encode(random, 4000, 300),
		"runes":       lzdict.EncodeString("日本語日本語, ça va 🙂🙂🙂"),
		"nul":         lzdict.EncodeUnbounded([]byte("aa\x00")),
		"0xff":        lzdict.EncodeUnbounded([]byte("aa\xff\xff\xff")),
	}
}

func check(t *testing.T, name string, got, want lzdict.Dict) {
	t.Helper()
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v\nwant %v\ndiff: %v", name, got, want, pretty.Diff(got, want))
	}
}

func TestRoundTrip(t *testing.T) {
	for name, d := range sampleDicts() {
		s, err := Serialize(d)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		size, err := Size(d)
		if err != nil {
			t.Fatal(err)
		}
		if len(s) != size {
			t.Errorf("%s: len = %d, Size = %d", name, len(s), size)
		}
		got, err := Deserialize(s)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		check(t, name, got, d)

		b, err := Marshal(d)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(b) != (size+7)/8 {
			t.Errorf("%s: Marshal wrote %d bytes for %d bits", name, len(b), size)
		}
		got, err = Unmarshal(b)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		check(t, name, got, d)
	}
}

func TestEndToEnd(t *testing.T) {
	data := []byte(strings.Repeat("HelloHelloHello, world. ", 50))
	for _, d := range []lzdict.Dict{lzdict.Encode(data, 0, 0), lzdict.EncodeUnbounded(data)} {
		b, err := Marshal(d)
		if err != nil {
			t.Fatal(err)
		}
		d2, err := Unmarshal(b)
		if err != nil {
			t.Fatal(err)
		}
		out, err := lzdict.Decode[byte](d2)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(out, data) {
			t.Fatal("decoded output doesn't match")
		}
	}
}

func TestSerializeRun(t *testing.T) {
	s, err := Serialize(lzdict.EncodeUnbounded([]byte("aaaa")))
	if err != nil {
		t.Fatal(err)
	}
	want := "01" +
		"00000000" + "00000000" + "01100001" +
		"00000001" + "00000011" + "11111111"
	if s != want {
		t.Fatalf("got  %s\nwant %s", s, want)
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		d    lzdict.Dict
		want int
	}{
		{nil, 0},
		{lzdict.Dict{{Symbol: 0}}, 1},
		{lzdict.Dict{{Symbol: lzdict.NoSymbol}}, 1},
		// 130 is 8 bits long, so ceil(8/8) = 1 byte per field.
		{lzdict.Dict{{Symbol: 'a'}, {Distance: 130, Length: 2, Symbol: 'b'}}, 1},
		{lzdict.Dict{{Symbol: 'a'}, {Distance: 1, Length: 255, Symbol: 'b'}}, 1},
		{lzdict.Dict{{Symbol: 'a'}, {Distance: 1, Length: 256, Symbol: 'b'}}, 2},
		{lzdict.Dict{{Symbol: 254}}, 1},
		{lzdict.Dict{{Symbol: 255}}, 2},
		{lzdict.Dict{{Symbol: 'a'}, {Distance: 300, Length: 2, Symbol: 'b'}}, 2},
		{lzdict.Dict{{Symbol: '🙂'}}, 3},
		{lzdict.Dict{{Symbol: 'a'}, {Distance: 1<<24 - 1, Length: 1, Symbol: 'b'}}, 3},
	}
	for _, tt := range tests {
		got, err := Width(tt.d)
		if err != nil {
			t.Errorf("Width(%v): %v", tt.d, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Width(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestSixteenBitFields(t *testing.T) {
	d := lzdict.Dict{
		{Symbol: 'x'},
		{Distance: 1, Length: 300, Symbol: 'y'},
		{Distance: 130, Length: 2, Symbol: lzdict.NoSymbol},
	}
	s, err := Serialize(d)
	if err != nil {
		t.Fatal(err)
	}
	if s[:HeaderBits] != "10" {
		t.Fatalf("header = %s, want 10", s[:HeaderBits])
	}
	if len(s) != HeaderBits+len(d)*3*16 {
		t.Fatalf("len = %d", len(s))
	}
	got, err := Deserialize(s)
	if err != nil {
		t.Fatal(err)
	}
	check(t, "16-bit", got, d)
}

func TestOverflow(t *testing.T) {
	tests := []lzdict.Dict{
		{{Symbol: 'a'}, {Distance: 1 << 24, Length: 1, Symbol: 'b'}},
		{{Symbol: 'a'}, {Distance: 1, Length: 1 << 30, Symbol: 'b'}},
	}
	for _, d := range tests {
		if _, err := Serialize(d); !errors.Is(err, ErrFieldOverflow) {
			t.Errorf("Serialize: got error %v, want ErrFieldOverflow", err)
		}
		if _, err := Marshal(d); !errors.Is(err, ErrFieldOverflow) {
			t.Errorf("Marshal: got error %v, want ErrFieldOverflow", err)
		}
	}
}

func TestInvalidToken(t *testing.T) {
	d := lzdict.Dict{{Symbol: 'a'}, {Distance: -1, Length: 1, Symbol: 'b'}}
	if _, err := Serialize(d); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("got error %v, want ErrInvalidToken", err)
	}
}

func TestDeserializeTruncated(t *testing.T) {
	s, err := Serialize(lzdict.EncodeString("abcabcabc"))
	if err != nil {
		t.Fatal(err)
	}
	for _, bad := range []string{"", "0", s[:len(s)-1], s + "0", s[:len(s)-24+5], "001"} {
		if _, err := Deserialize(bad); !errors.Is(err, ErrTruncated) {
			t.Errorf("Deserialize(%q): got error %v, want ErrTruncated", bad, err)
		}
	}
}

func TestDeserializeInvalidBit(t *testing.T) {
	s, err := Serialize(lzdict.EncodeString("abc"))
	if err != nil {
		t.Fatal(err)
	}
	bad := s[:10] + "2" + s[11:]
	if _, err := Deserialize(bad); !errors.Is(err, ErrInvalidBit) {
		t.Fatalf("got error %v, want ErrInvalidBit", err)
	}
}

func TestDeserializeEmpty(t *testing.T) {
	d, err := Deserialize("00")
	if err != nil {
		t.Fatal(err)
	}
	if len(d) != 0 {
		t.Fatalf("got %v, want no tokens", d)
	}
	s, err := Serialize(nil)
	if err != nil {
		t.Fatal(err)
	}
	if s != "00" {
		t.Fatalf("Serialize(nil) = %q", s)
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	b, err := Marshal(lzdict.EncodeString("abcabcabc"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Unmarshal(b[:len(b)-1]); !errors.Is(err, ErrTruncated) {
		t.Errorf("short input: got error %v, want ErrTruncated", err)
	}
	if _, err := Unmarshal(append(b[:len(b):len(b)], 0)); !errors.Is(err, ErrTruncated) {
		t.Errorf("extra byte: got error %v, want ErrTruncated", err)
	}

	padded := append([]byte(nil), b...)
	padded[len(padded)-1] |= 1
	if _, err := Unmarshal(padded); !errors.Is(err, ErrTruncated) {
		t.Errorf("nonzero padding: got error %v, want ErrTruncated", err)
	}
	if _, err := Unmarshal(nil); !errors.Is(err, ErrTruncated) {
		t.Errorf("empty input: got error %v, want ErrTruncated", err)
	}
}
