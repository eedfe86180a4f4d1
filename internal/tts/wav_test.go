package tts

import (
	"encoding/base64"
	"encoding/binary"
	"testing"
)

func Test_parseRateFromMime(t *testing.T) {
	if parseRateFromMime("") != 0 {
		t.Fatal("expected 0")
	}
	if parseRateFromMime("audio/L16") != 0 {
		t.Fatal("expected 0 when no rate")
	}
	if parseRateFromMime("audio/L16;codec=pcm;rate=48000") != 48000 {
		t.Fatal("expected 48000")
	}
	if parseRateFromMime("audio/L16;rate=abc") != 0 {
		t.Fatal("expected 0 for bad rate")
	}
}

func Test_decodeBase64Loose(t *testing.T) {
	plain := []byte("ABCD")
	padded := base64.StdEncoding.EncodeToString(plain)
	raw := base64.RawStdEncoding.EncodeToString(plain)

	if b, _ := decodeBase64Loose(padded); string(b) != "ABCD" {
		t.Fatalf("padded decode failed: %q", string(b))
	}
	if b, _ := decodeBase64Loose(raw); string(b) != "ABCD" {
		t.Fatalf("raw decode failed: %q", string(b))
	}
}

func TestPCMToWAV_Defaults(t *testing.T) {
	out := PCMToWAV([]byte{0x01, 0x02}, 0, 0, 0)
	if len(out) != 46 || string(out[:4]) != "RIFF" || string(out[8:12]) != "WAVE" {
		t.Fatalf("bad wav header: %q", out[:12])
	}
	if rate := binary.LittleEndian.Uint32(out[24:28]); rate != 24000 {
		t.Fatalf("rate=%d", rate)
	}
	if size := binary.LittleEndian.Uint32(out[40:44]); size != 2 {
		t.Fatalf("data size=%d", size)
	}
}

func TestStripWAV_RoundTrip(t *testing.T) {
	pcm := []byte{0x10, 0x00, 0xf0, 0xff, 0x00, 0x40}
	got, rate, err := StripWAV(PCMToWAV(pcm, 24000, 1, 16))
	if err != nil {
		t.Fatalf("StripWAV: %v", err)
	}
	if rate != 24000 {
		t.Fatalf("rate=%d", rate)
	}
	if string(got) != string(pcm) {
		t.Fatalf("pcm mismatch: %v != %v", got, pcm)
	}
}

func TestStripWAV_RawPassthrough(t *testing.T) {
	raw := []byte{1, 2, 3, 4}
	got, rate, err := StripWAV(raw)
	if err != nil || rate != 0 || string(got) != string(raw) {
		t.Fatalf("expected passthrough, got %v %d %v", got, rate, err)
	}
}

func TestDefaultVoices(t *testing.T) {
	a, b, err := DefaultVoices("openai")
	if err != nil || a != "onyx" || b != "nova" {
		t.Fatalf("openai voices %q %q %v", a, b, err)
	}
	if _, _, err := DefaultVoices("nope"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
