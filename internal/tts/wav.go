package tts

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-audio/wav"
)

// PCMToWAV wraps raw little-endian PCM in a canonical 44-byte WAV header.
// Zero arguments fall back to 24 kHz, mono, 16-bit.
func PCMToWAV(pcm []byte, sampleRate, numChannels, bitDepth int) []byte {
	if sampleRate <= 0 {
		sampleRate = defaultSampleRate
	}
	if numChannels <= 0 {
		numChannels = channels
	}
	if bitDepth <= 0 {
		bitDepth = bitsPerSample
	}

	blockAlign := numChannels * bitDepth / 8
	byteRate := sampleRate * blockAlign

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(numChannels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitDepth))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

// StripWAV returns the PCM payload of a 16-bit mono WAV file and its sample
// rate. Input that is not a WAV file is returned unchanged with rate 0.
func StripWAV(b []byte) ([]byte, int, error) {
	if len(b) < 12 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return b, 0, nil
	}

	d := wav.NewDecoder(bytes.NewReader(b))
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("decode wav: %w", err)
	}
	if d.BitDepth != bitsPerSample || d.NumChans != channels {
		return nil, 0, fmt.Errorf("unsupported wav layout: %d-bit, %d channels", d.BitDepth, d.NumChans)
	}

	out := make([]byte, 2*len(buf.Data))
	for i, v := range buf.Data {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(v)))
	}
	return out, int(d.SampleRate), nil
}

// parseRateFromMime reads the rate parameter of mime types like
// "audio/L16;codec=pcm;rate=24000".
func parseRateFromMime(mime string) int {
	for _, p := range strings.Split(mime, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(k, "rate") {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func decodeBase64Loose(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	if b, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "=")); err == nil {
		return b, nil
	}
	return base64.URLEncoding.DecodeString(s)
}
