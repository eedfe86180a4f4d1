// Package audio lays a background music bed under narration.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

const DefaultReductionDB = -20.0

// track is interleaved integer PCM.
type track struct {
	samples  []int
	channels int
	rate     int
	bitDepth int
}

func (t *track) frames() int {
	if t.channels == 0 {
		return 0
	}
	return len(t.samples) / t.channels
}

// MixBackground overlays the music at musicPath under the narration at
// narrationPath and writes a WAV with the narration's format and exact
// length to outputPath. The music is attenuated by |reductionDB| decibels
// and looped when shorter than the narration.
func MixBackground(narrationPath, musicPath, outputPath string, reductionDB float64) (string, error) {
	narration, err := decodeFile(narrationPath)
	if err != nil {
		return "", fmt.Errorf("decode narration: %w", err)
	}
	music, err := decodeFile(musicPath)
	if err != nil {
		return "", fmt.Errorf("decode background music: %w", err)
	}
	if music.frames() == 0 {
		return "", errors.New("background music has no audio")
	}

	music = conform(music, narration)
	mixed := overlay(narration, music, gainFromDB(reductionDB))

	if err := writeWAV(outputPath, mixed); err != nil {
		return "", fmt.Errorf("encode mix: %w", err)
	}
	return outputPath, nil
}

// gainFromDB always attenuates; the sign of db is ignored.
func gainFromDB(db float64) float64 {
	return math.Pow(10, -math.Abs(db)/20)
}

func decodeFile(path string) (*track, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return decodeMP3(raw)
	case ".wav":
		return decodeWAV(raw)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
}

func decodeWAV(raw []byte) (*track, error) {
	d := wav.NewDecoder(bytes.NewReader(raw))
	if !d.IsValidFile() {
		return nil, errors.New("not a valid wav file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if d.NumChans == 0 || d.SampleRate == 0 {
		return nil, errors.New("wav header missing format")
	}
	t := &track{
		samples:  buf.Data,
		channels: int(d.NumChans),
		rate:     int(d.SampleRate),
		bitDepth: int(d.BitDepth),
	}
	switch t.bitDepth {
	case 8:
		return widenUnsigned8(t), nil
	case 16, 24, 32:
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported wav bit depth %d", t.bitDepth)
	}
}

// widenUnsigned8 re-centres unsigned 8-bit samples on zero and scales them
// to 16 bits.
func widenUnsigned8(t *track) *track {
	out := make([]int, len(t.samples))
	for i, s := range t.samples {
		out[i] = (s - 128) << 8
	}
	return &track{samples: out, channels: t.channels, rate: t.rate, bitDepth: 16}
}

// go-mp3 always yields 16-bit little-endian stereo.
func decodeMP3(raw []byte) (*track, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(d)
	if err != nil {
		return nil, err
	}
	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(uint16(pcm[2*i]) | uint16(pcm[2*i+1])<<8))
	}
	return &track{samples: samples, channels: 2, rate: d.SampleRate(), bitDepth: 16}, nil
}

// conform converts src to dst's channel count, sample rate and bit depth.
func conform(src, dst *track) *track {
	out := src
	if out.channels != dst.channels {
		out = remix(out, dst.channels)
	}
	if out.rate != dst.rate {
		out = resample(out, dst.rate)
	}
	if out.bitDepth != dst.bitDepth {
		out = rescale(out, dst.bitDepth)
	}
	return out
}

// remix downmixes by averaging or upmixes by copying the first channels.
func remix(t *track, channels int) *track {
	n := t.frames()
	out := make([]int, n*channels)
	for f := range n {
		frame := t.samples[f*t.channels : (f+1)*t.channels]
		if channels < t.channels {
			sum := 0
			for _, s := range frame {
				sum += s
			}
			avg := sum / len(frame)
			for c := range channels {
				out[f*channels+c] = avg
			}
			continue
		}
		for c := range channels {
			out[f*channels+c] = frame[c%len(frame)]
		}
	}
	return &track{samples: out, channels: channels, rate: t.rate, bitDepth: t.bitDepth}
}

// resample uses linear interpolation.
func resample(t *track, rate int) *track {
	n := t.frames()
	m := int(int64(n) * int64(rate) / int64(t.rate))
	if m == 0 {
		m = 1
	}
	ratio := float64(t.rate) / float64(rate)
	out := make([]int, m*t.channels)
	for f := range m {
		pos := float64(f) * ratio
		i := int(pos)
		if i >= n-1 {
			i = n - 1
		}
		frac := pos - float64(i)
		next := min(i+1, n-1)
		for c := range t.channels {
			a := float64(t.samples[i*t.channels+c])
			b := float64(t.samples[next*t.channels+c])
			out[f*t.channels+c] = int(math.Round(a + (b-a)*frac))
		}
	}
	return &track{samples: out, channels: t.channels, rate: rate, bitDepth: t.bitDepth}
}

func rescale(t *track, bitDepth int) *track {
	out := make([]int, len(t.samples))
	shift := bitDepth - t.bitDepth
	for i, s := range t.samples {
		if shift > 0 {
			out[i] = s << shift
		} else {
			out[i] = s >> -shift
		}
	}
	return &track{samples: out, channels: t.channels, rate: t.rate, bitDepth: bitDepth}
}

// overlay adds the looped, attenuated music to the narration and clips the
// sum. The result has exactly the narration's length.
func overlay(narration, music *track, gain float64) *track {
	hi := 1<<(narration.bitDepth-1) - 1
	lo := -1 << (narration.bitDepth - 1)

	out := make([]int, len(narration.samples))
	loop := len(music.samples)
	for i, s := range narration.samples {
		v := s + int(math.Round(float64(music.samples[i%loop])*gain))
		out[i] = max(lo, min(hi, v))
	}
	return &track{samples: out, channels: narration.channels, rate: narration.rate, bitDepth: narration.bitDepth}
}

func writeWAV(path string, t *track) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	enc := wav.NewEncoder(f, t.rate, t.bitDepth, t.channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: t.channels, SampleRate: t.rate},
		Data:           t.samples,
		SourceBitDepth: t.bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}
