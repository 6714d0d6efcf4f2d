package wavstego

import (
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
	fmtChunkMinSize = 16

	formatPCM  = 1
	sampleBits = 16
	// bytesPerSample is the stride between embedding positions.
	bytesPerSample = sampleBits / 8
)

// WAVInfo describes the sample data of a parsed WAV file.
type WAVInfo struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
	// DataOffset is the byte offset of the first sample.
	DataOffset int
	// DataSize is the sample data length in bytes, clipped to the file.
	DataSize int
}

// Samples returns the number of 16-bit samples, which is also the number
// of payload bits the file can carry.
func (w *WAVInfo) Samples() int {
	return w.DataSize / bytesPerSample
}

// ParseWAV walks the RIFF chunks of wav and locates the fmt and data chunks.
func ParseWAV(wav []byte) (*WAVInfo, error) {
	if len(wav) < riffHeaderSize || string(wav[0:4]) != "RIFF" || string(wav[8:12]) != "WAVE" {
		return nil, ErrNotWAV
	}

	info := &WAVInfo{DataOffset: -1}
	haveFmt := false
	off := riffHeaderSize
	for off+chunkHeaderSize <= len(wav) {
		id := string(wav[off : off+4])
		body := off + chunkHeaderSize
		declared := uint64(binary.LittleEndian.Uint32(wav[off+4 : off+8]))
		// A chunk may not claim more bytes than the file has left.
		size := int(min(declared, uint64(len(wav)-body)))

		switch id {
		case "fmt ":
			if size < fmtChunkMinSize || body+fmtChunkMinSize > len(wav) {
				return nil, fmt.Errorf("%w: fmt chunk is %d bytes", ErrUnsupportedFormat, size)
			}
			info.AudioFormat = binary.LittleEndian.Uint16(wav[body:])
			info.Channels = binary.LittleEndian.Uint16(wav[body+2:])
			info.SampleRate = binary.LittleEndian.Uint32(wav[body+4:])
			info.BitsPerSample = binary.LittleEndian.Uint16(wav[body+14:])
			haveFmt = true
		case "data":
			info.DataOffset = body
			info.DataSize = size
		}

		if uint64(size) < declared {
			break
		}
		// Chunks are padded to even sizes.
		off = body + size + size&1
	}

	if !haveFmt || info.AudioFormat != formatPCM || info.BitsPerSample != sampleBits {
		logrus.WithFields(logrus.Fields{
			"function":        "ParseWAV",
			"have_fmt":        haveFmt,
			"audio_format":    info.AudioFormat,
			"bits_per_sample": info.BitsPerSample,
		}).Debug("Rejected WAV sample format")
		return nil, fmt.Errorf("%w: format %d, %d bits", ErrUnsupportedFormat, info.AudioFormat, info.BitsPerSample)
	}
	if info.DataOffset < 0 {
		logrus.WithFields(logrus.Fields{
			"function": "ParseWAV",
			"size":     len(wav),
		}).Debug("WAV file has no data chunk")
		return nil, ErrNoDataChunk
	}

	logrus.WithFields(logrus.Fields{
		"function":    "ParseWAV",
		"channels":    info.Channels,
		"sample_rate": info.SampleRate,
		"samples":     info.Samples(),
	}).Debug("Parsed WAV header")

	return info, nil
}
