package payload

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/bytedance/sonic"
)

const (
	typeText = "text"
	typeFile = "file"
)

// record is the outbound form; field order fixes the serialized layout.
type record struct {
	Type     string `json:"type"`
	Filename string `json:"filename,omitempty"`
	Data     string `json:"data"`
}

// inboundRecord distinguishes missing fields from empty ones.
type inboundRecord struct {
	Type     *string `json:"type"`
	Filename *string `json:"filename"`
	Data     *string `json:"data"`
}

// Serialize encodes a secret as its canonical JSON record.
func Serialize(s *Secret) ([]byte, error) {
	if s == nil {
		return nil, ErrEmptySecret
	}

	var rec record
	switch s.Kind {
	case KindText:
		rec = record{Type: typeText, Data: s.Text}
	case KindFile:
		name := s.Filename
		if name == "" {
			name = DefaultFilename
		}
		rec = record{
			Type:     typeFile,
			Filename: name,
			Data:     base64.StdEncoding.EncodeToString(s.Content),
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(s.Kind))
	}

	out, err := sonic.Marshal(&rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload record: %w", err)
	}
	return out, nil
}

// Deserialize parses a record produced by Serialize. The whole record must
// be valid UTF-8; invalid bytes are not replaced.
func Deserialize(data []byte) (*Secret, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: record is not valid UTF-8", ErrFormat)
	}

	var rec inboundRecord
	if err := sonic.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if rec.Type == nil {
		return nil, fmt.Errorf("%w: missing type", ErrFormat)
	}
	if rec.Data == nil {
		return nil, fmt.Errorf("%w: missing data", ErrFormat)
	}

	switch *rec.Type {
	case typeText:
		return NewText(*rec.Data), nil
	case typeFile:
		content, err := base64.StdEncoding.DecodeString(*rec.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		name := ""
		if rec.Filename != nil {
			name = *rec.Filename
		}
		return NewFile(name, content), nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrFormat, *rec.Type)
	}
}
