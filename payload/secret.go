package payload

import (
	"bytes"
	"fmt"
)

// DefaultFilename is used for file secrets that arrive without a name.
const DefaultFilename = "secret.bin"

// Kind discriminates the two secret variants.
type Kind uint8

const (
	// KindText is a UTF-8 text secret held in Secret.Text.
	KindText Kind = iota + 1
	// KindFile is a named binary secret held in Secret.Filename and Secret.Content.
	KindFile
)

// String returns the record discriminator for the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return typeText
	case KindFile:
		return typeFile
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Secret is the user's hidden payload. Exactly one variant is populated,
// selected by Kind.
type Secret struct {
	Kind     Kind
	Text     string
	Filename string
	Content  []byte
}

// NewText creates a text secret.
func NewText(content string) *Secret {
	return &Secret{Kind: KindText, Text: content}
}

// NewFile creates a file secret. An empty filename becomes DefaultFilename.
func NewFile(filename string, content []byte) *Secret {
	if filename == "" {
		filename = DefaultFilename
	}
	return &Secret{Kind: KindFile, Filename: filename, Content: content}
}

// Validate reports whether the secret has content to embed.
func (s *Secret) Validate() error {
	if s == nil {
		return ErrEmptySecret
	}
	switch s.Kind {
	case KindText:
		if s.Text == "" {
			return ErrEmptySecret
		}
	case KindFile:
		if len(s.Content) == 0 {
			return ErrEmptySecret
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(s.Kind))
	}
	return nil
}

// Equal reports whether two secrets carry the same variant and content.
func (s *Secret) Equal(other *Secret) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Kind != other.Kind {
		return false
	}
	if s.Kind == KindText {
		return s.Text == other.Text
	}
	return s.Filename == other.Filename && bytes.Equal(s.Content, other.Content)
}
