package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFile_DefaultName(t *testing.T) {
	assert.Equal(t, DefaultFilename, NewFile("", []byte("x")).Filename)
	assert.Equal(t, "n.txt", NewFile("n.txt", []byte("x")).Filename)
}

func TestSecret_Validate(t *testing.T) {
	tests := []struct {
		name    string
		secret  *Secret
		wantErr error
	}{
		{name: "nil", secret: nil, wantErr: ErrEmptySecret},
		{name: "empty text", secret: NewText(""), wantErr: ErrEmptySecret},
		{name: "empty file", secret: NewFile("f", nil), wantErr: ErrEmptySecret},
		{name: "unknown kind", secret: &Secret{}, wantErr: ErrUnknownKind},
		{name: "text", secret: NewText("x"), wantErr: nil},
		{name: "file", secret: NewFile("f", []byte{0}), wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.secret.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSecret_Equal(t *testing.T) {
	assert.True(t, NewText("a").Equal(NewText("a")))
	assert.False(t, NewText("a").Equal(NewText("b")))
	assert.False(t, NewText("a").Equal(NewFile("a", []byte("a"))))
	assert.True(t, NewFile("f", []byte{1}).Equal(NewFile("f", []byte{1})))
	assert.False(t, NewFile("f", []byte{1}).Equal(NewFile("g", []byte{1})))

	var nilSecret *Secret
	assert.True(t, nilSecret.Equal(nil))
	assert.False(t, nilSecret.Equal(NewText("a")))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "file", KindFile.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
