package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		addr     Address
		expected string
	}{
		{
			name:     "with name",
			addr:     Address{Email: "john@example.com", Name: "John Doe"},
			expected: "John Doe <john@example.com>",
		},
		{
			name:     "without name falls back to address",
			addr:     Address{Email: "john@example.com"},
			expected: "john@example.com <john@example.com>",
		},
		{
			name:     "name with special characters",
			addr:     Address{Email: "jose@example.com", Name: "José García"},
			expected: "José García <jose@example.com>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestAddresses_Add(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()

		as := Addresses{}.
			Add("c@example.com", "C").
			Add("a@example.com", "A").
			Add("b@example.com", "B")

		require.Equal(t, []string{"c@example.com", "a@example.com", "b@example.com"}, as.Emails())
	})

	t.Run("renames existing address in place", func(t *testing.T) {
		t.Parallel()

		as := Addresses{}.
			Add("a@example.com", "A").
			Add("b@example.com", "B").
			Add("a@example.com", "Alice")

		require.Len(t, as, 2)
		require.Equal(t, Address{Email: "a@example.com", Name: "Alice"}, as[0])
	})
}

func TestAddresses_Add_SharedBase(t *testing.T) {
	t.Parallel()

	base := make(Addresses, 0, 4).Add("a@x.com", "A")

	withB := base.Add("b@x.com", "B")
	withC := base.Add("c@x.com", "C")

	require.Equal(t, []string{"a@x.com", "b@x.com"}, withB.Emails())
	require.Equal(t, []string{"a@x.com", "c@x.com"}, withC.Emails())
	require.Equal(t, Addresses{{Email: "a@x.com", Name: "A"}}, base)

	renamed := withB.Add("a@x.com", "Renamed")

	require.Equal(t, "Renamed", renamed[0].Name)
	require.Equal(t, "A", withB[0].Name)
	require.Equal(t, "A", base[0].Name)
}

func TestAddresses_First(t *testing.T) {
	t.Parallel()

	_, ok := Addresses{}.First()
	require.False(t, ok)

	first, ok := Addresses{}.Add("a@example.com", "A").Add("b@example.com", "B").First()
	require.True(t, ok)
	require.Equal(t, "a@example.com", first.Email)
}

func TestFormat_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, FormatHTML.Valid())
	require.True(t, FormatText.Valid())
	require.True(t, FormatBoth.Valid())
	require.False(t, Format("").Valid())
	require.False(t, Format("markdown").Valid())
}

func TestEmail_Body(t *testing.T) {
	t.Parallel()

	e := &Email{HTML: "<p>hi</p>", Text: "hi"}

	require.Equal(t, "hi", e.Body(FormatText))
	require.Equal(t, "<p>hi</p>", e.Body(FormatHTML))
	require.Equal(t, "<p>hi</p>", e.Body(FormatBoth))
}

func TestAttachment_Content(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("from disk"), 0o600))

	t.Run("inline data wins over file", func(t *testing.T) {
		t.Parallel()

		data, err := Attachment{Data: []byte("inline"), File: path}.Content()
		require.NoError(t, err)
		require.Equal(t, []byte("inline"), data)
	})

	t.Run("reads file when data is empty", func(t *testing.T) {
		t.Parallel()

		data, err := Attachment{File: path}.Content()
		require.NoError(t, err)
		require.Equal(t, []byte("from disk"), data)
	})

	t.Run("nothing to read", func(t *testing.T) {
		t.Parallel()

		data, err := Attachment{Filename: "empty.bin"}.Content()
		require.NoError(t, err)
		require.Nil(t, data)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Attachment{File: filepath.Join(dir, "missing.txt")}.Content()
		require.ErrorIs(t, err, ErrAttachmentRead)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
