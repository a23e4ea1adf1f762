package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeCodeForLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  string
	}{
		{"icon_16x16.png", "is32"},
		{"icon_16x16@2x.png", "s32 "},
		{"icon_32x32.png", "il32"},
		{"icon_32x32@2x.png", "l32 "},
		{"icon_128x128.png", "ic08"},
		{"icon_128x128@2x.png", "ic09"},
		{"icon_256x256.png", "ic10"},
		{"icon_256x256@2x.png", "ic11"},
		{"icon_512x512.png", "ic12"},
		{"icon_512x512@2x.png", "ic13"},
		{"256x256", "ic10"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			code, ok := TypeCodeForLabel(tt.label)
			require.True(t, ok)
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestTypeCodeForLabelUnknown(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"icon_64x64.png", "icon_1024x1024.png", "", "readme.txt"} {
		_, ok := TypeCodeForLabel(label)
		assert.False(t, ok, label)
	}
}

func TestTypeCodePaddingIsKept(t *testing.T) {
	t.Parallel()

	code, ok := TypeCodeForLabel("icon_32x32@2x.png")
	require.True(t, ok)
	assert.Equal(t, TypeCode{'l', '3', '2', ' '}, code)
	assert.Len(t, code.String(), 4)
}

func TestParseTypeCode(t *testing.T) {
	t.Parallel()

	code, err := ParseTypeCode("s32 ")
	require.NoError(t, err)
	assert.Equal(t, "s32 ", code.String())

	for _, bad := range []string{"s32", "ic08x", "", "ic\x0008", "icö"} {
		_, err := ParseTypeCode(bad)
		assert.Error(t, err, "%q", bad)
	}
}
