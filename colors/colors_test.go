package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "white", input: "#ffffff", want: RGB{255, 255, 255}},
		{name: "black", input: "#000000", want: RGB{0, 0, 0}},
		{name: "mixed", input: "#336699", want: RGB{0x33, 0x66, 0x99}},
		{name: "uppercase", input: "#FF8800", want: RGB{0xff, 0x88, 0x00}},
		{name: "missing hash", input: "336699", wantErr: true},
		{name: "short", input: "#fff", wantErr: true},
		{name: "garbage", input: "not a color", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err, "Parse should reject %q", tt.input)
				return
			}
			require.NoError(t, err, "Parse should accept %q", tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{R: 0x12, G: 0xab, B: 0xef}
	parsed, err := Parse(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, parsed, "Hex output should parse back to the same triple")
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 0.0, Luminance(0, 0, 0), 0.001, "black has zero luminance")
	assert.InDelta(t, 255.0, Luminance(255, 255, 255), 0.001, "white has maximum luminance")
	// Pure red sits well below a mid-gray cutoff under Rec. 601 weighting.
	assert.InDelta(t, 76.245, Luminance(255, 0, 0), 0.01)
	assert.InDelta(t, 149.685, Luminance(0, 255, 0), 0.01)
	assert.InDelta(t, 29.07, Luminance(0, 0, 255), 0.01)
}

func TestQuantize(t *testing.T) {
	assert.Equal(t, 0, Quantize(4))
	assert.Equal(t, 10, Quantize(5))
	assert.Equal(t, 10, Quantize(14))
	assert.Equal(t, 250, Quantize(250))
	// The top of the channel range rounds past 255; buckets are
	// coordinates, not displayable channels.
	assert.Equal(t, 260, Quantize(255))
}

func TestClampChannel(t *testing.T) {
	assert.Equal(t, uint8(255), ClampChannel(260))
	assert.Equal(t, uint8(0), ClampChannel(-10))
	assert.Equal(t, uint8(120), ClampChannel(120))
}

func TestRGBA(t *testing.T) {
	c := RGB{R: 1, G: 2, B: 3}.RGBA()
	assert.Equal(t, uint8(255), c.A, "RGBA conversion is always fully opaque")
}
