package banner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchName(t *testing.T) {
	assert.Equal(t, "ARM64/AARCH64", ArchName("arm64"))
	assert.Equal(t, "x86-64", ArchName("amd64"))
	assert.Equal(t, "MIPS64LE", ArchName("mips64le"))
}

func TestBoxIsDoubleBordered(t *testing.T) {
	lines := strings.Split(Box(), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "╔"))
	assert.True(t, strings.HasSuffix(lines[0], "╗"))
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "╚"))
	assert.Contains(t, Box(), "DON'T PANIC")
	assert.Contains(t, Box(), "The Hitchhiker's Guide to Embedded Linux")
}

func TestGreeting(t *testing.T) {
	g := Greeting(DefaultBoard, "arm64")
	assert.True(t, strings.HasPrefix(g, "\n╔"))
	assert.Contains(t, g, "Hello from BeaglePlay!\n")
	assert.Contains(t, g, "cross-compiled for ARM64/AARCH64\nand is running on embedded Linux.\n")
	assert.True(t, strings.HasSuffix(g, "embedded Linux.\n\n"))
}

func TestClosing(t *testing.T) {
	c := Closing()
	assert.Contains(t, c, "Success! Your cross-compilation toolchain works!")
	assert.Contains(t, c, "Always know where your towel is.")
}
