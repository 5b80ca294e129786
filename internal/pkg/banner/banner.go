package banner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const DefaultBoard = "BeaglePlay"

var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	Width(48).
	Padding(1, 0)

var archNames = map[string]string{
	"arm64":   "ARM64/AARCH64",
	"arm":     "ARM/ARMHF",
	"amd64":   "x86-64",
	"386":     "x86",
	"riscv64": "RISC-V 64",
}

// ArchName turns a GOARCH value into the name used in the lab handouts.
func ArchName(goarch string) string {
	if name, ok := archNames[goarch]; ok {
		return name
	}
	return strings.ToUpper(goarch)
}

func Box() string {
	return boxStyle.Render("         DON'T PANIC\n\n    The Hitchhiker's Guide to Embedded Linux")
}

// Greeting is everything printed before the system information.
func Greeting(board, goarch string) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(Box())
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Hello from %s!\n\n", board)
	fmt.Fprintf(&sb, "This program was cross-compiled for %s\n", ArchName(goarch))
	sb.WriteString("and is running on embedded Linux.\n\n")
	return sb.String()
}

// Closing is everything printed after the system information.
func Closing() string {
	return "🎉 Success! Your cross-compilation toolchain works!\n" +
		"\n" +
		"Remember: Always know where your towel is.\n" +
		"          And your cross-compiler too.\n" +
		"\n"
}
