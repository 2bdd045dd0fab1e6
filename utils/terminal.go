package utils

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"time"
)

//
// ===========================================================
//  TERMINAL OUTPUT HELPERS
// ===========================================================
//

const (
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiReset = "\033[0m"
)

// PrintSuccess prints a green message.
func PrintSuccess(msg string) {
	fmt.Println(ansiGreen + msg + ansiReset)
}

// PrintError prints a red "ERRO:" prefix followed by the message.
func PrintError(msg string) {
	fmt.Println(ansiRed + "ERRO: " + ansiReset + msg)
}

// PrintEllipsis prints the message and three trailing dots one at a time.
func PrintEllipsis(msg string) {
	fmt.Print(msg)
	for i := 0; i < 3; i++ {
		time.Sleep(300 * time.Millisecond)
		fmt.Print(".")
	}
	time.Sleep(300 * time.Millisecond)
	fmt.Println()
}

// ClearScreen shells out to cls on Windows and clear elsewhere. A failure is
// cosmetic and ignored.
func ClearScreen() {
	name := "clear"
	if runtime.GOOS == "windows" {
		name = "cls"
	}
	cmd := exec.Command(name)
	cmd.Stdout = os.Stdout
	_ = cmd.Run()
}
