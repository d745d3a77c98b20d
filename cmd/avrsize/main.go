// Package main provides the entry point for the avrsize CLI.
//
// avrsize reports how much program memory (flash) and dynamic memory (RAM)
// a compiled AVR ELF binary uses, in the same words as the Arduino IDE.
//
// Usage:
//
//	avrsize -f firmware.elf
//	avrsize -f firmware.elf -e -p 30720 -d 2048
//
// See --help for all available options.
package main

// main is the entry point for avrsize.
func main() {
	Execute()
}
