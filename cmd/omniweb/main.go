// Package main is the entry point for the Omniweb server.
package main

func main() {
	Execute()
}
